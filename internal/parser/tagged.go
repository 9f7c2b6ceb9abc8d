package parser

import (
	"strings"

	"locstring/internal/section"
	"locstring/internal/textutil"
)

type action int

const (
	actionNewSection action = iota
	actionLabel
	actionTranslation
)

// keyword binds a line prefix to what the parser does with the line.
type keyword struct {
	tag      string
	action   action
	language section.Language
}

// keywords is matched in order; the first prefix match wins.
var keywords = buildKeywords()

func buildKeywords() []keyword {
	kw := []keyword{
		{tag: section.KeywordSection, action: actionNewSection},
		{tag: section.KeywordLabel, action: actionLabel},
	}
	for _, l := range section.Languages() {
		kw = append(kw, keyword{tag: l.String(), action: actionTranslation, language: l})
	}
	return kw
}

func matchKeyword(line string) (keyword, bool) {
	for _, kw := range keywords {
		if strings.HasPrefix(line, kw.tag) {
			return kw, true
		}
	}
	return keyword{}, false
}

// extractPayload returns the second tab-separated field with bounding
// quotes and backslashes removed.
func extractPayload(line string) (string, bool) {
	fields := strings.Split(line, "\t")
	if len(fields) < 2 {
		return "", false
	}
	payload := textutil.TrimBounding(fields[1])
	if payload == "" {
		return "", false
	}
	return payload, true
}

// Parse reads a tagged-format document. It stops at the first error and
// never returns a partial document.
//
// Blank lines and lines starting with '#' are skipped, as are lines that
// match no keyword. A section ends at the next "section" line or at the
// end of input.
func Parse(text string) (section.Document, error) {
	var doc section.Document

	for i, raw := range strings.Split(text, "\n") {
		lineNum := i + 1
		line := strings.TrimSpace(raw)

		// Skip empty lines and comments.
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		kw, ok := matchKeyword(line)
		if !ok {
			continue
		}

		if kw.action == actionNewSection {
			doc = append(doc, section.New())
			continue
		}

		payload, ok := extractPayload(line)
		if !ok {
			return nil, &Error{Err: ErrEmpty, Line: lineNum, Text: line, Keyword: kw.tag}
		}

		if len(doc) == 0 {
			return nil, &Error{Err: ErrSyntax, Line: lineNum, Text: line, Keyword: kw.tag, Payload: payload}
		}
		current := doc[len(doc)-1]

		switch kw.action {
		case actionLabel:
			current.Label = payload
		case actionTranslation:
			if _, exists := current.Translations[kw.language]; exists {
				return nil, &Error{
					Err:      ErrLanguageDuplicate,
					Line:     lineNum,
					Text:     line,
					Keyword:  kw.tag,
					Payload:  payload,
					Label:    current.Label,
					Language: kw.language,
				}
			}
			current.Translations[kw.language] = payload
		}
	}

	return doc, nil
}
