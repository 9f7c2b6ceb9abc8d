package section

import (
	"errors"
	"fmt"
	"strings"
)

// Keywords of the tagged format.
const (
	KeywordSection = "section"
	KeywordLabel   = "TXT"
	KeywordEnd     = "end"
)

// ErrUnserializable is returned for a label or text the tagged format
// cannot carry: it must be non-empty and free of tabs and line breaks.
var ErrUnserializable = errors.New("value cannot be written in the tagged format")

// CheckSerializable reports whether Generate output parses back to s.
func CheckSerializable(s *Section) error {
	if err := checkPayload(s.Label); err != nil {
		return fmt.Errorf("label %q: %w", s.Label, err)
	}
	for _, l := range s.Languages() {
		if err := checkPayload(s.Translations[l]); err != nil {
			return fmt.Errorf("section %q, %s text %q: %w", s.Label, l, s.Translations[l], err)
		}
	}
	return nil
}

func checkPayload(p string) error {
	if p == "" || strings.ContainsAny(p, "\t\r\n") {
		return ErrUnserializable
	}
	return nil
}

// Generate renders a section in the tagged format, without a trailing
// newline. The output only parses back to s when CheckSerializable(s) is nil.
//
//	section
//		TXT	"<label>"
//		PL	"<text>"
//	end
func Generate(s *Section) string {
	var sb strings.Builder

	sb.WriteString(KeywordSection)
	sb.WriteString("\n")
	writeLine(&sb, KeywordLabel, s.Label)
	for _, l := range s.Languages() {
		writeLine(&sb, l.String(), s.Translations[l])
	}
	sb.WriteString(KeywordEnd)

	return sb.String()
}

// GenerateDocument renders every section followed by a blank line. It fails
// on the first section that CheckSerializable rejects.
func GenerateDocument(doc Document) (string, error) {
	var sb strings.Builder
	for _, s := range doc {
		if err := CheckSerializable(s); err != nil {
			return "", err
		}
		sb.WriteString(Generate(s))
		sb.WriteString("\n\n")
	}
	return sb.String(), nil
}

func writeLine(sb *strings.Builder, keyword, payload string) {
	sb.WriteString("\t")
	sb.WriteString(keyword)
	sb.WriteString("\t\"")
	sb.WriteString(payload)
	sb.WriteString("\"\n")
}
