package parser

import (
	"strings"

	"locstring/internal/section"
)

// ParseLegacy imports the old flat format: after dropping blank and comment
// lines, every remaining line is trimmed of quotes and semicolons and
// consecutive lines form (label, text) pairs in the given language.
func ParseLegacy(text string, lang section.Language) (section.Document, error) {
	var lines []string
	for _, raw := range strings.Split(text, "\n") {
		line := strings.Trim(strings.TrimSpace(raw), "\";")
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		lines = append(lines, line)
	}

	if len(lines) == 0 {
		return nil, &Error{Err: ErrEmpty}
	}
	if len(lines)%2 != 0 {
		return nil, &Error{Err: ErrSyntax, Count: len(lines)}
	}

	doc := make(section.Document, 0, len(lines)/2)
	for i := 0; i < len(lines); i += 2 {
		s := section.New()
		s.Label = lines[i]
		s.Translations[lang] = lines[i+1]
		doc = append(doc, s)
	}

	return doc, nil
}
