package parser

import "strings"

// ParseClientside reads a single-language "<label>\t<text>" file into a
// label to text map. The text may be empty; a repeated label is an error.
// Only the label is trimmed; the text keeps its surrounding spaces.
func ParseClientside(text string) (map[string]string, error) {
	entries := make(map[string]string)

	for i, raw := range strings.Split(text, "\n") {
		line := strings.TrimRight(raw, "\r")
		if trimmed := strings.TrimSpace(line); trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}

		key, value, _ := strings.Cut(line, "\t")
		key = strings.TrimSpace(key)
		if _, exists := entries[key]; exists {
			return nil, &Error{Err: ErrLabelDuplicate, Line: i + 1, Text: line, Label: key}
		}
		entries[key] = value
	}

	return entries, nil
}
