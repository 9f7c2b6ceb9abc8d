package validate

import (
	"locstring/internal/section"
	"locstring/internal/textutil"
)

// Untranslated reports whether s has at least two translations and all of
// them are byte-identical.
func Untranslated(s *section.Section) bool {
	if s.Count() < 2 {
		return false
	}
	var first string
	for i, l := range s.Languages() {
		if i == 0 {
			first = s.Translations[l]
			continue
		}
		if s.Translations[l] != first {
			return false
		}
	}
	return true
}

// FindUntranslatedSections returns the label of every Untranslated section.
func FindUntranslatedSections(doc section.Document) []string {
	var out []string
	for _, s := range doc {
		if Untranslated(s) {
			out = append(out, s.Label)
		}
	}
	return out
}

// FindUntranslatedEntries returns the labels present in both clientside
// files with identical text, in ascending label order.
func FindUntranslatedEntries(first, second map[string]string) []string {
	var out []string
	for _, key := range textutil.SortedKeys(first) {
		if other, ok := second[key]; ok && other == first[key] {
			out = append(out, key)
		}
	}
	return out
}
