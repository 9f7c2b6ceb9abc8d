// Package validate runs consistency passes over parsed translations.
//
// The Find* passes collect every offending label and never stop early.
// Document is the single-shot entry point that stops at the first problem.
package validate

import (
	"locstring/internal/section"
	"locstring/internal/textutil"
)

// FindIncompleteSections returns the label of every section that does not
// carry exactly one translation per known language, in document order.
func FindIncompleteSections(doc section.Document) []string {
	var out []string
	for _, s := range doc {
		if !s.Complete() {
			out = append(out, s.Label)
		}
	}
	return out
}

// FindUnlabeledSections returns the 1-based positions of sections that
// never received a TXT line.
func FindUnlabeledSections(doc section.Document) []int {
	var out []int
	for i, s := range doc {
		if s.Label == "" {
			out = append(out, i+1)
		}
	}
	return out
}

// FindDuplicateLabels returns each label used by more than one section,
// once, ordered by first occurrence.
func FindDuplicateLabels(doc section.Document) []string {
	seen := make(map[string]int, len(doc))
	var order []string
	for _, s := range doc {
		if s.Label == "" {
			continue
		}
		if seen[s.Label] == 0 {
			order = append(order, s.Label)
		}
		seen[s.Label]++
	}

	var out []string
	for _, label := range order {
		if seen[label] > 1 {
			out = append(out, label)
		}
	}
	return out
}

// FindMissingLabels returns the keys of first that are absent from second,
// in ascending key order.
func FindMissingLabels(first, second map[string]string) []string {
	var out []string
	for _, key := range textutil.SortedKeys(first) {
		if _, ok := second[key]; !ok {
			out = append(out, key)
		}
	}
	return out
}
