// Package merge overlays a newer translation snapshot onto a current one.
package merge

import "locstring/internal/section"

// Sections merges incoming onto base and returns a new document; neither
// input is modified.
//
// An incoming section whose label matches a base section overwrites or adds
// that section's translations in place, leaving other languages untouched.
// When several base sections share a label the first one is updated.
// Incoming sections with no match are appended after all base sections in
// their incoming order.
func Sections(base, incoming section.Document) section.Document {
	merged := make(section.Document, 0, len(base)+len(incoming))
	byLabel := make(map[string]int, len(base))

	for i, s := range base {
		merged = append(merged, s.Clone())
		if _, seen := byLabel[s.Label]; !seen {
			byLabel[s.Label] = i
		}
	}

	for _, x := range incoming {
		idx, ok := byLabel[x.Label]
		if !ok {
			merged = append(merged, x.Clone())
			continue
		}
		target := merged[idx]
		for l, text := range x.Translations {
			target.Translations[l] = text
		}
	}

	return merged
}
