package placeholder

import (
	"fmt"
	"strings"
)

// Set is the fixed list of printf-style substitutions compared across
// translations.
var Set = []string{
	"%d",  // integer
	"%s",  // string
	"%ld", // long integer
	"%%",  // escaped percent literal
}

// Counts holds the occurrences of each entry of Set, by index.
type Counts []int

// Count returns how often each placeholder of Set occurs in text.
// Occurrences are counted independently per placeholder.
func Count(text string) Counts {
	counts := make(Counts, len(Set))
	for i, p := range Set {
		counts[i] = strings.Count(text, p)
	}
	return counts
}

// Equal reports whether both counts match for every placeholder.
func (c Counts) Equal(other Counts) bool {
	if len(c) != len(other) {
		return false
	}
	for i := range c {
		if c[i] != other[i] {
			return false
		}
	}
	return true
}

// Diff lists every placeholder whose count differs, e.g. "%d: 1 != 0".
func (c Counts) Diff(other Counts) []string {
	var out []string
	for i, p := range Set {
		var a, b int
		if i < len(c) {
			a = c[i]
		}
		if i < len(other) {
			b = other[i]
		}
		if a != b {
			out = append(out, fmt.Sprintf("%s: %d != %d", p, a, b))
		}
	}
	return out
}

// Consistent reports whether every text carries the same placeholder counts.
func Consistent(texts ...string) bool {
	if len(texts) < 2 {
		return true
	}
	first := Count(texts[0])
	for _, t := range texts[1:] {
		if !first.Equal(Count(t)) {
			return false
		}
	}
	return true
}
