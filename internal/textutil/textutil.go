package textutil

import (
	"sort"
	"strings"
)

// TrimBounding removes at most one leading and one trailing bounding
// character. A quote is preferred over a backslash on each end.
func TrimBounding(s string) string {
	switch {
	case strings.HasPrefix(s, `"`):
		s = s[1:]
	case strings.HasPrefix(s, `\`):
		s = s[1:]
	}
	switch {
	case strings.HasSuffix(s, `"`):
		s = s[:len(s)-1]
	case strings.HasSuffix(s, `\`):
		s = s[:len(s)-1]
	}
	return s
}

// SortedKeys returns the keys of m in ascending order.
func SortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
