package validate

import (
	"errors"
	"fmt"
	"strings"

	"locstring/internal/placeholder"
	"locstring/internal/section"
	"locstring/internal/textutil"
)

// ErrArgumentMismatch is matched by every *ArgumentMismatchError.
var ErrArgumentMismatch = errors.New("argument mismatch")

// ArgumentMismatchError reports differing placeholder counts for a label.
type ArgumentMismatchError struct {
	Label string
	// Languages holds the two compared languages; empty for clientside pairs.
	Languages []section.Language
	// Diff lists the differing placeholders, e.g. "%d: 1 != 0".
	Diff []string
}

func (e *ArgumentMismatchError) Error() string {
	if len(e.Languages) == 2 {
		return fmt.Sprintf("argument mismatch in %q between %s and %s (%s)",
			e.Label, e.Languages[0], e.Languages[1], strings.Join(e.Diff, ", "))
	}
	return fmt.Sprintf("argument mismatch in %q (%s)", e.Label, strings.Join(e.Diff, ", "))
}

func (e *ArgumentMismatchError) Unwrap() error { return ErrArgumentMismatch }

// CheckTranslationsArguments verifies that every translation of s carries
// the same number of each placeholder. Translations are compared against
// the lowest language present.
func CheckTranslationsArguments(s *section.Section) error {
	langs := s.Languages()
	if len(langs) < 2 {
		return nil
	}

	ref := placeholder.Count(s.Translations[langs[0]])
	for _, l := range langs[1:] {
		counts := placeholder.Count(s.Translations[l])
		if !ref.Equal(counts) {
			return &ArgumentMismatchError{
				Label:     s.Label,
				Languages: []section.Language{langs[0], l},
				Diff:      ref.Diff(counts),
			}
		}
	}
	return nil
}

// CheckStringArguments reports whether both texts carry the same number of
// each placeholder.
func CheckStringArguments(a, b string) bool {
	return placeholder.Consistent(a, b)
}

// FindArgumentMismatches returns every section failing
// CheckTranslationsArguments, in document order.
func FindArgumentMismatches(doc section.Document) []*ArgumentMismatchError {
	var out []*ArgumentMismatchError
	for _, s := range doc {
		var mismatch *ArgumentMismatchError
		if errors.As(CheckTranslationsArguments(s), &mismatch) {
			out = append(out, mismatch)
		}
	}
	return out
}

// FindClientsideArgumentMismatches compares same-label entries of two
// clientside files, in ascending label order.
func FindClientsideArgumentMismatches(first, second map[string]string) []*ArgumentMismatchError {
	var out []*ArgumentMismatchError
	for _, key := range textutil.SortedKeys(first) {
		other, ok := second[key]
		if !ok {
			continue
		}
		a, b := placeholder.Count(first[key]), placeholder.Count(other)
		if !a.Equal(b) {
			out = append(out, &ArgumentMismatchError{Label: key, Diff: a.Diff(b)})
		}
	}
	return out
}
