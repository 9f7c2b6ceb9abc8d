package validate

import (
	"errors"
	"fmt"

	"locstring/internal/section"
)

var (
	ErrUnlabeled      = errors.New("section without label")
	ErrDuplicateLabel = errors.New("duplicate label")
	ErrIncomplete     = errors.New("incomplete section")
)

// Document validates doc and returns the first problem found, checking
// labels, then completeness, then arguments.
func Document(doc section.Document) error {
	if pos := FindUnlabeledSections(doc); len(pos) > 0 {
		return fmt.Errorf("%w: section #%d", ErrUnlabeled, pos[0])
	}
	if dups := FindDuplicateLabels(doc); len(dups) > 0 {
		return fmt.Errorf("%w: %q", ErrDuplicateLabel, dups[0])
	}
	if labels := FindIncompleteSections(doc); len(labels) > 0 {
		return fmt.Errorf("%w: %q", ErrIncomplete, labels[0])
	}
	for _, s := range doc {
		if err := CheckTranslationsArguments(s); err != nil {
			return err
		}
	}
	return nil
}
