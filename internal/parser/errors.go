package parser

import (
	"errors"
	"fmt"

	"locstring/internal/section"
)

// Sentinel errors matched with errors.Is against a *Error.
var (
	ErrEmpty             = errors.New("empty or invalid line")
	ErrSyntax            = errors.New("invalid syntax")
	ErrLanguageDuplicate = errors.New("duplicate language")
	ErrLabelDuplicate    = errors.New("duplicate label")
)

// Error describes where and why parsing stopped.
type Error struct {
	// Err is one of the sentinel errors above.
	Err error
	// Line is the 1-based line number, 0 when the error concerns the whole input.
	Line int
	// Text is the trimmed source line.
	Text string
	// Keyword is the matched keyword (TXT, PL, ...).
	Keyword string
	// Payload is the extracted value of the line.
	Payload string
	// Label is the label of the open section or the duplicated key.
	Label string
	// Language is set for ErrLanguageDuplicate.
	Language section.Language
	// Count is the number of meaningful lines for legacy input.
	Count int
}

func (e *Error) Error() string {
	switch e.Err {
	case ErrEmpty:
		if e.Line == 0 {
			return "file is empty"
		}
		return fmt.Sprintf("line %d: empty or invalid line near %q", e.Line, e.Text)
	case ErrSyntax:
		if e.Keyword == "" {
			return fmt.Sprintf("lines count %d is not divisible by 2", e.Count)
		}
		return fmt.Sprintf("line %d: invalid syntax near %s\t%s", e.Line, e.Keyword, e.Payload)
	case ErrLanguageDuplicate:
		return fmt.Sprintf("line %d: language %s repeated in section %q", e.Line, e.Language, e.Label)
	case ErrLabelDuplicate:
		return fmt.Sprintf("line %d: label %q already defined", e.Line, e.Label)
	}
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }
