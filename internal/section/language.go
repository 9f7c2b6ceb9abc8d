package section

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

// Language identifies one of the fixed translation languages.
// The numeric order is the serialization order.
type Language int

const (
	PL Language = iota
	EN

	languageCount
)

var languageCodes = [languageCount]string{
	PL: "PL",
	EN: "EN",
}

var languageTags = [languageCount]language.Tag{
	PL: language.Polish,
	EN: language.English,
}

// Languages returns every known language in ascending order.
func Languages() []Language {
	out := make([]Language, 0, languageCount)
	for l := Language(0); l < languageCount; l++ {
		out = append(out, l)
	}
	return out
}

// VariantCount is the total number of known languages.
func VariantCount() int { return int(languageCount) }

// Valid reports whether l is a known language.
func (l Language) Valid() bool {
	return l >= 0 && l < languageCount
}

// String returns the tag used in the tagged file format.
func (l Language) String() string {
	if !l.Valid() {
		return fmt.Sprintf("Language(%d)", int(l))
	}
	return languageCodes[l]
}

// Tag returns the BCP 47 tag of the language.
func (l Language) Tag() language.Tag {
	if !l.Valid() {
		return language.Und
	}
	return languageTags[l]
}

// DisplayName returns the English name of the language, e.g. "Polish".
func (l Language) DisplayName() string {
	return display.English.Languages().Name(l.Tag())
}

// ParseLanguage resolves a file tag ("PL"), a BCP 47 tag ("pl-PL") or an
// English language name ("polish").
func ParseLanguage(s string) (Language, error) {
	s = strings.TrimSpace(s)
	for _, l := range Languages() {
		if strings.EqualFold(s, l.String()) || strings.EqualFold(s, l.DisplayName()) {
			return l, nil
		}
	}

	tag, err := language.Parse(s)
	if err == nil {
		base, _ := tag.Base()
		for _, l := range Languages() {
			if b, _ := l.Tag().Base(); b == base {
				return l, nil
			}
		}
	}

	return 0, fmt.Errorf("unknown language %q", s)
}
