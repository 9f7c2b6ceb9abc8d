package section

import "sort"

// Section pairs a label with at most one text per language.
type Section struct {
	Label        string
	Translations map[Language]string
}

// Document is an ordered list of sections in source order.
type Document []*Section

// New returns an empty section with no label.
func New() *Section {
	return &Section{Translations: make(map[Language]string)}
}

// Count returns the number of translations in the section.
func (s *Section) Count() int {
	return len(s.Translations)
}

// Complete reports whether every known language has a translation.
func (s *Section) Complete() bool {
	return s.Count() == VariantCount()
}

// Languages returns the languages present in the section in ascending order.
func (s *Section) Languages() []Language {
	out := make([]Language, 0, len(s.Translations))
	for l := range s.Translations {
		out = append(out, l)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Clone returns a deep copy of the section.
func (s *Section) Clone() *Section {
	c := &Section{
		Label:        s.Label,
		Translations: make(map[Language]string, len(s.Translations)),
	}
	for l, text := range s.Translations {
		c.Translations[l] = text
	}
	return c
}

// Labels returns the label of every section in document order.
func (d Document) Labels() []string {
	out := make([]string, 0, len(d))
	for _, s := range d {
		out = append(out, s.Label)
	}
	return out
}
