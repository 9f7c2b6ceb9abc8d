package report

import (
	"fmt"
	"strings"

	"locstring/internal/section"
	"locstring/internal/validate"
)

// Kind classifies a finding.
type Kind string

const (
	KindUnlabeled    Kind = "unlabeled"
	KindDuplicate    Kind = "duplicate"
	KindIncomplete   Kind = "incomplete"
	KindArguments    Kind = "arguments"
	KindUntranslated Kind = "untranslated"
	KindMissing      Kind = "missing"
)

// Finding is one problem attached to a label.
type Finding struct {
	Kind   Kind   `json:"kind"`
	Label  string `json:"label"`
	Detail string `json:"detail,omitempty"`
}

// Report holds every finding for one checked file or file pair.
type Report struct {
	File     string    `json:"file"`
	Entries  int       `json:"entries"`
	Findings []Finding `json:"findings"`
}

// Add appends a finding.
func (r *Report) Add(kind Kind, label, detail string) {
	r.Findings = append(r.Findings, Finding{Kind: kind, Label: label, Detail: detail})
}

// OK reports whether the report has no findings.
func (r *Report) OK() bool {
	return len(r.Findings) == 0
}

// Count returns the number of findings of the given kind.
func (r *Report) Count(kind Kind) int {
	n := 0
	for _, f := range r.Findings {
		if f.Kind == kind {
			n++
		}
	}
	return n
}

// ForDocument runs every bulk pass over a tagged document.
func ForDocument(file string, doc section.Document) *Report {
	r := &Report{File: file, Entries: len(doc), Findings: []Finding{}}

	for _, pos := range validate.FindUnlabeledSections(doc) {
		r.Add(KindUnlabeled, "", fmt.Sprintf("section #%d has no TXT line", pos))
	}
	for _, label := range validate.FindDuplicateLabels(doc) {
		r.Add(KindDuplicate, label, "")
	}
	for _, s := range doc {
		if !s.Complete() {
			r.Add(KindIncomplete, s.Label, "missing "+missingLanguages(s))
		}
	}
	for _, m := range validate.FindArgumentMismatches(doc) {
		r.Add(KindArguments, m.Label, fmt.Sprintf("%s/%s %s", m.Languages[0], m.Languages[1], strings.Join(m.Diff, ", ")))
	}
	for _, label := range validate.FindUntranslatedSections(doc) {
		r.Add(KindUntranslated, label, "all translations are identical")
	}

	return r
}

// ForClientside compares two single-language files by label.
func ForClientside(firstFile, secondFile string, first, second map[string]string) *Report {
	r := &Report{File: firstFile + " -> " + secondFile, Entries: len(first), Findings: []Finding{}}

	for _, label := range validate.FindMissingLabels(first, second) {
		r.Add(KindMissing, label, "absent from "+secondFile)
	}
	for _, m := range validate.FindClientsideArgumentMismatches(first, second) {
		r.Add(KindArguments, m.Label, strings.Join(m.Diff, ", "))
	}
	for _, label := range validate.FindUntranslatedEntries(first, second) {
		r.Add(KindUntranslated, label, "text is identical in both files")
	}

	return r
}

func missingLanguages(s *section.Section) string {
	var missing []string
	for _, l := range section.Languages() {
		if _, ok := s.Translations[l]; !ok {
			missing = append(missing, l.String())
		}
	}
	return strings.Join(missing, ",")
}
