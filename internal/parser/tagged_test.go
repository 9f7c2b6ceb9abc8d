package parser

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"locstring/internal/section"
)

const sample = `# main menu strings
section
	TXT	"menu_start"
	PL	"Rozpocznij"
	EN	"Start"
end

section
	TXT	"menu_quit"
	PL	"Wyjdź"
end
`

func TestParse_Sample(t *testing.T) {
	doc, err := Parse(sample)
	require.NoError(t, err)
	require.Len(t, doc, 2)

	assert.Equal(t, "menu_start", doc[0].Label)
	assert.Equal(t, map[section.Language]string{section.PL: "Rozpocznij", section.EN: "Start"}, doc[0].Translations)
	assert.Equal(t, "menu_quit", doc[1].Label)
	assert.Equal(t, map[section.Language]string{section.PL: "Wyjdź"}, doc[1].Translations)
}

func TestParse_EmptyInput(t *testing.T) {
	doc, err := Parse("")
	require.NoError(t, err)
	assert.Empty(t, doc)
}

func TestParse_IgnoresUnknownLines(t *testing.T) {
	input := "section\n\tTXT\t\"a\"\n\tDE\t\"Hallo\"\n\tFLAGS\tx\n\tPL\t\"Cześć\"\nend\n"
	doc, err := Parse(input)
	require.NoError(t, err)
	require.Len(t, doc, 1)
	assert.Equal(t, map[section.Language]string{section.PL: "Cześć"}, doc[0].Translations)
}

func TestParse_ImplicitSectionEnd(t *testing.T) {
	input := "section\nTXT\t\"a\"\nPL\t\"x\"\nsection\nTXT\t\"b\"\nEN\t\"y\""
	doc, err := Parse(input)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, doc.Labels())
}

func TestParse_LabelOverwritten(t *testing.T) {
	doc, err := Parse("section\nTXT\t\"first\"\nTXT\t\"second\"\n")
	require.NoError(t, err)
	require.Len(t, doc, 1)
	assert.Equal(t, "second", doc[0].Label)
}

func TestParse_WindowsLineEndings(t *testing.T) {
	doc, err := Parse("section\r\n\tTXT\t\"a\"\r\n\tEN\t\"b\"\r\nend\r\n")
	require.NoError(t, err)
	require.Len(t, doc, 1)
	assert.Equal(t, "b", doc[0].Translations[section.EN])
}

func TestParse_TranslationWithoutSection_Syntax(t *testing.T) {
	_, err := Parse("PL\t\"x\"")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrSyntax))

	var perr *Error
	require.True(t, errors.As(err, &perr))
	assert.Equal(t, "PL", perr.Keyword)
	assert.Equal(t, "x", perr.Payload)
	assert.Equal(t, 1, perr.Line)
}

func TestParse_LabelWithoutTab_Empty(t *testing.T) {
	doc, err := Parse("section\nTXT \"a\"")
	require.Error(t, err)
	assert.Nil(t, doc, "no partial document on error")
	assert.True(t, errors.Is(err, ErrEmpty))

	var perr *Error
	require.True(t, errors.As(err, &perr))
	assert.Equal(t, 2, perr.Line)
	assert.Equal(t, `TXT "a"`, perr.Text)
}

func TestParse_EmptyPayload_Empty(t *testing.T) {
	_, err := Parse("section\nTXT\t\"a\"\nEN\t\"\"")
	assert.True(t, errors.Is(err, ErrEmpty))
}

func TestParse_LanguageDuplicate(t *testing.T) {
	input := "section\n\tTXT\t\"dup\"\n\tPL\t\"a\"\n\tPL\t\"b\"\nend"
	_, err := Parse(input)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrLanguageDuplicate))

	var perr *Error
	require.True(t, errors.As(err, &perr))
	assert.Equal(t, section.PL, perr.Language)
	assert.Equal(t, "dup", perr.Label)
	assert.Contains(t, err.Error(), "PL")
	assert.Contains(t, err.Error(), "dup")
}

func TestParse_RoundTrip(t *testing.T) {
	cases := []map[section.Language]string{
		{},
		{section.PL: "Masz %d punktów"},
		{section.EN: "You have %d points"},
		{section.PL: "Tak", section.EN: "Yes"},
		{section.PL: `Kliknij "Zapisz"`, section.EN: `Click "Save"`},
		{section.PL: `C:\Games\`, section.EN: `\server\share`},
		{section.EN: `"Start"`},
	}
	for _, translations := range cases {
		s := section.New()
		s.Label = "label_1"
		for l, text := range translations {
			s.Translations[l] = text
		}

		doc, err := Parse(section.Generate(s))
		require.NoError(t, err)
		assert.Equal(t, section.Document{s}, doc)
	}
}

func TestParse_DocumentRoundTrip(t *testing.T) {
	doc, err := Parse(sample)
	require.NoError(t, err)

	text, err := section.GenerateDocument(doc)
	require.NoError(t, err)
	again, err := Parse(text)
	require.NoError(t, err)
	assert.Equal(t, doc, again)
}

func TestParse_KeepsInnerBoundingCharacters(t *testing.T) {
	doc, err := Parse("section\n\tTXT\t\"\"quoted\"\"\n\tEN\t\"C:\\Games\\\"\n")
	require.NoError(t, err)
	require.Len(t, doc, 1)
	assert.Equal(t, `"quoted"`, doc[0].Label)
	assert.Equal(t, `C:\Games\`, doc[0].Translations[section.EN])
}
