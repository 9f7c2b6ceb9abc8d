package section

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_IsEmpty(t *testing.T) {
	s := New()
	assert.Empty(t, s.Label)
	assert.NotNil(t, s.Translations)
	assert.Equal(t, 0, s.Count())
	assert.False(t, s.Complete())
}

func TestComplete(t *testing.T) {
	s := New()
	s.Label = "test"
	s.Translations[PL] = "asd"
	assert.False(t, s.Complete(), "one of two languages is incomplete")

	s.Translations[EN] = "asd"
	assert.True(t, s.Complete())
}

func TestLanguages_AscendingOrder(t *testing.T) {
	s := New()
	s.Translations[EN] = "b"
	s.Translations[PL] = "a"
	assert.Equal(t, []Language{PL, EN}, s.Languages())
}

func TestClone_IsIndependent(t *testing.T) {
	s := New()
	s.Label = "a"
	s.Translations[PL] = "x"

	c := s.Clone()
	c.Translations[PL] = "y"
	c.Label = "b"

	assert.Equal(t, "x", s.Translations[PL])
	assert.Equal(t, "a", s.Label)
}

func TestDocumentLabels(t *testing.T) {
	a, b := New(), New()
	a.Label, b.Label = "a", "b"
	assert.Equal(t, []string{"a", "b"}, Document{a, b}.Labels())
}

func TestLanguageMetadata(t *testing.T) {
	assert.Equal(t, 2, VariantCount())
	assert.Equal(t, []Language{PL, EN}, Languages())
	assert.Equal(t, "PL", PL.String())
	assert.Equal(t, "EN", EN.String())
	assert.Equal(t, "Polish", PL.DisplayName())
	assert.Equal(t, "English", EN.DisplayName())
	assert.False(t, Language(7).Valid())
}

func TestParseLanguage(t *testing.T) {
	cases := []struct {
		in   string
		want Language
	}{
		{"PL", PL},
		{"en", EN},
		{"pl-PL", PL},
		{"en-GB", EN},
		{"polish", PL},
		{" English ", EN},
	}
	for _, tc := range cases {
		got, err := ParseLanguage(tc.in)
		require.NoError(t, err, "input %q", tc.in)
		assert.Equal(t, tc.want, got, "input %q", tc.in)
	}

	_, err := ParseLanguage("de")
	assert.Error(t, err)
}
