package textutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTrimBounding(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{`"hello"`, "hello"},
		{`\hello\`, "hello"},
		{`hello`, "hello"},
		{`"a "quoted" word"`, `a "quoted" word`},
		{`"Kliknij "Zapisz""`, `Kliknij "Zapisz"`},
		{`"C:\Games\"`, `C:\Games\`},
		{`""Start""`, `"Start"`},
		{`""`, ""},
		{`"`, ""},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, TrimBounding(tc.in), "input %q", tc.in)
	}
}

func TestSortedKeys(t *testing.T) {
	keys := SortedKeys(map[string]string{"b": "2", "a": "1", "c": ""})
	assert.Equal(t, []string{"a", "b", "c"}, keys)
}
