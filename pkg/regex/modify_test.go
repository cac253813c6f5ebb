package regex_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/ophite/pkg/regex"
)

func TestModify(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		mod      regex.Modification
		input    string
		expected string
	}{
		{name: "add slashes", mod: regex.AddSlashes, input: `it's "ok"`, expected: `it\'s \"ok\"`},
		{name: "add slashes to control chars", mod: regex.AddSlashes, input: "a\x00b\tc", expected: "a\\\x00b\\\tc"},
		{name: "remove slashes", mod: regex.RemoveSlashes, input: `it\'s \"ok\"`, expected: `it's "ok"`},
		{name: "remove slashes keeps plain backslashes", mod: regex.RemoveSlashes, input: `C:\dir`, expected: `C:\dir`},
		{name: "remove tabs", mod: regex.RemoveTabs, input: "a\tb\t", expected: "ab"},
		{name: "remove line feed", mod: regex.RemoveLineFeed, input: "a\r\nb\n", expected: "a\rb"},
		{name: "remove carriage return", mod: regex.RemoveCarriageReturn, input: "a\r\nb\r", expected: "a\nb"},
		{name: "remove new lines", mod: regex.RemoveNewLines, input: "a\r\nb\nc", expected: "abc"},
		{name: "remove html tags", mod: regex.RemoveHTMLTags, input: `<p class="x">Hello <b>world</b></p>`, expected: "Hello world"},
		{name: "join lines", mod: regex.JoinLines, input: "first  \r\n   second\nthird", expected: "first second third"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := regex.Modify(tt.input, tt.mod)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}

	t.Run("slashes round trip", func(t *testing.T) {
		t.Parallel()

		in := "O'Reilly said \"hi\"\n`cmd` \\ end"
		escaped, err := regex.Modify(in, regex.AddSlashes)
		require.NoError(t, err)
		back, err := regex.Modify(escaped, regex.RemoveSlashes)
		require.NoError(t, err)
		assert.Equal(t, in, back)
	})

	t.Run("unknown modification", func(t *testing.T) {
		t.Parallel()
		_, err := regex.Modify("x", regex.Modification(42))
		assert.ErrorIs(t, err, regex.ErrUnknownTemplate)
	})
}

func TestReplace(t *testing.T) {
	t.Parallel()

	got, err := regex.Replace("2012-11-19", `(\d+)-(\d+)-(\d+)`, "$3.$2.$1")
	require.NoError(t, err)
	assert.Equal(t, "19.11.2012", got)
}

func TestNamesRoundTrip(t *testing.T) {
	t.Parallel()

	for _, m := range regex.Modifications() {
		got, err := regex.ParseModification(m.String())
		require.NoError(t, err)
		assert.Equal(t, m, got)
	}
	for _, x := range regex.Extractions() {
		got, err := regex.ParseExtraction(x.String())
		require.NoError(t, err)
		assert.Equal(t, x, got)
	}
	assert.Len(t, regex.Modifications(), 8)
	assert.Len(t, regex.Extractions(), 6)
}
