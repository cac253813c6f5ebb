package regex_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/ophite/pkg/regex"
)

func TestExtract(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		extraction regex.Extraction
		input      string
		expected   []string
	}{
		{
			name:       "binary bytes",
			extraction: regex.BinaryBytes,
			input:      "bits: 01001000 01101001 and 0102",
			expected:   []string{"01001000", "01101001"},
		},
		{
			name:       "youtube ids",
			extraction: regex.YouTubeID,
			input:      "see https://www.youtube.com/watch?v=dQw4w9WgXcQ or https://youtu.be/abc_DEF-1 now",
			expected:   []string{"dQw4w9WgXcQ", "abc_DEF-1"},
		},
		{
			name:       "caps words",
			extraction: regex.CapsWords,
			input:      "Hello WORLD from NASA and me",
			expected:   []string{"WORLD", "NASA"},
		},
		{
			name:       "lowercase words",
			extraction: regex.LowercaseWords,
			input:      "Hello WORLD from NASA and me",
			expected:   []string{"from", "and", "me"},
		},
		{
			name:       "initial caps",
			extraction: regex.InitialCapsWords,
			input:      "Hello WORLD from Prague",
			expected:   []string{"Hello", "Prague"},
		},
		{
			name:       "numbers",
			extraction: regex.Numbers,
			input:      "abc 12 and 3.5 or .75",
			expected:   []string{"12", "3.5", ".75"},
		},
		{
			name:       "no matches",
			extraction: regex.Numbers,
			input:      "none here",
			expected:   []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := regex.Extract(tt.input, tt.extraction)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}

	_, err := regex.Extract("x", regex.Extraction(-3))
	assert.ErrorIs(t, err, regex.ErrUnknownTemplate)
}

func TestFindAll(t *testing.T) {
	t.Parallel()

	got, err := regex.FindAll("one\ntwo\nthree", `^t\w+$`)
	require.NoError(t, err)
	assert.Equal(t, []string{"two", "three"}, got)

	got, err = regex.FindAll("Apple apple APPLE", `apple`, regex.IgnoreCase())
	require.NoError(t, err)
	assert.Len(t, got, 3)

	_, err = regex.FindAll("x", `[`)
	assert.ErrorIs(t, err, regex.ErrInvalidPattern)
}

func TestEngine_Cache(t *testing.T) {
	t.Parallel()

	eng := regex.New(regex.WithCacheSize(2))
	for _, p := range []string{`a`, `b`, `c`, `c`} {
		_, err := eng.FindAll("abc", p)
		require.NoError(t, err)
	}
	assert.Equal(t, 2, eng.CacheLen())

	_, err := eng.FindAll("abc", `a`, regex.IgnoreCase())
	require.NoError(t, err)
	assert.Equal(t, 2, eng.CacheLen())

	assert.NotNil(t, regex.Default())
	assert.Equal(t, regex.DefaultCacheSize, 128)
}
