package binconv_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/ophite/pkg/binconv"
)

func TestJoin(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		main     []byte
		rest     [][]byte
		expected []byte
	}{
		{
			name:     "main only",
			main:     []byte{1, 2},
			expected: []byte{1, 2},
		},
		{
			name:     "skips nil parts",
			main:     []byte{1},
			rest:     [][]byte{nil, {2, 3}, nil, {4}},
			expected: []byte{1, 2, 3, 4},
		},
		{
			name:     "nil main",
			rest:     [][]byte{{5}},
			expected: []byte{5},
		},
		{
			name:     "everything empty",
			rest:     [][]byte{nil, {}},
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, binconv.Join(tt.main, tt.rest...))
		})
	}
}

func TestReverse(t *testing.T) {
	t.Parallel()

	in := []byte{1, 2, 3}
	assert.Equal(t, []byte{3, 2, 1}, binconv.Reverse(in))
	assert.Equal(t, []byte{1, 2, 3}, in)
	assert.Nil(t, binconv.Reverse(nil))
	assert.Equal(t, []byte{}, binconv.Reverse([]byte{}))
}

func TestCharsBytes(t *testing.T) {
	t.Parallel()

	assert.Nil(t, binconv.CharsBytes(nil))
	assert.Equal(t, []byte("abc"), binconv.CharsBytes([]rune("abc")))
	assert.Equal(t, []byte{196, 141, 97, 117}, binconv.CharsBytes([]rune("čau")))
	assert.True(t, binconv.IsEmpty(nil))
	assert.False(t, binconv.IsEmpty([]byte{0}))
}

type header struct {
	Magic   [4]byte
	Version uint16
	Flags   uint16
	Length  int32
}

func TestStructs(t *testing.T) {
	t.Parallel()

	t.Run("round trip", func(t *testing.T) {
		t.Parallel()

		h := header{Magic: [4]byte{'O', 'P', 'H', 'I'}, Version: 1, Flags: 0x8000, Length: -5}
		data, err := binconv.EncodeStruct(h, binconv.BigEndian)
		require.NoError(t, err)
		assert.Len(t, data, 12)
		assert.Equal(t, []byte{0, 1}, data[4:6])

		got, err := binconv.DecodeStruct[header](data, binconv.BigEndian)
		require.NoError(t, err)
		assert.Equal(t, h, got)
	})

	t.Run("wrong length", func(t *testing.T) {
		t.Parallel()
		_, err := binconv.DecodeStruct[header](make([]byte, 11), binconv.BigEndian)
		assert.ErrorIs(t, err, binconv.ErrLengthMismatch)
	})

	t.Run("empty", func(t *testing.T) {
		t.Parallel()
		_, err := binconv.DecodeStruct[header](nil, binconv.LittleEndian)
		assert.ErrorIs(t, err, binconv.ErrEmpty)
	})

	t.Run("variable size types", func(t *testing.T) {
		t.Parallel()

		type dynamic struct{ Name string }
		_, err := binconv.EncodeStruct(dynamic{Name: "x"}, binconv.BigEndian)
		assert.ErrorIs(t, err, binconv.ErrNotFixedSize)

		_, err = binconv.DecodeStruct[dynamic]([]byte{1}, binconv.BigEndian)
		assert.ErrorIs(t, err, binconv.ErrNotFixedSize)
	})
}
