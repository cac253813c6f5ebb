package convert_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/ophite/pkg/convert"
	"github.com/dmitrymomot/ophite/pkg/fault"
)

type port uint16

func TestParse_Integers(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected int16
		kind     fault.Kind
	}{
		{name: "positive", input: "1024", expected: 1024},
		{name: "negative", input: "-32768", expected: math.MinInt16},
		{name: "plus sign", input: "+7", expected: 7},
		{name: "surrounding spaces", input: "  12 ", expected: 12},
		{name: "empty", input: "", kind: fault.ErrEmpty},
		{name: "blank", input: "\t ", kind: fault.ErrEmpty},
		{name: "decimal point", input: "1.00", kind: fault.ErrInvalidFormat},
		{name: "letters", input: "abc", kind: fault.ErrInvalidFormat},
		{name: "group separator", input: "1,000", kind: fault.ErrInvalidFormat},
		{name: "too large", input: "32768", kind: fault.ErrOverflow},
		{name: "too small", input: "-32769", kind: fault.ErrOverflow},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			v, err := convert.Parse[int16](tt.input)
			if tt.kind != (fault.Kind{}) {
				require.Error(t, err)
				assert.True(t, errors.Is(err, tt.kind), "got %v", err)
				assert.Zero(t, v)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, v)
		})
	}
}

func TestParse_Unsigned(t *testing.T) {
	t.Parallel()

	v, err := convert.Parse[uint64]("18446744073709551615")
	require.NoError(t, err)
	assert.Equal(t, uint64(math.MaxUint64), v)

	_, err = convert.Parse[uint32]("-1")
	assert.ErrorIs(t, err, convert.ErrOverflow)

	z, err := convert.Parse[uint8]("-0")
	require.NoError(t, err)
	assert.Zero(t, z)

	p, err := convert.Parse[port]("8080")
	require.NoError(t, err)
	assert.Equal(t, port(8080), p)

	_, err = convert.Parse[port]("65536")
	assert.ErrorIs(t, err, fault.ErrOverflow)
}

func TestParse_Floats(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected float64
		kind     fault.Kind
	}{
		{name: "fraction", input: "12.25", expected: 12.25},
		{name: "negative", input: "-0.5", expected: -0.5},
		{name: "exponent", input: "1e3", expected: 1000},
		{name: "leading dot", input: ".5", expected: 0.5},
		{name: "comma separator", input: "1,5", kind: fault.ErrInvalidFormat},
		{name: "hex float", input: "0x1p-2", kind: fault.ErrInvalidFormat},
		{name: "nan", input: "NaN", kind: fault.ErrInvalidFormat},
		{name: "dot only", input: ".", kind: fault.ErrInvalidFormat},
		{name: "too large", input: "1e400", kind: fault.ErrOverflow},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			v, err := convert.Parse[float64](tt.input)
			if tt.kind != (fault.Kind{}) {
				require.Error(t, err)
				assert.True(t, errors.Is(err, tt.kind), "got %v", err)
				return
			}
			require.NoError(t, err)
			assert.InDelta(t, tt.expected, v, 1e-12)
		})
	}

	_, err := convert.Parse[float32]("1e39")
	assert.ErrorIs(t, err, convert.ErrOverflow)
}

func TestParseOrZero(t *testing.T) {
	t.Parallel()

	assert.Zero(t, convert.ParseOrZero[int32]("Text"))
	assert.Zero(t, convert.ParseOrZero[float64](""))
	assert.Equal(t, int32(5), convert.ParseOrZero[int32]("5"))
	assert.Equal(t, 42, convert.ParseOr("x", 42))
	assert.Equal(t, 7, convert.ParseOr("7", 42))
	assert.Equal(t, int64(9), convert.MustParse[int64]("9"))
	assert.Panics(t, func() { convert.MustParse[int64]("nine") })
}

func TestTypedHelpers(t *testing.T) {
	t.Parallel()

	t.Run("ignore errors", func(t *testing.T) {
		t.Parallel()

		i16, err := convert.ToInt16("Text", true)
		require.NoError(t, err)
		assert.Zero(t, i16)

		u16, err := convert.ToUint16("70000", true)
		require.NoError(t, err)
		assert.Zero(t, u16)

		i32, err := convert.ToInt32("1.00", true)
		require.NoError(t, err)
		assert.Zero(t, i32)

		u32, err := convert.ToUint32("", true)
		require.NoError(t, err)
		assert.Zero(t, u32)

		i64, err := convert.ToInt64("99999999999999999999", true)
		require.NoError(t, err)
		assert.Zero(t, i64)

		u64, err := convert.ToUint64("-5", true)
		require.NoError(t, err)
		assert.Zero(t, u64)

		f32, err := convert.ToFloat32("x", true)
		require.NoError(t, err)
		assert.Zero(t, f32)

		f64, err := convert.ToFloat64("1.5", true)
		require.NoError(t, err)
		assert.InDelta(t, 1.5, f64, 1e-12)
	})

	t.Run("strict", func(t *testing.T) {
		t.Parallel()

		_, err := convert.ToInt32("1.00", false)
		assert.ErrorIs(t, err, convert.ErrInvalidFormat)

		_, err = convert.ToInt64("", false)
		assert.ErrorIs(t, err, convert.ErrEmpty)

		_, err = convert.ToUint16("70000", false)
		assert.ErrorIs(t, err, convert.ErrOverflow)

		v, err := convert.ToUint32("4294967295", false)
		require.NoError(t, err)
		assert.Equal(t, uint32(math.MaxUint32), v)
	})
}

func BenchmarkParse(b *testing.B) {
	for b.Loop() {
		_, _ = convert.Parse[int64]("-9223372036854775808")
	}
}
