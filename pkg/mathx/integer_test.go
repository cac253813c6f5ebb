package mathx_test

import (
	"math"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/ophite/pkg/fault"
	"github.com/dmitrymomot/ophite/pkg/mathx"
)

func TestFibonacci(t *testing.T) {
	t.Parallel()

	tests := []struct {
		n        uint
		expected uint64
	}{
		{n: 0, expected: 0},
		{n: 1, expected: 1},
		{n: 2, expected: 1},
		{n: 10, expected: 55},
		{n: 93, expected: 12200160415121876738},
		{n: 94, expected: math.MaxUint64},
		{n: 500, expected: math.MaxUint64},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, mathx.Fibonacci(tt.n), "F(%d)", tt.n)
	}
}

func TestFactorial(t *testing.T) {
	t.Parallel()

	v, err := mathx.Factorial(10)
	require.NoError(t, err)
	assert.Equal(t, uint64(3628800), v)

	v, err = mathx.Factorial(0)
	require.NoError(t, err)
	assert.Equal(t, uint64(1), v)

	v, err = mathx.Factorial(20)
	require.NoError(t, err)
	assert.Equal(t, uint64(2432902008176640000), v)

	_, err = mathx.Factorial(21)
	assert.ErrorIs(t, err, mathx.ErrOverflow)
	assert.ErrorIs(t, err, fault.ErrOverflow)
}

func TestGCDAndLCM(t *testing.T) {
	t.Parallel()

	assert.Equal(t, int64(3), mathx.GCD(9, 15))
	assert.Equal(t, int64(45), mathx.LCM(9, 15))
	assert.Equal(t, int64(3), mathx.GCD(-9, 15))
	assert.Equal(t, int64(45), mathx.LCM(-9, -15))
	assert.Equal(t, int64(7), mathx.GCD(0, 7))
	assert.Equal(t, int64(0), mathx.GCD(0, 0))
	assert.Equal(t, int64(0), mathx.LCM(0, 5))
}

func TestPrimesAndDivisors(t *testing.T) {
	t.Parallel()

	for _, p := range []uint64{2, 3, 5, 7919, 2147483647, 18446744073709551557} {
		assert.True(t, mathx.IsPrime(p), "%d", p)
	}
	for _, n := range []uint64{0, 1, 4, 9, 7917, 18446744073709551615} {
		assert.False(t, mathx.IsPrime(n), "%d", n)
	}

	for _, n := range []uint64{6, 28, 496, 8128, 33550336} {
		assert.True(t, mathx.IsPerfect(n), "%d", n)
	}
	for _, n := range []uint64{0, 1, 12, 8129} {
		assert.False(t, mathx.IsPerfect(n), "%d", n)
	}

	assert.Equal(t, []uint64{2, 2, 3, 5}, mathx.Factorize(60))
	assert.Equal(t, []uint64{7919}, mathx.Factorize(7919))
	assert.Equal(t, []uint64{2, 2, 2, 2, 2, 2, 2, 2, 2, 2}, mathx.Factorize(1024))
	assert.Empty(t, mathx.Factorize(1))
}

func TestFactorizeProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.Rng.Seed(8128)

	properties := gopter.NewProperties(parameters)

	properties.Property("factors multiply back and are prime", prop.ForAll(
		func(n uint32) bool {
			factors := mathx.Factorize(uint64(n))
			product := uint64(1)
			prev := uint64(0)
			for _, f := range factors {
				if f < prev || !mathx.IsPrime(f) {
					return false
				}
				prev = f
				product *= f
			}
			if n < 2 {
				return len(factors) == 0
			}
			return product == uint64(n)
		},
		gen.UInt32(),
	))

	properties.Property("gcd divides both and lcm is a multiple", prop.ForAll(
		func(a, b int32) bool {
			g := mathx.GCD(int64(a), int64(b))
			if g == 0 {
				return a == 0 && b == 0
			}
			l := mathx.LCM(int64(a), int64(b))
			return int64(a)%g == 0 && int64(b)%g == 0 && (l == 0 || l%int64(a) == 0)
		},
		gen.Int32(),
		gen.Int32(),
	))

	properties.TestingRun(t)
}

func BenchmarkIsPerfect(b *testing.B) {
	for b.Loop() {
		mathx.IsPerfect(33550336)
	}
}
