package mathx

import (
	"math"
	"math/big"
	"math/bits"
)

// maxFactorial is the largest n with n! below 2^64.
const maxFactorial = 20

// Factorial returns n!. Values of n above 20 overflow.
func Factorial(n uint) (uint64, error) {
	if n > maxFactorial {
		return 0, ErrOverflow
	}
	v := uint64(1)
	for i := uint64(2); i <= uint64(n); i++ {
		v *= i
	}
	return v, nil
}

// Fibonacci returns F(n) with F(0) = 0 and F(1) = 1. Results past F(93)
// saturate at math.MaxUint64.
func Fibonacci(n uint) uint64 {
	var a, b uint64 = 0, 1
	for range n {
		next, carry := bits.Add64(a, b, 0)
		if carry != 0 {
			next = math.MaxUint64
		}
		a, b = b, next
	}
	return a
}

// GCD returns the greatest common divisor of |a| and |b|. GCD(0, 0) is 0.
func GCD(a, b int64) int64 {
	x, y := absUint(a), absUint(b)
	for y != 0 {
		x, y = y, x%y
	}
	return int64(x)
}

// LCM returns the least common multiple of |a| and |b|, or 0 when either
// is 0. The result wraps if it exceeds int64.
func LCM(a, b int64) int64 {
	if a == 0 || b == 0 {
		return 0
	}
	g := uint64(GCD(a, b))
	return int64(absUint(a) / g * absUint(b))
}

// IsPrime reports whether n is prime.
func IsPrime(n uint64) bool {
	// Baillie-PSW is exact below 2^64.
	return new(big.Int).SetUint64(n).ProbablyPrime(0)
}

// IsPerfect reports whether n equals the sum of its proper divisors.
func IsPerfect(n uint64) bool {
	if n < 2 {
		return false
	}
	sum := uint64(1)
	for d := uint64(2); d <= n/d; d++ {
		if n%d != 0 {
			continue
		}
		sum += d
		if q := n / d; q != d {
			sum += q
		}
		if sum > n {
			return false
		}
	}
	return sum == n
}

// Factorize returns the prime factors of n in ascending order, repeated by
// multiplicity. Values below 2 have no factors.
func Factorize(n uint64) []uint64 {
	var out []uint64
	if n < 2 {
		return out
	}
	for n%2 == 0 {
		out = append(out, 2)
		n /= 2
	}
	for d := uint64(3); d <= n/d; d += 2 {
		for n%d == 0 {
			out = append(out, d)
			n /= d
		}
	}
	if n > 1 {
		out = append(out, n)
	}
	return out
}

func absUint(v int64) uint64 {
	if v < 0 {
		return uint64(-v)
	}
	return uint64(v)
}
