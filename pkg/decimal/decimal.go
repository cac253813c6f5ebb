package decimal

import (
	"math/big"
	"strconv"
	"strings"
)

// MaxScale is the largest number of fractional digits a Decimal can hold.
const MaxScale = 28

var (
	ten      = big.NewInt(10)
	maxCoeff = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 96), big.NewInt(1))
)

// Decimal is a signed 96-bit coefficient with a base-10 scale.
type Decimal struct {
	lo, mid, hi uint32
	scale       uint8
	neg         bool
}

// Zero is the decimal 0.
var Zero = Decimal{}

// FromInt64 converts v without loss.
func FromInt64(v int64) Decimal {
	c := big.NewInt(v)
	neg := c.Sign() < 0
	return fromBig(c.Abs(c), 0, neg)
}

// Parse reads s using the invariant culture.
func Parse(s string) (Decimal, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Zero, ErrEmpty
	}

	neg := false
	switch s[0] {
	case '-':
		neg = true
		s = s[1:]
	case '+':
		s = s[1:]
	}

	intPart, fracPart, hasDot := strings.Cut(s, ".")
	if intPart == "" && fracPart == "" {
		return Zero, ErrInvalidFormat
	}
	if hasDot && strings.Contains(fracPart, ".") {
		return Zero, ErrInvalidFormat
	}
	for _, part := range []string{intPart, fracPart} {
		for i := 0; i < len(part); i++ {
			if part[i] < '0' || part[i] > '9' {
				return Zero, ErrInvalidFormat
			}
		}
	}

	coef, ok := new(big.Int).SetString(intPart+fracPart, 10)
	if !ok {
		return Zero, ErrInvalidFormat
	}
	scale := len(fracPart)

	for scale > MaxScale || (scale > 0 && coef.Cmp(maxCoeff) > 0) {
		coef = roundDiv10(coef)
		scale--
	}
	if coef.Cmp(maxCoeff) > 0 {
		return Zero, ErrOverflow
	}
	return fromBig(coef, uint8(scale), neg), nil
}

// MustParse is like Parse but panics on error.
func MustParse(s string) Decimal {
	d, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return d
}

// Scale returns the number of fractional digits.
func (d Decimal) Scale() int {
	return int(d.scale)
}

// Sign returns -1, 0 or +1.
func (d Decimal) Sign() int {
	switch {
	case d.lo == 0 && d.mid == 0 && d.hi == 0:
		return 0
	case d.neg:
		return -1
	default:
		return 1
	}
}

// Neg returns -d.
func (d Decimal) Neg() Decimal {
	d.neg = !d.neg
	return d
}

// Cmp compares d and o numerically, ignoring trailing zeros in the scale.
func (d Decimal) Cmp(o Decimal) int {
	a, b := d.signed(), o.signed()
	switch {
	case d.scale < o.scale:
		a.Mul(a, pow10(int(o.scale-d.scale)))
	case o.scale < d.scale:
		b.Mul(b, pow10(int(d.scale-o.scale)))
	}
	return a.Cmp(b)
}

// Equal reports numeric equality, so 1.0 equals 1.
func (d Decimal) Equal(o Decimal) bool {
	return d.Cmp(o) == 0
}

// Float64 returns the nearest float64.
func (d Decimal) Float64() float64 {
	f, _ := strconv.ParseFloat(d.String(), 64)
	return f
}

func (d Decimal) String() string {
	digits := d.coef().String()
	if d.scale > 0 {
		if pad := int(d.scale) + 1 - len(digits); pad > 0 {
			digits = strings.Repeat("0", pad) + digits
		}
		cut := len(digits) - int(d.scale)
		digits = digits[:cut] + "." + digits[cut:]
	}
	if d.neg && d.Sign() != 0 {
		return "-" + digits
	}
	return digits
}

func (d Decimal) coef() *big.Int {
	c := new(big.Int).SetUint64(uint64(d.hi))
	c.Lsh(c, 32).Or(c, new(big.Int).SetUint64(uint64(d.mid)))
	c.Lsh(c, 32).Or(c, new(big.Int).SetUint64(uint64(d.lo)))
	return c
}

func (d Decimal) signed() *big.Int {
	c := d.coef()
	if d.neg {
		c.Neg(c)
	}
	return c
}

func fromBig(c *big.Int, scale uint8, neg bool) Decimal {
	var words [3]uint32
	mask := big.NewInt(0xFFFFFFFF)
	tmp := new(big.Int).Set(c)
	for i := range words {
		words[i] = uint32(new(big.Int).And(tmp, mask).Uint64())
		tmp.Rsh(tmp, 32)
	}
	return Decimal{lo: words[0], mid: words[1], hi: words[2], scale: scale, neg: neg}
}

func pow10(n int) *big.Int {
	return new(big.Int).Exp(ten, big.NewInt(int64(n)), nil)
}

// roundDiv10 divides c by ten rounding half away from zero. c is non-negative.
func roundDiv10(c *big.Int) *big.Int {
	q, r := new(big.Int).QuoRem(c, ten, new(big.Int))
	if r.Int64() >= 5 {
		q.Add(q, big.NewInt(1))
	}
	return q
}
