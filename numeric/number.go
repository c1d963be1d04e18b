// Package numeric: the Number value type and its arithmetic.
package numeric

import (
	"errors"
	"math"
	"math/big"
	"strconv"
)

// ErrDivisionByZero indicates a division with a zero divisor.
var ErrDivisionByZero = errors.New("numeric: division by zero")

// Kind identifies which level of the numeric tower a Number occupies.
type Kind int

const (
	// KindInt is an exact 64-bit integer.
	KindInt Kind = iota

	// KindRat is an exact rational (math/big.Rat).
	KindRat

	// KindFloat is an IEEE-754 double.
	KindFloat
)

// Number is an immutable exact-or-float numeric value.
// The zero value is the integer 0.
type Number struct {
	kind Kind
	i    int64
	r    *big.Rat // non-nil iff kind == KindRat
	f    float64
}

// Int returns the Number holding the integer n.
func Int(n int64) Number { return Number{kind: KindInt, i: n} }

// Float returns the Number holding the float f.
func Float(f float64) Number { return Number{kind: KindFloat, f: f} }

// Rat returns the exact rational num/den, normalized: a whole-valued
// rational collapses to an integer, so Rat(4, 2) == Int(2).
// Rat panics if den == 0; a zero denominator is a programmer error here,
// fallible division goes through Div.
func Rat(num, den int64) Number {
	if den == 0 {
		panic("numeric: Rat with zero denominator")
	}

	return normalizeRat(big.NewRat(num, den))
}

// FromRat returns the Number holding a copy of r, collapsed to an integer
// when r is whole-valued.
func FromRat(r *big.Rat) Number {
	return normalizeRat(new(big.Rat).Set(r))
}

// normalizeRat demotes whole-valued rationals to KindInt.
// Ownership of r transfers to the returned Number.
func normalizeRat(r *big.Rat) Number {
	if r.IsInt() && r.Num().IsInt64() {
		return Int(r.Num().Int64())
	}

	return Number{kind: KindRat, r: r}
}

// Kind reports the level of the tower this Number occupies.
func (n Number) Kind() Kind { return n.kind }

// rat returns the value as a *big.Rat. Only valid for KindInt and KindRat.
// The caller must not mutate the result when kind == KindRat.
func (n Number) rat() *big.Rat {
	if n.kind == KindInt {
		return new(big.Rat).SetInt64(n.i)
	}

	return n.r
}

// Float64 returns the value as a float64 (exact kinds are converted).
func (n Number) Float64() float64 {
	switch n.kind {
	case KindInt:
		return float64(n.i)
	case KindRat:
		f, _ := n.r.Float64()
		return f
	default:
		return n.f
	}
}

// Int64 returns the integer value and true when the Number is a whole
// number representable in an int64, (0, false) otherwise.
func (n Number) Int64() (int64, bool) {
	switch n.kind {
	case KindInt:
		return n.i, true
	case KindRat:
		// normalized rationals are never whole
		return 0, false
	default:
		if n.f == math.Trunc(n.f) && !math.IsInf(n.f, 0) {
			return int64(n.f), true
		}
		return 0, false
	}
}

// Rational returns a copy of the value as a *big.Rat and true for exact
// kinds, (nil, false) for floats.
func (n Number) Rational() (*big.Rat, bool) {
	if n.kind == KindFloat {
		return nil, false
	}

	return new(big.Rat).Set(n.rat()), true
}

// IsZero reports whether the value is exactly zero.
func (n Number) IsZero() bool {
	switch n.kind {
	case KindInt:
		return n.i == 0
	case KindRat:
		return n.r.Sign() == 0
	default:
		return n.f == 0
	}
}

// IsOne reports whether the value is exactly one.
func (n Number) IsOne() bool {
	switch n.kind {
	case KindInt:
		return n.i == 1
	case KindRat:
		return false // normalized rationals are never whole
	default:
		return n.f == 1
	}
}

// IsInt reports whether the value is a whole number (of any kind).
func (n Number) IsInt() bool {
	_, ok := n.Int64()

	return ok
}

// Sign returns -1, 0 or +1.
func (n Number) Sign() int {
	switch n.kind {
	case KindInt:
		switch {
		case n.i < 0:
			return -1
		case n.i > 0:
			return 1
		default:
			return 0
		}
	case KindRat:
		return n.r.Sign()
	default:
		switch {
		case n.f < 0:
			return -1
		case n.f > 0:
			return 1
		default:
			return 0
		}
	}
}

// promote lifts a and b onto a common kind: the more general of the two.
func promote(a, b Number) Kind {
	if a.kind > b.kind {
		return a.kind
	}

	return b.kind
}

// Add returns a + b, promoting towards the more general kind. Integer
// sums that overflow int64 promote to the rational kind instead of
// wrapping.
func (n Number) Add(m Number) Number {
	switch promote(n, m) {
	case KindInt:
		if s, ok := addInt64(n.i, m.i); ok {
			return Int(s)
		}

		return normalizeRat(new(big.Rat).Add(n.rat(), m.rat()))
	case KindRat:
		return normalizeRat(new(big.Rat).Add(n.rat(), m.rat()))
	default:
		return Float(n.Float64() + m.Float64())
	}
}

// Sub returns a - b.
func (n Number) Sub(m Number) Number { return n.Add(m.Neg()) }

// Neg returns -n.
func (n Number) Neg() Number {
	switch n.kind {
	case KindInt:
		if n.i == math.MinInt64 {
			return normalizeRat(new(big.Rat).Neg(n.rat()))
		}

		return Int(-n.i)
	case KindRat:
		return Number{kind: KindRat, r: new(big.Rat).Neg(n.r)}
	default:
		return Float(-n.f)
	}
}

// Mul returns a * b, promoting towards the more general kind. Integer
// products that overflow int64 promote to the rational kind instead of
// wrapping.
func (n Number) Mul(m Number) Number {
	switch promote(n, m) {
	case KindInt:
		if p, ok := mulInt64(n.i, m.i); ok {
			return Int(p)
		}

		return normalizeRat(new(big.Rat).Mul(n.rat(), m.rat()))
	case KindRat:
		return normalizeRat(new(big.Rat).Mul(n.rat(), m.rat()))
	default:
		return Float(n.Float64() * m.Float64())
	}
}

// Div returns a / b exactly: two exact operands yield an exact quotient
// (an integer when divisible, a rational otherwise); a float operand yields
// a float. Div returns ErrDivisionByZero when b is zero.
func (n Number) Div(m Number) (Number, error) {
	if m.IsZero() {
		return Number{}, ErrDivisionByZero
	}
	if promote(n, m) == KindFloat {
		return Float(n.Float64() / m.Float64()), nil
	}

	return normalizeRat(new(big.Rat).Quo(n.rat(), m.rat())), nil
}

// Cmp compares a and b numerically across kinds: -1 if a < b, 0 if equal,
// +1 if a > b.
func (n Number) Cmp(m Number) int {
	switch promote(n, m) {
	case KindInt:
		switch {
		case n.i < m.i:
			return -1
		case n.i > m.i:
			return 1
		default:
			return 0
		}
	case KindRat:
		return n.rat().Cmp(m.rat())
	default:
		a, b := n.Float64(), m.Float64()
		switch {
		case a < b:
			return -1
		case a > b:
			return 1
		default:
			return 0
		}
	}
}

// Equal reports numeric equality across kinds.
func (n Number) Equal(m Number) bool { return n.Cmp(m) == 0 }

// Abs returns the absolute value.
func (n Number) Abs() Number {
	if n.Sign() < 0 {
		return n.Neg()
	}

	return n
}

// String renders the value: integers as "3", rationals as "1/2",
// floats with the shortest round-trip representation.
func (n Number) String() string {
	switch n.kind {
	case KindInt:
		return strconv.FormatInt(n.i, 10)
	case KindRat:
		return n.r.RatString()
	default:
		return strconv.FormatFloat(n.f, 'g', -1, 64)
	}
}

// GCDInt returns the non-negative greatest common divisor of a and b.
// GCDInt(0, 0) is 0.
func GCDInt(a, b int64) int64 {
	if a < 0 {
		a = -a
	}
	if b < 0 {
		b = -b
	}
	for b != 0 {
		a, b = b, a%b
	}

	return a
}

// LCMInt returns the non-negative least common multiple of a and b.
// LCMInt with a zero operand is 0.
func LCMInt(a, b int64) int64 {
	if a == 0 || b == 0 {
		return 0
	}
	l := a / GCDInt(a, b) * b
	if l < 0 {
		l = -l
	}

	return l
}

// addInt64 returns a + b and whether the sum fits in an int64.
func addInt64(a, b int64) (int64, bool) {
	s := a + b
	if (a > 0 && b > 0 && s < 0) || (a < 0 && b < 0 && s >= 0) {
		return 0, false
	}

	return s, true
}

// mulInt64 returns a * b and whether the product fits in an int64.
func mulInt64(a, b int64) (int64, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	p := a * b
	if p/b != a || (a == math.MinInt64 && b == -1) || (b == math.MinInt64 && a == -1) {
		return 0, false
	}

	return p, true
}
