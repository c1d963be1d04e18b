// Package poly: the AlgebraicFraction type — an unevaluated ratio of two
// polynomials, produced when exact division is impossible.
package poly

import (
	"strings"

	"github.com/katalvlaran/polyalg/monomial"
	"github.com/katalvlaran/polyalg/numeric"
)

// Fraction is an unevaluated polynomial ratio num/den.
// Invariant: the denominator is never the zero polynomial.
// The zero value is invalid; build Fractions through NewFraction, Div or
// Inverse.
type Fraction struct {
	num, den Polynomial
}

// NewFraction builds the symbolic fraction num/den. Returns
// ErrZeroDenominator when den is the zero polynomial.
func NewFraction(num, den Polynomial) (Fraction, error) {
	if den.IsZero() {
		return Fraction{}, ErrZeroDenominator
	}

	return Fraction{num: num.Simplify(), den: den.Simplify()}, nil
}

// Num returns the numerator.
func (f Fraction) Num() Polynomial { return f.num }

// Den returns the denominator.
func (f Fraction) Den() Polynomial { return f.den }

// Terms returns the numerator and denominator together.
func (f Fraction) Terms() (num, den Polynomial) { return f.num, f.den }

// IsPolynomial reports whether the fraction reduces to a plain
// polynomial: the denominator is a nonzero constant.
func (f Fraction) IsPolynomial() bool { return f.den.IsNum() }

// Polynomial returns the reduced polynomial and true when IsPolynomial,
// (Zero, false) otherwise.
func (f Fraction) Polynomial() (Polynomial, bool) {
	if !f.IsPolynomial() {
		return Zero(), false
	}
	c, _ := f.den.RightHandSide()
	inv, err := numeric.Int(1).Div(c)
	if err != nil {
		return Zero(), false
	}

	return f.num.MulMonomial(monomial.Constant(inv)), true
}

// Invert returns the fraction with numerator and denominator swapped.
// Returns ErrZeroDenominator when the numerator is zero.
func (f Fraction) Invert() (Fraction, error) {
	return NewFraction(f.den, f.num)
}

// Neg returns -f: the numerator negated.
func (f Fraction) Neg() Fraction {
	return Fraction{num: f.num.Neg(), den: f.den}
}

// Add returns f + g over the common denominator:
// a/b + c/d = (a·d + c·b) / (b·d), simplified.
func (f Fraction) Add(g Fraction) Fraction {
	num := f.num.Mul(g.den).Add(g.num.Mul(f.den))
	den := f.den.Mul(g.den)

	return Fraction{num: num, den: den}.Simplify()
}

// Sub returns f - g.
func (f Fraction) Sub(g Fraction) Fraction { return f.Add(g.Neg()) }

// Mul returns f * g: numerators and denominators multiplied pairwise.
func (f Fraction) Mul(g Fraction) Fraction {
	return Fraction{num: f.num.Mul(g.num), den: f.den.Mul(g.den)}.Simplify()
}

// Div returns f / g, defined as f * (1/g). Returns ErrZeroDenominator
// when g's numerator is zero.
func (f Fraction) Div(g Fraction) (Fraction, error) {
	inv, err := g.Invert()
	if err != nil {
		return Fraction{}, err
	}

	return f.Mul(inv), nil
}

// Pow raises the fraction to any integer power; negative powers invert
// first. Returns ErrZeroDenominator when a negative power meets a zero
// numerator.
func (f Fraction) Pow(n int) (Fraction, error) {
	if n < 0 {
		inv, err := f.Invert()
		if err != nil {
			return Fraction{}, err
		}

		return inv.Pow(-n)
	}
	num, _ := f.num.Pow(n)
	den, _ := f.den.Pow(n)

	return Fraction{num: num, den: den}, nil
}

// Simplify divides numerator and denominator by their polynomial GCD.
// When the GCD cannot be factored out cleanly the fraction is returned
// unchanged; Simplify never fails.
func (f Fraction) Simplify() Fraction {
	g, err := GCD(f.num, f.den)
	if err != nil || g.IsZero() || g.Equal(One()) {
		return f
	}
	num, rn, err := f.num.DivMod(g)
	if err != nil || !rn.IsZero() {
		return f
	}
	den, rd, err := f.den.DivMod(g)
	if err != nil || !rd.IsZero() {
		return f
	}

	return Fraction{num: num, den: den}
}

// Equal reports whether f and g denote the same rational expression,
// compared by cross-multiplication: a/b == c/d iff a·d == c·b.
func (f Fraction) Equal(g Fraction) bool {
	return f.num.Mul(g.den).Equal(g.num.Mul(f.den))
}

// String renders the fraction on a single line: "(x + 1)/(x + 2)".
// A denominator-one fraction renders as its numerator.
func (f Fraction) String() string {
	if f.den.Equal(One()) {
		return f.num.String()
	}

	return "(" + f.num.String() + ")/(" + f.den.String() + ")"
}

// Pretty renders the fraction on three lines with the numerator and
// denominator centered over a rule, for terminal display:
//
//	  x + 1
//	―――――――――
//	x^2 - 4
func (f Fraction) Pretty() string {
	a, b := f.num.String(), f.den.String()
	width := len(a)
	if len(b) > width {
		width = len(b)
	}

	return strings.Join([]string{
		center(a, width),
		strings.Repeat("―", width),
		center(b, width),
	}, "\n")
}

// center pads s with spaces to the given width.
func center(s string, width int) string {
	gap := width - len(s)
	left := gap / 2

	return strings.Repeat(" ", left) + s + strings.Repeat(" ", gap-left)
}
