// Package monomial: the Monomial term type and its arithmetic.
package monomial

import (
	"github.com/katalvlaran/polyalg/numeric"
)

// Monomial is a single polynomial term: coefficient × literal part.
// Monomials are values; no method mutates its receiver.
type Monomial struct {
	// Coeff is the term's numeric coefficient.
	Coeff numeric.Number

	// Exps is the term's literal part (letter → power).
	Exps Exponents
}

// New builds a Monomial from a coefficient and a letter→power map.
// Returns ErrBadLetter for invalid variable names.
func New(coeff numeric.Number, powers map[string]int) (Monomial, error) {
	exps, err := NewExponents(powers)
	if err != nil {
		return Monomial{}, err
	}

	return Monomial{Coeff: coeff, Exps: exps}, nil
}

// Must is New for literals known to be valid; it panics on ErrBadLetter.
func Must(coeff numeric.Number, powers map[string]int) Monomial {
	m, err := New(coeff, powers)
	if err != nil {
		panic(err)
	}

	return m
}

// Constant returns the constant term with the given coefficient.
func Constant(coeff numeric.Number) Monomial { return Monomial{Coeff: coeff} }

// One returns the multiplicative identity term, coefficient 1.
func One() Monomial { return Constant(numeric.Int(1)) }

// AreSimilar reports whether a and b have the same literal part and hence
// merge under addition.
func AreSimilar(a, b Monomial) bool { return a.Exps.Equal(b.Exps) }

// Degree returns the sum of the term's powers; 0 for a constant.
func (m Monomial) Degree() int { return m.Exps.Degree() }

// IsConstant reports whether the term has no letters.
func (m Monomial) IsConstant() bool { return m.Exps.IsEmpty() }

// IsZero reports whether the coefficient is exactly zero.
func (m Monomial) IsZero() bool { return m.Coeff.IsZero() }

// Neg returns the term with the coefficient negated.
func (m Monomial) Neg() Monomial {
	return Monomial{Coeff: m.Coeff.Neg(), Exps: m.Exps}
}

// Mul returns the term product: coefficients multiplied, powers added.
func (m Monomial) Mul(o Monomial) Monomial {
	return Monomial{Coeff: m.Coeff.Mul(o.Coeff), Exps: m.Exps.Mul(o.Exps)}
}

// Pow returns the term raised to the non-negative power n in closed form:
// coefficient exponentiated, powers scaled. Pow(0) is One().
func (m Monomial) Pow(n int) Monomial {
	c := numeric.Int(1)
	for i := 0; i < n; i++ {
		c = c.Mul(m.Coeff)
	}

	return Monomial{Coeff: c, Exps: m.Exps.Pow(n)}
}

// Divide returns the term quotient m/o: coefficients divided exactly
// (yielding a rational when not integral), o's powers subtracted from m's.
// Errors:
//   - numeric.ErrDivisionByZero — o's coefficient is zero.
//   - ErrNotDivisible — o carries a letter or exponent m cannot supply.
func (m Monomial) Divide(o Monomial) (Monomial, error) {
	coeff, err := m.Coeff.Div(o.Coeff)
	if err != nil {
		return Monomial{}, err
	}
	exps, err := m.Exps.Div(o.Exps)
	if err != nil {
		return Monomial{}, err
	}

	return Monomial{Coeff: coeff, Exps: exps}, nil
}

// String renders the term with its sign: "3x^2y", "-x", "1/2a^3", "4".
// A unit coefficient is omitted unless the term is constant.
func (m Monomial) String() string {
	lit := m.Exps.String()
	if lit == "" {
		return m.Coeff.String()
	}
	if m.Coeff.IsOne() {
		return lit
	}
	if m.Coeff.Equal(numeric.Int(-1)) {
		return "-" + lit
	}

	return m.Coeff.String() + lit
}
