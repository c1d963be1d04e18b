// Package poly: the arithmetic operators. Every operator returns a new
// Polynomial; receivers are never mutated.
package poly

import (
	"github.com/katalvlaran/polyalg/monomial"
)

// Add returns p + q in canonical form: term lists concatenated, then
// simplified. Commutative and associative by construction.
func (p Polynomial) Add(q Polynomial) Polynomial {
	merged := make([]monomial.Monomial, 0, len(p.monos)+len(q.monos))
	merged = append(merged, p.monos...)
	merged = append(merged, q.monos...)

	return fromMonomials(merged)
}

// Neg returns -p: every coefficient multiplied by -1.
func (p Polynomial) Neg() Polynomial {
	monos := make([]monomial.Monomial, len(p.monos))
	for i, m := range p.monos {
		monos[i] = m.Neg()
	}

	return fromMonomials(monos)
}

// Sub returns p - q, defined as p + (-q).
func (p Polynomial) Sub(q Polynomial) Polynomial { return p.Add(q.Neg()) }

// Mul returns p * q: the distributive law made explicit. Every monomial
// of p multiplies every monomial of q (coefficients multiplied, powers
// added per letter), and the cross product is simplified. O(n·m) term
// products.
func (p Polynomial) Mul(q Polynomial) Polynomial {
	products := make([]monomial.Monomial, 0, len(p.monos)*len(q.monos))
	for _, a := range p.monos {
		for _, b := range q.monos {
			products = append(products, a.Mul(b))
		}
	}

	return fromMonomials(products)
}

// MulMonomial returns p scaled by the single term m.
func (p Polynomial) MulMonomial(m monomial.Monomial) Polynomial {
	monos := make([]monomial.Monomial, len(p.monos))
	for i, a := range p.monos {
		monos[i] = a.Mul(m)
	}

	return fromMonomials(monos)
}

// Pow returns p raised to the non-negative integer n: the identity for
// n = 0, the closed-form power for a single-term polynomial, repeated
// multiplication otherwise. A negative n returns ErrNegativePower —
// negative powers live in a Fraction (Inverse, Fraction.Pow).
func (p Polynomial) Pow(n int) (Polynomial, error) {
	switch {
	case n < 0:
		return Polynomial{}, ErrNegativePower
	case n == 0:
		return One(), nil
	}

	base := p.Simplify()
	if len(base.monos) == 1 {
		return fromMonomials([]monomial.Monomial{base.monos[0].Pow(n)}), nil
	}

	out := base
	for i := 1; i < n; i++ {
		out = out.Mul(base)
	}

	return out, nil
}

// Inverse returns the fraction 1/p. Returns ErrZeroDenominator when p is
// the zero polynomial.
func (p Polynomial) Inverse() (Fraction, error) {
	return NewFraction(One(), p)
}

// Equal reports whether p and q denote the same polynomial: their term
// multisets match after discarding zero-coefficient terms, independent of
// order. A polynomial of only zero terms equals Zero().
func (p Polynomial) Equal(q Polynomial) bool {
	a := p.nonZeroTerms()
	b := q.nonZeroTerms()
	if len(a) != len(b) {
		return false
	}

	matched := make([]bool, len(b))
outer:
	for _, m := range a {
		for i, o := range b {
			if matched[i] {
				continue
			}
			if monomial.AreSimilar(m, o) && m.Coeff.Equal(o.Coeff) {
				matched[i] = true

				continue outer
			}
		}

		return false
	}

	return true
}

// nonZeroTerms returns the monomials with a non-zero coefficient.
func (p Polynomial) nonZeroTerms() []monomial.Monomial {
	out := make([]monomial.Monomial, 0, len(p.monos))
	for _, m := range p.monos {
		if !m.IsZero() {
			out = append(out, m)
		}
	}

	return out
}

// Filter returns the polynomial without its zero-coefficient terms.
// Canonical polynomials have none; Filter matters for term lists built
// WithoutAutoSimplify.
func (p Polynomial) Filter() Polynomial {
	q := Polynomial{monos: p.nonZeroTerms(), noAutoSimplify: p.noAutoSimplify}
	q.sortCanonical()

	return q
}
