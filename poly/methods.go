// Package poly: structural queries over canonical polynomials.
package poly

import (
	"math"
	"sort"

	"github.com/katalvlaran/polyalg/monomial"
	"github.com/katalvlaran/polyalg/numeric"
)

// Len returns the number of monomials with a non-zero coefficient.
func (p Polynomial) Len() int {
	var n int
	for _, m := range p.monos {
		if !m.IsZero() {
			n++
		}
	}

	return n
}

// Monomials returns a copy of the monomial sequence in canonical order,
// the stable iteration order renderers rely on.
func (p Polynomial) Monomials() []monomial.Monomial {
	return append([]monomial.Monomial(nil), p.monos...)
}

// Terms returns the polynomial as raw (coefficient, exponent-map) pairs,
// the same shape the constructor accepts.
func (p Polynomial) Terms() []Term {
	out := make([]Term, len(p.monos))
	for i, m := range p.monos {
		out[i] = Term{Coeff: m.Coeff, Powers: m.Exps.Map()}
	}

	return out
}

// Coefficients returns the coefficients in canonical order.
func (p Polynomial) Coefficients() []numeric.Number {
	out := make([]numeric.Number, len(p.monos))
	for i, m := range p.monos {
		out[i] = m.Coeff
	}

	return out
}

// IsZero reports whether the polynomial is the zero polynomial: no
// monomials, or only zero coefficients.
func (p Polynomial) IsZero() bool { return p.Len() == 0 }

// MinDegree is the Degree result for the zero polynomial, a stand-in for
// "minus infinity": below every representable degree.
const MinDegree = math.MinInt

// Degree returns the maximum monomial degree (sum of powers), MinDegree
// for the zero polynomial.
func (p Polynomial) Degree() int {
	if p.IsZero() {
		return MinDegree
	}
	max := MinDegree
	for _, m := range p.monos {
		if m.IsZero() {
			continue
		}
		if d := m.Degree(); d > max {
			max = d
		}
	}

	return max
}

// Letters returns every letter appearing in the polynomial, ascending.
func (p Polynomial) Letters() []string {
	seen := make(map[string]bool)
	var out []string
	for _, m := range p.monos {
		for _, letter := range m.Exps.Letters() {
			if !seen[letter] {
				seen[letter] = true
				out = append(out, letter)
			}
		}
	}
	sort.Strings(out)

	return out
}

// JointLetters returns the letters appearing in every monomial, ascending.
func (p Polynomial) JointLetters() []string {
	if len(p.monos) == 0 {
		return nil
	}
	if len(p.monos) == 1 {
		return p.Letters()
	}

	var out []string
	for _, letter := range p.monos[0].Exps.Letters() {
		inAll := true
		for _, m := range p.monos[1:] {
			if !m.Exps.Has(letter) {
				inAll = false

				break
			}
		}
		if inAll {
			out = append(out, letter)
		}
	}

	return out
}

// hasLetter reports whether letter appears anywhere in the polynomial.
func (p Polynomial) hasLetter(letter string) bool {
	for _, m := range p.monos {
		if m.Exps.Has(letter) {
			return true
		}
	}

	return false
}

// RawPowers returns letter's exponent in each monomial, canonical order,
// 0 where the letter is absent. Length equals the number of monomials.
func (p Polynomial) RawPowers(letter string) []int {
	out := make([]int, len(p.monos))
	for i, m := range p.monos {
		out[i] = m.Exps.Get(letter)
	}

	return out
}

// Powers is RawPowers with interior zeros removed; the trailing entry is
// kept so a constant term still reads as power 0.
func (p Polynomial) Powers(letter string) []int {
	raw := p.RawPowers(letter)
	if len(raw) == 0 {
		return nil
	}
	out := make([]int, 0, len(raw))
	for _, power := range raw[:len(raw)-1] {
		if power != 0 {
			out = append(out, power)
		}
	}

	return append(out, raw[len(raw)-1])
}

// MaxPower returns the maximum exponent of letter. Returns
// ErrUnknownLetter when the letter appears nowhere: absent is not 0 here.
func (p Polynomial) MaxPower(letter string) (int, error) {
	if !p.hasLetter(letter) {
		return 0, ErrUnknownLetter
	}

	return p.maxPowerOf(letter), nil
}

// MinPower returns the minimum exponent of letter across monomials
// (0 when any monomial lacks the letter). Returns ErrUnknownLetter when
// the letter appears nowhere.
func (p Polynomial) MinPower(letter string) (int, error) {
	if !p.hasLetter(letter) {
		return 0, ErrUnknownLetter
	}
	min := p.monos[0].Exps.Get(letter)
	for _, m := range p.monos[1:] {
		if power := m.Exps.Get(letter); power < min {
			min = power
		}
	}

	return min, nil
}

// RightHandSide returns the trailing constant term's coefficient, ok
// false when the polynomial has no constant term.
func (p Polynomial) RightHandSide() (numeric.Number, bool) {
	if len(p.monos) == 0 {
		return numeric.Number{}, false
	}
	last := p.monos[len(p.monos)-1]
	if !last.IsConstant() {
		return numeric.Number{}, false
	}

	return last.Coeff, true
}

// Get returns the coefficient of letter^power, 0 when no such term
// exists. An empty letter selects the polynomial's first letter; power 0
// selects the constant term.
func (p Polynomial) Get(power int, letter string) numeric.Number {
	if letter == "" {
		letters := p.Letters()
		if len(letters) > 0 {
			letter = letters[0]
		}
	}
	if power == 0 {
		if rhs, ok := p.RightHandSide(); ok {
			return rhs
		}

		return numeric.Int(0)
	}
	for _, m := range p.monos {
		if m.Exps.Get(letter) == power {
			return m.Coeff
		}
	}

	return numeric.Int(0)
}

// IsNum reports whether the polynomial represents a plain number: the
// zero polynomial, or a single constant term.
func (p Polynomial) IsNum() bool {
	if p.IsZero() {
		return true
	}
	_, ok := p.RightHandSide()

	return ok && p.Len() == 1
}

// IsLinear reports whether the total degree is at most 1.
func (p Polynomial) IsLinear() bool { return p.Degree() <= 1 }

// IsComplete reports whether every power of letter from its maximum down
// to 0 has a term. With an empty letter it checks all letters.
func (p Polynomial) IsComplete(letter string) bool {
	if letter == "" {
		for _, l := range p.Letters() {
			if !p.IsComplete(l) {
				return false
			}
		}

		return true
	}
	max, err := p.MaxPower(letter)
	if err != nil {
		return false
	}
	if max == 1 {
		return true
	}

	return equalInts(p.Powers(letter), descending(max, 0))
}

// IsOrdered reports whether letter's powers run contiguously, ascending
// or descending. With an empty letter it checks all letters.
func (p Polynomial) IsOrdered(letter string) bool {
	if letter == "" {
		for _, l := range p.Letters() {
			if !p.IsOrdered(l) {
				return false
			}
		}

		return true
	}
	if p.IsComplete(letter) {
		return true
	}
	min, err := p.MinPower(letter)
	if err != nil {
		return false
	}
	max, _ := p.MaxPower(letter)
	powers := p.Powers(letter)

	return equalInts(powers, descending(max, min)) || equalInts(powers, ascending(min, max))
}

// IsSquareDiff reports whether the polynomial is a difference of two
// squares: exactly two terms, one an even-powered perfect-square term,
// the other its negated perfect-square counterpart.
func (p Polynomial) IsSquareDiff() bool {
	if p.Len() != 2 {
		return false
	}

	square := func(m monomial.Monomial, wantNegative bool) bool {
		if m.Exps.Len() != 1 {
			return false
		}
		letter := m.Exps.Letters()[0]
		if m.Exps.Get(letter)%2 != 0 {
			return false
		}
		if wantNegative {
			return m.Coeff.Sign() < 0 && isPerfectSquare(m.Coeff.Neg())
		}

		return isPerfectSquare(m.Coeff)
	}

	if rhs, ok := p.RightHandSide(); ok {
		if rhs.Sign() >= 0 || !isPerfectSquare(rhs.Neg()) {
			return false
		}

		return square(p.monos[0], false)
	}

	return square(p.monos[0], false) && square(p.monos[1], true)
}

// isPerfectSquare reports whether c is a non-negative perfect-square
// integer.
func isPerfectSquare(c numeric.Number) bool {
	n, ok := c.Int64()
	if !ok || n < 0 {
		return false
	}
	r := int64(math.Sqrt(float64(n)))

	return r*r == n || (r+1)*(r+1) == n
}

// descending returns [from, from-1, ..., to].
func descending(from, to int) []int {
	out := make([]int, 0, from-to+1)
	for i := from; i >= to; i-- {
		out = append(out, i)
	}

	return out
}

// ascending returns [from, from+1, ..., to].
func ascending(from, to int) []int {
	out := make([]int, 0, to-from+1)
	for i := from; i <= to; i++ {
		out = append(out, i)
	}

	return out
}

func equalInts(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}
