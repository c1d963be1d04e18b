// Package poly: polynomial long division and the Euclidean GCD/LCM built
// on top of it.
package poly

import (
	"errors"

	"github.com/katalvlaran/polyalg/monomial"
	"github.com/katalvlaran/polyalg/numeric"
)

// DivMod performs polynomial long division: it returns Q and R such that
// p == Q*d + R and R is zero or degree(R) < degree(d). Division is
// relative to a single leading letter, the pivot of the divisor d, so the
// algorithm generalizes to multivariate terms compared only through their
// pivot exponent.
//
// Errors:
//
//   - ErrDivisionByZero — d is the zero polynomial.
//   - ErrNotDivisible   — degree(p) < degree(d), or a division step needs
//     a letter or exponent the divisor's leading term does not supply.
//     Negative exponents are never produced implicitly.
//
// Termination: each iteration strictly shrinks (pivot power of the
// dividend's leading term, number of terms at that power) in
// lexicographic order; the loop cannot run unbounded.
func (p Polynomial) DivMod(d Polynomial) (q, r Polynomial, err error) {
	if d.IsZero() {
		return Polynomial{}, Polynomial{}, ErrDivisionByZero
	}
	if d.Equal(One()) {
		return p.Simplify(), Zero(), nil
	}
	if d.Equal(FromInt(-1)) {
		return p.Neg(), Zero(), nil
	}

	// working copies; the algorithm never mutates the caller's polynomials
	a := p.Simplify()
	b := d.Simplify()
	if a.Degree() < b.Degree() {
		return Polynomial{}, Polynomial{}, ErrNotDivisible
	}

	pivot, _ := b.MaxLetter(true) // "" for a constant divisor: every sort is a no-op
	var quotient []monomial.Monomial

	prevPower, prevCount := a.pivotProfile(pivot)
	first := true
	for !a.IsZero() && a.Degree() >= b.Degree() {
		if a.IsNum() && b.IsNum() {
			// both sides reduced to constants: the base case closing the
			// recursion over degree
			ca, _ := a.RightHandSide()
			cb, _ := b.RightHandSide()
			c, derr := ca.Div(cb)
			if derr != nil {
				return Polynomial{}, Polynomial{}, ErrDivisionByZero
			}
			quotient = append(quotient, monomial.Constant(c))

			return fromMonomials(quotient), Zero(), nil
		}

		a.sortByPivot(pivot)
		if !first {
			// the termination invariant: the dividend's leading profile
			// strictly decreases, otherwise the division cannot proceed
			power, count := a.pivotProfile(pivot)
			if power > prevPower || (power == prevPower && count >= prevCount) {
				return Polynomial{}, Polynomial{}, ErrNotDivisible
			}
			prevPower, prevCount = power, count
		}
		first = false

		qm, derr := a.monos[0].Divide(b.monos[0])
		if derr != nil {
			if errors.Is(derr, monomial.ErrNotDivisible) {
				return Polynomial{}, Polynomial{}, ErrNotDivisible
			}

			return Polynomial{}, Polynomial{}, derr
		}
		quotient = append(quotient, qm)
		a = fromMonomials(a.monos[1:]) // drop the leading term

		if len(b.monos) == 1 {
			// a monomial divisor leaves nothing to subtract; keep
			// dividing the remaining terms
			continue
		}
		tail := fromMonomials(append([]monomial.Monomial(nil), b.monos[1:]...))
		a = a.Sub(tail.MulMonomial(qm))
	}

	return fromMonomials(quotient), a.Filter(), nil
}

// pivotProfile returns the maximum pivot power in the polynomial and the
// number of terms carrying it. Zero polynomial profiles as (MinDegree, 0).
func (p Polynomial) pivotProfile(pivot string) (power, count int) {
	if p.IsZero() {
		return MinDegree, 0
	}
	power = p.maxPowerOf(pivot)
	for _, m := range p.monos {
		if m.Exps.Get(pivot) == power {
			count++
		}
	}

	return power, count
}

// Mod returns the remainder of p divided by d.
func (p Polynomial) Mod(d Polynomial) (Polynomial, error) {
	_, r, err := p.DivMod(d)

	return r, err
}

// Div divides p by d and always produces some well-defined result: an
// exact polynomial quotient comes back as a denominator-one Fraction,
// while an inexact or not-divisible pair degrades to the symbolic
// fraction p/d. The only failure is a zero divisor.
func (p Polynomial) Div(d Polynomial) (Fraction, error) {
	if d.IsZero() {
		return Fraction{}, ErrDivisionByZero
	}
	q, r, err := p.DivMod(d)
	if err != nil || !r.IsZero() {
		return NewFraction(p, d)
	}

	return Fraction{num: q, den: One()}, nil
}

// GCD returns the greatest common divisor of a and b via the Euclidean
// algorithm over polynomial remainders. Because polynomial Mod may yield
// rational coefficients, the result can carry a rational leading
// coefficient; it is not normalized to integer content. When the chosen
// orientation is not divisible, the operands are swapped once, matching
// the gcd(a, b) == gcd(b, a) identity.
func GCD(a, b Polynomial) (Polynomial, error) {
	g, err := gcdEuclid(a, b)
	if errors.Is(err, ErrNotDivisible) {
		return gcdEuclid(b, a)
	}

	return g, err
}

// gcdEuclid runs the classic remainder loop: while b is nonzero,
// (a, b) ← (b, a mod b).
func gcdEuclid(a, b Polynomial) (Polynomial, error) {
	if b.IsZero() {
		return a.Simplify(), nil
	}
	for {
		r, err := a.Mod(b)
		if err != nil {
			return Polynomial{}, err
		}
		if r.IsZero() {
			return b.Simplify(), nil
		}
		a, b = b, r
	}
}

// LCM returns the least common multiple (a / gcd(a, b)) * b. The quotient
// is exact by construction. Whole-valued rational coefficients collapse
// to integers through the numeric tower, so no spurious fraction wrapping
// survives.
func LCM(a, b Polynomial) (Polynomial, error) {
	g, err := GCD(a, b)
	if err != nil {
		return Polynomial{}, err
	}
	q, _, err := a.DivMod(g)
	if err != nil {
		return Polynomial{}, err
	}

	return q.Mul(b), nil
}

// MonomialGCD returns the greatest common monomial of the polynomial's
// terms: the GCD of the integer coefficients times each joint letter
// raised to its minimum power. This is the direct "factor out the common
// monomial" path; it never invokes the division algorithm.
//
// Errors: ErrEmptyPolynomial for the zero polynomial, ErrNonIntegerCoeff
// when a coefficient is not a whole number.
func (p Polynomial) MonomialGCD() (monomial.Monomial, error) {
	coeff, err := p.contentCoeff(numeric.GCDInt)
	if err != nil {
		return monomial.Monomial{}, err
	}

	powers := make(map[string]int)
	for _, letter := range p.JointLetters() {
		min, _ := p.MinPower(letter)
		powers[letter] = min
	}

	return monomial.New(coeff, powers)
}

// MonomialLCM returns the least common monomial of the polynomial's
// terms: the LCM of the integer coefficients times every letter raised to
// its maximum power.
//
// Errors: ErrEmptyPolynomial for the zero polynomial, ErrNonIntegerCoeff
// when a coefficient is not a whole number.
func (p Polynomial) MonomialLCM() (monomial.Monomial, error) {
	coeff, err := p.contentCoeff(numeric.LCMInt)
	if err != nil {
		return monomial.Monomial{}, err
	}

	powers := make(map[string]int)
	for _, letter := range p.Letters() {
		max, _ := p.MaxPower(letter)
		powers[letter] = max
	}

	return monomial.New(coeff, powers)
}

// contentCoeff folds the integer coefficients with combine (GCD or LCM).
func (p Polynomial) contentCoeff(combine func(a, b int64) int64) (numeric.Number, error) {
	if p.IsZero() {
		return numeric.Number{}, ErrEmptyPolynomial
	}

	var (
		acc   int64
		first = true
	)
	for _, m := range p.monos {
		n, ok := m.Coeff.Int64()
		if !ok {
			return numeric.Number{}, ErrNonIntegerCoeff
		}
		if first {
			acc, first = n, false

			continue
		}
		acc = combine(acc, n)
	}
	if acc < 0 {
		acc = -acc
	}

	return numeric.Int(acc), nil
}

// DivAll divides every term of the polynomial by the single term m,
// factoring m out of the whole term list.
func (p Polynomial) DivAll(m monomial.Monomial) (Polynomial, error) {
	monos := make([]monomial.Monomial, len(p.monos))
	for i, t := range p.monos {
		q, err := t.Divide(m)
		if err != nil {
			if errors.Is(err, monomial.ErrNotDivisible) {
				return Polynomial{}, ErrNotDivisible
			}

			return Polynomial{}, err
		}
		monos[i] = q
	}

	return fromMonomials(monos), nil
}
