// Package poly: the simplification engine and canonical ordering.
package poly

import (
	"sort"

	"github.com/katalvlaran/polyalg/monomial"
)

// simplifyTerms reduces an arbitrary (possibly redundant, unordered,
// zero-padded) term list to canonical form:
//
//  1. single accumulating pass merging similar terms by coefficient sum;
//  2. zero powers never survive (an Exponents invariant, established at
//     construction);
//  3. terms with a zero coefficient are dropped.
//
// The result still needs sortCanonical. simplifyTerms never fails; an
// all-zero input collapses to the empty list, the zero polynomial.
// O(n²) in the number of terms.
func simplifyTerms(in []monomial.Monomial) []monomial.Monomial {
	out := make([]monomial.Monomial, 0, len(in))
	for _, m := range in {
		merged := false
		for i := range out {
			if monomial.AreSimilar(m, out[i]) {
				out[i] = monomial.Monomial{Coeff: out[i].Coeff.Add(m.Coeff), Exps: out[i].Exps}
				merged = true

				break
			}
		}
		if !merged {
			out = append(out, m)
		}
	}

	kept := out[:0]
	for _, m := range out {
		if m.IsZero() {
			continue
		}
		kept = append(kept, m)
	}

	return kept
}

// sortCanonical orders the monomials descending by the pivot letter's
// exponent. A single-term polynomial is trivially ordered and is never
// re-sorted (avoids recomputing a pivot for pure constants).
func (p *Polynomial) sortCanonical() {
	if len(p.monos) <= 1 {
		return
	}
	pivot, ok := p.MaxLetter(true)
	if !ok {
		return
	}
	p.sortByPivot(pivot)
}

// sortByPivot orders the monomials descending by pivot's exponent,
// keeping the relative order of ties stable.
func (p *Polynomial) sortByPivot(pivot string) {
	sort.SliceStable(p.monos, func(i, j int) bool {
		return p.monos[i].Exps.Get(pivot) > p.monos[j].Exps.Get(pivot)
	})
}

// MaxLetter returns the pivot letter: among all letters appearing in the
// polynomial, the one whose maximum exponent is largest. Ties break to the
// alphabetically first letter when alphabetical is true, last otherwise.
// ok is false when the polynomial has no letters (constant or zero).
func (p Polynomial) MaxLetter(alphabetical bool) (string, bool) {
	letters := p.Letters()
	if len(letters) == 0 {
		return "", false
	}

	best := letters[0]
	bestPower := p.maxPowerOf(best)
	for _, letter := range letters[1:] {
		power := p.maxPowerOf(letter)
		switch {
		case power > bestPower:
			best, bestPower = letter, power
		case power == bestPower && !alphabetical:
			// letters iterate ascending, so a later tie is alphabetically last
			best = letter
		}
	}

	return best, true
}

// maxPowerOf returns the maximum exponent of letter across all monomials,
// 0 when absent everywhere.
func (p Polynomial) maxPowerOf(letter string) int {
	var max int
	for i, m := range p.monos {
		power := m.Exps.Get(letter)
		if i == 0 || power > max {
			max = power
		}
	}

	return max
}

// Simplify returns the polynomial in canonical form. It is a no-op for
// polynomials built with auto-simplification (the default) and idempotent
// in general.
func (p Polynomial) Simplify() Polynomial {
	q := Polynomial{monos: simplifyTerms(p.monos), noAutoSimplify: p.noAutoSimplify}
	q.sortCanonical()

	return q
}

// Update replaces the polynomial's terms with those of the coerced
// operand (see ToPolynomial), re-simplifying unless the polynomial was
// built WithoutAutoSimplify.
func (p *Polynomial) Update(v any) error {
	o, err := ToPolynomial(v)
	if err != nil {
		return err
	}
	p.monos = append([]monomial.Monomial(nil), o.monos...)
	if !p.noAutoSimplify {
		p.monos = simplifyTerms(p.monos)
	}
	p.sortCanonical()

	return nil
}

// Append merges the coerced operand's terms into the polynomial and
// re-simplifies.
func (p *Polynomial) Append(v any) error {
	o, err := ToPolynomial(v)
	if err != nil {
		return err
	}
	merged := make([]monomial.Monomial, 0, len(p.monos)+len(o.monos))
	merged = append(merged, o.monos...)
	merged = append(merged, p.monos...)
	p.monos = simplifyTerms(merged)
	p.sortCanonical()

	return nil
}
