// Package poly: side-effect-free polynomial evaluation. Substitution is a
// direct structural fold over the monomials — no expression strings, no
// code execution.
package poly

import (
	"math"

	"github.com/katalvlaran/polyalg/numeric"
)

// Eval substitutes bindings into the polynomial and reduces it to a
// number: for each monomial the coefficient times binding[letter]^power
// over its letters, summed across monomials. A letter missing from
// bindings defaults to 1. The zero polynomial evaluates to 0.
//
// Errors: numeric.ErrDivisionByZero when a zero binding meets a negative
// power.
func (p Polynomial) Eval(bindings map[string]numeric.Number) (numeric.Number, error) {
	sum := numeric.Int(0)
	for _, m := range p.monos {
		term := m.Coeff
		for _, letter := range m.Exps.Letters() {
			v, ok := bindings[letter]
			if !ok {
				v = numeric.Int(1)
			}
			pow, err := powNumber(v, m.Exps.Get(letter))
			if err != nil {
				return numeric.Number{}, err
			}
			term = term.Mul(pow)
		}
		sum = sum.Add(term)
	}

	return sum, nil
}

// powNumber raises v to an integer power, exactly for exact kinds.
func powNumber(v numeric.Number, power int) (numeric.Number, error) {
	if power < 0 {
		inv, err := numeric.Int(1).Div(v)
		if err != nil {
			return numeric.Number{}, err
		}

		return powNumber(inv, -power)
	}
	out := numeric.Int(1)
	for i := 0; i < power; i++ {
		out = out.Mul(v)
	}

	return out, nil
}

// EvalFloat evaluates the polynomial with positional float bindings over
// its letters in ascending order; letters beyond the arguments default
// to 1. Negative powers follow math.Pow semantics (0^-1 is +Inf).
func (p Polynomial) EvalFloat(xs ...float64) float64 {
	letters := p.Letters()
	var sum float64
	for _, m := range p.monos {
		term := m.Coeff.Float64()
		for _, letter := range m.Exps.Letters() {
			v := 1.0
			for i, l := range letters {
				if l == letter {
					if i < len(xs) {
						v = xs[i]
					}

					break
				}
			}
			term *= math.Pow(v, float64(m.Exps.Get(letter)))
		}
		sum += term
	}

	return sum
}

// EvalComplex evaluates the polynomial at the complex point z, binding
// every letter to z. Intended for univariate polynomials handed to the
// root finders, which probe complex arguments.
func (p Polynomial) EvalComplex(z complex128) complex128 {
	var sum complex128
	for _, m := range p.monos {
		term := complex(m.Coeff.Float64(), 0)
		for _, letter := range m.Exps.Letters() {
			term *= powComplex(z, m.Exps.Get(letter))
		}
		sum += term
	}

	return sum
}

// powComplex raises z to an integer power by repeated multiplication,
// exact for integer exponents where cmplx.Pow would round through logs.
func powComplex(z complex128, n int) complex128 {
	if n < 0 {
		return 1 / powComplex(z, -n)
	}
	out := complex(1, 0)
	for i := 0; i < n; i++ {
		out *= z
	}

	return out
}
