// Package series: the generators outside the Lucas sequence family.
package series

import (
	"math/big"

	"github.com/katalvlaran/polyalg/funcs"
	"github.com/katalvlaran/polyalg/monomial"
	"github.com/katalvlaran/polyalg/numeric"
	"github.com/katalvlaran/polyalg/poly"
)

// HermiteProb returns the n-th probabilistic Hermite polynomial:
// He(0)=1, He(n) = x·He(n-1) - He'(n-1).
func HermiteProb(n int) (poly.Polynomial, error) {
	if n < 0 {
		return poly.Polynomial{}, ErrNegativeIndex
	}

	out := poly.One()
	for i := 0; i < n; i++ {
		d, err := funcs.Derivative(out, funcs.WithLetter("x"))
		if err != nil {
			return poly.Polynomial{}, err
		}
		out = out.Mul(poly.X()).Sub(d)
	}

	return out, nil
}

// HermitePhys returns the n-th physicists' Hermite polynomial:
// H(0)=1, H(n) = 2x·H(n-1) - H'(n-1).
func HermitePhys(n int) (poly.Polynomial, error) {
	if n < 0 {
		return poly.Polynomial{}, ErrNegativeIndex
	}

	out := poly.One()
	for i := 0; i < n; i++ {
		d, err := funcs.Derivative(out, funcs.WithLetter("x"))
		if err != nil {
			return poly.Polynomial{}, err
		}
		out = out.Mul(twoX()).Sub(d)
	}

	return out, nil
}

// Laguerre returns the n-th Laguerre polynomial via the three-term
// recurrence
//
//	k·L(k) = (2k - 1 - x)·L(k-1) - (k-1)·L(k-2)
//
// with L(0)=1 and L(1)=1-x. Coefficients are exact rationals.
func Laguerre(n int) (poly.Polynomial, error) {
	if n < 0 {
		return poly.Polynomial{}, ErrNegativeIndex
	}
	if n == 0 {
		return poly.One(), nil
	}

	prev2 := poly.One()
	prev := poly.One().Sub(poly.X())
	for k := 2; k <= n; k++ {
		lead := poly.FromInt(int64(2*k - 1)).Sub(poly.X())
		num := lead.Mul(prev).Sub(poly.FromInt(int64(k - 1)).Mul(prev2))
		next, err := num.DivAll(monomial.Constant(numeric.Int(int64(k))))
		if err != nil {
			return poly.Polynomial{}, err
		}
		prev2, prev = prev, next
	}

	return prev, nil
}

// Touchard returns the n-th Touchard (Bell) polynomial: the sum of
// S(n, k)·x^k over k, with S the Stirling numbers of the second kind
// computed exactly. Evaluating at 1 gives the n-th Bell number.
func Touchard(n int) (poly.Polynomial, error) {
	if n < 0 {
		return poly.Polynomial{}, ErrNegativeIndex
	}

	row := stirling2Row(n)
	terms := make([]poly.Term, 0, len(row))
	for k, s := range row {
		if s.Sign() == 0 {
			continue
		}
		terms = append(terms, poly.Term{
			Coeff:  numeric.FromRat(new(big.Rat).SetInt(s)),
			Powers: map[string]int{"x": k},
		})
	}

	return poly.New(terms)
}

// stirling2Row computes row n of the Stirling numbers of the second
// kind: S(n, k) = k·S(n-1, k) + S(n-1, k-1).
func stirling2Row(n int) []*big.Int {
	row := []*big.Int{big.NewInt(1)}
	for i := 1; i <= n; i++ {
		next := make([]*big.Int, i+1)
		next[0] = big.NewInt(0)
		for k := 1; k <= i; k++ {
			next[k] = new(big.Int)
			if k < len(row) {
				next[k].Mul(big.NewInt(int64(k)), row[k])
			}
			next[k].Add(next[k], row[k-1])
		}
		row = next
	}

	return row
}

// Abel returns the n-th Abel polynomial in x and the given parameter
// letter: A(n) = x·(x - a·n)^(n-1).
//
// Errors: ErrNegativeIndex, monomial.ErrBadLetter.
func Abel(n int, letter string) (poly.Polynomial, error) {
	if n < 0 {
		return poly.Polynomial{}, ErrNegativeIndex
	}
	if n == 0 {
		return poly.One(), nil
	}

	a, err := poly.Var(letter)
	if err != nil {
		return poly.Polynomial{}, err
	}
	base := poly.X().Sub(poly.FromInt(int64(n)).Mul(a))
	pow, err := base.Pow(n - 1)
	if err != nil {
		return poly.Polynomial{}, err
	}

	return poly.X().Mul(pow), nil
}
