package series

import (
	"math/big"

	"github.com/katalvlaran/polyalg/funcs"
	"github.com/katalvlaran/polyalg/monomial"
	"github.com/katalvlaran/polyalg/numeric"
	"github.com/katalvlaran/polyalg/poly"
)

// Gegenbauer returns the n-th Gegenbauer polynomial in x with the given
// parameter letter:
//
//	C(0)=1, C(1)=2ax, k·C(k) = 2x·(k-1+a)·C(k-1) - (k-2+2a)·C(k-2)
//
// Coefficients are exact rationals.
//
// Errors: ErrNegativeIndex, monomial.ErrBadLetter.
func Gegenbauer(n int, letter string) (poly.Polynomial, error) {
	if n < 0 {
		return poly.Polynomial{}, ErrNegativeIndex
	}
	a, err := poly.Var(letter)
	if err != nil {
		return poly.Polynomial{}, err
	}
	if n == 0 {
		return poly.One(), nil
	}

	prev2 := poly.One()
	prev := twoX().Mul(a)
	for k := 2; k <= n; k++ {
		lead := twoX().Mul(poly.FromInt(int64(k - 1)).Add(a))
		tail := poly.FromInt(int64(k - 2)).Add(a.Add(a))
		num := lead.Mul(prev).Sub(tail.Mul(prev2))
		next, err := num.DivAll(monomial.Constant(numeric.Int(int64(k))))
		if err != nil {
			return poly.Polynomial{}, err
		}
		prev2, prev = prev, next
	}

	return prev, nil
}

// LaguerreGen returns the n-th generalized Laguerre polynomial in x with
// the given parameter letter:
//
//	L(0)=1, k·L(k) = (2k - 1 + a - x)·L(k-1) - (k - 1 + a)·L(k-2)
//
// At a = 0 it coincides with Laguerre.
//
// Errors: ErrNegativeIndex, monomial.ErrBadLetter.
func LaguerreGen(n int, letter string) (poly.Polynomial, error) {
	if n < 0 {
		return poly.Polynomial{}, ErrNegativeIndex
	}
	a, err := poly.Var(letter)
	if err != nil {
		return poly.Polynomial{}, err
	}

	prev2 := poly.Zero()
	prev := poly.One()
	for k := 1; k <= n; k++ {
		lead := poly.FromInt(int64(2*k - 1)).Add(a).Sub(poly.X())
		tail := poly.FromInt(int64(k - 1)).Add(a)
		num := lead.Mul(prev).Sub(tail.Mul(prev2))
		next, err := num.DivAll(monomial.Constant(numeric.Int(int64(k))))
		if err != nil {
			return poly.Polynomial{}, err
		}
		prev2, prev = prev, next
	}

	return prev, nil
}

// Bernstein returns the Bernstein basis polynomial
//
//	B(v, n) = C(n, v)·x^v·(1 - x)^(n-v)
//
// Errors: ErrNegativeIndex for negative v or n, ErrIndexOutOfRange when
// v exceeds n.
func Bernstein(v, n int) (poly.Polynomial, error) {
	if v < 0 || n < 0 {
		return poly.Polynomial{}, ErrNegativeIndex
	}
	if v > n {
		return poly.Polynomial{}, ErrIndexOutOfRange
	}

	xv, err := poly.X().Pow(v)
	if err != nil {
		return poly.Polynomial{}, err
	}
	rest, err := poly.One().Sub(poly.X()).Pow(n - v)
	if err != nil {
		return poly.Polynomial{}, err
	}
	coeff := numeric.FromRat(new(big.Rat).SetInt(funcs.BinomialCoeff(int64(n), int64(v))))

	return xv.Mul(rest).MulMonomial(monomial.Constant(coeff)), nil
}

// Spread returns the n-th spread polynomial:
//
//	S(0)=0, S(1)=x, S(n) = (2 - 4x)·S(n-1) - S(n-2) + 2x
func Spread(n int) (poly.Polynomial, error) {
	if n < 0 {
		return poly.Polynomial{}, ErrNegativeIndex
	}
	if n == 0 {
		return poly.Zero(), nil
	}

	lead := poly.FromInt(2).Sub(twoX().Add(twoX()))
	prev2, prev := poly.Zero(), poly.X()
	for k := 2; k <= n; k++ {
		prev2, prev = prev, lead.Mul(prev).Sub(prev2).Add(twoX())
	}

	return prev, nil
}
