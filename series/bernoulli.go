package series

import (
	"math/big"

	"github.com/katalvlaran/polyalg/funcs"
	"github.com/katalvlaran/polyalg/monomial"
	"github.com/katalvlaran/polyalg/numeric"
	"github.com/katalvlaran/polyalg/poly"
)

// Bernoulli returns the m-th Bernoulli polynomial:
//
//	B(m) = x^m + Σ_{n=1..m} 1/(n+1) · Σ_{k=0..n} (-1)^k·C(n,k)·(x+k)^m
//
// Coefficients are exact rationals.
func Bernoulli(m int) (poly.Polynomial, error) {
	if m < 0 {
		return poly.Polynomial{}, ErrNegativeIndex
	}
	if m == 0 {
		return poly.One(), nil
	}

	out, err := poly.X().Pow(m)
	if err != nil {
		return poly.Polynomial{}, err
	}
	for n := 1; n <= m; n++ {
		inner, err := alternatingShiftSum(n, m)
		if err != nil {
			return poly.Polynomial{}, err
		}
		out = out.Add(inner.MulMonomial(monomial.Constant(numeric.Rat(1, int64(n+1)))))
	}

	return out, nil
}

// Euler returns the m-th Euler polynomial:
//
//	E(m) = x^m + Σ_{n=1..m} 1/2^n · Σ_{k=0..n} (-1)^k·C(n,k)·(x+k)^m
func Euler(m int) (poly.Polynomial, error) {
	if m < 0 {
		return poly.Polynomial{}, ErrNegativeIndex
	}
	if m == 0 {
		return poly.One(), nil
	}

	out, err := poly.X().Pow(m)
	if err != nil {
		return poly.Polynomial{}, err
	}
	for n := 1; n <= m; n++ {
		inner, err := alternatingShiftSum(n, m)
		if err != nil {
			return poly.Polynomial{}, err
		}
		half := new(big.Rat).SetFrac(big.NewInt(1), new(big.Int).Lsh(big.NewInt(1), uint(n)))
		out = out.Add(inner.MulMonomial(monomial.Constant(numeric.FromRat(half))))
	}

	return out, nil
}

// alternatingShiftSum computes Σ_{k=0..n} (-1)^k·C(n,k)·(x+k)^m.
func alternatingShiftSum(n, m int) (poly.Polynomial, error) {
	out := poly.Zero()
	for k := 0; k <= n; k++ {
		shifted, err := poly.X().Add(poly.FromInt(int64(k))).Pow(m)
		if err != nil {
			return poly.Polynomial{}, err
		}
		c := numeric.FromRat(new(big.Rat).SetInt(funcs.BinomialCoeff(int64(n), int64(k))))
		if k&1 == 1 {
			c = c.Neg()
		}
		out = out.Add(shifted.MulMonomial(monomial.Constant(c)))
	}

	return out, nil
}

// BernoulliNumber returns the m-th Bernoulli number as an exact value.
// Odd indices above one are zero.
func BernoulliNumber(m int) (numeric.Number, error) {
	if m < 0 {
		return numeric.Number{}, ErrNegativeIndex
	}
	switch {
	case m == 0:
		return numeric.Int(1), nil
	case m == 1:
		return numeric.Rat(-1, 2), nil
	case m&1 == 1:
		return numeric.Int(0), nil
	}

	acc := new(big.Rat)
	bigM := big.NewInt(int64(m))
	for k := 0; k <= m; k++ {
		for v := 0; v <= k; v++ {
			num := new(big.Int).Exp(big.NewInt(int64(v)), bigM, nil)
			num.Mul(num, funcs.BinomialCoeff(int64(k), int64(v)))
			if v&1 == 1 {
				num.Neg(num)
			}
			acc.Add(acc, new(big.Rat).SetFrac(num, big.NewInt(int64(k+1))))
		}
	}

	return numeric.FromRat(acc), nil
}

// EulerNumber returns the m-th Euler number: 2^m · E(m)(1/2) with E the
// Euler polynomial. Odd indices are zero.
func EulerNumber(m int) (numeric.Number, error) {
	if m < 0 {
		return numeric.Number{}, ErrNegativeIndex
	}
	if m == 0 {
		return numeric.Int(1), nil
	}
	if m&1 == 1 {
		return numeric.Int(0), nil
	}

	e, err := Euler(m)
	if err != nil {
		return numeric.Number{}, err
	}
	at, err := e.Eval(map[string]numeric.Number{"x": numeric.Rat(1, 2)})
	if err != nil {
		return numeric.Number{}, err
	}
	scale := new(big.Rat).SetInt(new(big.Int).Lsh(big.NewInt(1), uint(m)))

	return at.Mul(numeric.FromRat(scale)), nil
}

// Genocchi returns the n-th Genocchi number: 2·(1 - 2^n)·B(n) with B the
// Bernoulli number. Odd indices above one are zero.
func Genocchi(n int) (numeric.Number, error) {
	if n < 0 {
		return numeric.Number{}, ErrNegativeIndex
	}
	if n == 0 {
		return numeric.Int(0), nil
	}
	if n == 1 {
		return numeric.Int(1), nil
	}

	b, err := BernoulliNumber(n)
	if err != nil {
		return numeric.Number{}, err
	}
	factor := new(big.Int).Lsh(big.NewInt(1), uint(n))
	factor.Sub(big.NewInt(1), factor)
	factor.Mul(factor, big.NewInt(2))

	return b.Mul(numeric.FromRat(new(big.Rat).SetInt(factor))), nil
}
