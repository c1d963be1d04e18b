package funcs

import (
	"math/big"

	"github.com/katalvlaran/polyalg/numeric"
	"github.com/katalvlaran/polyalg/poly"
)

// Divisible reports whether a is exactly divisible by b: a % b is the
// zero polynomial. Division failures (zero divisor, lower degree,
// incompatible letters) report false rather than erroring.
func Divisible(a, b poly.Polynomial) bool {
	if a.Degree() < b.Degree() {
		return false
	}
	r, err := a.Mod(b)

	return err == nil && r.IsZero()
}

// FromRoots builds the monic polynomial in the given letter whose roots
// are exactly the given values: the product of (letter - r) over roots.
// An empty root list yields the constant 1.
//
// Errors: monomial.ErrBadLetter.
func FromRoots(letter string, roots ...numeric.Number) (poly.Polynomial, error) {
	v, err := poly.Var(letter)
	if err != nil {
		return poly.Polynomial{}, err
	}

	out := poly.One()
	for _, r := range roots {
		out = out.Mul(v.Sub(poly.FromNumber(r)))
	}

	return out, nil
}

// BinomialCoeff returns the binomial coefficient C(n, k), the
// coefficient of the x^k term of (1+x)^n, with arbitrary precision.
// Out-of-range k (k < 0 or k > n) yields 0, matching the convention that
// such terms do not exist.
func BinomialCoeff(n, k int64) *big.Int {
	if k < 0 || k > n {
		return big.NewInt(0)
	}

	return new(big.Int).Binomial(n, k)
}
