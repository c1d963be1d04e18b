package series

import (
	"errors"

	"github.com/katalvlaran/polyalg/poly"
)

// ErrNegativeIndex indicates a sequence index below zero.
var ErrNegativeIndex = errors.New("series: index must be non-negative")

// ErrIndexOutOfRange indicates a Bernstein index v above its degree n.
var ErrIndexOutOfRange = errors.New("series: index out of range")

// LucasSeq returns the n-th element of the Lucas polynomial sequence
// with parameters p and q and the given first two elements:
//
//	W(0) = zero, W(1) = one, W(n) = p·W(n-1) + q·W(n-2)
//
// The classic sequences are instances: Fibonacci is W(x, 1) from (0, 1),
// Lucas is w(x, 1) from (2, x), and so on. The loop keeps only the last
// two elements, so memory stays constant in n.
//
// Errors: ErrNegativeIndex.
func LucasSeq(n int, p, q, zero, one poly.Polynomial) (poly.Polynomial, error) {
	if n < 0 {
		return poly.Polynomial{}, ErrNegativeIndex
	}
	if n == 0 {
		return zero, nil
	}

	prev2, prev := zero, one
	for i := 1; i < n; i++ {
		prev2, prev = prev, p.Mul(prev).Add(q.Mul(prev2))
	}

	return prev, nil
}

// Fibonacci returns the n-th Fibonacci polynomial:
// F(0)=0, F(1)=1, F(n) = x·F(n-1) + F(n-2).
func Fibonacci(n int) (poly.Polynomial, error) {
	return LucasSeq(n, poly.X(), poly.One(), poly.Zero(), poly.One())
}

// Lucas returns the n-th Lucas polynomial:
// L(0)=2, L(1)=x, L(n) = x·L(n-1) + L(n-2).
func Lucas(n int) (poly.Polynomial, error) {
	return LucasSeq(n, poly.X(), poly.One(), poly.FromInt(2), poly.X())
}

// Pell returns the n-th Pell polynomial:
// P(0)=0, P(1)=1, P(n) = 2x·P(n-1) + P(n-2).
func Pell(n int) (poly.Polynomial, error) {
	return LucasSeq(n, twoX(), poly.One(), poly.Zero(), poly.One())
}

// PellLucas returns the n-th Pell-Lucas polynomial:
// Q(0)=2, Q(1)=2x, Q(n) = 2x·Q(n-1) + Q(n-2).
func PellLucas(n int) (poly.Polynomial, error) {
	return LucasSeq(n, twoX(), poly.One(), poly.FromInt(2), twoX())
}

// Jacobsthal returns the n-th Jacobsthal polynomial:
// J(0)=0, J(1)=1, J(n) = J(n-1) + 2x·J(n-2).
func Jacobsthal(n int) (poly.Polynomial, error) {
	return LucasSeq(n, poly.One(), twoX(), poly.Zero(), poly.One())
}

// JacobsthalLucas returns the n-th Jacobsthal-Lucas polynomial:
// j(0)=2, j(1)=1, j(n) = j(n-1) + 2x·j(n-2).
func JacobsthalLucas(n int) (poly.Polynomial, error) {
	return LucasSeq(n, poly.One(), twoX(), poly.FromInt(2), poly.One())
}

// Fermat returns the n-th Fermat polynomial:
// F(0)=0, F(1)=1, F(n) = 3x·F(n-1) - 2·F(n-2).
func Fermat(n int) (poly.Polynomial, error) {
	return LucasSeq(n, threeX(), poly.FromInt(-2), poly.Zero(), poly.One())
}

// FermatLucas returns the n-th Fermat-Lucas polynomial:
// f(0)=2, f(1)=3x, f(n) = 3x·f(n-1) - 2·f(n-2).
func FermatLucas(n int) (poly.Polynomial, error) {
	return LucasSeq(n, threeX(), poly.FromInt(-2), poly.FromInt(2), threeX())
}

// ChebyshevT returns the n-th Chebyshev polynomial of the first kind:
// T(0)=1, T(1)=x, T(n) = 2x·T(n-1) - T(n-2).
func ChebyshevT(n int) (poly.Polynomial, error) {
	return LucasSeq(n, twoX(), poly.FromInt(-1), poly.One(), poly.X())
}

// ChebyshevU returns the n-th Chebyshev polynomial of the second kind:
// U(0)=1, U(1)=2x, U(n) = 2x·U(n-1) - U(n-2).
func ChebyshevU(n int) (poly.Polynomial, error) {
	return LucasSeq(n, twoX(), poly.FromInt(-1), poly.One(), twoX())
}

func twoX() poly.Polynomial {
	return poly.FromInt(2).Mul(poly.X())
}

func threeX() poly.Polynomial {
	return poly.FromInt(3).Mul(poly.X())
}
