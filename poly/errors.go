// Package poly: sentinel error set.
// All fallible operations in this package return one of these sentinels
// (or a sentinel from monomial/numeric), matched by callers with errors.Is.
// No exported operation panics on user-triggered conditions.
package poly

import "errors"

var (
	// ErrDivisionByZero indicates division (or modulo, or fraction
	// construction) with the zero polynomial as divisor.
	ErrDivisionByZero = errors.New("poly: polynomial division or modulo by zero")

	// ErrNotDivisible indicates the long-division algorithm cannot proceed:
	// the dividend's degree is below the divisor's, or a division step needs
	// a letter or exponent the divisor does not supply. Callers may degrade
	// to a symbolic Fraction instead of failing (Div does exactly that).
	ErrNotDivisible = errors.New("poly: polynomials are not divisible")

	// ErrUnknownLetter indicates a power query for a letter that appears
	// nowhere in the polynomial. Absent is distinct from power 0 here.
	ErrUnknownLetter = errors.New("poly: letter not in polynomial")

	// ErrNegativePower indicates Pow with a negative exponent; negative
	// powers of a polynomial live in a Fraction (see Inverse and
	// Fraction.Pow).
	ErrNegativePower = errors.New("poly: negative power needs a fraction")

	// ErrZeroDenominator indicates an attempt to build a Fraction over the
	// zero polynomial.
	ErrZeroDenominator = errors.New("poly: fraction denominator is the zero polynomial")

	// ErrEmptyPolynomial indicates a term-content query (MonomialGCD,
	// MonomialLCM) on the zero polynomial, which has no terms.
	ErrEmptyPolynomial = errors.New("poly: zero polynomial has no terms")

	// ErrNonIntegerCoeff indicates a term-content query on a polynomial
	// whose coefficients are not all whole numbers.
	ErrNonIntegerCoeff = errors.New("poly: coefficients are not all integers")

	// ErrCannotCoerce indicates ToPolynomial received a value of an
	// unsupported type.
	ErrCannotCoerce = errors.New("poly: cannot coerce value to a polynomial")
)
