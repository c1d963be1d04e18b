// Package monomial defines the atomic unit of polyalg polynomials: a
// coefficient paired with an immutable map from letter to integer exponent.
//
// What:
//
//   - Exponents is an immutable, sorted (letter, power) association list.
//     Zero powers are never stored, so "x^0·y^2" and "y^2" build the same
//     value, and structural equality is exactly the "similar monomials"
//     relation the simplification engine merges on.
//   - Monomial pairs a numeric.Number coefficient with its Exponents, and
//     implements the term-level arithmetic polynomial operations reduce to:
//     Mul (multiply coefficients, add powers), Divide (divide coefficients
//     exactly, subtract powers), Pow (scale powers).
//
// Why:
//
//   - Making the exponent map an immutable value type removes the aliasing
//     hazard of shared mutable maps: monomials may be copied between
//     polynomials freely, no defensive deep-copying required.
//
// Errors:
//
//   - ErrBadLetter    — a variable name that is not a single lowercase letter.
//   - ErrNotDivisible — Divide needs a letter or exponent the divisor term
//     does not supply; the boundary is explicit, negative exponents are
//     never produced implicitly.
//
// Negative exponents are representable (Laurent-style terms) but only enter
// through explicit construction, never through Divide.
package monomial
