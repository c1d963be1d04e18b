// Package funcs collects polynomial utilities built on top of the poly
// core: calculus, divisibility, construction from roots and random
// generation.
//
// What:
//
//   - Derivative and Integral of a polynomial with respect to one letter,
//     to any order, with integration constants.
//   - IntegralBetween evaluates the definite integral over [a, b].
//   - Divisible reports whether a % b is the zero polynomial.
//   - FromRoots builds the monic polynomial with the given roots.
//   - Random generates polynomials for tests and demos, with options for
//     coefficient range, length, letters and exponents.
//   - BinomialCoeff exposes C(n, k) with arbitrary precision.
//
// Why:
//
//	These are the operations a caller reaches for right after arithmetic;
//	they need nothing from the core beyond its public contract, so they
//	live outside it.
//
// Errors:
//
//   - ErrNegativeOrder  — Derivative or Integral with order < 0.
//   - ErrNotIntegrable  — a term with exponent -1: its antiderivative is
//     not a polynomial.
package funcs
