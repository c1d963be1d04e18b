// Package numeric provides the exact coefficient arithmetic used throughout
// polyalg: a small numeric tower of integers, exact rationals and floats.
//
// What:
//
//   - Number is an immutable value type holding an int64, a *big.Rat or a
//     float64, with arithmetic that promotes towards the more general kind
//     (int → rational → float).
//   - Exact division of two integers stays exact: 6/3 is the integer 2,
//     1/3 is the rational 1/3, never 0.333....
//   - Cross-kind comparison (Cmp, Equal) is numeric, so Int(1), Rat(2,2)
//     and Float(1) all compare equal.
//
// Why:
//
//   - Polynomial simplification and long division must merge and divide
//     coefficients without losing exactness; float-only coefficients would
//     silently corrupt results like (x^2-4)/(x-2).
//   - Keeping the tower in one package lets the rest of the library treat
//     coefficients as opaque values.
//
// Errors:
//
//   - ErrDivisionByZero — Div with a zero divisor.
//
// Numbers are values: no method mutates its receiver, and rationals are
// copied on construction, so Numbers may be freely shared across polynomials.
package numeric
