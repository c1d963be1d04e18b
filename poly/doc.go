// Package poly implements the symbolic polynomial core of polyalg:
// canonical multivariate polynomials over exact coefficients, their
// arithmetic, long division, GCD/LCM, evaluation and formatting, plus the
// AlgebraicFraction type for symbolic ratios.
//
// 🚀 What is a canonical polynomial?
//
//	An ordered sequence of monomials with no two similar terms and no
//	zero coefficients, sorted descending by the exponent of the pivot
//	letter (the letter of greatest power, ties broken alphabetically).
//	Every operator returns its result already in this form, so
//	(x^2-4)/(x-2) comes out exactly x+2 and (x-1)^2 exactly x^2-2x+1,
//	with rational coefficients where needed.
//
// ✨ Key features:
//   - Simplification: merge similar terms, drop zero powers and zero
//     terms, re-sort; never fails, an all-zero input collapses to Zero()
//   - Arithmetic: Add, Sub, Neg, Mul (explicit distributive cross
//     product), Pow; DivMod long division; Div degrades to a symbolic
//     Fraction when not exact
//   - GCD/LCM: Euclidean algorithm over polynomials, plus the
//     monomial-content shortcut (MonomialGCD/MonomialLCM)
//   - Evaluation: exact Eval over Number bindings, EvalFloat and
//     EvalComplex for the numeric methods
//   - Fraction: an unevaluated ratio of two polynomials; the denominator
//     is never zero
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/polyalg/poly"
//
//	a, _ := poly.FromIntCoeffs("x", 1, 0, -4) // x^2 - 4
//	b, _ := poly.FromIntCoeffs("x", 1, -2)    // x - 2
//	q, r, _ := a.DivMod(b)                    // q = x + 2, r = 0
//
// Ordering invariant:
//
//	Monomials sort descending by the pivot letter's exponent. The ordering
//	drives printing (leading term first), the trailing constant term
//	(RightHandSide) and leading-term selection in long division.
//
// Performance:
//
//   - Simplify: O(n²) in the number of terms (symbolic polynomials are
//     small; no bulk-data ambitions here)
//   - Mul: O(n·m) term products plus a simplify pass
//   - DivMod: one leading-term elimination per iteration; the pivot degree
//     of the dividend strictly decreases, which guarantees termination
//
// Errors:
//
//   - ErrDivisionByZero  — zero divisor in DivMod/Div/Mod or NewFraction.
//   - ErrNotDivisible    — division cannot proceed under this algorithm.
//   - ErrUnknownLetter   — power query for an absent letter.
//   - ErrNegativePower   — Pow with a negative exponent (use Inverse).
//   - ErrZeroDenominator — Fraction over the zero polynomial.
//
// Polynomials are immutable by convention: every operator returns a new
// value, and the only in-place entry points are Update and Append on a
// *Polynomial. Exponent maps are immutable values (package monomial), so
// two polynomials can never share mutable state.
//
// See examples in example_test.go and the walkthroughs under examples/.
package poly
