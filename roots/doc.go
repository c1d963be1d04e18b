// Package roots finds polynomial roots: closed-form formulas for degrees
// 1 through 4 and iterative numerical methods for everything else.
//
// 🚀 What is in the toolbox?
//
//	Linear, Quadratic, Cubic and Quartic solve the classical formulas;
//	complex roots are returned as values, never treated as errors.
//	Ruffini enumerates the integer roots via divisors of the constant
//	term, exactly. Newton, Halley, Householder and Laguerre iterate from
//	a starting point towards one root; DurandKerner approximates all
//	roots at once; Bisection and Brent search a bracketing interval.
//
// ✨ Key guarantees:
//   - every iteration is bounded: a method that fails to settle within
//     its budget reports ErrNoConvergence instead of spinning
//   - the polynomial is treated purely as something to evaluate and
//     differentiate; nothing here reaches into the core's representation
//   - tolerance and budget are per-call options (WithEpsilon, WithMaxIter)
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/polyalg/roots"
//
//	p, _ := poly.FromIntCoeffs("x", 1, 0, -2)       // x^2 - 2
//	x, _ := roots.Brent(p, 0, 2)                    // ≈ 1.4142135623
//	z, _ := roots.Newton(p, 1+0i, roots.WithEpsilon(1e-9))
//
// Precision:
//
//	The numerical methods work in float64/complex128 and carry the usual
//	floating-point caveats; results are approximations, refined to the
//	configured Epsilon.
//
// Errors:
//
//   - ErrWrongDegree    — a closed-form solver given the wrong degree.
//   - ErrNotUnivariate  — a polynomial with several letters or negative
//     powers, which these methods do not handle.
//   - ErrNoConvergence  — the iteration budget ran out.
//   - ErrNoSignChange   — Bisection or Brent on an interval whose
//     endpoints do not bracket a root.
package roots
