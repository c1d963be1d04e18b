// Package roots: the iterative methods — Newton's family, Laguerre,
// Durand-Kerner and the bracketing searches.
package roots

import (
	"math"
	"math/cmplx"

	"github.com/katalvlaran/polyalg/funcs"
	"github.com/katalvlaran/polyalg/poly"
)

// Newton finds one root from the starting point by Newton-Raphson:
//
//	x(n+1) = x(n) - f(x)/f'(x)
//
// A complex start steers towards complex roots.
//
// Errors: ErrNoConvergence.
func Newton(p poly.Polynomial, start complex128, opts ...Option) (complex128, error) {
	o := buildOptions(opts)
	d, err := funcs.Derivative(p)
	if err != nil {
		return 0, err
	}

	x := start
	for i := 0; i < o.maxIter; i++ {
		fx := p.EvalComplex(x)
		if fx == 0 {
			return x, nil
		}
		next := x - fx/d.EvalComplex(x)
		if converged(x, next, o.epsilon) {
			return next, nil
		}
		x = next
	}

	return 0, ErrNoConvergence
}

// Halley finds one root by Halley's method, one order above Newton:
//
//	x(n+1) = x(n) - 2f·f' / (2f'^2 - f·f”)
//
// Errors: ErrNoConvergence.
func Halley(p poly.Polynomial, start complex128, opts ...Option) (complex128, error) {
	o := buildOptions(opts)
	d1, err := funcs.Derivative(p)
	if err != nil {
		return 0, err
	}
	d2, err := funcs.Derivative(p, funcs.WithOrder(2))
	if err != nil {
		return 0, err
	}

	x := start
	for i := 0; i < o.maxIter; i++ {
		fx := p.EvalComplex(x)
		if fx == 0 {
			return x, nil
		}
		f1 := d1.EvalComplex(x)
		next := x - (2*fx*f1)/(2*f1*f1-fx*d2.EvalComplex(x))
		if converged(x, next, o.epsilon) {
			return next, nil
		}
		x = next
	}

	return 0, ErrNoConvergence
}

// Householder finds one root by Householder's second-order method:
//
//	x(n+1) = x(n) - (f/f')·(1 + f·f” / (2f'^2))
//
// Errors: ErrNoConvergence.
func Householder(p poly.Polynomial, start complex128, opts ...Option) (complex128, error) {
	o := buildOptions(opts)
	d1, err := funcs.Derivative(p)
	if err != nil {
		return 0, err
	}
	d2, err := funcs.Derivative(p, funcs.WithOrder(2))
	if err != nil {
		return 0, err
	}

	x := start
	for i := 0; i < o.maxIter; i++ {
		fx := p.EvalComplex(x)
		if fx == 0 {
			return x, nil
		}
		f1 := d1.EvalComplex(x)
		next := x - (fx/f1)*(1+fx*d2.EvalComplex(x)/(2*f1*f1))
		if converged(x, next, o.epsilon) {
			return next, nil
		}
		x = next
	}

	return 0, ErrNoConvergence
}

// Laguerre finds one root by Laguerre's method, which converges from
// almost any start and reaches complex roots from real starts.
//
// Errors: ErrNoConvergence, ErrWrongDegree for constants.
func Laguerre(p poly.Polynomial, start complex128, opts ...Option) (complex128, error) {
	o := buildOptions(opts)
	deg := p.Simplify().Degree()
	if deg < 1 {
		return 0, ErrWrongDegree
	}
	n := complex(float64(deg), 0)

	d1, err := funcs.Derivative(p)
	if err != nil {
		return 0, err
	}
	d2, err := funcs.Derivative(p, funcs.WithOrder(2))
	if err != nil {
		return 0, err
	}

	x := start
	for i := 0; i < o.maxIter; i++ {
		fx := p.EvalComplex(x)
		if fx == 0 {
			return x, nil
		}
		g := d1.EvalComplex(x) / fx
		h := g*g - d2.EvalComplex(x)/fx
		dp := cmplx.Sqrt((n - 1) * (n*h - g*g))
		den := g + dp
		if alt := g - dp; cmplx.Abs(alt) > cmplx.Abs(den) {
			den = alt
		}
		next := x - n/den
		if converged(x, next, o.epsilon) {
			return next, nil
		}
		x = next
	}

	return 0, ErrNoConvergence
}

// DurandKerner approximates all roots simultaneously: each estimate
// steps by the Weierstrass correction against the product of its
// distances to the others. The polynomial is treated as monic by scaling
// with its leading coefficient. Estimates start on the powers of
// 0.4+0.9i, the conventional non-real seed.
//
// Errors: ErrNoConvergence, ErrWrongDegree for constants,
// ErrNotUnivariate.
func DurandKerner(p poly.Polynomial, opts ...Option) ([]complex128, error) {
	o := buildOptions(opts)
	q := p.Simplify()
	cs, err := realCoeffs(q)
	if err != nil {
		return nil, err
	}
	deg := len(cs) - 1
	if deg < 1 {
		return nil, ErrWrongDegree
	}
	lead := complex(cs[deg], 0)

	const seedRe, seedIm = 0.4, 0.9
	seed := complex(seedRe, seedIm)
	estimates := make([]complex128, deg)
	power := complex(1, 0)
	for i := range estimates {
		estimates[i] = power
		power *= seed
	}

	next := make([]complex128, deg)
	for iter := 0; iter < o.maxIter; iter++ {
		settled := true
		for i, r := range estimates {
			prod := complex(1, 0)
			for j, s := range estimates {
				if j != i {
					prod *= r - s
				}
			}
			next[i] = r - q.EvalComplex(r)/(lead*prod)
			if !converged(r, next[i], o.epsilon) {
				settled = false
			}
		}
		copy(estimates, next)
		if settled {
			return estimates, nil
		}
	}

	return nil, ErrNoConvergence
}

// Bisection finds a root inside [a, b] by halving the interval that
// keeps the sign change.
//
// Errors: ErrNoSignChange when f(a) and f(b) share a sign,
// ErrNoConvergence.
func Bisection(p poly.Polynomial, a, b float64, opts ...Option) (float64, error) {
	o := buildOptions(opts)
	fa, fb := p.EvalFloat(a), p.EvalFloat(b)
	if fa == 0 {
		return a, nil
	}
	if fb == 0 {
		return b, nil
	}
	if fa*fb > 0 {
		return 0, ErrNoSignChange
	}

	for i := 0; i < o.maxIter; i++ {
		mid := (a + b) / 2
		fm := p.EvalFloat(mid)
		if fm == 0 || (b-a)/2 < o.epsilon {
			return mid, nil
		}
		if fa*fm < 0 {
			b = mid
		} else {
			a, fa = mid, fm
		}
	}

	return 0, ErrNoConvergence
}

// Brent finds a root inside [a, b] combining inverse quadratic
// interpolation, the secant step and bisection, keeping bisection's
// guarantees with superlinear speed on smooth stretches.
//
// Errors: ErrNoSignChange, ErrNoConvergence.
func Brent(p poly.Polynomial, a, b float64, opts ...Option) (float64, error) {
	o := buildOptions(opts)
	fa, fb := p.EvalFloat(a), p.EvalFloat(b)
	if fa == 0 {
		return a, nil
	}
	if fb == 0 {
		return b, nil
	}
	if fa*fb > 0 {
		return 0, ErrNoSignChange
	}

	if math.Abs(fa) < math.Abs(fb) {
		a, b, fa, fb = b, a, fb, fa
	}
	c, fc := a, fa
	d := c
	bisected := true

	for i := 0; i < o.maxIter; i++ {
		if fb == 0 || math.Abs(b-a) < o.epsilon {
			return b, nil
		}

		var s float64
		if fa != fc && fb != fc {
			// inverse quadratic interpolation
			s = a*fb*fc/((fa-fb)*(fa-fc)) +
				b*fa*fc/((fb-fa)*(fb-fc)) +
				c*fa*fb/((fc-fa)*(fc-fb))
		} else {
			// secant
			s = b - fb*(b-a)/(fb-fa)
		}

		lo, hi := (3*a+b)/4, b
		if lo > hi {
			lo, hi = hi, lo
		}
		outOfBounds := s < lo || s > hi
		slowInterp := bisected && math.Abs(s-b) >= math.Abs(b-c)/2
		slowSecant := !bisected && math.Abs(s-b) >= math.Abs(c-d)/2
		if outOfBounds || slowInterp || slowSecant {
			s = (a + b) / 2
			bisected = true
		} else {
			bisected = false
		}

		fs := p.EvalFloat(s)
		d, c, fc = c, b, fb
		if fa*fs < 0 {
			b, fb = s, fs
		} else {
			a, fa = s, fs
		}
		if math.Abs(fa) < math.Abs(fb) {
			a, b, fa, fb = b, a, fb, fa
		}
	}

	return 0, ErrNoConvergence
}

// converged reports whether the step from x to next is within epsilon.
func converged(x, next complex128, epsilon float64) bool {
	return x == next || cmplx.Abs(next-x) < epsilon
}
