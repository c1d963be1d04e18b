// Package roots: closed-form solvers for degrees 1 through 4 and the
// integer-root search.
package roots

import (
	"math/cmplx"
	"sort"

	"github.com/katalvlaran/polyalg/numeric"
	"github.com/katalvlaran/polyalg/poly"
)

// realCoeffs flattens a univariate polynomial into its coefficient list,
// ascending by power: out[k] is the coefficient of letter^k.
func realCoeffs(p poly.Polynomial) ([]float64, error) {
	letters := p.Letters()
	if len(letters) > 1 {
		return nil, ErrNotUnivariate
	}
	letter := "x"
	if len(letters) == 1 {
		letter = letters[0]
	}

	deg := p.Degree()
	if deg < 0 {
		deg = 0
	}
	out := make([]float64, deg+1)
	for _, m := range p.Monomials() {
		power := m.Exps.Get(letter)
		if power < 0 {
			return nil, ErrNotUnivariate
		}
		out[power] += m.Coeff.Float64()
	}

	return out, nil
}

// degreeCoeffs is realCoeffs with a degree requirement: the polynomial
// must have exactly degree want after dropping zero terms.
func degreeCoeffs(p poly.Polynomial, want int) ([]float64, error) {
	q := p.Simplify()
	if q.Degree() != want {
		return nil, ErrWrongDegree
	}

	return realCoeffs(q)
}

// Linear solves bx + c = 0: the single root -c/b.
//
// Errors: ErrWrongDegree, ErrNotUnivariate.
func Linear(p poly.Polynomial) (float64, error) {
	c, err := degreeCoeffs(p, 1)
	if err != nil {
		return 0, err
	}

	return -c[0] / c[1], nil
}

// Quadratic solves ax^2 + bx + c = 0 by the quadratic formula. The two
// roots come back as complex128; a negative discriminant is a value, not
// an error.
//
// Errors: ErrWrongDegree, ErrNotUnivariate.
func Quadratic(p poly.Polynomial) ([]complex128, error) {
	c, err := degreeCoeffs(p, 2)
	if err != nil {
		return nil, err
	}
	r := solveQuadratic(complex(c[2], 0), complex(c[1], 0), complex(c[0], 0))

	return r[:], nil
}

// Cubic solves ax^3 + bx^2 + cx + d = 0 by Cardano's formula, carried
// out in complex arithmetic throughout so every discriminant case takes
// the same path.
//
// Errors: ErrWrongDegree, ErrNotUnivariate.
func Cubic(p poly.Polynomial) ([]complex128, error) {
	c, err := degreeCoeffs(p, 3)
	if err != nil {
		return nil, err
	}
	a := complex(c[3], 0)
	r := solveCubicMonic(
		complex(c[2], 0)/a,
		complex(c[1], 0)/a,
		complex(c[0], 0)/a,
	)

	return r[:], nil
}

// Quartic solves ax^4 + bx^3 + cx^2 + dx + e = 0 by Ferrari's method:
// depress the quartic, factor it through a resolvent-cubic root into two
// quadratics, and solve those.
//
// Errors: ErrWrongDegree, ErrNotUnivariate.
func Quartic(p poly.Polynomial) ([]complex128, error) {
	cs, err := degreeCoeffs(p, 4)
	if err != nil {
		return nil, err
	}
	a := complex(cs[4], 0)
	b := complex(cs[3], 0) / a
	c := complex(cs[2], 0) / a
	d := complex(cs[1], 0) / a
	e := complex(cs[0], 0) / a

	// depress: x = y - b/4 turns the quartic into y^4 + py^2 + qy + r
	pp := c - 3*b*b/8
	q := d - b*c/2 + b*b*b/8
	r := e - b*d/4 + b*b*c/16 - 3*b*b*b*b/256
	shift := -b / 4

	if cmplx.Abs(q) == 0 {
		// biquadratic: y^2 solves z^2 + pz + r
		zs := solveQuadratic(1, pp, r)
		y0, y1 := cmplx.Sqrt(zs[0]), cmplx.Sqrt(zs[1])

		return []complex128{
			y0 + shift, -y0 + shift,
			y1 + shift, -y1 + shift,
		}, nil
	}

	// resolvent: u^3 + 2p·u^2 + (p^2-4r)·u - q^2 = 0; u = alpha^2 for the
	// factorization (y^2+alpha·y+beta)(y^2-alpha·y+gamma)
	us := solveCubicMonic(2*pp, pp*pp-4*r, -q*q)
	u := us[0]
	for _, cand := range us[1:] {
		if cmplx.Abs(cand) > cmplx.Abs(u) {
			u = cand
		}
	}
	alpha := cmplx.Sqrt(u)
	beta := (pp + u - q/alpha) / 2
	gamma := (pp + u + q/alpha) / 2

	first := solveQuadratic(1, alpha, beta)
	second := solveQuadratic(1, -alpha, gamma)

	return []complex128{
		first[0] + shift, first[1] + shift,
		second[0] + shift, second[1] + shift,
	}, nil
}

// solveQuadratic solves az^2 + bz + c = 0 over the complex numbers.
func solveQuadratic(a, b, c complex128) [2]complex128 {
	s := cmplx.Sqrt(b*b - 4*a*c)

	return [2]complex128{(-b + s) / (2 * a), (-b - s) / (2 * a)}
}

// solveCubicMonic solves z^3 + bz^2 + cz + d = 0 by Cardano's formula.
func solveCubicMonic(b, c, d complex128) [3]complex128 {
	d0 := b*b - 3*c
	d1 := 2*b*b*b - 9*b*c + 27*d

	s := cmplx.Sqrt(d1*d1 - 4*d0*d0*d0)
	big := cbrt((d1 + s) / 2)
	if alt := cbrt((d1 - s) / 2); cmplx.Abs(alt) > cmplx.Abs(big) {
		big = alt
	}
	if cmplx.Abs(big) == 0 {
		// d0 and d1 both vanish: a triple root
		root := -b / 3

		return [3]complex128{root, root, root}
	}

	const omegaRe, omegaIm = -0.5, 0.8660254037844386
	omega := complex(omegaRe, omegaIm)

	var out [3]complex128
	cc := big
	for k := 0; k < 3; k++ {
		out[k] = -(b + cc + d0/cc) / 3
		cc *= omega
	}

	return out
}

// cbrt returns the principal complex cube root.
func cbrt(z complex128) complex128 {
	if z == 0 {
		return 0
	}

	return cmplx.Pow(z, 1.0/3.0)
}

// Ruffini returns the integer roots of the polynomial, found by testing
// the divisors of the constant term, positive and negative, with exact
// arithmetic. A polynomial without a constant term yields no candidates
// and an empty result.
func Ruffini(p poly.Polynomial) ([]int64, error) {
	letters := p.Letters()
	if len(letters) > 1 {
		return nil, ErrNotUnivariate
	}

	rhs, ok := p.RightHandSide()
	if !ok {
		return nil, nil
	}
	n, ok := rhs.Int64()
	if !ok {
		return nil, nil
	}
	if n < 0 {
		n = -n
	}

	letter := "x"
	if len(letters) == 1 {
		letter = letters[0]
	}

	var found []int64
	for _, c := range divisors(n) {
		for _, cand := range []int64{c, -c} {
			v, err := p.Eval(map[string]numeric.Number{letter: numeric.Int(cand)})
			if err != nil {
				return nil, err
			}
			if v.IsZero() {
				found = append(found, cand)
			}
		}
	}
	sort.Slice(found, func(i, j int) bool { return found[i] < found[j] })

	return found, nil
}

// divisors returns the positive divisors of n > 0.
func divisors(n int64) []int64 {
	var out []int64
	for d := int64(1); d*d <= n; d++ {
		if n%d == 0 {
			out = append(out, d)
			if q := n / d; q != d {
				out = append(out, q)
			}
		}
	}

	return out
}
