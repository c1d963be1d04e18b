package roots_test

import (
	"math"
	"math/cmplx"
	"sort"
	"testing"

	"github.com/katalvlaran/polyalg/parse"
	"github.com/katalvlaran/polyalg/poly"
	"github.com/katalvlaran/polyalg/roots"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// assertRoots checks that got and want contain the same complex values
// up to tolerance, order-independent.
func assertRoots(t *testing.T, want, got []complex128, tol float64) {
	t.Helper()
	require.Len(t, got, len(want))

	used := make([]bool, len(got))
	for _, w := range want {
		found := false
		for i, g := range got {
			if !used[i] && cmplx.Abs(g-w) < tol {
				used[i] = true
				found = true

				break
			}
		}
		assert.True(t, found, "missing root %v in %v", w, got)
	}
}

// assertVanishes checks every returned root against the polynomial.
func assertVanishes(t *testing.T, p poly.Polynomial, got []complex128, tol float64) {
	t.Helper()
	for _, r := range got {
		assert.Less(t, cmplx.Abs(p.EvalComplex(r)), tol, "p(%v) must vanish", r)
	}
}

func TestLinear(t *testing.T) {
	r, err := roots.Linear(parse.MustParse("2x - 6"))
	require.NoError(t, err)
	assert.InDelta(t, 3.0, r, 1e-12)

	_, err = roots.Linear(parse.MustParse("x^2"))
	assert.ErrorIs(t, err, roots.ErrWrongDegree)
}

func TestQuadratic_RealRoots(t *testing.T) {
	got, err := roots.Quadratic(parse.MustParse("x^2 - 4"))
	require.NoError(t, err)
	assertRoots(t, []complex128{2, -2}, got, 1e-12)

	got, err = roots.Quadratic(parse.MustParse("2x^2 + 3x + 1"))
	require.NoError(t, err)
	assertRoots(t, []complex128{-0.5, -1}, got, 1e-12)
}

func TestQuadratic_ComplexRoots(t *testing.T) {
	p := parse.MustParse("-4x^2 + 5x - 3")
	got, err := roots.Quadratic(p)
	require.NoError(t, err)
	assertRoots(t, []complex128{
		complex(0.625, -0.5994789404140899),
		complex(0.625, 0.5994789404140899),
	}, got, 1e-9)
	assertVanishes(t, p, got, 1e-9)
}

func TestQuadratic_WrongDegree(t *testing.T) {
	_, err := roots.Quadratic(parse.MustParse("x^3"))
	assert.ErrorIs(t, err, roots.ErrWrongDegree)

	// a quadratic-looking sum that cancels to lower degree
	_, err = roots.Quadratic(parse.MustParse("x^2 - x^2 + x"))
	assert.ErrorIs(t, err, roots.ErrWrongDegree)
}

func TestQuadratic_Multivariate(t *testing.T) {
	_, err := roots.Quadratic(parse.MustParse("x^2 + y^2"))
	assert.ErrorIs(t, err, roots.ErrNotUnivariate)
}

func TestCubic(t *testing.T) {
	p := parse.MustParse("x^3 + x^2 + x + 1")
	got, err := roots.Cubic(p)
	require.NoError(t, err)
	assertRoots(t, []complex128{-1, complex(0, 1), complex(0, -1)}, got, 1e-9)
	assertVanishes(t, p, got, 1e-9)
}

func TestCubic_ThreeRealRoots(t *testing.T) {
	// (x-1)(x-2)(x-3)
	p := parse.MustParse("x^3 - 6x^2 + 11x - 6")
	got, err := roots.Cubic(p)
	require.NoError(t, err)
	assertRoots(t, []complex128{1, 2, 3}, got, 1e-9)
}

func TestCubic_TripleRoot(t *testing.T) {
	// (x-2)^3
	p := parse.MustParse("x^3 - 6x^2 + 12x - 8")
	got, err := roots.Cubic(p)
	require.NoError(t, err)
	assertRoots(t, []complex128{2, 2, 2}, got, 1e-6)
}

func TestQuartic(t *testing.T) {
	// (x-1)(x-2)(x-3)(x-4)
	p := parse.MustParse("x^4 - 10x^3 + 35x^2 - 50x + 24")
	got, err := roots.Quartic(p)
	require.NoError(t, err)
	assertRoots(t, []complex128{1, 2, 3, 4}, got, 1e-8)
	assertVanishes(t, p, got, 1e-6)
}

func TestQuartic_Biquadratic(t *testing.T) {
	// x^4 - 5x^2 + 4 = (x^2-1)(x^2-4)
	p := parse.MustParse("x^4 - 5x^2 + 4")
	got, err := roots.Quartic(p)
	require.NoError(t, err)
	assertRoots(t, []complex128{1, -1, 2, -2}, got, 1e-9)
}

func TestQuartic_ComplexPairs(t *testing.T) {
	// (x^2+1)(x^2+4)
	p := parse.MustParse("x^4 + 5x^2 + 4")
	got, err := roots.Quartic(p)
	require.NoError(t, err)
	assertRoots(t, []complex128{
		complex(0, 1), complex(0, -1), complex(0, 2), complex(0, -2),
	}, got, 1e-9)
}

func TestRuffini(t *testing.T) {
	got, err := roots.Ruffini(parse.MustParse("x^4 + 5x^3 + 5x^2 - 5x - 6"))
	require.NoError(t, err)
	assert.Equal(t, []int64{-1, 1}, got)

	got, err = roots.Ruffini(parse.MustParse("x^3 + 6x^2 + 11x + 6"))
	require.NoError(t, err)
	assert.Equal(t, []int64{-3, -2, -1}, got)

	// no integer roots
	got, err = roots.Ruffini(parse.MustParse("x^2 + 7x + 18"))
	require.NoError(t, err)
	assert.Empty(t, got)

	// no constant term: no candidates to test
	got, err = roots.Ruffini(parse.MustParse("x^2 + x"))
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestRuffini_NonMonic(t *testing.T) {
	// 2x - 6 has integer root 3, a divisor of 6
	got, err := roots.Ruffini(parse.MustParse("2x - 6"))
	require.NoError(t, err)
	assert.Equal(t, []int64{3}, got)
}

// TestQuartic_RandomResiduals cross-checks the closed form on a spread
// of fixed polynomials by residual magnitude only.
func TestQuartic_RandomResiduals(t *testing.T) {
	for _, s := range []string{
		"x^4 - 1",
		"2x^4 + 3x^3 - x + 5",
		"x^4 + x^3 + x^2 + x + 1",
		"3x^4 - 7x^2 + 2x - 9",
	} {
		p := parse.MustParse(s)
		got, err := roots.Quartic(p)
		require.NoError(t, err, s)
		require.Len(t, got, 4, s)

		residuals := make([]float64, len(got))
		for i, r := range got {
			residuals[i] = cmplx.Abs(p.EvalComplex(r))
		}
		sort.Float64s(residuals)
		assert.Less(t, residuals[len(residuals)-1], 1e-6,
			"%s: worst residual %v", s, residuals[len(residuals)-1])
	}
}

func TestCubic_ResidualSpread(t *testing.T) {
	for _, s := range []string{
		"3x^3 - 2x^2 + 45x - 1",
		"-9x^3 + 12x^2 - 2x - 34",
		"-x^3 + x^2 + 1",
	} {
		p := parse.MustParse(s)
		got, err := roots.Cubic(p)
		require.NoError(t, err, s)
		for _, r := range got {
			assert.Less(t, cmplx.Abs(p.EvalComplex(r)), 1e-6, "%s at %v", s, r)
		}
	}
}

func TestLinear_NonIntegerRoot(t *testing.T) {
	r, err := roots.Linear(parse.MustParse("3x + 1"))
	require.NoError(t, err)
	assert.InDelta(t, -1.0/3.0, r, 1e-12)
	assert.False(t, math.IsNaN(r))
}
