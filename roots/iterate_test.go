package roots_test

import (
	"math"
	"math/cmplx"
	"testing"

	"github.com/katalvlaran/polyalg/parse"
	"github.com/katalvlaran/polyalg/roots"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewton_RealRoots(t *testing.T) {
	p := parse.MustParse("2x^2 + 5x + 3") // roots -1 and -3/2

	r, err := roots.Newton(p, 10)
	require.NoError(t, err)
	assert.InDelta(t, -1.0, real(r), 1e-9)

	r, err = roots.Newton(p, -2)
	require.NoError(t, err)
	assert.InDelta(t, -1.5, real(r), 1e-9)
}

func TestNewton_ComplexStart(t *testing.T) {
	p := parse.MustParse("x^2 - 3x + 6")

	r, err := roots.Newton(p, complex(100, 1))
	require.NoError(t, err)
	assert.Less(t, cmplx.Abs(r-complex(1.5, 1.9364916731037085)), 1e-9)

	conj, err := roots.Newton(p, complex(100, -1))
	require.NoError(t, err)
	assert.Less(t, cmplx.Abs(conj-complex(1.5, -1.9364916731037085)), 1e-9)
}

func TestNewton_NoConvergence(t *testing.T) {
	// x^2 + 1 from a real start oscillates on the real axis forever
	_, err := roots.Newton(parse.MustParse("x^2 + 1"), 2, roots.WithMaxIter(50))
	assert.ErrorIs(t, err, roots.ErrNoConvergence)
}

func TestHalley(t *testing.T) {
	p := parse.MustParse("x^3 + 4x^2 - x - 4") // roots 1, -1, -4

	for _, tc := range []struct {
		start complex128
		want  float64
	}{
		{90, 1}, {-1, -1}, {-90, -4},
	} {
		r, err := roots.Halley(p, tc.start)
		require.NoError(t, err)
		assert.InDelta(t, tc.want, real(r), 1e-9, "start %v", tc.start)
		assert.InDelta(t, 0, imag(r), 1e-9)
	}
}

func TestHouseholder(t *testing.T) {
	p := parse.MustParse("x^4 + x^3 - 5x^2 + 3x") // (x+3)(x-1)^2 x

	r, err := roots.Householder(p, -100)
	require.NoError(t, err)
	assert.InDelta(t, -3.0, real(r), 1e-6)

	r, err = roots.Householder(p, 2, roots.WithEpsilon(1e-8))
	require.NoError(t, err)
	assert.InDelta(t, 1.0, real(r), 1e-4, "double root converges slowly")
}

func TestLaguerre(t *testing.T) {
	p := parse.MustParse("32x^3 - 123x^2 + 43x + 2")

	r, err := roots.Laguerre(p, 100)
	require.NoError(t, err)
	assert.InDelta(t, 3.448875873899064, real(r), 1e-6)

	r, err = roots.Laguerre(p, -100)
	require.NoError(t, err)
	assert.InDelta(t, -0.041525780509971674, real(r), 1e-6)

	_, err = roots.Laguerre(parse.MustParse("5"), 1)
	assert.ErrorIs(t, err, roots.ErrWrongDegree)
}

func TestDurandKerner(t *testing.T) {
	// (x-1)(x-2)(x-3)
	p := parse.MustParse("x^3 - 6x^2 + 11x - 6")

	got, err := roots.DurandKerner(p)
	require.NoError(t, err)
	assertRoots(t, []complex128{1, 2, 3}, got, 1e-6)
}

func TestDurandKerner_NonMonic(t *testing.T) {
	// 2(x-1/2)(x+2) = 2x^2 + 3x - 2
	p := parse.MustParse("2x^2 + 3x - 2")

	got, err := roots.DurandKerner(p)
	require.NoError(t, err)
	assertRoots(t, []complex128{0.5, -2}, got, 1e-6)
}

func TestDurandKerner_ComplexRoots(t *testing.T) {
	p := parse.MustParse("x^4 + 5x^2 + 4") // roots ±i, ±2i

	got, err := roots.DurandKerner(p)
	require.NoError(t, err)
	assertRoots(t, []complex128{
		complex(0, 1), complex(0, -1), complex(0, 2), complex(0, -2),
	}, got, 1e-6)
}

func TestBisection(t *testing.T) {
	p := parse.MustParse("x^2 - 2")

	r, err := roots.Bisection(p, 0, 2)
	require.NoError(t, err)
	assert.InDelta(t, math.Sqrt2, r, 1e-9)

	_, err = roots.Bisection(p, 3, 4)
	assert.ErrorIs(t, err, roots.ErrNoSignChange)

	// an exact endpoint root returns immediately
	r, err = roots.Bisection(parse.MustParse("x - 1"), 1, 5)
	require.NoError(t, err)
	assert.Equal(t, 1.0, r)
}

func TestBrent(t *testing.T) {
	p := parse.MustParse("x^3 - 4x^2 + 3x - 4")

	r, err := roots.Brent(p, -100, 100)
	require.NoError(t, err)
	assert.InDelta(t, 3.4675038570565078, r, 1e-6)
	assert.InDelta(t, 0, p.EvalFloat(r), 1e-6)

	_, err = roots.Brent(parse.MustParse("x^2 + 1"), -5, 5)
	assert.ErrorIs(t, err, roots.ErrNoSignChange)
}

func TestBrent_TightInterval(t *testing.T) {
	p := parse.MustParse("x^2 - 2")
	r, err := roots.Brent(p, 1, 2)
	require.NoError(t, err)
	assert.InDelta(t, math.Sqrt2, r, 1e-9)
}
