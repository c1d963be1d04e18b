package series_test

import (
	"testing"

	"github.com/katalvlaran/polyalg/numeric"
	"github.com/katalvlaran/polyalg/parse"
	"github.com/katalvlaran/polyalg/poly"
	"github.com/katalvlaran/polyalg/series"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// gen adapts a generator for the table tests below.
type gen func(int) (poly.Polynomial, error)

func checkSeq(t *testing.T, name string, g gen, want []string) {
	t.Helper()
	for n, s := range want {
		got, err := g(n)
		require.NoError(t, err, "%s(%d)", name, n)
		assert.True(t, got.Equal(parse.MustParse(s)), "%s(%d): got %s, want %s", name, n, got, s)
	}
}

func TestFibonacci(t *testing.T) {
	checkSeq(t, "Fibonacci", series.Fibonacci, []string{
		"", "1", "x", "x^2 + 1", "x^3 + 2x", "x^4 + 3x^2 + 1", "x^5 + 4x^3 + 3x",
	})
}

func TestLucas(t *testing.T) {
	checkSeq(t, "Lucas", series.Lucas, []string{
		"2", "x", "x^2 + 2", "x^3 + 3x", "x^4 + 4x^2 + 2",
	})

	l14, err := series.Lucas(14)
	require.NoError(t, err)
	assert.True(t, l14.Equal(parse.MustParse(
		"x^14 + 14x^12 + 77x^10 + 210x^8 + 294x^6 + 196x^4 + 49x^2 + 2")))
}

func TestPellFamily(t *testing.T) {
	checkSeq(t, "Pell", series.Pell, []string{
		"", "1", "2x", "4x^2 + 1", "8x^3 + 4x",
	})
	checkSeq(t, "PellLucas", series.PellLucas, []string{
		"2", "2x", "4x^2 + 2",
	})
}

func TestJacobsthalFamily(t *testing.T) {
	checkSeq(t, "Jacobsthal", series.Jacobsthal, []string{
		"", "1", "1", "2x + 1", "4x + 1", "4x^2 + 6x + 1",
	})
	checkSeq(t, "JacobsthalLucas", series.JacobsthalLucas, []string{
		"2", "1", "4x + 1", "6x + 1", "8x^2 + 8x + 1",
	})
}

func TestFermatFamily(t *testing.T) {
	checkSeq(t, "Fermat", series.Fermat, []string{
		"", "1", "3x", "9x^2 - 2", "27x^3 - 12x",
	})
	checkSeq(t, "FermatLucas", series.FermatLucas, []string{
		"2", "3x", "9x^2 - 4", "27x^3 - 18x",
	})
}

func TestChebyshev(t *testing.T) {
	checkSeq(t, "ChebyshevT", series.ChebyshevT, []string{
		"1", "x", "2x^2 - 1", "4x^3 - 3x", "8x^4 - 8x^2 + 1", "16x^5 - 20x^3 + 5x",
	})
	checkSeq(t, "ChebyshevU", series.ChebyshevU, []string{
		"1", "2x", "4x^2 - 1", "8x^3 - 4x", "16x^4 - 12x^2 + 1",
	})
}

// TestChebyshevT_TrigIdentity: T(n) at cos(θ) equals cos(n·θ), probed at
// a rational point instead of floats: T(3)(1/2) = cos(3·π/3) = -1.
func TestChebyshevT_TrigIdentity(t *testing.T) {
	t3, err := series.ChebyshevT(3)
	require.NoError(t, err)
	v, err := t3.Eval(map[string]numeric.Number{"x": numeric.Rat(1, 2)})
	require.NoError(t, err)
	assert.True(t, v.Equal(numeric.Int(-1)))
}

func TestLucasSeq_Engine(t *testing.T) {
	// Fibonacci numbers fall out of the engine with constant parameters
	fib := []int64{0, 1, 1, 2, 3, 5, 8, 13, 21}
	for n, want := range fib {
		got, err := series.LucasSeq(n, poly.One(), poly.One(), poly.Zero(), poly.One())
		require.NoError(t, err)
		assert.True(t, got.Equal(poly.FromInt(want)), "engine Fibonacci %d", n)
	}

	_, err := series.LucasSeq(-1, poly.X(), poly.One(), poly.Zero(), poly.One())
	assert.ErrorIs(t, err, series.ErrNegativeIndex)
}

func TestNegativeIndex(t *testing.T) {
	for name, g := range map[string]gen{
		"Fibonacci":   series.Fibonacci,
		"ChebyshevT":  series.ChebyshevT,
		"HermiteProb": series.HermiteProb,
		"Laguerre":    series.Laguerre,
		"Touchard":    series.Touchard,
	} {
		_, err := g(-3)
		assert.ErrorIs(t, err, series.ErrNegativeIndex, name)
	}
}
