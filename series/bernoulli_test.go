package series_test

import (
	"testing"

	"github.com/katalvlaran/polyalg/numeric"
	"github.com/katalvlaran/polyalg/parse"
	"github.com/katalvlaran/polyalg/series"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBernoulli(t *testing.T) {
	checkSeq(t, "Bernoulli", series.Bernoulli, []string{
		"1",
		"x - 1/2",
		"x^2 - x + 1/6",
		"x^3 - 3/2x^2 + 1/2x",
		"x^4 - 2x^3 + x^2 - 1/30",
		"x^5 - 5/2x^4 + 5/3x^3 - 1/6x",
		"x^6 - 3x^5 + 5/2x^4 - 1/2x^2 + 1/42",
	})

	b16, err := series.Bernoulli(16)
	require.NoError(t, err)
	assert.True(t, b16.Equal(parse.MustParse(
		"x^16 - 8x^15 + 20x^14 - 182/3x^12 + 572/3x^10 - 429x^8 + 1820/3x^6 - 1382/3x^4 + 140x^2 - 3617/510")),
		"Bernoulli(16): got %s", b16)

	_, err = series.Bernoulli(-1)
	assert.ErrorIs(t, err, series.ErrNegativeIndex)
}

func TestEuler(t *testing.T) {
	checkSeq(t, "Euler", series.Euler, []string{
		"1",
		"x - 1/2",
		"x^2 - x",
		"x^3 - 3/2x^2 + 1/4",
		"x^4 - 2x^3 + x",
		"x^5 - 5/2x^4 + 5/2x^2 - 1/2",
	})

	e15, err := series.Euler(15)
	require.NoError(t, err)
	assert.True(t, e15.Equal(parse.MustParse(
		"x^15 - 15/2x^14 + 455/4x^12 - 3003/2x^10 + 109395/8x^8 - 155155/2x^6 + 943215/4x^4 - 573405/2x^2 + 929569/16")),
		"Euler(15): got %s", e15)
}

func TestBernoulliNumber(t *testing.T) {
	cases := []struct {
		m    int
		want numeric.Number
	}{
		{0, numeric.Int(1)},
		{1, numeric.Rat(-1, 2)},
		{2, numeric.Rat(1, 6)},
		{3, numeric.Int(0)},
		{4, numeric.Rat(-1, 30)},
		{6, numeric.Rat(1, 42)},
		{8, numeric.Rat(-1, 30)},
		{10, numeric.Rat(5, 66)},
	}
	for _, c := range cases {
		got, err := series.BernoulliNumber(c.m)
		require.NoError(t, err, "B(%d)", c.m)
		assert.True(t, got.Equal(c.want), "B(%d): got %s, want %s", c.m, got, c.want)
	}

	// The polynomial at 0 carries the same value.
	b6, err := series.Bernoulli(6)
	require.NoError(t, err)
	at0, err := b6.Eval(map[string]numeric.Number{"x": numeric.Int(0)})
	require.NoError(t, err)
	assert.True(t, at0.Equal(numeric.Rat(1, 42)), "Bernoulli(6)(0) must be B(6)")
}

func TestEulerNumber(t *testing.T) {
	cases := []struct {
		m    int
		want int64
	}{
		{0, 1},
		{2, -1},
		{3, 0},
		{4, 5},
		{6, -61},
		{8, 1385},
		{10, -50521},
	}
	for _, c := range cases {
		got, err := series.EulerNumber(c.m)
		require.NoError(t, err, "E(%d)", c.m)
		assert.True(t, got.Equal(numeric.Int(c.want)), "E(%d): got %s, want %d", c.m, got, c.want)
	}
}

func TestGenocchi(t *testing.T) {
	cases := []struct {
		n    int
		want int64
	}{
		{0, 0},
		{1, 1},
		{2, -1},
		{6, -3},
		{8, 17},
		{17, 0},
	}
	for _, c := range cases {
		got, err := series.Genocchi(c.n)
		require.NoError(t, err, "G(%d)", c.n)
		assert.True(t, got.Equal(numeric.Int(c.want)), "G(%d): got %s, want %d", c.n, got, c.want)
	}

	_, err := series.Genocchi(-1)
	assert.ErrorIs(t, err, series.ErrNegativeIndex)
}
