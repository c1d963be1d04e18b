package numeric_test

import (
	"math"
	"math/big"
	"testing"

	"github.com/katalvlaran/polyalg/numeric"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNumber_ZeroValue verifies the zero value behaves as the integer 0.
func TestNumber_ZeroValue(t *testing.T) {
	var n numeric.Number

	assert.True(t, n.IsZero(), "zero value must be zero")
	assert.Equal(t, numeric.KindInt, n.Kind(), "zero value must be an integer")
	assert.Equal(t, "0", n.String())
}

// TestNumber_RatNormalization checks that whole-valued rationals collapse
// to integers on every construction path.
func TestNumber_RatNormalization(t *testing.T) {
	assert.Equal(t, numeric.KindInt, numeric.Rat(4, 2).Kind(), "4/2 must collapse to Int(2)")
	assert.True(t, numeric.Rat(4, 2).Equal(numeric.Int(2)))

	r := big.NewRat(10, 5)
	assert.Equal(t, numeric.KindInt, numeric.FromRat(r).Kind(), "10/5 must collapse to Int(2)")

	assert.Equal(t, numeric.KindRat, numeric.Rat(1, 3).Kind(), "1/3 must stay rational")
}

// TestNumber_Promotion verifies int → rational → float promotion in
// mixed-kind arithmetic.
func TestNumber_Promotion(t *testing.T) {
	sum := numeric.Int(1).Add(numeric.Rat(1, 2))
	assert.Equal(t, numeric.KindRat, sum.Kind(), "int + rat must be rat")
	assert.True(t, sum.Equal(numeric.Rat(3, 2)))

	prod := numeric.Rat(1, 2).Mul(numeric.Float(2))
	assert.Equal(t, numeric.KindFloat, prod.Kind(), "rat * float must be float")
	assert.Equal(t, 1.0, prod.Float64())
}

// TestNumber_OverflowPromotes verifies that integer arithmetic past the
// int64 range promotes to the rational kind instead of wrapping.
func TestNumber_OverflowPromotes(t *testing.T) {
	big40 := numeric.Int(1 << 40)

	prod := big40.Mul(big40)
	assert.Equal(t, numeric.KindRat, prod.Kind(), "2^40 * 2^40 must leave int64")
	want := new(big.Rat).SetInt(new(big.Int).Lsh(big.NewInt(1), 80))
	assert.True(t, prod.Equal(numeric.FromRat(want)), "2^40 * 2^40 must be exactly 2^80")

	maxInt := numeric.Int(math.MaxInt64)
	sum := maxInt.Add(maxInt)
	assert.Equal(t, numeric.KindRat, sum.Kind(), "MaxInt64 + MaxInt64 must leave int64")
	assert.True(t, sum.Equal(maxInt.Mul(numeric.Int(2))))

	neg := numeric.Int(math.MinInt64).Neg()
	assert.Equal(t, 1, neg.Sign(), "-MinInt64 must be positive")
	assert.True(t, neg.Equal(numeric.Int(math.MaxInt64).Add(numeric.Int(1))))

	back := prod.Sub(prod)
	assert.True(t, back.IsZero())
	assert.Equal(t, numeric.KindInt, back.Kind(), "whole results collapse back to Int")
}

// TestNumber_ExactDivision checks that integer division stays exact:
// divisible pairs stay integer, the rest become rationals.
func TestNumber_ExactDivision(t *testing.T) {
	q, err := numeric.Int(6).Div(numeric.Int(3))
	require.NoError(t, err)
	assert.Equal(t, numeric.KindInt, q.Kind(), "6/3 must be Int")
	assert.True(t, q.Equal(numeric.Int(2)))

	q, err = numeric.Int(1).Div(numeric.Int(3))
	require.NoError(t, err)
	assert.Equal(t, numeric.KindRat, q.Kind(), "1/3 must be Rat")
	assert.Equal(t, "1/3", q.String())
}

// TestNumber_DivisionByZero verifies Div surfaces ErrDivisionByZero.
func TestNumber_DivisionByZero(t *testing.T) {
	_, err := numeric.Int(1).Div(numeric.Int(0))
	assert.ErrorIs(t, err, numeric.ErrDivisionByZero)

	_, err = numeric.Float(1).Div(numeric.Float(0))
	assert.ErrorIs(t, err, numeric.ErrDivisionByZero, "float zero divisor must also error")
}

// TestNumber_CrossKindEquality verifies Cmp/Equal compare numerically
// across kinds.
func TestNumber_CrossKindEquality(t *testing.T) {
	assert.True(t, numeric.Int(1).Equal(numeric.Float(1)))
	assert.True(t, numeric.Rat(3, 2).Equal(numeric.Float(1.5)))
	assert.Equal(t, -1, numeric.Rat(1, 3).Cmp(numeric.Rat(1, 2)))
	assert.Equal(t, 1, numeric.Int(1).Cmp(numeric.Rat(1, 2)))
}

// TestNumber_SignAbsNeg covers Sign, Abs and Neg across kinds.
func TestNumber_SignAbsNeg(t *testing.T) {
	assert.Equal(t, -1, numeric.Int(-4).Sign())
	assert.Equal(t, 1, numeric.Rat(1, 7).Sign())
	assert.Equal(t, 0, numeric.Float(0).Sign())
	assert.True(t, numeric.Int(-4).Abs().Equal(numeric.Int(4)))
	assert.True(t, numeric.Rat(-1, 2).Neg().Equal(numeric.Rat(1, 2)))
}

// TestNumber_Int64 checks whole-number detection per kind.
func TestNumber_Int64(t *testing.T) {
	v, ok := numeric.Int(7).Int64()
	assert.True(t, ok)
	assert.Equal(t, int64(7), v)

	_, ok = numeric.Rat(1, 3).Int64()
	assert.False(t, ok, "1/3 is not whole")

	v, ok = numeric.Float(2).Int64()
	assert.True(t, ok, "2.0 is whole")
	assert.Equal(t, int64(2), v)

	_, ok = numeric.Float(2.5).Int64()
	assert.False(t, ok)
}

// TestGCDInt_LCMInt covers the integer helpers used by the monomial
// content computation.
func TestGCDInt_LCMInt(t *testing.T) {
	assert.Equal(t, int64(3), numeric.GCDInt(3, -9))
	assert.Equal(t, int64(1), numeric.GCDInt(7, 13))
	assert.Equal(t, int64(0), numeric.GCDInt(0, 0))
	assert.Equal(t, int64(9), numeric.LCMInt(3, -9))
	assert.Equal(t, int64(0), numeric.LCMInt(0, 5))
}
