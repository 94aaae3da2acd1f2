package money

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromDecimal(t *testing.T) {
	c, err := FromDecimal("12.34")
	require.NoError(t, err)
	assert.Equal(t, Cents(1234), c)

	c, err = FromDecimal("100")
	require.NoError(t, err)
	assert.Equal(t, Cents(10000), c)

	c, err = FromDecimal("0")
	require.NoError(t, err)
	assert.Equal(t, Cents(0), c)
}

func TestFromDecimal_HalfCentRoundsAwayFromZero(t *testing.T) {
	c, err := FromDecimal("5.005")
	require.NoError(t, err)
	assert.Equal(t, Cents(501), c)

	c, err = FromDecimal("-5.005")
	require.NoError(t, err)
	assert.Equal(t, Cents(-501), c)
}

func TestFromDecimal_Invalid(t *testing.T) {
	_, err := FromDecimal("not-a-number")
	assert.ErrorIs(t, err, ErrInvalidAmount)

	_, err = FromDecimal("")
	assert.ErrorIs(t, err, ErrInvalidAmount)
}

func TestFromFloat(t *testing.T) {
	assert.Equal(t, Cents(2000), FromFloat(20.00))
	assert.Equal(t, Cents(999), FromFloat(9.99))
}

func TestString(t *testing.T) {
	assert.Equal(t, "12.34", Cents(1234).String())
	assert.Equal(t, "0.00", Cents(0).String())
	assert.Equal(t, "10.00", Cents(1000).String())
	assert.Equal(t, "0.05", Cents(5).String())
}

func TestPercent(t *testing.T) {
	// 6% of 50.00 is 3.00
	assert.Equal(t, Cents(300), Cents(5000).Percent(6))
	// 6% of 0.25 is 0.015, rounds up to 0.02
	assert.Equal(t, Cents(2), Cents(25).Percent(6))
	// 6% of 0.08 is 0.0048, rounds down to 0.00
	assert.Equal(t, Cents(0), Cents(8).Percent(6))
}

func TestMul(t *testing.T) {
	assert.Equal(t, Cents(6000), Cents(2000).Mul(3))
}
