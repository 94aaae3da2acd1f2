package money

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

var ErrInvalidAmount = errors.New("invalid money amount")

// Cents is a currency amount in minor units. All cart and order math is
// done on Cents so that repeated summation never drifts; decimals only
// appear at the parse/format boundary.
type Cents int64

var hundred = decimal.NewFromInt(100)

// FromDecimal parses a decimal currency string ("12.34") into minor
// units. Sub-cent precision is rounded half away from zero, so "5.005"
// becomes 501.
func FromDecimal(s string) (Cents, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidAmount, s)
	}
	return Cents(d.Mul(hundred).Round(0).IntPart()), nil
}

// FromFloat converts a float currency amount into minor units, rounding
// half away from zero.
func FromFloat(f float64) Cents {
	return Cents(decimal.NewFromFloat(f).Mul(hundred).Round(0).IntPart())
}

// Decimal returns the amount as a 2-decimal-place decimal value.
func (c Cents) Decimal() decimal.Decimal {
	return decimal.NewFromInt(int64(c)).Div(hundred)
}

// String formats the amount with exactly two decimal places ("12.34").
func (c Cents) String() string {
	return c.Decimal().StringFixed(2)
}

// Mul multiplies the amount by an integer quantity.
func (c Cents) Mul(qty int) Cents {
	return c * Cents(qty)
}

// Percent returns rate% of the amount, rounded half away from zero to
// whole cents. Percent(6) of 5000 is 300.
func (c Cents) Percent(rate int64) Cents {
	d := decimal.NewFromInt(int64(c)).Mul(decimal.NewFromInt(rate)).Div(hundred)
	return Cents(d.Round(0).IntPart())
}
