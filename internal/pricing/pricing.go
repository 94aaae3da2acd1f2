package pricing

import (
	"errors"

	"github.com/example/storefront/internal/money"
)

var (
	ErrInvalidQty   = errors.New("line quantity must be at least 1")
	ErrInvalidPrice = errors.New("line price must not be negative")
)

const (
	// Orders strictly above this amount ship for free.
	freeShippingThreshold = money.Cents(10000)
	flatShippingPrice     = money.Cents(1000)
	taxRatePercent        = 6
)

// Line is one product+quantity+price entry of a cart or order.
type Line struct {
	UnitPrice money.Cents
	Qty       int
}

// Summary holds the derived price breakdown of a cart or order.
type Summary struct {
	Items    money.Cents
	Shipping money.Cents
	Tax      money.Cents
	Total    money.Cents
}

// Validate rejects lines that would make the derivation meaningless.
func (l Line) Validate() error {
	if l.Qty < 1 {
		return ErrInvalidQty
	}
	if l.UnitPrice < 0 {
		return ErrInvalidPrice
	}
	return nil
}

// Subtotal returns price multiplied by quantity for a single line.
func (l Line) Subtotal() money.Cents {
	return l.UnitPrice.Mul(l.Qty)
}

// Compute derives the full price summary for a set of lines. It is
// pure and deterministic; callers recompute it on every cart change so
// the quoted summary is always the one submitted. Shipping is free
// only strictly above 100.00: an items price of exactly 100.00 still
// pays the flat rate. Tax is 6% of the items price, rounded half away
// from zero to whole cents.
func Compute(lines []Line) (Summary, error) {
	var items money.Cents
	for _, l := range lines {
		if err := l.Validate(); err != nil {
			return Summary{}, err
		}
		items += l.Subtotal()
	}

	shipping := flatShippingPrice
	if items > freeShippingThreshold {
		shipping = 0
	}

	tax := items.Percent(taxRatePercent)

	return Summary{
		Items:    items,
		Shipping: shipping,
		Tax:      tax,
		Total:    items + shipping + tax,
	}, nil
}
