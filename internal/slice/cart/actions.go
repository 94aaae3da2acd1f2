package cart

import (
	"errors"

	"github.com/example/storefront/internal/money"
)

const (
	ActionItemAdded            = "CartItemAdded"
	ActionItemRemoved          = "CartItemRemoved"
	ActionShippingAddressSaved = "CartShippingAddressSaved"
	ActionPaymentMethodSaved   = "CartPaymentMethodSaved"
	ActionCleared              = "CartCleared"
)

var (
	ErrInvalidQuantity = errors.New("quantity must be at least 1")
	ErrInvalidPrice    = errors.New("price must not be negative")
	ErrInvalidProduct  = errors.New("product id is required")
)

type ItemAdded struct {
	Item Item
}

// NewItemAdded validates the line at the point it enters the cart, so
// the pricing derivation never sees a negative price or zero quantity.
func NewItemAdded(item Item) (ItemAdded, error) {
	if item.ProductID == "" {
		return ItemAdded{}, ErrInvalidProduct
	}
	if item.Qty < 1 {
		return ItemAdded{}, ErrInvalidQuantity
	}
	if item.Price < money.Cents(0) {
		return ItemAdded{}, ErrInvalidPrice
	}
	return ItemAdded{Item: item}, nil
}

type ItemRemoved struct {
	ProductID string
}

type ShippingAddressSaved struct {
	Address ShippingAddress
}

type PaymentMethodSaved struct {
	Method string
}

type Cleared struct{}

func (ItemAdded) ActionType() string            { return ActionItemAdded }
func (ItemRemoved) ActionType() string          { return ActionItemRemoved }
func (ShippingAddressSaved) ActionType() string { return ActionShippingAddressSaved }
func (PaymentMethodSaved) ActionType() string   { return ActionPaymentMethodSaved }
func (Cleared) ActionType() string              { return ActionCleared }
