package screen

import (
	"context"
	"errors"

	"github.com/example/storefront/internal/pricing"
	"github.com/example/storefront/internal/remote"
	"github.com/example/storefront/internal/slice/cart"
	"github.com/example/storefront/internal/slice/order"
	"github.com/example/storefront/internal/store"
)

var (
	ErrCartEmpty       = errors.New("cart is empty")
	ErrNoPaymentMethod = errors.New("no payment method selected")
)

const (
	PaymentPath = "/payment"
	orderPath   = "/order/"
)

// PlaceOrderController drives the checkout-review screen.
type PlaceOrderController struct {
	store  *store.Store
	client remote.Client
}

func NewPlaceOrderController(st *store.Store, client remote.Client) *PlaceOrderController {
	return &PlaceOrderController{store: st, client: client}
}

// Guard returns the redirect target when the screen's preconditions do
// not hold: checkout review requires a chosen payment method.
func (c *PlaceOrderController) Guard() (string, bool) {
	if c.store.State().Cart.PaymentMethod == "" {
		return PaymentPath, true
	}
	return "", false
}

// Summary recomputes the price breakdown from the current cart. It is
// derived on every call, never cached, so the quote shown is always
// the quote submitted.
func (c *PlaceOrderController) Summary() (pricing.Summary, error) {
	return pricing.Compute(c.store.State().Cart.Lines())
}

// CanPlace reports whether the Place Order button is enabled.
func (c *PlaceOrderController) CanPlace() bool {
	return len(c.store.State().Cart.Items) > 0
}

// Error returns the failure message of the last submission, if any.
func (c *PlaceOrderController) Error() (string, bool) {
	return c.store.State().OrderCreate.Err()
}

// PlaceOrder submits the cart as an order draft carrying the same
// derived summary the screen displays. Failures land in the create
// slice for display; they are not retried.
func (c *PlaceOrderController) PlaceOrder(ctx context.Context) error {
	root := c.store.State()
	if len(root.Cart.Items) == 0 {
		return ErrCartEmpty
	}
	if root.Cart.PaymentMethod == "" {
		return ErrNoPaymentMethod
	}

	summary, err := pricing.Compute(root.Cart.Lines())
	if err != nil {
		return err
	}

	draft := remote.OrderDraft{
		Items:           root.Cart.Items,
		ShippingAddress: root.Cart.ShippingAddress,
		PaymentMethod:   root.Cart.PaymentMethod,
		ItemsPrice:      summary.Items,
		ShippingPrice:   summary.Shipping,
		TaxPrice:        summary.Tax,
		TotalPrice:      summary.Total,
	}

	c.store.Dispatch(ctx, order.CreateRequested{})

	created, err := c.client.CreateOrder(ctx, sessionToken(c.store), draft)
	if err != nil {
		c.store.Dispatch(ctx, order.CreateFailed{Message: err.Error()})
		return nil
	}
	c.store.Dispatch(ctx, order.CreateSucceeded{Order: created})
	return nil
}

// Navigation consumes the post-submission redirect. It fires exactly
// once per successful submission: consuming it resets the transient
// create slice and empties the cart, so a re-evaluated screen cannot
// replay the redirect or resubmit the same items.
func (c *PlaceOrderController) Navigation(ctx context.Context) (string, bool) {
	created, ok := c.store.State().OrderCreate.Get()
	if !ok {
		return "", false
	}

	c.store.Dispatch(ctx, order.CreateReset{})
	c.store.Dispatch(ctx, cart.Cleared{})
	return orderPath + created.ID, true
}
