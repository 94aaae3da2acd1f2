// Package screen holds the per-screen controllers: explicit transition
// functions driven by event-loop ticks, decoupled from any rendering.
package screen

import (
	"context"

	"github.com/example/storefront/internal/money"
	"github.com/example/storefront/internal/pricing"
	"github.com/example/storefront/internal/remote"
	"github.com/example/storefront/internal/slice/order"
	"github.com/example/storefront/internal/state"
	"github.com/example/storefront/internal/store"
)

// OrderController drives the order-review screen.
type OrderController struct {
	store  *store.Store
	client remote.Client
}

func NewOrderController(st *store.Store, client remote.Client) *OrderController {
	return &OrderController{store: st, client: client}
}

// OrderView is what the order-review screen renders. Order is only
// meaningful when Status is Ready. ItemsPrice is recomputed from the
// order's own lines rather than trusted from the stored projection.
type OrderView struct {
	Status     state.Status
	Error      string
	Order      order.Order
	ItemsPrice money.Cents
}

// Sync is the screen's tick: it issues a fetch when the requested
// order is absent or stale (the held identifier differs from the one
// asked for), and reports whether a fetch was dispatched. A screen
// sitting in Loading, Ready or Failed for the same identifier does
// nothing; in particular a failure is never retried automatically —
// that is what Reload is for.
func (c *OrderController) Sync(ctx context.Context, orderID string) bool {
	details := c.store.State().OrderDetails
	if details.RequestedID == orderID && details.Fetch.Status() != state.StatusIdle {
		return false
	}

	c.fetch(ctx, orderID)
	return true
}

// Reload is the user's explicit re-trigger after a failure.
func (c *OrderController) Reload(ctx context.Context, orderID string) {
	c.fetch(ctx, orderID)
}

func (c *OrderController) fetch(ctx context.Context, orderID string) {
	c.store.Dispatch(ctx, order.DetailsRequested{OrderID: orderID})

	token := sessionToken(c.store)
	o, err := c.client.GetOrder(ctx, token, orderID)
	if err != nil {
		c.store.Dispatch(ctx, order.DetailsFailed{OrderID: orderID, Message: err.Error()})
		return
	}
	c.store.Dispatch(ctx, order.DetailsLoaded{Order: o})
}

// View derives the display-ready order state. Dependent fields like
// the items-price overlay are only computed once the fetch is Ready.
func (c *OrderController) View() OrderView {
	details := c.store.State().OrderDetails
	view := OrderView{Status: details.Fetch.Status()}

	if msg, failed := details.Fetch.Err(); failed {
		view.Error = msg
		return view
	}

	o, ready := details.Fetch.Get()
	if !ready {
		return view
	}

	view.Order = o
	view.ItemsPrice = o.ItemsPrice
	if summary, err := pricing.Compute(o.Lines()); err == nil {
		view.ItemsPrice = summary.Items
	}
	return view
}

func sessionToken(st *store.Store) string {
	if info, ok := st.State().UserLogin.Get(); ok {
		return info.Token
	}
	return ""
}
