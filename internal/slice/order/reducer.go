package order

import (
	"time"

	"github.com/example/storefront/internal/money"
	"github.com/example/storefront/internal/pricing"
	"github.com/example/storefront/internal/slice/cart"
	"github.com/example/storefront/internal/slice/user"
	"github.com/example/storefront/internal/state"
)

// Order is the read-only projection of a server-created order.
type Order struct {
	ID              string               `json:"id"`
	User            user.Summary         `json:"user"`
	Items           []cart.Item          `json:"items"`
	ShippingAddress cart.ShippingAddress `json:"shipping_address"`
	PaymentMethod   string               `json:"payment_method"`
	ItemsPrice      money.Cents          `json:"items_price"`
	ShippingPrice   money.Cents          `json:"shipping_price"`
	TaxPrice        money.Cents          `json:"tax_price"`
	TotalPrice      money.Cents          `json:"total_price"`
	IsPaid          bool                 `json:"is_paid"`
	PaidAt          *time.Time           `json:"paid_at,omitempty"`
	IsDelivered     bool                 `json:"is_delivered"`
	DeliveredAt     *time.Time           `json:"delivered_at,omitempty"`
}

// Lines converts the order's items into pricing lines.
func (o Order) Lines() []pricing.Line {
	lines := make([]pricing.Line, len(o.Items))
	for i, item := range o.Items {
		lines[i] = item.Line()
	}
	return lines
}

// CreateReducer owns the transient checkout-submission slice.
func CreateReducer(s state.Async[Order], action state.Action) state.Async[Order] {
	switch a := action.(type) {
	case CreateRequested:
		return state.Loading[Order]()
	case CreateSucceeded:
		return state.Ready(a.Order)
	case CreateFailed:
		return state.Failed[Order](a.Message)
	case CreateReset:
		return state.Async[Order]{}
	default:
		return s
	}
}

// DetailsState is the order-review slice. Fetch tracks the lifecycle of
// the most recent request for RequestedID; Held retains the last
// successfully loaded order so a later failure never clobbers it.
type DetailsState struct {
	RequestedID string
	Fetch       state.Async[Order]
	Held        *Order
}

// HeldID returns the identifier of the retained order, or "".
func (s DetailsState) HeldID() string {
	if s.Held == nil {
		return ""
	}
	return s.Held.ID
}

// DetailsReducer applies order-review transitions. Completions carry
// the order identifier they were fetched for: a completion that
// arrives after the requested identifier has moved on is dropped,
// which is the guard against a slow stale response overwriting a newer
// request.
func DetailsReducer(s DetailsState, action state.Action) DetailsState {
	switch a := action.(type) {
	case DetailsRequested:
		s.RequestedID = a.OrderID
		s.Fetch = state.Loading[Order]()
		return s
	case DetailsLoaded:
		if a.Order.ID != s.RequestedID {
			return s
		}
		held := a.Order
		s.Fetch = state.Ready(a.Order)
		s.Held = &held
		return s
	case DetailsFailed:
		if a.OrderID != s.RequestedID {
			return s
		}
		s.Fetch = state.Failed[Order](a.Message)
		return s
	default:
		return s
	}
}
