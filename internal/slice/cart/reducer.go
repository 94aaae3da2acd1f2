package cart

import (
	"github.com/example/storefront/internal/money"
	"github.com/example/storefront/internal/pricing"
	"github.com/example/storefront/internal/state"
)

// Item is one line of the cart: a product reference plus quantity and
// the unit price it was added at.
type Item struct {
	ProductID string      `json:"product_id"`
	Name      string      `json:"name"`
	Image     string      `json:"image"`
	Price     money.Cents `json:"price"`
	Qty       int         `json:"qty"`
}

// Line converts the item into a pricing line.
func (i Item) Line() pricing.Line {
	return pricing.Line{UnitPrice: i.Price, Qty: i.Qty}
}

type ShippingAddress struct {
	Address    string `json:"address"`
	City       string `json:"city"`
	PostalCode string `json:"postal_code"`
	Country    string `json:"country"`
}

// Empty reports whether no shipping address has been saved yet.
func (a ShippingAddress) Empty() bool {
	return a == ShippingAddress{}
}

// State is the cart partition of the root state. Items keep their add
// order.
type State struct {
	Items           []Item          `json:"items"`
	ShippingAddress ShippingAddress `json:"shipping_address"`
	PaymentMethod   string          `json:"payment_method"`
}

// Lines converts the cart contents into pricing lines.
func (s State) Lines() []pricing.Line {
	lines := make([]pricing.Line, len(s.Items))
	for i, item := range s.Items {
		lines[i] = item.Line()
	}
	return lines
}

// MergePolicy controls what adding an already-carted product does.
type MergePolicy int

const (
	// MergeByProduct folds a repeated add into the existing line and
	// keeps the most recent unit price.
	MergeByProduct MergePolicy = iota
	// DuplicateLines appends every add as its own line.
	DuplicateLines
)

// Reducer is the transition function for the cart slice. The policy is
// fixed at construction; the returned function is pure and never
// mutates its input state.
func Reducer(policy MergePolicy) func(State, state.Action) State {
	return func(s State, action state.Action) State {
		switch a := action.(type) {
		case ItemAdded:
			return s.withItems(addItem(s.Items, a.Item, policy))
		case ItemRemoved:
			return s.withItems(removeItem(s.Items, a.ProductID))
		case ShippingAddressSaved:
			next := s
			next.Items = cloneItems(s.Items)
			next.ShippingAddress = a.Address
			return next
		case PaymentMethodSaved:
			next := s
			next.Items = cloneItems(s.Items)
			next.PaymentMethod = a.Method
			return next
		case Cleared:
			return s.withItems([]Item{})
		default:
			return s
		}
	}
}

func (s State) withItems(items []Item) State {
	next := s
	next.Items = items
	return next
}

func cloneItems(items []Item) []Item {
	out := make([]Item, len(items))
	copy(out, items)
	return out
}

func addItem(items []Item, item Item, policy MergePolicy) []Item {
	out := cloneItems(items)
	if policy == MergeByProduct {
		for i, existing := range out {
			if existing.ProductID == item.ProductID {
				existing.Qty += item.Qty
				existing.Price = item.Price
				out[i] = existing
				return out
			}
		}
	}
	return append(out, item)
}

func removeItem(items []Item, productID string) []Item {
	out := make([]Item, 0, len(items))
	for _, item := range items {
		if item.ProductID != productID {
			out = append(out, item)
		}
	}
	return out
}
