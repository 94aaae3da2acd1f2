package screen

import (
	"context"
	"errors"
	"testing"

	"github.com/example/storefront/internal/remote"
	"github.com/example/storefront/internal/slice/cart"
	"github.com/example/storefront/internal/slice/order"
	"github.com/example/storefront/internal/state"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlaceOrder_GuardRedirectsWithoutPaymentMethod(t *testing.T) {
	st := newTestStore(t)
	ctrl := NewPlaceOrderController(st, &fakeClient{})

	target, redirect := ctrl.Guard()
	assert.True(t, redirect)
	assert.Equal(t, PaymentPath, target)

	st.Dispatch(context.Background(), cart.PaymentMethodSaved{Method: "PayPal"})
	_, redirect = ctrl.Guard()
	assert.False(t, redirect)
}

func TestPlaceOrder_SummaryMatchesCart(t *testing.T) {
	st := newTestStore(t)
	ctrl := NewPlaceOrderController(st, &fakeClient{})
	ctx := context.Background()

	added, err := cart.NewItemAdded(cart.Item{ProductID: "p1", Name: "Widget", Price: 2000, Qty: 3})
	require.NoError(t, err)
	st.Dispatch(ctx, added)

	summary, err := ctrl.Summary()
	require.NoError(t, err)
	assert.EqualValues(t, 6000, summary.Items)
	assert.EqualValues(t, 1000, summary.Shipping)
	assert.EqualValues(t, 360, summary.Tax)
	assert.EqualValues(t, 7360, summary.Total)
}

func TestPlaceOrder_EmptyCartCannotPlace(t *testing.T) {
	st := newTestStore(t)
	ctrl := NewPlaceOrderController(st, &fakeClient{})

	assert.False(t, ctrl.CanPlace())

	err := ctrl.PlaceOrder(context.Background())
	assert.ErrorIs(t, err, ErrCartEmpty)
}

func TestPlaceOrder_SubmitsQuotedSummary(t *testing.T) {
	st := newTestStore(t)
	var submitted remote.OrderDraft
	client := &fakeClient{
		CreateOrderFn: func(ctx context.Context, token string, draft remote.OrderDraft) (order.Order, error) {
			submitted = draft
			return order.Order{ID: "o1", TotalPrice: draft.TotalPrice}, nil
		},
	}
	ctrl := NewPlaceOrderController(st, client)
	ctx := context.Background()

	added, err := cart.NewItemAdded(cart.Item{ProductID: "p1", Name: "Widget", Price: 2000, Qty: 3})
	require.NoError(t, err)
	st.Dispatch(ctx, added)
	st.Dispatch(ctx, cart.PaymentMethodSaved{Method: "PayPal"})

	quoted, err := ctrl.Summary()
	require.NoError(t, err)
	require.NoError(t, ctrl.PlaceOrder(ctx))

	assert.Equal(t, 1, client.CreateOrderCalls)
	assert.Equal(t, quoted.Items, submitted.ItemsPrice)
	assert.Equal(t, quoted.Shipping, submitted.ShippingPrice)
	assert.Equal(t, quoted.Tax, submitted.TaxPrice)
	assert.Equal(t, quoted.Total, submitted.TotalPrice)
	assert.Equal(t, "PayPal", submitted.PaymentMethod)
}

func TestPlaceOrder_NavigationFiresExactlyOnce(t *testing.T) {
	st := newTestStore(t)
	client := &fakeClient{
		CreateOrderFn: func(ctx context.Context, token string, draft remote.OrderDraft) (order.Order, error) {
			return order.Order{ID: "o42"}, nil
		},
	}
	ctrl := NewPlaceOrderController(st, client)
	ctx := context.Background()

	added, err := cart.NewItemAdded(cart.Item{ProductID: "p1", Price: 2000, Qty: 1})
	require.NoError(t, err)
	st.Dispatch(ctx, added)
	st.Dispatch(ctx, cart.PaymentMethodSaved{Method: "PayPal"})

	require.NoError(t, ctrl.PlaceOrder(ctx))

	target, ok := ctrl.Navigation(ctx)
	require.True(t, ok)
	assert.Equal(t, "/order/o42", target)

	// Consuming the redirect reset the create slice and emptied the
	// cart, so a re-evaluated screen cannot replay it.
	assert.Equal(t, state.StatusIdle, st.State().OrderCreate.Status())
	assert.Empty(t, st.State().Cart.Items)

	_, ok = ctrl.Navigation(ctx)
	assert.False(t, ok)
}

func TestPlaceOrder_FailureIsDisplayedNotRetried(t *testing.T) {
	st := newTestStore(t)
	client := &fakeClient{
		CreateOrderFn: func(ctx context.Context, token string, draft remote.OrderDraft) (order.Order, error) {
			return order.Order{}, errors.New("payment declined")
		},
	}
	ctrl := NewPlaceOrderController(st, client)
	ctx := context.Background()

	added, err := cart.NewItemAdded(cart.Item{ProductID: "p1", Price: 2000, Qty: 1})
	require.NoError(t, err)
	st.Dispatch(ctx, added)
	st.Dispatch(ctx, cart.PaymentMethodSaved{Method: "PayPal"})

	require.NoError(t, ctrl.PlaceOrder(ctx))

	msg, failed := ctrl.Error()
	assert.True(t, failed)
	assert.Equal(t, "payment declined", msg)
	assert.Equal(t, 1, client.CreateOrderCalls)

	// No navigation after a failure, and the cart is intact.
	_, ok := ctrl.Navigation(ctx)
	assert.False(t, ok)
	assert.Len(t, st.State().Cart.Items, 1)
}
