package screen

import (
	"context"
	"errors"
	"testing"

	"github.com/example/storefront/internal/slice/cart"
	"github.com/example/storefront/internal/slice/order"
	"github.com/example/storefront/internal/slice/user"
	"github.com/example/storefront/internal/state"
	"github.com/example/storefront/internal/storage"
	"github.com/example/storefront/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *store.Store {
	t.Helper()
	s, err := store.New(context.Background(), store.Config{Storage: storage.NewMemory()})
	require.NoError(t, err)
	return s
}

func serverOrder(id string) order.Order {
	return order.Order{
		ID:            id,
		Items:         []cart.Item{{ProductID: "p1", Name: "Widget", Price: 2000, Qty: 3}},
		ItemsPrice:    6000,
		ShippingPrice: 1000,
		TaxPrice:      360,
		TotalPrice:    7360,
	}
}

func TestOrderController_SyncFetchesAbsentOrder(t *testing.T) {
	st := newTestStore(t)
	var statusDuringFetch state.Status
	client := &fakeClient{
		GetOrderFn: func(ctx context.Context, token, id string) (order.Order, error) {
			statusDuringFetch = st.State().OrderDetails.Fetch.Status()
			return serverOrder(id), nil
		},
	}
	ctrl := NewOrderController(st, client)

	fetched := ctrl.Sync(context.Background(), "o5")

	assert.True(t, fetched)
	assert.Equal(t, 1, client.GetOrderCalls)
	// The request transition was applied before the fetch ran.
	assert.Equal(t, state.StatusLoading, statusDuringFetch)

	view := ctrl.View()
	assert.Equal(t, state.StatusReady, view.Status)
	assert.Equal(t, "o5", view.Order.ID)
}

func TestOrderController_SyncRefetchesOnIdentifierChange(t *testing.T) {
	st := newTestStore(t)
	client := &fakeClient{
		GetOrderFn: func(ctx context.Context, token, id string) (order.Order, error) {
			return serverOrder(id), nil
		},
	}
	ctrl := NewOrderController(st, client)
	ctx := context.Background()

	require.True(t, ctrl.Sync(ctx, "o3"))
	require.True(t, ctrl.Sync(ctx, "o5"))
	assert.Equal(t, 2, client.GetOrderCalls)

	// Same identifier again: no further fetch.
	assert.False(t, ctrl.Sync(ctx, "o5"))
	assert.Equal(t, 2, client.GetOrderCalls)
}

func TestOrderController_FailureKeepsHeldOrderAndIsNotRetried(t *testing.T) {
	st := newTestStore(t)
	client := &fakeClient{
		GetOrderFn: func(ctx context.Context, token, id string) (order.Order, error) {
			if id == "o3" {
				return serverOrder("o3"), nil
			}
			return order.Order{}, errors.New("order not found")
		},
	}
	ctrl := NewOrderController(st, client)
	ctx := context.Background()

	require.True(t, ctrl.Sync(ctx, "o3"))
	require.True(t, ctrl.Sync(ctx, "o5"))

	view := ctrl.View()
	assert.Equal(t, state.StatusFailed, view.Status)
	assert.Equal(t, "order not found", view.Error)

	// Previously held order data is untouched by the failure.
	details := st.State().OrderDetails
	require.NotNil(t, details.Held)
	assert.Equal(t, "o3", details.Held.ID)

	// Ticking again does not auto-retry a failed fetch.
	assert.False(t, ctrl.Sync(ctx, "o5"))
	assert.Equal(t, 2, client.GetOrderCalls)

	// An explicit reload does.
	ctrl.Reload(ctx, "o5")
	assert.Equal(t, 3, client.GetOrderCalls)
}

func TestOrderController_ViewRecomputesItemsPriceOverlay(t *testing.T) {
	st := newTestStore(t)
	client := &fakeClient{
		GetOrderFn: func(ctx context.Context, token, id string) (order.Order, error) {
			o := serverOrder(id)
			// Stored projection disagrees with its own lines.
			o.ItemsPrice = 9999
			return o, nil
		},
	}
	ctrl := NewOrderController(st, client)

	require.True(t, ctrl.Sync(context.Background(), "o1"))

	view := ctrl.View()
	require.Equal(t, state.StatusReady, view.Status)
	assert.EqualValues(t, 6000, view.ItemsPrice)
}

func TestOrderController_ViewExposesNothingWhileLoadingOrFailed(t *testing.T) {
	st := newTestStore(t)
	ctrl := NewOrderController(st, &fakeClient{})
	ctx := context.Background()

	st.Dispatch(ctx, order.DetailsRequested{OrderID: "o1"})
	view := ctrl.View()
	assert.Equal(t, state.StatusLoading, view.Status)
	assert.Empty(t, view.Order.ID)
	assert.Zero(t, view.ItemsPrice)

	st.Dispatch(ctx, order.DetailsFailed{OrderID: "o1", Message: "boom"})
	view = ctrl.View()
	assert.Equal(t, state.StatusFailed, view.Status)
	assert.Empty(t, view.Order.ID)
}

func TestOrderController_FetchUsesSessionToken(t *testing.T) {
	st := newTestStore(t)
	var seenToken string
	client := &fakeClient{
		GetOrderFn: func(ctx context.Context, token, id string) (order.Order, error) {
			seenToken = token
			return serverOrder(id), nil
		},
	}
	st.Dispatch(context.Background(), user.LoginSucceeded{Info: user.Info{ID: "u1", Token: "tok-123"}})

	NewOrderController(st, client).Sync(context.Background(), "o1")
	assert.Equal(t, "tok-123", seenToken)
}
