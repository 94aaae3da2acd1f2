package screen

import (
	"context"
	"errors"

	"github.com/example/storefront/internal/remote"
	"github.com/example/storefront/internal/slice/order"
	"github.com/example/storefront/internal/slice/product"
	"github.com/example/storefront/internal/slice/user"
)

// fakeClient implements remote.Client with per-call hooks and call
// counters, in the spirit of the storage test fakes.
type fakeClient struct {
	GetOrderCalls    int
	CreateOrderCalls int

	GetOrderFn    func(ctx context.Context, token, id string) (order.Order, error)
	CreateOrderFn func(ctx context.Context, token string, draft remote.OrderDraft) (order.Order, error)
}

func (f *fakeClient) GetOrder(ctx context.Context, token, id string) (order.Order, error) {
	f.GetOrderCalls++
	if f.GetOrderFn != nil {
		return f.GetOrderFn(ctx, token, id)
	}
	return order.Order{}, errors.New("unexpected GetOrder call")
}

func (f *fakeClient) CreateOrder(ctx context.Context, token string, draft remote.OrderDraft) (order.Order, error) {
	f.CreateOrderCalls++
	if f.CreateOrderFn != nil {
		return f.CreateOrderFn(ctx, token, draft)
	}
	return order.Order{}, errors.New("unexpected CreateOrder call")
}

func (f *fakeClient) ListProducts(ctx context.Context) ([]product.Product, error) {
	return nil, errors.New("unexpected ListProducts call")
}

func (f *fakeClient) GetProduct(ctx context.Context, id string) (product.Product, error) {
	return product.Product{}, errors.New("unexpected GetProduct call")
}

func (f *fakeClient) Login(ctx context.Context, req remote.LoginRequest) (user.Info, error) {
	return user.Info{}, errors.New("unexpected Login call")
}

func (f *fakeClient) Register(ctx context.Context, req remote.RegisterRequest) (user.Info, error) {
	return user.Info{}, errors.New("unexpected Register call")
}

func (f *fakeClient) GetProfile(ctx context.Context, token string) (user.Profile, error) {
	return user.Profile{}, errors.New("unexpected GetProfile call")
}

func (f *fakeClient) UpdateProfile(ctx context.Context, token string, req remote.UpdateProfileRequest) (user.Info, error) {
	return user.Info{}, errors.New("unexpected UpdateProfile call")
}
