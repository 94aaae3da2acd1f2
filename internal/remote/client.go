// Package remote is the HTTP client for the storefront API. It owns no
// retry policy: a failed call is surfaced once, verbatim, and the user
// re-triggers the screen that wanted the data.
package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/example/storefront/internal/money"
	"github.com/example/storefront/internal/slice/cart"
	"github.com/example/storefront/internal/slice/order"
	"github.com/example/storefront/internal/slice/product"
	"github.com/example/storefront/internal/slice/user"
)

// OrderDraft is the checkout submission payload. The prices are the
// client's own derivation; the API rejects drafts whose items do not
// add up.
type OrderDraft struct {
	Items           []cart.Item          `json:"items"`
	ShippingAddress cart.ShippingAddress `json:"shipping_address"`
	PaymentMethod   string               `json:"payment_method"`
	ItemsPrice      money.Cents          `json:"items_price"`
	ShippingPrice   money.Cents          `json:"shipping_price"`
	TaxPrice        money.Cents          `json:"tax_price"`
	TotalPrice      money.Cents          `json:"total_price"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type UpdateProfileRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password,omitempty"`
}

// Client is what the screen controllers fetch through.
type Client interface {
	ListProducts(ctx context.Context) ([]product.Product, error)
	GetProduct(ctx context.Context, id string) (product.Product, error)
	Login(ctx context.Context, req LoginRequest) (user.Info, error)
	Register(ctx context.Context, req RegisterRequest) (user.Info, error)
	GetProfile(ctx context.Context, token string) (user.Profile, error)
	UpdateProfile(ctx context.Context, token string, req UpdateProfileRequest) (user.Info, error)
	CreateOrder(ctx context.Context, token string, draft OrderDraft) (order.Order, error)
	GetOrder(ctx context.Context, token, id string) (order.Order, error)
}

// HTTPClient talks JSON to the storefront API. Error bodies follow the
// `{"detail": message}` convention and the detail is surfaced as the
// error text so slices can display it as-is.
type HTTPClient struct {
	baseURL string
	client  *http.Client
}

func NewHTTPClient(baseURL string) *HTTPClient {
	return &HTTPClient{
		baseURL: baseURL,
		client:  &http.Client{Timeout: 15 * time.Second},
	}
}

func (c *HTTPClient) ListProducts(ctx context.Context) ([]product.Product, error) {
	var products []product.Product
	err := c.do(ctx, http.MethodGet, "/api/products", "", nil, &products)
	return products, err
}

func (c *HTTPClient) GetProduct(ctx context.Context, id string) (product.Product, error) {
	var p product.Product
	err := c.do(ctx, http.MethodGet, "/api/products/"+id, "", nil, &p)
	return p, err
}

func (c *HTTPClient) Login(ctx context.Context, req LoginRequest) (user.Info, error) {
	var info user.Info
	err := c.do(ctx, http.MethodPost, "/api/users/login", "", req, &info)
	return info, err
}

func (c *HTTPClient) Register(ctx context.Context, req RegisterRequest) (user.Info, error) {
	var info user.Info
	err := c.do(ctx, http.MethodPost, "/api/users", "", req, &info)
	return info, err
}

func (c *HTTPClient) GetProfile(ctx context.Context, token string) (user.Profile, error) {
	var profile user.Profile
	err := c.do(ctx, http.MethodGet, "/api/users/profile", token, nil, &profile)
	return profile, err
}

func (c *HTTPClient) UpdateProfile(ctx context.Context, token string, req UpdateProfileRequest) (user.Info, error) {
	var info user.Info
	err := c.do(ctx, http.MethodPut, "/api/users/profile", token, req, &info)
	return info, err
}

func (c *HTTPClient) CreateOrder(ctx context.Context, token string, draft OrderDraft) (order.Order, error) {
	var o order.Order
	err := c.do(ctx, http.MethodPost, "/api/orders", token, draft, &o)
	return o, err
}

func (c *HTTPClient) GetOrder(ctx context.Context, token, id string) (order.Order, error) {
	var o order.Order
	err := c.do(ctx, http.MethodGet, "/api/orders/"+id, token, nil, &o)
	return o, err
}

func (c *HTTPClient) do(ctx context.Context, method, path, token string, body, out any) error {
	var reqBody *bytes.Buffer
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reqBody = bytes.NewBuffer(data)
	} else {
		reqBody = &bytes.Buffer{}
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return decodeError(resp)
	}

	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

func decodeError(resp *http.Response) error {
	var payload struct {
		Detail string `json:"detail"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err == nil && payload.Detail != "" {
		return fmt.Errorf("%s", payload.Detail)
	}
	return fmt.Errorf("request failed with status %d", resp.StatusCode)
}
