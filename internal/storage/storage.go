// Package storage is the durable key-value collaborator the store
// rehydrates from at startup and writes back to after cart, shipping
// and session mutations.
package storage

import (
	"context"
	"errors"
)

const (
	KeyCartItems       = "cartItems"
	KeyShippingAddress = "shippingAddress"
	KeyUserInfo        = "userInfo"
)

var ErrNotFound = errors.New("key not found")

// Storage is a flat string-keyed byte store. Values are JSON payloads;
// the store layer owns (de)serialization. Implementations must treat
// Get of an absent key as ErrNotFound rather than an empty value.
type Storage interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}
