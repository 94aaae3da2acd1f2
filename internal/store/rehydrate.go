package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/example/storefront/internal/auth"
	"github.com/example/storefront/internal/slice/cart"
	"github.com/example/storefront/internal/slice/user"
	"github.com/example/storefront/internal/storage"
)

// Persisted is what survives a restart: the three independently
// optional entries read back from storage.
type Persisted struct {
	CartItems       []cart.Item
	ShippingAddress cart.ShippingAddress
	UserInfo        *user.Info
}

// CorruptError reports a persisted entry that exists but does not
// deserialize. The composer reacts by falling back to the default for
// that key and clearing it; it is never silently swallowed here.
type CorruptError struct {
	Key string
	Err error
}

func (e *CorruptError) Error() string {
	return fmt.Sprintf("corrupt persisted entry %q: %v", e.Key, e.Err)
}

func (e *CorruptError) Unwrap() error { return e.Err }

// LoadPersisted reads the three persisted keys. Absent keys yield
// type-appropriate defaults; a present but malformed payload returns a
// *CorruptError naming the key. A session whose token has already
// expired is reported as absent, since presenting it to the API could
// only fail.
func LoadPersisted(ctx context.Context, st storage.Storage, now time.Time) (Persisted, error) {
	p := Persisted{CartItems: []cart.Item{}}

	if err := loadKey(ctx, st, storage.KeyCartItems, &p.CartItems); err != nil {
		return Persisted{}, err
	}
	if err := loadKey(ctx, st, storage.KeyShippingAddress, &p.ShippingAddress); err != nil {
		return Persisted{}, err
	}

	var info user.Info
	err := loadKey(ctx, st, storage.KeyUserInfo, &info)
	if err != nil {
		return Persisted{}, err
	}
	if info != (user.Info{}) && !auth.TokenExpired(info.Token, now) {
		p.UserInfo = &info
	}

	return p, nil
}

// loadKey decodes one optional entry into out, leaving it untouched
// when the key is absent.
func loadKey(ctx context.Context, st storage.Storage, key string, out any) error {
	data, err := st.Get(ctx, key)
	if errors.Is(err, storage.ErrNotFound) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("read %q: %w", key, err)
	}
	if err := json.Unmarshal(data, out); err != nil {
		return &CorruptError{Key: key, Err: err}
	}
	return nil
}
