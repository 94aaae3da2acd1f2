package store

import (
	"github.com/example/storefront/internal/slice/cart"
	"github.com/example/storefront/internal/slice/order"
	"github.com/example/storefront/internal/slice/product"
	"github.com/example/storefront/internal/slice/user"
	"github.com/example/storefront/internal/state"
)

// RootState is the aggregate of every slice. Each slice owns only its
// named partition; cross-slice data flows through reads of the root,
// never through one reducer touching another's field.
type RootState struct {
	ProductList       state.Async[[]product.Product]
	ProductDetails    state.Async[product.Product]
	Cart              cart.State
	UserLogin         state.Async[user.Info]
	UserRegister      state.Async[user.Info]
	UserDetails       state.Async[user.Profile]
	UserUpdateProfile state.Async[user.Info]
	OrderCreate       state.Async[order.Order]
	OrderDetails      order.DetailsState
}

// reduce applies the action to every slice reducer. The cart reducer
// carries the merge policy, so it lives on the store rather than being
// a package function.
func (s *Store) reduce(root RootState, action state.Action) RootState {
	return RootState{
		ProductList:       product.ListReducer(root.ProductList, action),
		ProductDetails:    product.DetailsReducer(root.ProductDetails, action),
		Cart:              s.cartReduce(root.Cart, action),
		UserLogin:         user.LoginReducer(root.UserLogin, action),
		UserRegister:      user.RegisterReducer(root.UserRegister, action),
		UserDetails:       user.DetailsReducer(root.UserDetails, action),
		UserUpdateProfile: user.UpdateProfileReducer(root.UserUpdateProfile, action),
		OrderCreate:       order.CreateReducer(root.OrderCreate, action),
		OrderDetails:      order.DetailsReducer(root.OrderDetails, action),
	}
}
