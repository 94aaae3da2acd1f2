package product

import (
	"github.com/example/storefront/internal/money"
	"github.com/example/storefront/internal/state"
)

type Product struct {
	ID           string      `json:"id"`
	Name         string      `json:"name"`
	Image        string      `json:"image"`
	Description  string      `json:"description"`
	Brand        string      `json:"brand"`
	Category     string      `json:"category"`
	Price        money.Cents `json:"price"`
	CountInStock int         `json:"count_in_stock"`
}

// ListReducer handles the product catalogue slice.
func ListReducer(s state.Async[[]Product], action state.Action) state.Async[[]Product] {
	switch a := action.(type) {
	case ListRequested:
		return state.Loading[[]Product]()
	case ListLoaded:
		return state.Ready(a.Products)
	case ListFailed:
		return state.Failed[[]Product](a.Message)
	default:
		return s
	}
}

// DetailsReducer handles the single-product slice.
func DetailsReducer(s state.Async[Product], action state.Action) state.Async[Product] {
	switch a := action.(type) {
	case DetailsRequested:
		return state.Loading[Product]()
	case DetailsLoaded:
		return state.Ready(a.Product)
	case DetailsFailed:
		return state.Failed[Product](a.Message)
	default:
		return s
	}
}
