package product

import (
	"testing"

	"github.com/example/storefront/internal/state"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListReducer_Lifecycle(t *testing.T) {
	var s state.Async[[]Product]

	s = ListReducer(s, ListRequested{})
	assert.Equal(t, state.StatusLoading, s.Status())

	s = ListReducer(s, ListLoaded{Products: []Product{{ID: "p1", Name: "Widget"}}})
	require.Equal(t, state.StatusReady, s.Status())

	products, ok := s.Get()
	require.True(t, ok)
	assert.Equal(t, "Widget", products[0].Name)
}

func TestListReducer_Failure(t *testing.T) {
	s := ListReducer(state.Loading[[]Product](), ListFailed{Message: "connection refused"})

	assert.Equal(t, state.StatusFailed, s.Status())
	msg, ok := s.Err()
	require.True(t, ok)
	assert.Equal(t, "connection refused", msg)
}

func TestListReducer_IgnoresForeignActions(t *testing.T) {
	loaded := ListReducer(state.Loading[[]Product](), ListLoaded{Products: []Product{{ID: "p1"}}})

	s := ListReducer(loaded, DetailsRequested{ProductID: "p1"})
	assert.Equal(t, loaded, s)
}

func TestDetailsReducer_Lifecycle(t *testing.T) {
	var s state.Async[Product]

	s = DetailsReducer(s, DetailsRequested{ProductID: "p1"})
	assert.Equal(t, state.StatusLoading, s.Status())

	s = DetailsReducer(s, DetailsLoaded{Product: Product{ID: "p1", Price: 1999}})
	p, ok := s.Get()
	require.True(t, ok)
	assert.EqualValues(t, 1999, p.Price)

	s = DetailsReducer(s, DetailsRequested{ProductID: "p2"})
	assert.Equal(t, state.StatusLoading, s.Status())
}
