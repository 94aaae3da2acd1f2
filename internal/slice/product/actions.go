package product

const (
	ActionListRequested    = "ProductListRequested"
	ActionListLoaded       = "ProductListLoaded"
	ActionListFailed       = "ProductListFailed"
	ActionDetailsRequested = "ProductDetailsRequested"
	ActionDetailsLoaded    = "ProductDetailsLoaded"
	ActionDetailsFailed    = "ProductDetailsFailed"
)

type ListRequested struct{}

type ListLoaded struct {
	Products []Product
}

type ListFailed struct {
	Message string
}

type DetailsRequested struct {
	ProductID string
}

type DetailsLoaded struct {
	Product Product
}

type DetailsFailed struct {
	Message string
}

func (ListRequested) ActionType() string    { return ActionListRequested }
func (ListLoaded) ActionType() string       { return ActionListLoaded }
func (ListFailed) ActionType() string       { return ActionListFailed }
func (DetailsRequested) ActionType() string { return ActionDetailsRequested }
func (DetailsLoaded) ActionType() string    { return ActionDetailsLoaded }
func (DetailsFailed) ActionType() string    { return ActionDetailsFailed }
