package order

const (
	ActionCreateRequested  = "OrderCreateRequested"
	ActionCreateSucceeded  = "OrderCreateSucceeded"
	ActionCreateFailed     = "OrderCreateFailed"
	ActionCreateReset      = "OrderCreateReset"
	ActionDetailsRequested = "OrderDetailsRequested"
	ActionDetailsLoaded    = "OrderDetailsLoaded"
	ActionDetailsFailed    = "OrderDetailsFailed"
)

type CreateRequested struct{}

type CreateSucceeded struct {
	Order Order
}

type CreateFailed struct {
	Message string
}

// CreateReset returns the transient create slice to Idle after the
// post-checkout redirect has been consumed.
type CreateReset struct{}

type DetailsRequested struct {
	OrderID string
}

type DetailsLoaded struct {
	Order Order
}

type DetailsFailed struct {
	OrderID string
	Message string
}

func (CreateRequested) ActionType() string  { return ActionCreateRequested }
func (CreateSucceeded) ActionType() string  { return ActionCreateSucceeded }
func (CreateFailed) ActionType() string     { return ActionCreateFailed }
func (CreateReset) ActionType() string      { return ActionCreateReset }
func (DetailsRequested) ActionType() string { return ActionDetailsRequested }
func (DetailsLoaded) ActionType() string    { return ActionDetailsLoaded }
func (DetailsFailed) ActionType() string    { return ActionDetailsFailed }
