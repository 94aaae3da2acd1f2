package state

// Action is a dispatched state transition trigger. Every slice reducer
// receives every action and switches on its type, updating only the
// partition it owns.
type Action interface {
	ActionType() string
}
