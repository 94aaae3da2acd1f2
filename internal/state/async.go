package state

// Status is the lifecycle phase of an asynchronous slice.
type Status int

const (
	StatusIdle Status = iota
	StatusLoading
	StatusReady
	StatusFailed
)

func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusLoading:
		return "loading"
	case StatusReady:
		return "ready"
	case StatusFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Async is a tagged request-lifecycle variant: Idle, Loading, Ready
// with a value, or Failed with an error message. Invalid combinations
// (loading with an error set, ready without a value) are not
// representable. The zero value is Idle.
type Async[T any] struct {
	status Status
	value  T
	err    string
}

// Loading marks the slice as having an in-flight request.
func Loading[T any]() Async[T] {
	return Async[T]{status: StatusLoading}
}

// Ready marks the slice as successfully loaded with value.
func Ready[T any](value T) Async[T] {
	return Async[T]{status: StatusReady, value: value}
}

// Failed marks the slice as failed with a user-visible message.
func Failed[T any](msg string) Async[T] {
	return Async[T]{status: StatusFailed, err: msg}
}

func (a Async[T]) Status() Status { return a.status }

// Get returns the loaded value; ok is false unless the slice is Ready.
func (a Async[T]) Get() (T, bool) {
	if a.status != StatusReady {
		var zero T
		return zero, false
	}
	return a.value, true
}

// Err returns the failure message; ok is false unless the slice is Failed.
func (a Async[T]) Err() (string, bool) {
	if a.status != StatusFailed {
		return "", false
	}
	return a.err, true
}
