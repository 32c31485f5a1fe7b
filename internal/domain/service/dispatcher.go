package service

// Dispatcher is the serial execution context that owns presentation state.
type Dispatcher interface {
	// Dispatch schedules fn and returns immediately
	Dispatch(fn func())

	// Sync runs fn and waits for it to finish
	Sync(fn func())
}
