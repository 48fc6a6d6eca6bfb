package apirequest

// State is a snapshot of a tracker.
//
// Loading is true strictly between the start of an Execute call and the
// moment its result is settled. Success and a non-empty Error are mutually
// exclusive once a call has completed. Data keeps the last successfully
// decoded body and is left untouched by failed calls.
type State[T any] struct {
	Data    *T
	Loading bool
	Success bool
	Error   string
	// StatusCode of the last completed response, 0 if none was received.
	StatusCode int
}

// HasData reports whether a body has ever been decoded successfully.
func (s State[T]) HasData() bool {
	return s.Data != nil
}

// HasError reports whether the most recent call failed.
func (s State[T]) HasError() bool {
	return s.Error != ""
}

func (s State[T]) snapshot() State[T] {
	if s.Data != nil {
		d := *s.Data
		s.Data = &d
	}
	return s
}
