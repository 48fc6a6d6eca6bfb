// Package apirequest wraps a JSON HTTP call with loading/success/error state
// tracking for UI code.
//
// A Tracker is created once with a default request description (Params) and
// then executed any number of times. Each Execute call may override any
// subset of the defaults through Option values; overrides are never stored on
// the tracker.
//
// # State machine
//
// A tracker moves idle -> loading -> success | error:
//
//   - Execute sets Loading=true, Success=false and clears Error before it
//     returns, so a caller reading State right after Execute always sees the
//     request as in flight.
//   - The request runs in its own goroutine (the only point where anything
//     waits). On a 2xx response the body is JSON-decoded into T and stored in
//     Data with Success=true.
//   - Transport errors, non-2xx statuses, oversize bodies and decode errors
//     set Error to a descriptive message and leave Data as it was.
//   - The result fields and Loading=false are written in one locked update;
//     readers never see Loading=false next to in-flight values.
//
// Nothing is retried and the tracker adds no timeout of its own: deadlines
// come from the http.Client (see Config) or the caller's context.
//
// # Usage
//
//	type User struct {
//	    ID   int    `json:"id"`
//	    Name string `json:"name"`
//	}
//
//	users := apirequest.New[User](apirequest.Params{URL: "https://api.example.com/users/1"},
//	    apirequest.WithLogger(log),
//	)
//
//	users.Subscribe(func(s apirequest.State[User]) {
//	    render(s)
//	})
//
//	users.Execute(ctx)                                   // GET defaults
//	users.Execute(ctx, apirequest.WithMethod("PUT"),     // one-off override
//	    apirequest.WithBody(User{ID: 1, Name: "Ann"}))
//
// # Concurrency
//
// Trackers are safe for concurrent use, but overlapping Execute calls are
// independent: none is cancelled, and whichever completes last determines the
// final state. Disable the trigger while IsLoading reports true if that
// matters. Subscribers receive snapshots in the order the changes were made.
//
// # Error Handling
//
// State.Error holds the message only. The future returned by Execute (and
// Do) yields the wrapped error, which matches ErrInvalidURL, ErrEncodeBody,
// ErrRequestFailed, ErrUnexpectedStatus (as *StatusError), ErrDecodeResponse
// or ErrResponseTooLarge with errors.Is. A panic while building, sending or
// decoding a request matches async.ErrPanic and settles the state like any
// other failure.
package apirequest
