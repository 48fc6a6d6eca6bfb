// Package async provides a small generic Future for running one computation
// in the background and collecting its result later.
//
// Go starts a function in its own goroutine and returns a *Future
// immediately. The caller keeps working and later calls Await or
// AwaitContext, or polls IsComplete. Resolved wraps a result that is already
// known, for failures detected before any work starts.
//
// Go always runs the function, even with a cancelled context, so code that
// must observe every completion, such as a state tracker that flips a loading
// flag back off, can settle inside it.
//
// # Usage
//
//	future := async.Go(ctx, func(ctx context.Context) (string, error) {
//	    return fetch(ctx)
//	})
//
//	// do other work
//	res, err := future.Await()
//
// # Error Handling
//
// Futures return the error produced by the callback. A recovered panic is
// reported as ErrPanic. AwaitContext returns ctx.Err() when the wait is
// abandoned; the computation keeps running.
package async
