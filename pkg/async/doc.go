// Package async runs a function in its own goroutine and exposes the result
// as a Future.
//
// A panic inside the function is recovered and surfaced as a *PanicError from
// Await, so a misbehaving callback cannot take the process down.
//
//	f := async.Async(ctx, values, submit)
//	res, err := f.AwaitWithTimeout(5 * time.Second)
//	if errors.Is(err, async.ErrTimeout) {
//	    // the goroutine keeps running; only the wait was abandoned
//	}
package async
