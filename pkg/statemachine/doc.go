// Package statemachine provides a small generic finite-state machine with
// guarded transitions and side-effect actions.
//
// States and events are any comparable types, typically string-based
// enumerations declared by the caller:
//
//	type Status string
//	type Event string
//
//	m := statemachine.MustNew[Status, Event]("idle",
//	    statemachine.WithTransition[Status, Event]("idle", "submitting", "submit"),
//	    statemachine.WithTransition[Status, Event]("submitting", "done", "resolve"),
//	)
//	_ = m.Fire(ctx, "submit", nil)
//
// # Guards and Actions
//
// Several transitions may be registered for the same state and event. They
// are tried in registration order and the first one whose guards all pass
// wins. Its actions then run in order; an action error aborts the transition
// and leaves the current state unchanged.
//
// # Error Handling
//
//	if statemachine.IsNoTransitionAvailableError(err) { /* not defined */ }
//	if statemachine.IsTransitionRejectedError(err)   { /* vetoed by guards */ }
//
// # Concurrency
//
// Machine is safe for concurrent use. Fire holds the write lock while guards
// and actions run, so they must not call back into the same machine.
package statemachine
