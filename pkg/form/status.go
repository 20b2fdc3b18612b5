package form

import (
	"context"

	"github.com/dmitrymomot/qanda/pkg/statemachine"
)

// Status is the submission state of a form.
type Status string

const (
	StatusIdle             Status = "idle"
	StatusSubmitting       Status = "submitting"
	StatusSubmittedSuccess Status = "submitted_success"
	StatusSubmittedFailure Status = "submitted_failure"
)

func (s Status) String() string { return string(s) }

// Inert reports whether fields are disabled in this status.
func (s Status) Inert() bool {
	return s == StatusSubmitting || s == StatusSubmittedSuccess
}

type event string

const (
	eventSubmit  event = "submit"
	eventSucceed event = "succeed"
	eventFail    event = "fail"
)

// newLifecycle builds the submission state machine. Every transition mirrors
// the new status into the store.
func newLifecycle(store *Store) *statemachine.Machine[Status, event] {
	mirror := statemachine.WithAction[Status, event](func(_ context.Context, _, to Status, _ event, _ any) error {
		store.setStatus(to)
		return nil
	})

	return statemachine.MustNew(StatusIdle,
		statemachine.WithTransition(StatusIdle, StatusSubmitting, eventSubmit, mirror),
		statemachine.WithTransition(StatusSubmittedFailure, StatusSubmitting, eventSubmit, mirror),
		statemachine.WithTransition(StatusSubmitting, StatusSubmittedSuccess, eventSucceed, mirror),
		statemachine.WithTransition(StatusSubmitting, StatusSubmittedFailure, eventFail, mirror),
	)
}
