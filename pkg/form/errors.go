package form

import "errors"

var (
	// ErrInert is returned by mutators while fields are disabled.
	ErrInert = errors.New("form: fields are inert")
	// ErrInvalid is returned by Submit when full-form validation fails.
	ErrInvalid = errors.New("form: validation failed")
	// ErrSubmitInProgress is returned by Submit while a submission is in flight.
	ErrSubmitInProgress = errors.New("form: submission already in progress")
	// ErrAlreadySubmitted is returned by Submit after a successful submission.
	ErrAlreadySubmitted = errors.New("form: already submitted")
	// ErrSubmitFailed wraps a callback error, panic or timeout.
	ErrSubmitFailed = errors.New("form: submit handler failed")
	// ErrNoSubmitHandler is returned by Submit when the form has no callback.
	ErrNoSubmitHandler = errors.New("form: no submit handler")
)
