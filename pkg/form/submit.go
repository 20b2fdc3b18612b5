package form

import (
	"context"
	"errors"

	"github.com/dmitrymomot/qanda/pkg/async"
	"github.com/dmitrymomot/qanda/pkg/logger"
)

// SubmitResult is what a submit callback reports back.
type SubmitResult struct {
	Success bool
	// Errors, if set, replace the form's errors wholesale.
	Errors Errors
}

// SubmitFunc sends validated values somewhere. It is called at most once per
// accepted submit attempt and never concurrently for the same form.
type SubmitFunc func(ctx context.Context, values Values) (SubmitResult, error)

// Submit validates every configured field and, when all pass, calls the
// submit callback and waits for it.
//
// It returns ErrInvalid when validation fails (status unchanged, callback
// not called), ErrSubmitInProgress or ErrAlreadySubmitted when the current
// status does not accept a submission, and an error wrapping ErrSubmitFailed
// when the callback fails. A callback reporting Success=false is not an
// error: the status becomes StatusSubmittedFailure and Submit returns nil.
func (f *Form) Submit(ctx context.Context) error {
	values, err := f.begin(ctx)
	if err != nil {
		return err
	}

	res, callErr := f.call(ctx, values)

	f.mu.Lock()
	defer f.mu.Unlock()
	return f.resolve(ctx, res, callErr)
}

// begin runs the synchronous part of a submit attempt under the event lock.
func (f *Form) begin(ctx context.Context) (Values, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	switch status := f.lifecycle.Current(); status {
	case StatusSubmitting:
		f.log.WarnContext(ctx, "submit ignored", logger.Status(status.String()))
		return nil, ErrSubmitInProgress
	case StatusSubmittedSuccess:
		return nil, ErrAlreadySubmitted
	}

	if f.submit == nil {
		return nil, ErrNoSubmitHandler
	}

	if errs := f.validateAll(); errs.Any() {
		f.log.DebugContext(ctx, "submit blocked by validation", logger.Count(len(errs)))
		return nil, ErrInvalid
	}

	if err := f.lifecycle.Fire(ctx, eventSubmit, nil); err != nil {
		return nil, err
	}
	f.log.InfoContext(ctx, "submitting form")

	return f.store.Values(), nil
}

func (f *Form) call(ctx context.Context, values Values) (SubmitResult, error) {
	if f.timeout <= 0 {
		return async.Async(ctx, values, f.submit).Await()
	}

	ctx, cancel := context.WithTimeout(ctx, f.timeout)
	defer cancel()
	return async.Async(ctx, values, f.submit).AwaitWithTimeout(f.timeout)
}

// Must be called with f.mu held.
func (f *Form) resolve(ctx context.Context, res SubmitResult, callErr error) error {
	if callErr != nil {
		f.store.SetErrors(Errors{})
		if err := f.lifecycle.Fire(ctx, eventFail, nil); err != nil {
			return errors.Join(ErrSubmitFailed, callErr, err)
		}
		f.log.ErrorContext(ctx, "submit handler failed", logger.Error(callErr))
		return errors.Join(ErrSubmitFailed, callErr)
	}

	f.store.SetErrors(res.Errors)

	if res.Success {
		if err := f.lifecycle.Fire(ctx, eventSucceed, nil); err != nil {
			return err
		}
		f.log.InfoContext(ctx, "form submitted")
		return nil
	}

	if err := f.lifecycle.Fire(ctx, eventFail, nil); err != nil {
		return err
	}
	f.log.InfoContext(ctx, "form submission rejected", logger.Count(len(res.Errors)))
	return nil
}
