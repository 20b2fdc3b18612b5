package form

import (
	"log/slog"
	"sync"
	"time"

	"github.com/dmitrymomot/qanda/pkg/logger"
	"github.com/dmitrymomot/qanda/pkg/statemachine"
)

// Form bundles the store, the rule set and the submission lifecycle of one
// form instance. Events are serialised by an internal mutex; the mutex is
// not held while the submit callback runs.
type Form struct {
	id             string
	rules          RuleSet
	submit         SubmitFunc
	store          *Store
	lifecycle      *statemachine.Machine[Status, event]
	log            *slog.Logger
	timeout        time.Duration
	successMessage string
	failureMessage string

	mu sync.Mutex
}

// New creates a form instance. rules may be nil for a form without
// validation; submit may be nil for a form that is never submitted.
func New(rules RuleSet, submit SubmitFunc, opts ...Option) *Form {
	store := NewStore()
	f := &Form{
		rules:          rules,
		submit:         submit,
		store:          store,
		lifecycle:      newLifecycle(store),
		log:            logger.Nop(),
		successMessage: DefaultSuccessMessage,
		failureMessage: DefaultFailureMessage,
	}
	if f.rules == nil {
		f.rules = RuleSet{}
	}
	for _, opt := range opts {
		opt(f)
	}
	f.log = f.log.With(logger.Component("form"), logger.FormID(f.id))
	return f
}

// Change records a new value for field. An untouched field is not
// validated; a touched one is re-validated immediately.
func (f *Form) Change(field FieldName, value string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.store.Status().Inert() {
		return ErrInert
	}

	f.store.SetValue(field, value)
	if f.store.IsTouched(field) {
		f.validateField(field)
	}
	return nil
}

// Blur marks field as touched and validates it. This is the only event that
// can reveal errors of a field for the first time outside a submit attempt.
func (f *Form) Blur(field FieldName) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.store.Status().Inert() {
		return ErrInert
	}

	f.store.SetTouched(field)
	f.validateField(field)
	return nil
}

// ValidateField validates field and stores the result, leaving every other
// field's errors untouched. While the form is inert it returns the stored
// errors and changes nothing.
func (f *Form) ValidateField(field FieldName) []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.Inert() {
		return f.store.FieldErrors(field)
	}
	return f.validateField(field)
}

// ValidateAll validates every configured field, replaces the errors mapping
// with the result and reports whether the form is valid. While the form is
// inert the stored errors are left as they are.
func (f *Form) ValidateAll() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.Inert() {
		return !f.store.Errors().Any()
	}
	return !f.validateAll().Any()
}

// Must be called with f.mu held.
func (f *Form) validateField(field FieldName) []string {
	msgs := f.rules.Evaluate(field, f.store.Value(field))
	f.store.setFieldErrors(field, msgs)
	f.log.Debug("field validated", logger.Field(field), logger.Count(len(msgs)))
	return msgs
}

// Must be called with f.mu held.
func (f *Form) validateAll() Errors {
	errs := make(Errors, len(f.rules))
	for _, field := range f.rules.Fields() {
		errs[field] = f.rules.Evaluate(field, f.store.Value(field))
	}
	f.store.SetErrors(errs)
	return errs
}

// ID returns the identifier set with WithID.
func (f *Form) ID() string { return f.id }

// Rules returns the rule set the form was created with.
func (f *Form) Rules() RuleSet { return f.rules }

func (f *Form) Value(field FieldName) string       { return f.store.Value(field) }
func (f *Form) FieldErrors(field FieldName) []string { return f.store.FieldErrors(field) }
func (f *Form) IsTouched(field FieldName) bool      { return f.store.IsTouched(field) }
func (f *Form) Status() Status                      { return f.store.Status() }
func (f *Form) Values() Values                      { return f.store.Values() }
func (f *Form) Errors() Errors                      { return f.store.Errors() }
func (f *Form) Touched() Touched                    { return f.store.Touched() }

// Inert reports whether fields are currently disabled.
func (f *Form) Inert() bool { return f.store.Status().Inert() }

// Outcome is the form-level feedback after a submission.
type Outcome struct {
	Status  Status
	Message string
}

// Outcome returns the success or failure message for the current status.
// The message is empty before the first submission completes.
func (f *Form) Outcome() Outcome {
	status := f.store.Status()
	out := Outcome{Status: status}
	switch status {
	case StatusSubmittedSuccess:
		out.Message = f.successMessage
	case StatusSubmittedFailure:
		out.Message = f.failureMessage
	}
	return out
}
