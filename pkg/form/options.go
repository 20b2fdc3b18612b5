package form

import (
	"log/slog"
	"time"
)

const (
	DefaultSuccessMessage = "Success!"
	DefaultFailureMessage = "Something went wrong"
)

// Option configures a Form.
type Option func(*Form)

// WithID sets the identifier used in log records.
func WithID(id string) Option {
	return func(f *Form) { f.id = id }
}

// WithLogger sets the logger. Nil loggers are ignored.
func WithLogger(l *slog.Logger) Option {
	return func(f *Form) {
		if l != nil {
			f.log = l
		}
	}
}

// WithSubmitTimeout bounds how long Submit waits for the callback. The
// callback context is cancelled at the deadline and the submission resolves
// as a failure. Zero, the default, waits forever.
func WithSubmitTimeout(d time.Duration) Option {
	return func(f *Form) {
		if d > 0 {
			f.timeout = d
		}
	}
}

// WithSuccessMessage sets the form-level message shown after a successful submission.
func WithSuccessMessage(msg string) Option {
	return func(f *Form) {
		if msg != "" {
			f.successMessage = msg
		}
	}
}

// WithFailureMessage sets the form-level message shown after a failed submission.
func WithFailureMessage(msg string) Option {
	return func(f *Form) {
		if msg != "" {
			f.failureMessage = msg
		}
	}
}
