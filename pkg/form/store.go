package form

import (
	"maps"
	"slices"
	"sync"
)

// Store owns the values, errors, touched flags and submission status of one
// form instance. It performs no validation and no I/O. Status can only be
// changed by the submission lifecycle.
type Store struct {
	mu      sync.RWMutex
	values  Values
	errors  Errors
	touched Touched
	status  Status
}

// NewStore returns an empty store in the idle status.
func NewStore() *Store {
	return &Store{
		values:  make(Values),
		errors:  make(Errors),
		touched: make(Touched),
		status:  StatusIdle,
	}
}

// SetValue overwrites the value of field. It does not validate.
func (s *Store) SetValue(field FieldName, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[field] = value
}

// SetTouched marks field as touched. Touched flags are never cleared.
func (s *Store) SetTouched(field FieldName) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touched[field] = true
}

// SetErrors replaces the whole errors mapping with a copy of errs.
func (s *Store) SetErrors(errs Errors) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.errors = errs.Clone()
}

// setFieldErrors replaces the entry of one field, leaving others untouched.
func (s *Store) setFieldErrors(field FieldName, msgs []string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.errors[field] = slices.Clone(msgs)
}

func (s *Store) setStatus(status Status) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.status = status
}

// Value returns the current value of field, or "" if it was never set.
func (s *Store) Value(field FieldName) string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.values[field]
}

// FieldErrors returns a copy of the messages for field; never nil.
func (s *Store) FieldErrors(field FieldName) []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := slices.Clone(s.errors[field])
	if out == nil {
		out = []string{}
	}
	return out
}

// IsTouched reports whether field has been touched.
func (s *Store) IsTouched(field FieldName) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.touched[field]
}

// Status returns the current submission status.
func (s *Store) Status() Status {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.status
}

// Values returns a copy of all values.
func (s *Store) Values() Values {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return maps.Clone(s.values)
}

// Errors returns a copy of all errors.
func (s *Store) Errors() Errors {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.errors.Clone()
}

// Touched returns a copy of all touched flags.
func (s *Store) Touched() Touched {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return maps.Clone(s.touched)
}
