package binder

import "errors"

var (
	ErrNotApplicable  = errors.New("binder: not applicable to this request")
	ErrInvalidTarget  = errors.New("binder: target must be a non-nil pointer to struct")
	ErrInvalidPath    = errors.New("binder: invalid path parameter")
	ErrInvalidQuery   = errors.New("binder: invalid query parameter")
	ErrInvalidSignals = errors.New("binder: invalid datastar signals")
)
