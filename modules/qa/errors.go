package qa

import "errors"

var (
	ErrFormNotFound   = errors.New("qa: form instance not found or expired")
	ErrUnknownField   = errors.New("qa: unknown form field")
	ErrJanitorStopped = errors.New("qa: form registry janitor is not running")
)
