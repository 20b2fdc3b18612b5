package binder

import (
	"errors"
	"net/http"

	"github.com/starfederation/datastar-go/datastar"
)

// Signals decodes the datastar signal payload into v. GET and DELETE
// requests carry it in the "datastar" query parameter, the rest in the body.
// Requests without a payload return ErrNotApplicable.
func Signals() func(r *http.Request, v any) error {
	return func(r *http.Request, v any) error {
		switch r.Method {
		case http.MethodGet, http.MethodDelete:
			if !r.URL.Query().Has("datastar") {
				return ErrNotApplicable
			}
		default:
			if r.Body == nil || r.Body == http.NoBody || r.ContentLength == 0 {
				return ErrNotApplicable
			}
		}
		if err := datastar.ReadSignals(r, v); err != nil {
			return errors.Join(ErrInvalidSignals, err)
		}
		return nil
	}
}
