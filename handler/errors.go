package handler

import (
	"errors"
	"net/http"
)

var ErrNilResponse = errors.New("handler: nil response")

// HTTPError carries a status code and a user-facing message.
type HTTPError struct {
	Code    int
	Message string
}

func (e HTTPError) Error() string { return e.Message }

// NewHTTPError uses http.StatusText(code) when message is empty.
func NewHTTPError(code int, message string) HTTPError {
	if message == "" {
		message = http.StatusText(code)
	}
	return HTTPError{Code: code, Message: message}
}

var (
	ErrBadRequest          = NewHTTPError(http.StatusBadRequest, "The request could not be understood")
	ErrNotFound            = NewHTTPError(http.StatusNotFound, "The page you are looking for does not exist")
	ErrGone                = NewHTTPError(http.StatusGone, "This form has expired, please reload the page")
	ErrConflict            = NewHTTPError(http.StatusConflict, "The request conflicts with the current state")
	ErrTooManyRequests     = NewHTTPError(http.StatusTooManyRequests, "Too many requests, please slow down")
	ErrServiceUnavailable  = NewHTTPError(http.StatusServiceUnavailable, "The service is temporarily unavailable")
	ErrInternalServerError = NewHTTPError(http.StatusInternalServerError, "An error occurred processing your request")
)
