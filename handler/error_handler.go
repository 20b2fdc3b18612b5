package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/a-h/templ"

	"github.com/dmitrymomot/qanda/pkg/logger"
)

// ErrorPageParams is passed to the error page component.
type ErrorPageParams struct {
	StatusCode int
	Message    string
	RequestID  string
	RetryURL   string
}

// ErrorToastParams is passed to the toast component for datastar requests.
type ErrorToastParams struct {
	Message   string
	Level     string // "warning" or "error"
	RequestID string
}

type ErrorHandlerConfig struct {
	ErrorPage  func(ErrorPageParams) templ.Component
	ErrorToast func(ErrorToastParams) templ.Component
	// ToastTarget defaults to "#toasts".
	ToastTarget string
}

// NewErrorHandler logs the failure and answers with an error page, or with a
// toast prepended to ToastTarget for datastar requests. 4xx log at warn,
// everything else at error.
func NewErrorHandler(log *slog.Logger, cfg ErrorHandlerConfig) ErrorHandler {
	if log == nil {
		log = logger.Nop()
	}
	if cfg.ToastTarget == "" {
		cfg.ToastTarget = "#toasts"
	}
	log = log.With(logger.Component("error_handler"))

	return func(ctx Context, err error) {
		r := ctx.Request()
		status, message := classify(err)

		level := slog.LevelError
		if status < http.StatusInternalServerError {
			level = slog.LevelWarn
		}
		log.LogAttrs(r.Context(), level, "request failed",
			logger.Error(err),
			slog.Int("status", status),
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Bool("datastar", ctx.IsDataStar()),
		)

		var rendered error
		switch {
		case ctx.IsDataStar() && cfg.ErrorToast != nil:
			lvl := "error"
			if level == slog.LevelWarn {
				lvl = "warning"
			}
			rendered = Templ(cfg.ErrorToast(ErrorToastParams{
				Message:   message,
				Level:     lvl,
				RequestID: ctx.RequestID(),
			}), WithTarget(cfg.ToastTarget), WithPatchMode(PatchPrepend)).Render(ctx.ResponseWriter(), r)
		case !ctx.IsDataStar() && cfg.ErrorPage != nil:
			rendered = Templ(cfg.ErrorPage(ErrorPageParams{
				StatusCode: status,
				Message:    message,
				RequestID:  ctx.RequestID(),
				RetryURL:   r.URL.RequestURI(),
			})).WithStatus(status).Render(ctx.ResponseWriter(), r)
		default:
			http.Error(ctx.ResponseWriter(), message, status)
		}
		if rendered != nil {
			log.ErrorContext(r.Context(), "failed to render error response", logger.Error(rendered))
		}
	}
}

// classify maps err to a status code and a message safe to show to users.
func classify(err error) (int, string) {
	var httpErr HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.Code, httpErr.Message
	}
	return ErrInternalServerError.Code, ErrInternalServerError.Message
}
