package handler_test

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/a-h/templ"
	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/qanda/handler"
	"github.com/dmitrymomot/qanda/pkg/logger"
)

func TestNewErrorHandler(t *testing.T) {
	t.Parallel()

	cfg := handler.ErrorHandlerConfig{
		ErrorPage: func(p handler.ErrorPageParams) templ.Component {
			return text(fmt.Sprintf("page %d: %s", p.StatusCode, p.Message))
		},
		ErrorToast: func(p handler.ErrorToastParams) templ.Component {
			return text(fmt.Sprintf(`<div class="toast %s">%s</div>`, p.Level, p.Message))
		},
	}

	newHandler := func() (handler.ErrorHandler, *bytes.Buffer) {
		var buf bytes.Buffer
		log := logger.New(logger.WithOutput(&buf), logger.WithFormat(logger.FormatJSON), logger.WithLevel(slog.LevelDebug))
		return handler.NewErrorHandler(log, cfg), &buf
	}

	t.Run("generic error renders 500 page without internals", func(t *testing.T) {
		t.Parallel()
		eh, buf := newHandler()
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/questions/1", nil)

		eh(handler.NewContext(rec, req), errors.New("database exploded"))

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Equal(t, "page 500: "+handler.ErrInternalServerError.Message, rec.Body.String())
		assert.NotContains(t, rec.Body.String(), "exploded")
		assert.Contains(t, buf.String(), `"level":"ERROR"`)
		assert.Contains(t, buf.String(), "database exploded")
	})

	t.Run("http error keeps its status and logs at warn", func(t *testing.T) {
		t.Parallel()
		eh, buf := newHandler()
		rec := httptest.NewRecorder()

		eh(handler.NewContext(rec, httptest.NewRequest(http.MethodGet, "/questions/99", nil)), handler.ErrNotFound)

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Contains(t, rec.Body.String(), handler.ErrNotFound.Message)
		assert.Contains(t, buf.String(), `"level":"WARN"`)
	})

	t.Run("datastar request gets a toast", func(t *testing.T) {
		t.Parallel()
		eh, _ := newHandler()
		rec := httptest.NewRecorder()

		eh(handler.NewContext(rec, datastarRequest(http.MethodPost, "/forms/x/submit", nil)), handler.ErrGone)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "datastar-patch-elements")
		assert.Contains(t, rec.Body.String(), "#toasts")
		assert.Contains(t, rec.Body.String(), `toast warning`)
	})

	t.Run("falls back to plain text without components", func(t *testing.T) {
		t.Parallel()
		eh := handler.NewErrorHandler(nil, handler.ErrorHandlerConfig{})
		rec := httptest.NewRecorder()

		eh(handler.NewContext(rec, datastarRequest(http.MethodPost, "/", nil)), handler.ErrConflict)

		assert.Equal(t, http.StatusConflict, rec.Code)
		assert.Contains(t, rec.Body.String(), handler.ErrConflict.Message)
	})
}
