package handler_test

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/a-h/templ"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/qanda/binder"
	"github.com/dmitrymomot/qanda/handler"
)

func text(s string) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := io.WriteString(w, s)
		return err
	})
}

func datastarRequest(method, target string, body io.Reader) *http.Request {
	r := httptest.NewRequest(method, target, body)
	r.Header.Set("Datastar-Request", "true")
	return r
}

type itemRequest struct {
	ID    int    `path:"id"`
	Query string `query:"q"`
}

func TestWrap(t *testing.T) {
	t.Parallel()

	route := func(h handler.HandlerFunc[itemRequest], opts ...handler.WrapOption[itemRequest]) http.Handler {
		r := chi.NewRouter()
		opts = append([]handler.WrapOption[itemRequest]{
			handler.WithBinders[itemRequest](binder.Signals(), binder.Path(chi.URLParam), binder.Query()),
		}, opts...)
		r.Get("/items/{id}", handler.Wrap(h, opts...))
		return r
	}

	t.Run("binds and renders", func(t *testing.T) {
		t.Parallel()
		h := route(func(_ handler.Context, req itemRequest) handler.Response {
			return handler.Templ(text(fmt.Sprintf("item %d %s", req.ID, req.Query)))
		})

		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/items/7?q=go", nil))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "item 7 go", rec.Body.String())
		assert.Equal(t, "text/html; charset=utf-8", rec.Header().Get("Content-Type"))
	})

	t.Run("bind error goes to error handler as bad request", func(t *testing.T) {
		t.Parallel()
		var got error
		h := route(func(handler.Context, itemRequest) handler.Response {
			t.Fatal("handler must not run")
			return nil
		}, handler.WithErrorHandler[itemRequest](func(_ handler.Context, err error) { got = err }))

		h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/items/abc", nil))
		assert.ErrorIs(t, got, handler.ErrBadRequest)
		assert.ErrorIs(t, got, binder.ErrInvalidPath)
	})

	t.Run("nil response", func(t *testing.T) {
		t.Parallel()
		var got error
		h := route(func(handler.Context, itemRequest) handler.Response { return nil },
			handler.WithErrorHandler[itemRequest](func(_ handler.Context, err error) { got = err }))

		h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/items/1", nil))
		assert.ErrorIs(t, got, handler.ErrNilResponse)
	})

	t.Run("default error handler uses HTTPError", func(t *testing.T) {
		t.Parallel()
		h := route(func(handler.Context, itemRequest) handler.Response {
			return errorResponse{err: handler.ErrNotFound}
		})
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/items/1", nil))
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Contains(t, rec.Body.String(), handler.ErrNotFound.Message)
	})

	t.Run("decorators run outermost first", func(t *testing.T) {
		t.Parallel()
		var order []string
		deco := func(name string) handler.Decorator[itemRequest] {
			return func(next handler.HandlerFunc[itemRequest]) handler.HandlerFunc[itemRequest] {
				return func(ctx handler.Context, req itemRequest) handler.Response {
					order = append(order, name)
					return next(ctx, req)
				}
			}
		}
		h := route(func(handler.Context, itemRequest) handler.Response {
			order = append(order, "handler")
			return handler.Empty()
		}, handler.WithDecorators(deco("a"), deco("b")))

		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/items/1", nil))
		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.Equal(t, []string{"a", "b", "handler"}, order)
	})

	t.Run("context exposes request id", func(t *testing.T) {
		t.Parallel()
		var id string
		r := chi.NewRouter()
		r.Use(middleware.RequestID)
		r.Get("/", handler.Wrap[struct{}](func(ctx handler.Context, _ struct{}) handler.Response {
			id = ctx.RequestID()
			return handler.Empty()
		}))
		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
		assert.NotEmpty(t, id)
	})
}

type errorResponse struct{ err error }

func (e errorResponse) Render(http.ResponseWriter, *http.Request) error { return e.err }

func TestIsDataStar(t *testing.T) {
	t.Parallel()

	plain := httptest.NewRequest(http.MethodGet, "/", nil)
	assert.False(t, handler.IsDataStar(plain))

	assert.True(t, handler.IsDataStar(datastarRequest(http.MethodPost, "/", nil)))

	accept := httptest.NewRequest(http.MethodGet, "/", nil)
	accept.Header.Set("Accept", "text/event-stream")
	assert.True(t, handler.IsDataStar(accept))

	assert.True(t, handler.IsDataStar(httptest.NewRequest(http.MethodGet, "/?datastar=%7B%7D", nil)))
}

func TestTemplResponse(t *testing.T) {
	t.Parallel()

	t.Run("partial for datastar, full otherwise", func(t *testing.T) {
		t.Parallel()
		resp := handler.TemplPartial(text(`<div id="frag">frag</div>`), text("<html>page</html>"))

		rec := httptest.NewRecorder()
		require.NoError(t, resp.Render(rec, httptest.NewRequest(http.MethodGet, "/", nil)))
		assert.Equal(t, "<html>page</html>", rec.Body.String())

		rec = httptest.NewRecorder()
		require.NoError(t, resp.Render(rec, datastarRequest(http.MethodGet, "/", nil)))
		assert.Contains(t, rec.Header().Get("Content-Type"), "text/event-stream")
		assert.Contains(t, rec.Body.String(), "datastar-patch-elements")
		assert.Contains(t, rec.Body.String(), `<div id="frag">frag</div>`)
		assert.NotContains(t, rec.Body.String(), "page")
	})

	t.Run("multi with signals", func(t *testing.T) {
		t.Parallel()
		resp := handler.TemplMulti(
			handler.Patch(text(`<p id="a">a</p>`)),
			handler.Patch(text(`<li>b</li>`), handler.WithTarget("#list"), handler.WithPatchMode(handler.PatchAppend)),
		).WithSignals(map[string]any{"busy": false})

		rec := httptest.NewRecorder()
		require.NoError(t, resp.Render(rec, datastarRequest(http.MethodPost, "/", nil)))
		body := rec.Body.String()
		assert.Equal(t, 2, strings.Count(body, "datastar-patch-elements"))
		assert.Contains(t, body, "#list")
		assert.Contains(t, body, "datastar-patch-signals")
		assert.Contains(t, body, `"busy":false`)

		rec = httptest.NewRecorder()
		require.NoError(t, resp.Render(rec, httptest.NewRequest(http.MethodGet, "/", nil)))
		assert.Equal(t, `<p id="a">a</p><li>b</li>`, rec.Body.String())
	})

	t.Run("status for plain requests", func(t *testing.T) {
		t.Parallel()
		rec := httptest.NewRecorder()
		require.NoError(t, handler.Templ(text("gone")).WithStatus(http.StatusGone).Render(rec, httptest.NewRequest(http.MethodGet, "/", nil)))
		assert.Equal(t, http.StatusGone, rec.Code)
	})

	t.Run("render error propagates", func(t *testing.T) {
		t.Parallel()
		failing := templ.ComponentFunc(func(context.Context, io.Writer) error { return errors.New("boom") })
		err := handler.Templ(failing).Render(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
		assert.EqualError(t, err, "boom")
	})
}

func TestRedirect(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	require.NoError(t, handler.Redirect("/questions/5").Render(rec, httptest.NewRequest(http.MethodPost, "/", nil)))
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/questions/5", rec.Header().Get("Location"))

	rec = httptest.NewRecorder()
	require.NoError(t, handler.Redirect("/questions/5").Render(rec, datastarRequest(http.MethodPost, "/", nil)))
	assert.Contains(t, rec.Body.String(), "/questions/5")
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/event-stream")
}
