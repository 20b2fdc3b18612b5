package binder

import "net/http"

// Query binds `query:"name"` fields from the URL query string.
func Query() func(r *http.Request, v any) error {
	return func(r *http.Request, v any) error {
		q := r.URL.Query()
		return bindStruct(v, "query", func(name string) []string { return q[name] }, ErrInvalidQuery)
	}
}
