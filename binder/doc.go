// Package binder fills request structs from the parts of an HTTP request.
//
// Each binder reads one source and one struct tag:
//
//	type fieldEvent struct {
//		FormID string         `path:"formID" json:"-"`
//		Field  string         `query:"field" json:"-"`
//		Form   map[string]any `json:"form"`
//	}
//
//	handler.Wrap(h, handler.WithBinders[fieldEvent](
//		binder.Signals(),
//		binder.Path(chi.URLParam),
//		binder.Query(),
//	))
//
// Path and Query support strings, signed and unsigned integers, bools,
// pointers to those and slices for repeated query values. Signals decodes the
// datastar signal payload with encoding/json semantics, so it uses json tags.
// A binder whose source is absent returns ErrNotApplicable, which
// handler.Wrap skips.
package binder
