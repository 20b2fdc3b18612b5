package handler

import (
	"context"
	"encoding/json"
	"io"
	"net/http"

	"github.com/a-h/templ"
	"github.com/starfederation/datastar-go/datastar"
)

type TemplOption = datastar.PatchElementOption

// WithTarget patches the element matching selector instead of the
// component's root id.
func WithTarget(selector string) TemplOption { return datastar.WithSelector(selector) }

func WithPatchMode(mode datastar.ElementPatchMode) TemplOption { return datastar.WithMode(mode) }

// TemplPatch is one component with its own patch options.
type TemplPatch struct {
	Component templ.Component
	Options   []TemplOption
}

func Patch(c templ.Component, opts ...TemplOption) TemplPatch {
	return TemplPatch{Component: c, Options: opts}
}

// TemplResponse renders templ components. Datastar requests receive element
// patches followed by an optional signal patch over SSE; plain requests
// receive the full HTML.
type TemplResponse struct {
	patches []TemplPatch
	full    templ.Component
	status  int
	signals any
}

// WithStatus sets the status code of plain HTML responses. SSE responses
// are always 200.
func (t TemplResponse) WithStatus(code int) TemplResponse {
	t.status = code
	return t
}

// WithSignals patches the given signals after the elements. v must marshal
// to a JSON object.
func (t TemplResponse) WithSignals(v any) TemplResponse {
	t.signals = v
	return t
}

func (t TemplResponse) Render(w http.ResponseWriter, r *http.Request) error {
	if IsDataStar(r) {
		sse := datastar.NewSSE(w, r)
		for _, p := range t.patches {
			if err := sse.PatchElementTempl(p.Component, p.Options...); err != nil {
				return err
			}
		}
		if t.signals == nil {
			return nil
		}
		data, err := json.Marshal(t.signals)
		if err != nil {
			return err
		}
		return sse.PatchSignals(data)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if t.status != 0 {
		w.WriteHeader(t.status)
	}
	return t.full.Render(r.Context(), w)
}

// Templ renders c as a page, or as a single element patch for datastar.
func Templ(c templ.Component, opts ...TemplOption) TemplResponse {
	return TemplResponse{patches: []TemplPatch{Patch(c, opts...)}, full: c}
}

// TemplPartial sends partial to datastar requests and full otherwise.
func TemplPartial(partial, full templ.Component, opts ...TemplOption) TemplResponse {
	return TemplResponse{patches: []TemplPatch{Patch(partial, opts...)}, full: full}
}

// TemplMulti sends every patch to datastar requests; plain requests get the
// components concatenated in order.
func TemplMulti(patches ...TemplPatch) TemplResponse {
	return TemplResponse{
		patches: patches,
		full: templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
			for _, p := range patches {
				if err := p.Component.Render(ctx, w); err != nil {
					return err
				}
			}
			return nil
		}),
	}
}
