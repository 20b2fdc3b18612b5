package qa

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/a-h/templ"

	"github.com/dmitrymomot/qanda/handler"
	"github.com/dmitrymomot/qanda/pkg/form"
	"github.com/dmitrymomot/qanda/pkg/questions"
)

const datastarScript = "https://cdn.jsdelivr.net/gh/starfederation/datastar@v1.0.0-RC.5/bundles/datastar.js"

// DefaultViews renders minimal semantic HTML.
func DefaultViews() *Views {
	return &Views{
		HomePage:     homePage,
		SearchPage:   searchPage,
		QuestionPage: questionPage,
		AskPage:      askPage,
		Form:         formView,
		FieldErrors:  fieldErrorsView,
		Answers:      answersView,
		ErrorPage:    errorPage,
		ErrorToast:   errorToast,
	}
}

var esc = templ.EscapeString[string]

// writer collects the first write error so views read top to bottom.
type writer struct {
	w   io.Writer
	err error
}

func (w *writer) raw(parts ...string) {
	for _, p := range parts {
		if w.err != nil {
			return
		}
		_, w.err = io.WriteString(w.w, p)
	}
}

func (w *writer) component(ctx context.Context, c templ.Component) {
	if w.err == nil {
		w.err = c.Render(ctx, w.w)
	}
}

func view(fn func(ctx context.Context, w *writer)) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, out io.Writer) error {
		w := &writer{w: out}
		fn(ctx, w)
		return w.err
	})
}

func layout(title, criteria string, body func(ctx context.Context, w *writer)) templ.Component {
	return view(func(ctx context.Context, w *writer) {
		w.raw(`<!DOCTYPE html><html lang="en"><head><meta charset="utf-8">`,
			`<meta name="viewport" content="width=device-width, initial-scale=1">`,
			`<title>`, esc(title), ` | Q &amp; A</title>`,
			`<script type="module" src="`, datastarScript, `"></script></head><body>`,
			`<header><a href="/">Q &amp; A</a>`,
			`<form action="/search" method="get"><input type="search" name="criteria" placeholder="Search..." value="`, esc(criteria), `"></form>`,
			`<a href="/ask">Ask a question</a></header>`,
			`<div id="`, ToastsElementID, `"></div><main>`)
		body(ctx, w)
		w.raw(`</main></body></html>`)
	})
}

func questionList(w *writer, qs []questions.Question, empty string) {
	if len(qs) == 0 {
		w.raw(`<p class="empty">`, esc(empty), `</p>`)
		return
	}
	w.raw(`<ul class="questions">`)
	for _, q := range qs {
		w.raw(`<li><a href="`, esc(QuestionURL(q)), `">`, esc(q.Title), `</a>`,
			`<p>`, esc(truncate(q.Content, 50)), `</p>`,
			`<small>Asked by `, esc(q.UserName), ` on `, esc(formatCreated(q.Created)), `</small></li>`)
	}
	w.raw(`</ul>`)
}

func homePage(p HomePageParams) templ.Component {
	return layout("Unanswered Questions", "", func(_ context.Context, w *writer) {
		w.raw(`<h1>Unanswered Questions</h1>`)
		questionList(w, p.Questions, "There are no unanswered questions")
	})
}

func searchPage(p SearchPageParams) templ.Component {
	return layout("Search", p.Criteria, func(_ context.Context, w *writer) {
		w.raw(`<h1>Search Results</h1><p>for "`, esc(p.Criteria), `"</p>`)
		questionList(w, p.Questions, "No questions match your search")
	})
}

func questionPage(p QuestionPageParams) templ.Component {
	q := p.Question
	return layout(q.Title, "", func(ctx context.Context, w *writer) {
		w.raw(`<article><h1>`, esc(q.Title), `</h1><p>`, esc(q.Content), `</p>`,
			`<small>Asked by `, esc(q.UserName), ` on `, esc(formatCreated(q.Created)), `</small></article>`)
		w.component(ctx, answersView(p.Answers))
		w.component(ctx, formView(p.Form))
	})
}

func askPage(p AskPageParams) templ.Component {
	return layout("Ask a question", "", func(ctx context.Context, w *writer) {
		w.raw(`<h1>Ask a question</h1>`)
		w.component(ctx, formView(p.Form))
	})
}

func answersView(p AnswersParams) templ.Component {
	return view(func(_ context.Context, w *writer) {
		w.raw(`<ul id="`, AnswersElementID, `" class="answers">`)
		for _, a := range p.Answers {
			w.raw(`<li><p>`, esc(a.Content), `</p><small>Answered by `, esc(a.UserName),
				` on `, esc(formatCreated(a.Created)), `</small></li>`)
		}
		w.raw(`</ul>`)
	})
}

func formView(p FormParams) templ.Component {
	return view(func(ctx context.Context, w *writer) {
		w.raw(`<form id="`, FormElementID, `" data-signals="`, esc(signalsJSON(p.Fields)), `"`,
			` data-on-submit="`, esc(action(p.SubmitURL)), `" data-indicator="`, SubmittingSignal, `"`,
			` data-status="`, esc(p.Status.String()), `">`)
		if p.Disabled {
			w.raw(`<fieldset disabled>`)
		} else {
			// Disabled client side while the submit request is in flight.
			w.raw(`<fieldset data-attr-disabled="$`, SubmittingSignal, `">`)
		}
		for _, f := range p.Fields {
			fieldView(ctx, w, f)
		}
		w.raw(`<button type="submit">`, esc(p.Caption), `</button></fieldset>`)
		switch p.Status {
		case form.StatusSubmittedSuccess:
			w.raw(`<p class="outcome success">`, esc(p.Message), `</p>`)
		case form.StatusSubmittedFailure:
			w.raw(`<p class="outcome failure">`, esc(p.Message), `</p>`)
		}
		w.raw(`</form>`)
	})
}

func fieldView(ctx context.Context, w *writer, f FieldParams) {
	attrs := fmt.Sprintf(`id="%s" name="%s" data-bind="%s" data-on-input="%s" data-on-blur="%s"`,
		esc(f.Name), esc(f.Name), esc(f.Name), esc(action(f.ChangeURL)), esc(action(f.BlurURL)))
	w.raw(`<div class="field"><label for="`, esc(f.Name), `">`, esc(f.Label), `</label>`)
	if f.Multiline {
		w.raw(`<textarea `, attrs, `>`, esc(f.Value), `</textarea>`)
	} else {
		w.raw(`<input type="text" `, attrs, ` value="`, esc(f.Value), `">`)
	}
	w.component(ctx, fieldErrorsView(f))
	w.raw(`</div>`)
}

func fieldErrorsView(f FieldParams) templ.Component {
	return view(func(_ context.Context, w *writer) {
		w.raw(`<div id="`, esc(FieldErrorsElementID(f.Name)), `" class="errors">`)
		for _, msg := range f.Errors {
			w.raw(`<div class="error">`, esc(msg), `</div>`)
		}
		w.raw(`</div>`)
	})
}

func errorPage(p handler.ErrorPageParams) templ.Component {
	return layout("Error", "", func(_ context.Context, w *writer) {
		w.raw(`<h1>`, strconv.Itoa(p.StatusCode), `</h1><p>`, esc(p.Message), `</p>`,
			`<p><a href="`, esc(p.RetryURL), `">Try again</a></p>`)
		if p.RequestID != "" {
			w.raw(`<small>Request `, esc(p.RequestID), `</small>`)
		}
	})
}

func errorToast(p handler.ErrorToastParams) templ.Component {
	return view(func(_ context.Context, w *writer) {
		w.raw(`<div class="toast `, esc(p.Level), `" role="alert">`, esc(p.Message), `</div>`)
	})
}

// signalsJSON seeds the datastar signals with the current field values.
func signalsJSON(fields []FieldParams) string {
	m := make(map[string]string, len(fields))
	for _, f := range fields {
		m[f.Name] = f.Value
	}
	b, _ := json.Marshal(m)
	return string(b)
}

func action(url string) string { return "@post('" + url + "')" }

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return strings.TrimSpace(string(r[:n])) + "..."
}
