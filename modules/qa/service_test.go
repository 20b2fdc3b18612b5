package qa_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/qanda/modules/qa"
	"github.com/dmitrymomot/qanda/pkg/logger"
	"github.com/dmitrymomot/qanda/pkg/questions"
)

var formIDPattern = regexp.MustCompile(`/forms/([0-9a-f-]{36})/submit`)

type app struct {
	t       *testing.T
	client  *questions.Client
	svc     *qa.Service
	handler http.Handler
}

func newApp(t *testing.T, cfg qa.Config) *app {
	t.Helper()
	client := questions.New(
		questions.WithLatency(questions.Latency{}),
		questions.WithClock(func() time.Time { return time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC) }),
	)
	svc := qa.NewService(cfg, client)
	return &app{
		t:       t,
		client:  client,
		svc:     svc,
		handler: qa.Router(qa.RouterOptions{Service: svc}),
	}
}

func (a *app) get(path string) *httptest.ResponseRecorder {
	a.t.Helper()
	rec := httptest.NewRecorder()
	a.handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func (a *app) post(path string, signals map[string]any) *httptest.ResponseRecorder {
	a.t.Helper()
	body, err := json.Marshal(signals)
	require.NoError(a.t, err)
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(string(body)))
	req.Header.Set("Datastar-Request", "true")
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	a.handler.ServeHTTP(rec, req)
	return rec
}

func (a *app) formID(page *httptest.ResponseRecorder) string {
	a.t.Helper()
	m := formIDPattern.FindStringSubmatch(page.Body.String())
	require.Len(a.t, m, 2, "form id not found in page")
	return m[1]
}

func TestPages(t *testing.T) {
	t.Parallel()

	a := newApp(t, qa.Config{})

	t.Run("home lists unanswered questions", func(t *testing.T) {
		rec := a.get("/")
		require.Equal(t, http.StatusOK, rec.Code)
		body := rec.Body.String()
		assert.Contains(t, body, "Unanswered Questions")
		assert.Contains(t, body, "Which state management tool should I use?")
		assert.Contains(t, body, "Which .Net framework should I learn?")
		assert.NotContains(t, body, "Why should I learn TypeScript?")
	})

	t.Run("search", func(t *testing.T) {
		rec := a.get("/search?criteria=civil")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "Why should I learn Civil 3D?")
		assert.NotContains(t, rec.Body.String(), "TypeScript")
	})

	t.Run("question page shows answers and a form", func(t *testing.T) {
		before := a.svc.Registry().Len()
		rec := a.get("/questions/1")
		require.Equal(t, http.StatusOK, rec.Code)
		body := rec.Body.String()
		assert.Contains(t, body, "Why should I learn TypeScript?")
		assert.Contains(t, body, "To catch problems earlier speeding up your developments")
		assert.Contains(t, body, "Submit Your Answer")
		assert.Equal(t, before+1, a.svc.Registry().Len())
	})

	t.Run("question links carry a title slug", func(t *testing.T) {
		body := a.get("/").Body.String()
		assert.Contains(t, body, `href="/questions/2/which-state-management-tool-should-i-use"`)

		rec := a.get("/questions/2/which-state-management-tool-should-i-use")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "Which state management tool should I use?")
	})

	t.Run("stale slug redirects to the canonical link", func(t *testing.T) {
		rec := a.get("/questions/4/old-title")
		assert.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Equal(t, "/questions/4/which-net-framework-should-i-learn", rec.Header().Get("Location"))
	})

	t.Run("unknown question", func(t *testing.T) {
		rec := a.get("/questions/999")
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Contains(t, rec.Body.String(), "does not exist")
	})

	t.Run("malformed question id", func(t *testing.T) {
		rec := a.get("/questions/abc")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("unknown route", func(t *testing.T) {
		assert.Equal(t, http.StatusNotFound, a.get("/nope").Code)
	})

	t.Run("ask page", func(t *testing.T) {
		rec := a.get("/ask")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "Submit Your Question")
		assert.NotEmpty(t, a.formID(rec))
		assert.Contains(t, rec.Body.String(), `data-indicator="_submitting"`)
		assert.Contains(t, rec.Body.String(), `<fieldset data-attr-disabled="$_submitting">`)
	})
}

func TestAskForm(t *testing.T) {
	t.Parallel()

	longContent := strings.Repeat("Goroutines are cheap. ", 3)

	t.Run("touched gating and submit", func(t *testing.T) {
		t.Parallel()
		a := newApp(t, qa.Config{})
		id := a.formID(a.get("/ask"))
		base := "/forms/" + id

		rec := a.post(base+"/change?field=title", map[string]any{"title": "Short", "content": ""})
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `id="field-title-errors"`)
		assert.NotContains(t, rec.Body.String(), "This must be")

		rec = a.post(base+"/blur?field=title", map[string]any{"title": "Short", "content": ""})
		assert.Contains(t, rec.Body.String(), "This must be at least 10 characters")

		rec = a.post(base+"/change?field=title", map[string]any{"title": "What is a goroutine?", "content": ""})
		assert.NotContains(t, rec.Body.String(), "This must be")

		rec = a.post(base+"/submit", map[string]any{"title": "What is a goroutine?", "content": ""})
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "This must be populated")
		assert.Contains(t, rec.Body.String(), `data-status="idle"`)

		rec = a.post(base+"/submit", map[string]any{"title": "What is a goroutine?", "content": longContent})
		require.Equal(t, http.StatusOK, rec.Code)
		body := rec.Body.String()
		assert.Contains(t, body, "Your question was successfully submitted")
		assert.Contains(t, body, "<fieldset disabled>")
		assert.NotContains(t, body, "This must be")

		found, err := a.client.Search(context.Background(), "goroutine")
		require.NoError(t, err)
		require.Len(t, found, 1)
		assert.Equal(t, "Fred", found[0].UserName)

		rec = a.post(base+"/change?field=title", map[string]any{"title": "changed"})
		assert.Equal(t, http.StatusNoContent, rec.Code)

		rec = a.post(base+"/submit", map[string]any{"title": "What is a goroutine?", "content": longContent})
		assert.Contains(t, rec.Body.String(), "Your question was successfully submitted")
		found, err = a.client.Search(context.Background(), "goroutine")
		require.NoError(t, err)
		assert.Len(t, found, 1, "second submit must not post again")
	})

	t.Run("duplicate title becomes a field error", func(t *testing.T) {
		t.Parallel()
		a := newApp(t, qa.Config{UserName: "Ann"})
		id := a.formID(a.get("/ask"))

		rec := a.post("/forms/"+id+"/submit", map[string]any{
			"title":   "Why should I learn TypeScript?",
			"content": longContent,
		})
		body := rec.Body.String()
		assert.Contains(t, body, qa.MsgTitleTaken)
		assert.Contains(t, body, "There was a problem with your question")
		assert.Contains(t, body, `data-status="submitted_failure"`)
		assert.NotContains(t, body, "<fieldset disabled>")

		rec = a.post("/forms/"+id+"/submit", map[string]any{
			"title":   "Why should I learn Go instead?",
			"content": longContent,
		})
		assert.Contains(t, rec.Body.String(), "Your question was successfully submitted")

		found, err := a.client.Search(context.Background(), "learn Go instead")
		require.NoError(t, err)
		require.Len(t, found, 1)
		assert.Equal(t, "Ann", found[0].UserName)
	})

	t.Run("unknown form instance", func(t *testing.T) {
		t.Parallel()
		a := newApp(t, qa.Config{})
		rec := a.post("/forms/00000000-0000-0000-0000-000000000000/submit", map[string]any{})
		assert.Contains(t, rec.Body.String(), "This form has expired")
		assert.Contains(t, rec.Body.String(), "#toasts")
	})

	t.Run("unknown field", func(t *testing.T) {
		t.Parallel()
		a := newApp(t, qa.Config{})
		id := a.formID(a.get("/ask"))
		rec := a.post("/forms/"+id+"/blur?field=email", map[string]any{"email": "x"})
		assert.Contains(t, rec.Body.String(), "toast warning")
	})
}

func TestAnswerForm(t *testing.T) {
	t.Parallel()

	a := newApp(t, qa.Config{})
	id := a.formID(a.get("/questions/2"))
	answer := "Start with plain signals and only add a library when state gets shared widely."

	rec := a.post("/forms/"+id+"/submit", map[string]any{"content": answer})
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "Your answer was successfully submitted")
	assert.Contains(t, body, `id="answers"`)
	assert.Contains(t, body, answer)

	q, err := a.client.Question(context.Background(), 2)
	require.NoError(t, err)
	require.Len(t, q.Answers, 1)
	assert.Equal(t, answer, q.Answers[0].Content)
}

func TestAnswerFormCleansText(t *testing.T) {
	t.Parallel()

	a := newApp(t, qa.Config{})
	id := a.formID(a.get("/questions/3"))
	raw := "\r\nFirst line of a fairly long answer   \r\nsecond line\x00 that keeps going on\r\n\r\n"

	rec := a.post("/forms/"+id+"/submit", map[string]any{"content": raw})
	require.Equal(t, http.StatusOK, rec.Code)

	q, err := a.client.Question(context.Background(), 3)
	require.NoError(t, err)
	require.NotEmpty(t, q.Answers)
	assert.Equal(t, "First line of a fairly long answer\nsecond line that keeps going on", q.Answers[len(q.Answers)-1].Content)
}

func TestFormEventRateLimit(t *testing.T) {
	t.Parallel()

	a := newApp(t, qa.Config{FormEventBurst: 2, FormEventRate: 1})
	id := a.formID(a.get("/ask"))

	for range 2 {
		rec := a.post("/forms/"+id+"/blur?field=title", map[string]any{"title": ""})
		require.Equal(t, http.StatusOK, rec.Code)
	}

	rec := a.post("/forms/"+id+"/blur?field=title", map[string]any{"title": ""})
	assert.Contains(t, rec.Body.String(), "Too many requests")
	assert.NotEmpty(t, rec.Header().Get("Retry-After"))

	// Page loads are not limited.
	assert.Equal(t, http.StatusOK, a.get("/ask").Code)
}

func TestFormEventRateLimitInvalidConfig(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := logger.New(logger.WithOutput(&buf), logger.WithFormat(logger.FormatJSON))
	client := questions.New(questions.WithLatency(questions.Latency{}))
	svc := qa.NewService(qa.Config{FormEventBurst: 1, FormEventRate: -1}, client, qa.WithLogger(log))
	h := qa.Router(qa.RouterOptions{Service: svc})

	assert.Contains(t, buf.String(), "form event rate limit disabled")
	assert.Contains(t, buf.String(), "refill rate must be positive")

	page := httptest.NewRecorder()
	h.ServeHTTP(page, httptest.NewRequest(http.MethodGet, "/ask", nil))
	id := formIDPattern.FindStringSubmatch(page.Body.String())
	require.Len(t, id, 2)

	for range 3 {
		req := httptest.NewRequest(http.MethodPost, "/forms/"+id[1]+"/blur?field=title", strings.NewReader(`{"title":""}`))
		req.Header.Set("Datastar-Request", "true")
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Empty(t, rec.Header().Get("X-RateLimit-Limit"))
	}
}

func TestHealth(t *testing.T) {
	t.Parallel()

	a := newApp(t, qa.Config{FormIdleTTL: time.Minute})

	rec := a.get("/healthz")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ALIVE", rec.Body.String())

	assert.Equal(t, http.StatusServiceUnavailable, a.get("/readyz").Code)

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	go a.svc.Registry().Run(ctx)

	assert.Eventually(t, func() bool {
		return a.get("/readyz").Code == http.StatusOK
	}, time.Second, 10*time.Millisecond)
}
