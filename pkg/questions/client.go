package questions

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/dmitrymomot/qanda/pkg/logger"
)

// Client serves questions and answers from memory.
type Client struct {
	mu        sync.RWMutex
	questions []Question
	latency   Latency
	now       func() time.Time
	log       *slog.Logger
}

// Option configures a Client.
type Option func(*Client)

func WithLatency(l Latency) Option {
	return func(c *Client) { c.latency = l }
}

// WithQuestions replaces the built-in data set.
func WithQuestions(qs []Question) Option {
	return func(c *Client) {
		c.questions = make([]Question, 0, len(qs))
		for _, q := range qs {
			c.questions = append(c.questions, q.clone())
		}
	}
}

// WithClock sets the time source used for created timestamps.
func WithClock(now func() time.Time) Option {
	return func(c *Client) {
		if now != nil {
			c.now = now
		}
	}
}

func WithLogger(l *slog.Logger) Option {
	return func(c *Client) {
		if l != nil {
			c.log = l
		}
	}
}

// New creates a client with the built-in data set and DefaultLatency.
func New(opts ...Option) *Client {
	c := &Client{
		latency: DefaultLatency,
		now:     time.Now,
		log:     logger.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.questions == nil {
		c.questions = defaultSeed(c.now())
	}
	c.log = c.log.With(logger.Component("questions"))
	return c
}

// UnansweredQuestions returns questions without answers, in insertion order.
func (c *Client) UnansweredQuestions(ctx context.Context) ([]Question, error) {
	if err := wait(ctx, c.latency.List); err != nil {
		return nil, err
	}

	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]Question, 0, len(c.questions))
	for _, q := range c.questions {
		if !q.Answered() {
			out = append(out, q.clone())
		}
	}
	return out, nil
}

// Question returns the question with id or ErrNotFound.
func (c *Client) Question(ctx context.Context, id int) (Question, error) {
	if err := wait(ctx, c.latency.Get); err != nil {
		return Question{}, err
	}

	c.mu.RLock()
	defer c.mu.RUnlock()

	if i := c.indexOf(id); i >= 0 {
		return c.questions[i].clone(), nil
	}
	return Question{}, ErrNotFound
}

// Search returns questions whose title or content contains criteria,
// case-insensitively. Empty criteria match everything.
func (c *Client) Search(ctx context.Context, criteria string) ([]Question, error) {
	if err := wait(ctx, c.latency.Search); err != nil {
		return nil, err
	}

	needle := strings.ToLower(criteria)

	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]Question, 0)
	for _, q := range c.questions {
		if strings.Contains(strings.ToLower(q.Title), needle) ||
			strings.Contains(strings.ToLower(q.Content), needle) {
			out = append(out, q.clone())
		}
	}
	return out, nil
}

// PostQuestion stores a new question with the next free id. Titles are
// unique, case-insensitively; a clash returns ErrDuplicateTitle.
func (c *Client) PostQuestion(ctx context.Context, in NewQuestion) (Question, error) {
	if err := wait(ctx, c.latency.Post); err != nil {
		return Question{}, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	nextID := 1
	for _, q := range c.questions {
		if strings.EqualFold(strings.TrimSpace(q.Title), strings.TrimSpace(in.Title)) {
			return Question{}, ErrDuplicateTitle
		}
		nextID = max(nextID, q.ID+1)
	}

	q := Question{
		ID:       nextID,
		Title:    in.Title,
		Content:  in.Content,
		UserName: in.UserName,
		Created:  c.now(),
	}
	c.questions = append(c.questions, q)
	c.log.InfoContext(ctx, "question posted", slog.Int("question_id", q.ID))
	return q.clone(), nil
}

// PostAnswer appends an answer to an existing question.
func (c *Client) PostAnswer(ctx context.Context, in NewAnswer) (Answer, error) {
	if err := wait(ctx, c.latency.Post); err != nil {
		return Answer{}, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	i := c.indexOf(in.QuestionID)
	if i < 0 {
		return Answer{}, ErrNotFound
	}

	q := &c.questions[i]
	nextID := 1
	for _, a := range q.Answers {
		nextID = max(nextID, a.ID+1)
	}

	a := Answer{
		ID:       nextID,
		Content:  in.Content,
		UserName: in.UserName,
		Created:  c.now(),
	}
	q.Answers = append(q.Answers, a)
	c.log.InfoContext(ctx, "answer posted",
		slog.Int("question_id", q.ID),
		slog.Int("answer_id", a.ID),
	)
	return a, nil
}

// Must be called with c.mu held.
func (c *Client) indexOf(id int) int {
	for i, q := range c.questions {
		if q.ID == id {
			return i
		}
	}
	return -1
}

// wait sleeps for d or until ctx is done.
func wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
