package qa

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/qanda/binder"
	"github.com/dmitrymomot/qanda/handler"
	"github.com/dmitrymomot/qanda/pkg/form"
	"github.com/dmitrymomot/qanda/pkg/logger"
	"github.com/dmitrymomot/qanda/pkg/questions"
	"github.com/dmitrymomot/qanda/pkg/ratelimiter"
)

// QuestionsClient is the backend the module reads from and posts to.
type QuestionsClient interface {
	UnansweredQuestions(ctx context.Context) ([]questions.Question, error)
	Question(ctx context.Context, id int) (questions.Question, error)
	Search(ctx context.Context, criteria string) ([]questions.Question, error)
	PostQuestion(ctx context.Context, in questions.NewQuestion) (questions.Question, error)
	PostAnswer(ctx context.Context, in questions.NewAnswer) (questions.Answer, error)
}

// Service serves the Q&A pages and the form event endpoints.
type Service struct {
	cfg          Config
	client       QuestionsClient
	registry     *Registry
	limiter      *ratelimiter.Limiter
	views        *Views
	log          *slog.Logger
	errorHandler handler.ErrorHandler
}

type ServiceOption func(*Service)

func WithViews(v *Views) ServiceOption {
	return func(s *Service) {
		if v != nil {
			s.views = v
		}
	}
}

func WithLogger(l *slog.Logger) ServiceOption {
	return func(s *Service) {
		if l != nil {
			s.log = l
		}
	}
}

// WithRegistry shares a registry, e.g. one whose janitor runs elsewhere.
func WithRegistry(r *Registry) ServiceOption {
	return func(s *Service) {
		if r != nil {
			s.registry = r
		}
	}
}

func NewService(cfg Config, client QuestionsClient, opts ...ServiceOption) *Service {
	s := &Service{
		cfg:    cfg.withDefaults(),
		client: client,
		views:  DefaultViews(),
		log:    logger.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.log = s.log.With(logger.Component("qa"))
	if s.registry == nil {
		s.registry = NewRegistry(s.cfg.MaxForms, s.cfg.FormIdleTTL, s.log)
	}
	if s.cfg.FormEventBurst > 0 {
		l, err := ratelimiter.New(ratelimiter.Config{
			Capacity:       s.cfg.FormEventBurst,
			RefillRate:     s.cfg.FormEventRate,
			RefillInterval: time.Second,
		})
		if err != nil {
			s.log.Warn("form event rate limit disabled", logger.Error(err))
		} else {
			s.limiter = l
		}
	}
	s.errorHandler = handler.NewErrorHandler(s.log, handler.ErrorHandlerConfig{
		ErrorPage:   s.views.ErrorPage,
		ErrorToast:  s.views.ErrorToast,
		ToastTarget: "#" + ToastsElementID,
	})
	return s
}

// Registry returns the live form registry.
func (s *Service) Registry() *Registry { return s.registry }

// Run purges idle form instances and rate limit buckets until ctx is done.
func (s *Service) Run(ctx context.Context) {
	if s.limiter != nil {
		go s.limiter.Run(ctx)
	}
	s.registry.Run(ctx)
}

func (s *Service) Handle() http.Handler {
	r := chi.NewRouter()

	r.Get("/", handler.Wrap[struct{}](s.home,
		handler.WithErrorHandler[struct{}](s.errorHandler),
	))
	r.Get("/search", handler.Wrap[SearchRequest](s.search,
		handler.WithBinders[SearchRequest](binder.Query()),
		handler.WithErrorHandler[SearchRequest](s.errorHandler),
	))
	question := handler.Wrap[QuestionRequest](s.question,
		handler.WithBinders[QuestionRequest](binder.Path(chi.URLParam)),
		handler.WithErrorHandler[QuestionRequest](s.errorHandler),
	)
	r.Get("/questions/{id}", question)
	r.Get("/questions/{id}/{slug}", question)
	r.Get("/ask", handler.Wrap[struct{}](s.ask,
		handler.WithErrorHandler[struct{}](s.errorHandler),
	))

	r.Route("/forms/{formID}", func(r chi.Router) {
		if s.limiter != nil {
			r.Use(ratelimiter.Middleware(s.limiter, ratelimiter.RemoteIP,
				ratelimiter.WithLimitedHandler(s.rateLimited),
			))
		}
		binders := handler.WithBinders[FormEventRequest](
			binder.Signals(),
			binder.Path(chi.URLParam),
			binder.Query(),
		)
		errs := handler.WithErrorHandler[FormEventRequest](s.errorHandler)
		r.Post("/change", handler.Wrap[FormEventRequest](s.change, binders, errs))
		r.Post("/blur", handler.Wrap[FormEventRequest](s.blur, binders, errs))
		r.Post("/submit", handler.Wrap[FormEventRequest](s.submit, binders, errs))
	})

	r.NotFound(handler.Wrap[struct{}](func(handler.Context, struct{}) handler.Response {
		return errorResponse{handler.ErrNotFound}
	}, handler.WithErrorHandler[struct{}](s.errorHandler)))

	return r
}

// newInstance creates and registers a form instance for def.
func (s *Service) newInstance(def FormDef, questionID int, submit form.SubmitFunc) *Instance {
	id := NewID()
	inst := &Instance{
		ID:         id,
		Def:        def,
		QuestionID: questionID,
		Form: form.New(def.Rules, submit,
			form.WithID(id),
			form.WithLogger(s.log),
			form.WithSubmitTimeout(s.cfg.SubmitTimeout),
			form.WithSuccessMessage(def.SuccessMessage),
			form.WithFailureMessage(def.FailureMessage),
		),
	}
	s.registry.Put(inst)
	return inst
}

func (s *Service) rateLimited(w http.ResponseWriter, r *http.Request, res ratelimiter.Result) {
	s.log.WarnContext(r.Context(), "form events rate limited",
		slog.String("client", ratelimiter.RemoteIP(r)),
		logger.Duration(res.RetryAfter),
	)
	s.errorHandler(handler.NewContext(w, r), handler.ErrTooManyRequests)
}

// errorResponse defers err to the error handler at render time.
type errorResponse struct{ err error }

func (e errorResponse) Render(http.ResponseWriter, *http.Request) error { return e.err }
