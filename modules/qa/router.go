package qa

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/dmitrymomot/qanda/pkg/httpserver"
	"github.com/dmitrymomot/qanda/pkg/logger"
)

type RouterOptions struct {
	Service *Service
	Logger  *slog.Logger
	// Checks are run by /readyz in addition to the form registry check.
	Checks []httpserver.Check
}

// Router mounts the Q&A service behind the common middleware stack and the
// health endpoints.
//
//	svc := qa.NewService(cfg.QA, client, qa.WithLogger(log))
//	go svc.Run(ctx)
//	srv.Run(ctx, qa.Router(qa.RouterOptions{Service: svc, Logger: log}))
func Router(opts RouterOptions) chi.Router {
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}

	r := chi.NewRouter()
	r.Use(
		middleware.RequestID,
		middleware.RealIP,
		requestLogger(log),
		middleware.Recoverer,
	)

	checks := append([]httpserver.Check{{Name: "form_registry", Fn: opts.Service.Registry().Ping}}, opts.Checks...)
	r.Get("/healthz", httpserver.LivenessHandler())
	r.Get("/readyz", httpserver.ReadinessHandler(log, checks...))

	r.Mount("/", opts.Service.Handle())
	return r
}

func requestLogger(log *slog.Logger) func(http.Handler) http.Handler {
	log = log.With(logger.Component("http"))
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r)
			log.LogAttrs(r.Context(), slog.LevelInfo, "request",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.Int("status", ww.Status()),
				slog.Int("bytes", ww.BytesWritten()),
				logger.Duration(time.Since(start)),
			)
		})
	}
}
