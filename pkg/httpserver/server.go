package httpserver

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/dmitrymomot/qanda/pkg/logger"
)

// Server runs a single http.Server with graceful shutdown.
type Server struct {
	opts options

	mu       sync.Mutex
	srv      *http.Server
	addr     string
	stopOnce sync.Once
	stopErr  error
}

// New returns a Server listening on ":8080" unless configured otherwise.
func New(opts ...Option) *Server {
	o := options{
		addr:            ":8080",
		shutdownTimeout: 10 * time.Second,
		log:             logger.Nop(),
	}
	for _, opt := range opts {
		opt(&o)
	}
	o.log = o.log.With(logger.Component("httpserver"))
	return &Server{opts: o}
}

// Addr returns the bound address, or "" before Run has bound the listener.
func (s *Server) Addr() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.addr
}

// Run serves h until ctx is done, a termination signal arrives or Shutdown
// is called. A nil handler serves 404 for everything.
func (s *Server) Run(ctx context.Context, h http.Handler) error {
	if h == nil {
		h = http.NotFoundHandler()
	}

	s.mu.Lock()
	if s.srv != nil {
		s.mu.Unlock()
		return errors.Join(ErrStart, ErrAlreadyRunning)
	}
	ln, err := net.Listen("tcp", s.opts.addr)
	if err != nil {
		s.mu.Unlock()
		return errors.Join(ErrStart, err)
	}
	srv := &http.Server{
		Handler:           h,
		ReadHeaderTimeout: s.opts.readHeaderTimeout,
		ReadTimeout:       s.opts.readTimeout,
		WriteTimeout:      s.opts.writeTimeout,
		IdleTimeout:       s.opts.idleTimeout,
		ErrorLog:          slog.NewLogLogger(s.opts.log.Handler(), slog.LevelWarn),
		BaseContext:       func(net.Listener) context.Context { return context.WithoutCancel(ctx) },
	}
	s.srv = srv
	s.addr = ln.Addr().String()
	s.mu.Unlock()

	log := s.opts.log.With(slog.String("addr", s.addr))
	for _, hook := range s.opts.onStart {
		hook(log, s.addr)
	}
	log.InfoContext(ctx, "http server started")

	errCh := make(chan error, 1)
	go func() { errCh <- srv.Serve(ln) }()

	sigCtx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	select {
	case <-sigCtx.Done():
		if err := s.Shutdown(context.WithoutCancel(ctx)); err != nil {
			<-errCh
			return err
		}
		err = <-errCh
	case err = <-errCh:
	}

	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.ErrorContext(ctx, "http server failed", logger.Error(err))
		return errors.Join(ErrStart, err)
	}
	return nil
}

// Shutdown gracefully stops a running server. Repeated calls return the
// result of the first one; calling it before Run is a no-op.
func (s *Server) Shutdown(ctx context.Context) error {
	s.mu.Lock()
	srv := s.srv
	s.mu.Unlock()
	if srv == nil {
		return nil
	}

	s.stopOnce.Do(func() {
		ctx, cancel := context.WithTimeout(ctx, s.opts.shutdownTimeout)
		defer cancel()

		log := s.opts.log.With(slog.String("addr", s.Addr()))
		start := time.Now()
		if err := srv.Shutdown(ctx); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.stopErr = errors.Join(ErrShutdown, err)
			_ = srv.Close()
		}
		for _, hook := range s.opts.onStop {
			hook(log, s.Addr())
		}
		if s.stopErr != nil {
			log.ErrorContext(ctx, "http server shutdown failed", logger.Error(s.stopErr))
			return
		}
		log.InfoContext(ctx, "http server stopped", logger.Duration(time.Since(start)))
	})
	return s.stopErr
}
