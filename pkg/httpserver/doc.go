// Package httpserver runs an http.Handler with graceful shutdown.
//
// Run binds the listener before returning control to the caller's hooks, so
// start hooks see the real address (useful with ":0"), then blocks until the
// context is cancelled or SIGINT/SIGTERM arrives. Shutdown drains in-flight
// requests within the configured deadline. Start and stop failures are
// wrapped with ErrStart and ErrShutdown.
//
//	srv := httpserver.NewFromConfig(cfg.HTTP, httpserver.WithLogger(log))
//	if err := srv.Run(ctx, router); err != nil {
//		log.Error("server stopped", logger.Error(err))
//	}
//
// LivenessHandler and ReadinessHandler serve the usual probe endpoints.
package httpserver
