// Package httpserver runs an http.Handler with sane timeouts and graceful
// shutdown.
//
// Run listens on the configured address, logs the bound address, and blocks
// until the context is cancelled, SIGINT or SIGTERM arrives, or the listener
// fails. Shutdown waits up to Config.ShutdownTimeout for in-flight requests.
//
//	srv := httpserver.New(cfg, httpserver.WithLogger(log))
//	if err := srv.Run(ctx, router); err != nil {
//	    log.Error("server stopped", logger.Error(err))
//	}
//
// Liveness and Readiness provide the probe handlers mounted at /healthz and
// /readyz. Errors are wrapped with ErrStart and ErrShutdown.
package httpserver
