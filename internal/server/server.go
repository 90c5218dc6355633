// Package server provides HTTP server setup, routing, and middleware.
package server

import (
	"context"
	"errors"
	"net/http"
	"net/http/pprof"
	"time"

	"github.com/rs/zerolog"

	"aibackend/internal/config"
	"aibackend/internal/info"
	"aibackend/internal/logging"
)

// shutdownTimeout bounds how long in-flight requests get after a stop signal.
const shutdownTimeout = 10 * time.Second

// Server holds the HTTP server and its dependencies.
type Server struct {
	cfg    *config.Config
	logs   *logging.Loggers
	router *http.ServeMux
}

// New creates a new Server with all routes configured.
func New(cfg *config.Config, logs *logging.Loggers) *Server {
	s := &Server{
		cfg:    cfg,
		logs:   logs,
		router: http.NewServeMux(),
	}
	s.setupRoutes()
	return s
}

// Bootstrap sets up logging for cfg and returns a Server using it. Every
// entry point starts here.
func Bootstrap(cfg *config.Config) (*Server, error) {
	logs, err := logging.Setup(LogOptions(cfg))
	if err != nil {
		return nil, err
	}
	logs.App.Info().
		Str("name", cfg.App.Name).
		Str("version", cfg.App.Version).
		Bool("serverless", cfg.Serverless).
		Msg("Application initialized")
	return New(cfg, logs), nil
}

// LogOptions maps cfg onto logging options. Unknown level names fall back to info.
func LogOptions(cfg *config.Config) logging.Options {
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}
	return logging.Options{
		Dir:        cfg.LogDir,
		Level:      level,
		MaxSizeMB:  cfg.LogMaxSizeMB,
		MaxBackups: cfg.LogMaxBackups,
		Serverless: cfg.Serverless,
	}
}

// setupRoutes configures all HTTP routes.
func (s *Server) setupRoutes() {
	// {$} keeps the root from matching every unknown path.
	s.router.HandleFunc("GET /{$}", info.Root(s.cfg.App))
	s.router.HandleFunc("GET "+info.HelloPath, info.HelloWorld)

	if s.cfg.EnablePprof {
		s.logs.Root.Info().Msg("Pprof enabled")
		s.router.HandleFunc("/debug/pprof/", pprof.Index)
		s.router.HandleFunc("/debug/pprof/cmdline", pprof.Cmdline)
		s.router.HandleFunc("/debug/pprof/profile", pprof.Profile)
		s.router.HandleFunc("/debug/pprof/symbol", pprof.Symbol)
		s.router.HandleFunc("/debug/pprof/trace", pprof.Trace)
	}
}

// Handler returns the HTTP handler with all middleware applied.
func (s *Server) Handler() http.Handler {
	return LoggingMiddleware(s.logs)(s.router)
}

// Logs returns the logging handle the server writes to.
func (s *Server) Logs() *logging.Loggers {
	return s.logs
}

// ListenAndServe starts the HTTP server and blocks until it fails or ctx is
// cancelled, in which case in-flight requests are drained before returning.
func (s *Server) ListenAndServe(ctx context.Context) error {
	s.logs.Root.Info().
		Str("listen_addr", s.cfg.ListenAddr).
		Msg("Starting server")

	srv := &http.Server{
		Addr:    s.cfg.ListenAddr,
		Handler: s.Handler(),
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	s.logs.Root.Info().Msg("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Close releases the log files.
func (s *Server) Close() error {
	return s.logs.Close()
}
