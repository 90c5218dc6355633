// AI Backend API
//
// This is the main entry point for running the backend as a long-lived
// process. It serves the informational endpoints and logs every request and
// response.
//
// Usage:
//
//	PORT=8000 go run ./cmd/api
//
// Environment Variables:
//   - HOST, PORT: Address to listen on (default: "0.0.0.0", "8000")
//   - LISTEN_ADDR: Full listen address, overrides HOST and PORT
//   - LOG_DIR: Directory for app.log and api_requests.log (default: "logs")
//   - LOG_LEVEL: Minimum log level (default: "info")
//   - ENABLE_PPROF: Mount /debug/pprof/ (default: false)
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"aibackend/internal/config"
	"aibackend/internal/server"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	cfg := config.Load()

	srv, err := server.Bootstrap(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Logging setup failed")
	}
	defer srv.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := srv.ListenAndServe(ctx); err != nil {
		srv.Logs().Root.Error().Err(err).Msg("Server error")
		srv.Close()
		os.Exit(1)
	}
}
