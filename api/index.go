// Package handler is the Vercel serverless function for the backend.
// vercel.json rewrites every path here.
package handler

import (
	"net/http"
	"sync"

	"github.com/rs/zerolog/log"

	"aibackend/internal/config"
	"aibackend/internal/server"
)

var (
	once    sync.Once
	app     http.Handler
	initErr error
)

// Handler is the entry point for Vercel serverless functions.
func Handler(w http.ResponseWriter, r *http.Request) {
	once.Do(func() {
		srv, err := server.Bootstrap(config.Load())
		if err != nil {
			initErr = err
			return
		}
		app = srv.Handler()
	})

	if initErr != nil {
		writeInitError(w, initErr)
		return
	}
	app.ServeHTTP(w, r)
}

// writeInitError logs err and answers with a generic 500.
func writeInitError(w http.ResponseWriter, err error) {
	log.Error().Err(err).Msg("Application setup failed")
	http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
}
