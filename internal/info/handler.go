// Package info serves the informational endpoints: the service description
// at the root and a fixed greeting.
package info

import (
	"encoding/json"
	"net/http"

	"aibackend/internal/config"
)

// HelloPath is where HelloWorld is mounted.
const HelloPath = "/helloworld"

// RootResponse is the response shape for GET /.
type RootResponse struct {
	Message   string            `json:"message"`
	Version   string            `json:"version"`
	Endpoints map[string]string `json:"endpoints"`
}

// MessageResponse is the response shape for GET /helloworld.
type MessageResponse struct {
	Message string `json:"message"`
}

// Root returns the handler for GET /.
func Root(app config.AppInfo) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, RootResponse{
			Message: app.Name + " API is running",
			Version: app.Version,
			Endpoints: map[string]string{
				"hello": HelloPath,
			},
		})
	}
}

// HelloWorld handles GET /helloworld.
func HelloWorld(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, MessageResponse{Message: "Hello World"})
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}
