package logging

import (
	"time"

	"github.com/rs/zerolog"
)

// Record holds the request-scoped attributes of an API log entry. Zero
// values are omitted from the rendered line.
type Record struct {
	RequestID    string
	Method       string
	URL          string
	StatusCode   int
	ResponseTime *time.Duration
	ClientIP     string
	UserAgent    string
	RequestBody  string
	ResponseBody string
}

// MarshalZerologObject implements zerolog.LogObjectMarshaler.
func (r Record) MarshalZerologObject(e *zerolog.Event) {
	if r.RequestID != "" {
		e.Str("request_id", r.RequestID)
	}
	if r.Method != "" {
		e.Str("method", r.Method)
	}
	if r.URL != "" {
		e.Str("url", r.URL)
	}
	if r.StatusCode != 0 {
		e.Int("status_code", r.StatusCode)
	}
	if r.ResponseTime != nil {
		e.Float64("response_time", r.ResponseTime.Seconds())
	}
	if r.ClientIP != "" {
		e.Str("client_ip", r.ClientIP)
	}
	if r.UserAgent != "" {
		e.Str("user_agent", r.UserAgent)
	}
	if r.RequestBody != "" {
		e.Str("request_body", r.RequestBody)
	}
	if r.ResponseBody != "" {
		e.Str("response_body", r.ResponseBody)
	}
}

// LogRequest writes the request-phase record to the API log.
func (l *Loggers) LogRequest(r Record) {
	l.API.Info().EmbedObject(r).Msg("API Request")
}

// LogResponse writes the response-phase record to the API log.
func (l *Loggers) LogResponse(r Record) {
	l.API.Info().EmbedObject(r).Msg("API Response")
}
