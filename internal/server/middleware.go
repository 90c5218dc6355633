// Package server provides HTTP server setup, routing, and middleware.
package server

import (
	"bytes"
	"io"
	"net"
	"net/http"
	"time"
	"unicode/utf8"

	"github.com/felixge/httpsnoop"
	"github.com/google/uuid"

	"aibackend/internal/logging"
)

// RequestIDHeader carries the id shared by a request's two API log records.
const RequestIDHeader = "X-Request-ID"

// Placeholders logged in place of a body that is not readable text.
const (
	unreadableRequestBody  = "Unable to read request body"
	unreadableResponseBody = "Unable to read response body"
)

// maxLoggedBody caps how much of each request and response body is logged.
// Bodies beyond it are logged cut short with truncatedMarker appended.
const (
	maxLoggedBody   = 64 << 10
	truncatedMarker = "...[truncated]"
)

// LoggingMiddleware logs every request and its response to the API logger.
// Both records carry the same request id, which is also returned in the
// X-Request-ID header. If next panics, the response record is not written.
func LoggingMiddleware(logs *logging.Loggers) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requestID := uuid.NewString()
			start := time.Now()

			req := logging.Record{
				RequestID: requestID,
				Method:    r.Method,
				URL:       requestURL(r),
				ClientIP:  clientIP(r),
				UserAgent: userAgent(r),
			}
			if hasBody(r.Method) {
				req.RequestBody = readRequestBody(r)
			}
			logs.LogRequest(req)

			// Headers are frozen once next writes, so the id goes on first.
			w.Header().Set(RequestIDHeader, requestID)

			body := &cappedBuffer{max: maxLoggedBody}
			m := httpsnoop.CaptureMetrics(next, teeBody(w, body), r)
			elapsed := time.Since(start)

			logs.LogResponse(logging.Record{
				RequestID:    requestID,
				Method:       req.Method,
				URL:          req.URL,
				StatusCode:   m.Code,
				ResponseTime: &elapsed,
				ResponseBody: body.Text(unreadableResponseBody),
			})
		})
	}
}

// teeBody copies up to maxLoggedBody bytes written to w into buf.
func teeBody(w http.ResponseWriter, buf *cappedBuffer) http.ResponseWriter {
	return httpsnoop.Wrap(w, httpsnoop.Hooks{
		Write: func(next httpsnoop.WriteFunc) httpsnoop.WriteFunc {
			return func(p []byte) (int, error) {
				n, err := next(p)
				buf.Write(p[:n])
				return n, err
			}
		},
		ReadFrom: func(next httpsnoop.ReadFromFunc) httpsnoop.ReadFromFunc {
			return func(src io.Reader) (int64, error) {
				return next(io.TeeReader(src, buf))
			}
		},
	})
}

// cappedBuffer keeps the first max bytes written to it and drops the rest.
// Writes never fail.
type cappedBuffer struct {
	buf       bytes.Buffer
	max       int
	truncated bool
}

func (c *cappedBuffer) Write(p []byte) (int, error) {
	n := len(p)
	if room := c.max - c.buf.Len(); n > room {
		c.truncated = true
		p = p[:room]
	}
	c.buf.Write(p)
	return n, nil
}

// Text returns the captured text, the placeholder if it is not valid
// UTF-8, or "" when nothing was written.
func (c *cappedBuffer) Text(placeholder string) string {
	return decodeCapture(c.buf.Bytes(), c.truncated, placeholder)
}

func hasBody(method string) bool {
	switch method {
	case http.MethodPost, http.MethodPut, http.MethodPatch:
		return true
	}
	return false
}

// readRequestBody reads up to maxLoggedBody bytes of r.Body for logging and
// puts them back in front of the unread remainder. A read error is replayed
// to the downstream handler after the bytes that were read.
func readRequestBody(r *http.Request) string {
	if r.Body == nil || r.Body == http.NoBody {
		return ""
	}
	data, err := io.ReadAll(io.LimitReader(r.Body, maxLoggedBody+1))

	rest := io.Reader(r.Body)
	if err != nil {
		rest = errReader{err}
	}
	r.Body = replayBody{Reader: io.MultiReader(bytes.NewReader(data), rest), Closer: r.Body}

	if err != nil {
		return unreadableRequestBody
	}
	if len(data) > maxLoggedBody {
		return decodeCapture(data[:maxLoggedBody], true, unreadableRequestBody)
	}
	return decodeCapture(data, false, unreadableRequestBody)
}

type replayBody struct {
	io.Reader
	io.Closer
}

type errReader struct{ err error }

func (e errReader) Read([]byte) (int, error) { return 0, e.err }

// decodeCapture returns data as text, placeholder if it is not valid UTF-8,
// or "" when empty. Truncated captures drop a rune split at the cut and end
// with truncatedMarker.
func decodeCapture(data []byte, truncated bool, placeholder string) string {
	if len(data) == 0 {
		return ""
	}
	if truncated {
		for i := 0; i < utf8.UTFMax-1 && len(data) > 0 && !utf8.Valid(data); i++ {
			data = data[:len(data)-1]
		}
	}
	if !utf8.Valid(data) {
		return placeholder
	}
	if truncated {
		return string(data) + truncatedMarker
	}
	return string(data)
}

func requestURL(r *http.Request) string {
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	return scheme + "://" + r.Host + r.URL.RequestURI()
}

func clientIP(r *http.Request) string {
	if r.RemoteAddr == "" {
		return "unknown"
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

func userAgent(r *http.Request) string {
	if ua := r.UserAgent(); ua != "" {
		return ua
	}
	return "unknown"
}
