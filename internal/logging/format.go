// Package logging builds the process loggers and defines the structured
// record written for every API request and response.
package logging

import (
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// TimeFormat renders record timestamps as ISO-8601 UTC with microseconds.
const TimeFormat = "2006-01-02T15:04:05.000000Z"

// consoleTimeFormat is used by the human-readable console sink.
const consoleTimeFormat = "2006-01-02 15:04:05.000"

// Logger names, written to the "logger" field of every record.
const (
	RootLogger = "root"
	AppLogger  = "app"
	APILogger  = "api"
)

var formatOnce sync.Once

// configureFormat sets zerolog's process-wide field names so that every JSON
// line reads {"level","logger","timestamp",...,"message"} with UTC timestamps.
func configureFormat() {
	formatOnce.Do(func() {
		zerolog.TimestampFieldName = "timestamp"
		zerolog.TimeFieldFormat = TimeFormat
		zerolog.TimestampFunc = func() time.Time { return time.Now().UTC() }
		zerolog.LevelFieldMarshalFunc = func(l zerolog.Level) string {
			return strings.ToUpper(l.String())
		}
	})
}

// newJSONLogger returns a logger writing one JSON object per line to w.
func newJSONLogger(w io.Writer, name string, level zerolog.Level) zerolog.Logger {
	return zerolog.New(w).
		Level(level).
		With().
		Timestamp().
		Str("logger", name).
		Logger()
}

// newConsoleWriter renders records as "time logger LEVEL message key=value...".
func newConsoleWriter(out io.Writer) zerolog.ConsoleWriter {
	return zerolog.ConsoleWriter{
		Out:        out,
		NoColor:    true,
		TimeFormat: consoleTimeFormat,
		PartsOrder: []string{
			zerolog.TimestampFieldName,
			"logger",
			zerolog.LevelFieldName,
			zerolog.MessageFieldName,
		},
		FieldsExclude: []string{"logger"},
		FormatLevel: func(i interface{}) string {
			return strings.ToUpper(fmt.Sprintf("%-5s", i))
		},
	}
}
