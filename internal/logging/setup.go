package logging

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Log file names inside Options.Dir.
const (
	AppLogFile = "app.log"
	APILogFile = "api_requests.log"
)

// Options controls where the loggers write.
type Options struct {
	// Dir holds the rotating log files. Ignored when Serverless is set.
	Dir string

	Level zerolog.Level

	// MaxSizeMB and MaxBackups bound each rotating file.
	MaxSizeMB  int
	MaxBackups int

	// Serverless routes every logger to Console as JSON and never touches
	// the filesystem.
	Serverless bool

	// Console defaults to os.Stdout.
	Console io.Writer
}

// Loggers is the process logging handle. It is built once by Setup and passed
// to everything that logs.
type Loggers struct {
	// Root receives process lifecycle events. On a long-lived host it writes
	// to the console and the application log file.
	Root zerolog.Logger

	// App receives application events.
	App zerolog.Logger

	// API receives one record per request and one per response.
	API zerolog.Logger

	files []*lumberjack.Logger
}

// Setup builds the loggers for the current host. On a long-lived host it
// creates opts.Dir and fails if the directory cannot be created.
func Setup(opts Options) (*Loggers, error) {
	configureFormat()

	console := opts.Console
	if console == nil {
		console = os.Stdout
	}

	if opts.Serverless {
		return &Loggers{
			Root: newJSONLogger(console, RootLogger, opts.Level),
			App:  newJSONLogger(console, AppLogger, opts.Level),
			API:  newJSONLogger(console, APILogger, opts.Level),
		}, nil
	}

	if err := os.MkdirAll(opts.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("create log directory %q: %w", opts.Dir, err)
	}

	appFile := newRotatingFile(filepath.Join(opts.Dir, AppLogFile), opts)
	apiFile := newRotatingFile(filepath.Join(opts.Dir, APILogFile), opts)

	// App and API do not share the console sink.
	return &Loggers{
		Root:  newJSONLogger(zerolog.MultiLevelWriter(newConsoleWriter(console), appFile), RootLogger, opts.Level),
		App:   newJSONLogger(appFile, AppLogger, opts.Level),
		API:   newJSONLogger(apiFile, APILogger, opts.Level),
		files: []*lumberjack.Logger{appFile, apiFile},
	}, nil
}

// Close releases the log files.
func (l *Loggers) Close() error {
	var errs []error
	for _, f := range l.files {
		errs = append(errs, f.Close())
	}
	return errors.Join(errs...)
}

func newRotatingFile(path string, opts Options) *lumberjack.Logger {
	return &lumberjack.Logger{
		Filename:   path,
		MaxSize:    opts.MaxSizeMB,
		MaxBackups: opts.MaxBackups,
	}
}
