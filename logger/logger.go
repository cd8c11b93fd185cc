package logger

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"go.uber.org/multierr"

	"github.com/LOSEARDES77/fstdout-logger/config"
	"github.com/LOSEARDES77/fstdout-logger/core"
	"github.com/LOSEARDES77/fstdout-logger/formatter"
)

// defaultCallerSkip is the runtime.Caller depth from GetCaller up to
// the user's call site when going through a leveled method or one of
// the package-level functions.
const defaultCallerSkip = 3

// Logger dispatches log records to a terminal stream and/or a log
// file, applying a distinct format to each. Its configuration is
// immutable after construction; only the sink writes are guarded by a
// mutex, so a Logger is safe for concurrent use.
type Logger struct {
	cfg  config.Config
	fmtr *formatter.Formatter

	// stdout is nil when terminal output is disabled
	stdout io.Writer
	// file is nil when no file sink is configured
	file *os.File

	// mu guards the whole write step so two concurrent records never
	// interleave their bytes, on either sink
	mu sync.Mutex

	// captureCaller is precomputed: caller data is only gathered when
	// some sink can render it
	captureCaller bool

	// writeErrOnce limits the file-write failure diagnostic to one
	// line per process
	writeErrOnce sync.Once
}

// New creates a logger writing to standard output and, when filePath
// is non-empty, to that file in append mode. It returns a
// *FileOpenError if the file cannot be opened or created.
func New(filePath string, cfg config.Config) (*Logger, error) {
	return NewWithWriter(os.Stdout, filePath, cfg)
}

// NewWithWriter is like New but writes terminal output to w instead of
// standard output. A nil w disables terminal output entirely; with an
// empty filePath as well, the logger silently discards every record.
func NewWithWriter(w io.Writer, filePath string, cfg config.Config) (*Logger, error) {
	var file *os.File
	if filePath != "" {
		f, err := os.OpenFile(filePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return nil, &FileOpenError{Path: filePath, Err: err}
		}
		file = f
	}

	return &Logger{
		cfg:           cfg,
		fmtr:          formatter.New(cfg),
		stdout:        w,
		file:          file,
		captureCaller: cfg.ShowFileInfo || file != nil,
	}, nil
}

// Config returns the logger's configuration snapshot
func (l *Logger) Config() config.Config {
	if l == nil {
		return config.Config{}
	}
	return l.cfg
}

// LogRecord dispatches a fully built record. This is the receiving end
// of the logging-backend contract, used by adapters (see the
// sloghandler package) that capture level, message and caller data
// themselves. A zero Time is replaced with the current time.
func (l *Logger) LogRecord(rec *core.Record) {
	if l == nil || rec.Level < l.cfg.Level {
		return
	}
	if rec.Time.IsZero() {
		rec.Time = time.Now()
	}
	l.write(rec)
}

// Log logs a message at the given level
func (l *Logger) Log(level core.Level, msg string) {
	if l == nil || level < l.cfg.Level {
		return
	}
	l.log(level, msg, defaultCallerSkip)
}

// log builds the record and hands it to the write step. Level
// filtering has already happened; skip is the runtime.Caller depth to
// the user's call site.
func (l *Logger) log(level core.Level, msg string, skip int) {
	rec := core.Record{
		Time:    time.Now(),
		Level:   level,
		Message: msg,
	}
	if l.captureCaller {
		rec.Caller = core.GetCaller(skip)
	}
	l.write(&rec)
}

// write sends one record to every active sink. The file sink is
// written first; a failed file write is dropped rather than surfaced
// to the caller, with a one-time diagnostic on stderr.
func (l *Logger) write(rec *core.Record) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.file != nil {
		if err := l.fmtr.WriteFile(l.file, rec); err != nil {
			l.writeErrOnce.Do(func() {
				fmt.Fprintf(os.Stderr, "fstdout-logger: dropping file log line: %v\n", err)
			})
		}
	}

	if l.stdout != nil {
		// Terminal write failures are ignored; logging must never
		// propagate errors into the host application.
		_ = l.fmtr.WriteStdout(l.stdout, rec)
	}
}

// Trace logs a trace message
func (l *Logger) Trace(msg string) {
	if l == nil || core.TraceLevel < l.cfg.Level {
		return
	}
	l.log(core.TraceLevel, msg, defaultCallerSkip)
}

// Debug logs a debug message
func (l *Logger) Debug(msg string) {
	if l == nil || core.DebugLevel < l.cfg.Level {
		return
	}
	l.log(core.DebugLevel, msg, defaultCallerSkip)
}

// Info logs an info message
func (l *Logger) Info(msg string) {
	if l == nil || core.InfoLevel < l.cfg.Level {
		return
	}
	l.log(core.InfoLevel, msg, defaultCallerSkip)
}

// Warn logs a warning message
func (l *Logger) Warn(msg string) {
	if l == nil || core.WarnLevel < l.cfg.Level {
		return
	}
	l.log(core.WarnLevel, msg, defaultCallerSkip)
}

// Error logs an error message
func (l *Logger) Error(msg string) {
	if l == nil || core.ErrorLevel < l.cfg.Level {
		return
	}
	l.log(core.ErrorLevel, msg, defaultCallerSkip)
}

// Tracef logs a trace message with formatting
func (l *Logger) Tracef(format string, args ...interface{}) {
	if l == nil || core.TraceLevel < l.cfg.Level {
		return
	}
	l.log(core.TraceLevel, fmt.Sprintf(format, args...), defaultCallerSkip)
}

// Debugf logs a debug message with formatting
func (l *Logger) Debugf(format string, args ...interface{}) {
	if l == nil || core.DebugLevel < l.cfg.Level {
		return
	}
	l.log(core.DebugLevel, fmt.Sprintf(format, args...), defaultCallerSkip)
}

// Infof logs an info message with formatting
func (l *Logger) Infof(format string, args ...interface{}) {
	if l == nil || core.InfoLevel < l.cfg.Level {
		return
	}
	l.log(core.InfoLevel, fmt.Sprintf(format, args...), defaultCallerSkip)
}

// Warnf logs a warning message with formatting
func (l *Logger) Warnf(format string, args ...interface{}) {
	if l == nil || core.WarnLevel < l.cfg.Level {
		return
	}
	l.log(core.WarnLevel, fmt.Sprintf(format, args...), defaultCallerSkip)
}

// Errorf logs an error message with formatting
func (l *Logger) Errorf(format string, args ...interface{}) {
	if l == nil || core.ErrorLevel < l.cfg.Level {
		return
	}
	l.log(core.ErrorLevel, fmt.Sprintf(format, args...), defaultCallerSkip)
}

// Flush forces buffered file data to stable storage. Terminal output
// is unbuffered and needs no flushing.
func (l *Logger) Flush() error {
	if l == nil {
		return nil
	}
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.file != nil {
		return l.file.Sync()
	}
	return nil
}

// Close releases the file sink. Further records still go to the
// terminal sink. Close is mainly useful in tests; in normal operation
// the dispatcher lives until process exit.
func (l *Logger) Close() error {
	if l == nil {
		return nil
	}
	l.mu.Lock()
	defer l.mu.Unlock()

	var err error
	if l.file != nil {
		err = multierr.Append(err, l.file.Sync())
		err = multierr.Append(err, l.file.Close())
		l.file = nil
	}
	return err
}
