package logger

import (
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/LOSEARDES77/fstdout-logger/config"
	"github.com/LOSEARDES77/fstdout-logger/core"
)

var (
	// installMu serializes install attempts. The installed logger is
	// read lock-free on the hot path via the atomic pointer.
	installMu sync.Mutex
	installed atomic.Pointer[Logger]
)

// Default returns the installed logger, or nil when no Init function
// has succeeded yet. The package-level logging functions treat nil as
// a silent no-op.
func Default() *Logger {
	return installed.Load()
}

// installWithConfig is the shared body of every Init function. The
// installed check happens before the file open so that a rejected
// second init never creates or touches a file.
func installWithConfig(filePath string, cfg config.Config) error {
	installMu.Lock()
	defer installMu.Unlock()

	if installed.Load() != nil {
		return ErrAlreadyInitialized
	}

	l, err := New(filePath, cfg)
	if err != nil {
		return err
	}
	installed.Store(l)
	return nil
}

// InitLogger installs a dispatcher with the default configuration.
// An empty filePath means terminal output only.
func InitLogger(filePath string) error {
	return installWithConfig(filePath, config.Default())
}

// InitLoggerWithLevel installs a dispatcher with the default
// configuration except for the minimum level.
func InitLoggerWithLevel(filePath string, level core.Level) error {
	return installWithConfig(filePath, config.NewBuilder().WithLevel(level).Build())
}

// InitLoggerWithConfig installs a dispatcher with a caller-supplied
// configuration.
func InitLoggerWithConfig(filePath string, cfg config.Config) error {
	return installWithConfig(filePath, cfg)
}

// InitProductionLogger installs a dispatcher with the production
// preset: Info level, no file info, time-only timestamps, colors on.
func InitProductionLogger(filePath string) error {
	return installWithConfig(filePath, config.Production())
}

// InitDevelopmentLogger installs a dispatcher with the development
// preset: Debug level, file info and date shown, colors on.
func InitDevelopmentLogger(filePath string) error {
	return installWithConfig(filePath, config.Development())
}

// InitStdoutLogger installs a terminal-only dispatcher with the given
// configuration.
func InitStdoutLogger(cfg config.Config) error {
	return installWithConfig("", cfg)
}

// InitSimpleStdoutLogger installs a terminal-only dispatcher with the
// default configuration except for the minimum level.
func InitSimpleStdoutLogger(level core.Level) error {
	return installWithConfig("", config.NewBuilder().WithLevel(level).Build())
}

// Package-level convenience functions using the installed logger.
// Before a successful Init call they are silent no-ops.

// Trace logs a trace message using the installed logger
func Trace(msg string) {
	l := Default()
	if l == nil || core.TraceLevel < l.cfg.Level {
		return
	}
	l.log(core.TraceLevel, msg, defaultCallerSkip)
}

// Debug logs a debug message using the installed logger
func Debug(msg string) {
	l := Default()
	if l == nil || core.DebugLevel < l.cfg.Level {
		return
	}
	l.log(core.DebugLevel, msg, defaultCallerSkip)
}

// Info logs an info message using the installed logger
func Info(msg string) {
	l := Default()
	if l == nil || core.InfoLevel < l.cfg.Level {
		return
	}
	l.log(core.InfoLevel, msg, defaultCallerSkip)
}

// Warn logs a warning message using the installed logger
func Warn(msg string) {
	l := Default()
	if l == nil || core.WarnLevel < l.cfg.Level {
		return
	}
	l.log(core.WarnLevel, msg, defaultCallerSkip)
}

// Error logs an error message using the installed logger
func Error(msg string) {
	l := Default()
	if l == nil || core.ErrorLevel < l.cfg.Level {
		return
	}
	l.log(core.ErrorLevel, msg, defaultCallerSkip)
}

// Tracef logs a formatted trace message using the installed logger
func Tracef(format string, args ...interface{}) {
	l := Default()
	if l == nil || core.TraceLevel < l.cfg.Level {
		return
	}
	l.log(core.TraceLevel, fmt.Sprintf(format, args...), defaultCallerSkip)
}

// Debugf logs a formatted debug message using the installed logger
func Debugf(format string, args ...interface{}) {
	l := Default()
	if l == nil || core.DebugLevel < l.cfg.Level {
		return
	}
	l.log(core.DebugLevel, fmt.Sprintf(format, args...), defaultCallerSkip)
}

// Infof logs a formatted info message using the installed logger
func Infof(format string, args ...interface{}) {
	l := Default()
	if l == nil || core.InfoLevel < l.cfg.Level {
		return
	}
	l.log(core.InfoLevel, fmt.Sprintf(format, args...), defaultCallerSkip)
}

// Warnf logs a formatted warning message using the installed logger
func Warnf(format string, args ...interface{}) {
	l := Default()
	if l == nil || core.WarnLevel < l.cfg.Level {
		return
	}
	l.log(core.WarnLevel, fmt.Sprintf(format, args...), defaultCallerSkip)
}

// Errorf logs a formatted error message using the installed logger
func Errorf(format string, args ...interface{}) {
	l := Default()
	if l == nil || core.ErrorLevel < l.cfg.Level {
		return
	}
	l.log(core.ErrorLevel, fmt.Sprintf(format, args...), defaultCallerSkip)
}

// Flush flushes the installed logger's file sink
func Flush() error {
	return Default().Flush()
}
