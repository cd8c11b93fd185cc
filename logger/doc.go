// Package logger is the public API of fstdout-logger. Most users only
// need to import this package.
//
// A Logger dispatches each record to a terminal stream and, when
// configured, to a log file opened in append mode. The two sinks get
// distinct renderings: compact and optionally colored for the
// terminal, always plain and fully timestamped for the file.
//
// The usual entry point is one of the Init functions, which build a
// Logger from shorthand parameters and install it as the process-wide
// default exactly once:
//
//	if err := logger.InitLogger("application.log"); err != nil {
//	    // a FileOpenError, or ErrAlreadyInitialized
//	}
//	logger.Info("application started")
//
// A second Init call in the same process returns
// ErrAlreadyInitialized and leaves the installed dispatcher untouched.
// Before any successful Init, the package-level functions are silent
// no-ops.
//
// Presets cover the common cases: InitProductionLogger for concise
// output (Info level, no file info), InitDevelopmentLogger for
// detailed output (Debug level, file info shown). Full control goes
// through config.Builder and InitLoggerWithConfig.
//
// Logging is best-effort by contract. Records below the configured
// level are discarded silently, a failed file write drops the line
// (with a one-time diagnostic on stderr), and no write error ever
// propagates into the host application.
package logger
