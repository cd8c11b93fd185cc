// Package sloghandler adapts a dispatcher to the log/slog facade.
//
// Wrapping a logger.Logger in a Handler lets application code keep
// using slog's API while fstdout-logger does the formatting and
// fan-out:
//
//	l, _ := logger.New("app.log", config.Default())
//	slog.SetDefault(slog.New(sloghandler.New(l)))
//	slog.Info("ready", "port", 8080)
//
// Attributes and groups have no slot in the plain line format, so
// they are rendered into the message as " key=value" suffixes with
// dotted group prefixes. Caller data is recovered from the record's
// program counter when slog was configured with AddSource-style
// capture (slog always records the PC for its log methods).
package sloghandler
