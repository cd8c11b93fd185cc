package sloghandler

import (
	"context"
	"log/slog"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/LOSEARDES77/fstdout-logger/core"
	"github.com/LOSEARDES77/fstdout-logger/logger"
)

// Handler is an adapter that implements slog.Handler on top of a
// dispatcher, so fstdout-logger can serve as the backend for the
// standard library log/slog facade.
type Handler struct {
	logger *logger.Logger
	// attrText holds the attrs installed via WithAttrs, already
	// rendered and qualified with the group that was current when
	// they were added. Later WithGroup calls qualify only subsequent
	// attrs, never these.
	attrText string
	group    string
}

// New creates a slog.Handler adapter wrapping the given logger
func New(l *logger.Logger) *Handler {
	return &Handler{logger: l}
}

// Enabled reports whether the dispatcher would keep records at the
// given level.
func (h *Handler) Enabled(_ context.Context, level slog.Level) bool {
	return slogLevelToCore(level) >= h.logger.Config().Level
}

// Handle converts a slog.Record into a core.Record and dispatches it.
// Attributes are rendered into the message text as " key=value"
// suffixes, since the wire format is a plain line.
func (h *Handler) Handle(_ context.Context, record slog.Record) error {
	var sb strings.Builder
	sb.WriteString(record.Message)
	sb.WriteString(h.attrText)
	record.Attrs(func(a slog.Attr) bool {
		appendAttr(&sb, h.group, a)
		return true
	})

	rec := &core.Record{
		Time:    record.Time,
		Level:   slogLevelToCore(record.Level),
		Message: sb.String(),
	}
	if record.PC != 0 {
		frames := runtime.CallersFrames([]uintptr{record.PC})
		frame, _ := frames.Next()
		if frame.File != "" {
			rec.Caller = core.CallerInfo{
				File:    filepath.Base(frame.File),
				Line:    frame.Line,
				Defined: true,
			}
		}
	}

	h.logger.LogRecord(rec)
	return nil
}

// WithAttrs returns a new Handler with additional attributes. The
// attrs are rendered here, under the current group, so that groups
// opened later qualify only the attrs that follow them.
func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	var sb strings.Builder
	sb.WriteString(h.attrText)
	for _, a := range attrs {
		appendAttr(&sb, h.group, a)
	}
	return &Handler{
		logger:   h.logger,
		attrText: sb.String(),
		group:    h.group,
	}
}

// WithGroup returns a new Handler with the given group name
func (h *Handler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	newGroup := name
	if h.group != "" {
		newGroup = h.group + "." + name
	}
	return &Handler{
		logger:   h.logger,
		attrText: h.attrText,
		group:    newGroup,
	}
}

// slogLevelToCore converts a slog.Level to a core.Level. Levels below
// slog's Debug map to Trace.
func slogLevelToCore(level slog.Level) core.Level {
	switch {
	case level >= slog.LevelError:
		return core.ErrorLevel
	case level >= slog.LevelWarn:
		return core.WarnLevel
	case level >= slog.LevelInfo:
		return core.InfoLevel
	case level >= slog.LevelDebug:
		return core.DebugLevel
	default:
		return core.TraceLevel
	}
}

// appendAttr renders one attribute as " key=value", prefixing the key
// with the group path. Group attributes flatten into prefixed members;
// an empty-key group inlines its members under the outer group.
func appendAttr(sb *strings.Builder, group string, a slog.Attr) {
	a.Value = a.Value.Resolve()

	if a.Value.Kind() == slog.KindGroup {
		key := group
		if a.Key != "" {
			key = a.Key
			if group != "" {
				key = group + "." + a.Key
			}
		}
		for _, member := range a.Value.Group() {
			appendAttr(sb, key, member)
		}
		return
	}
	if a.Key == "" {
		return
	}

	key := a.Key
	if group != "" {
		key = group + "." + a.Key
	}

	sb.WriteByte(' ')
	sb.WriteString(key)
	sb.WriteByte('=')
	sb.WriteString(a.Value.String())
}
