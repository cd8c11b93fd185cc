package formatter

import (
	"bytes"
	"io"
	"strconv"
	"sync"

	"github.com/LOSEARDES77/fstdout-logger/config"
	"github.com/LOSEARDES77/fstdout-logger/core"
)

// Timestamp layouts for the two output variants
const (
	stdoutTimeFormat = "15:04:05"
	fullTimeFormat   = "2006-01-02 15:04:05"
)

// Formatter renders log records for the terminal and for the log file
// according to one immutable configuration.
type Formatter struct {
	cfg config.Config
}

// New creates a formatter for the given configuration
func New(cfg config.Config) *Formatter {
	return &Formatter{cfg: cfg}
}

// bufferPool is a pool of bytes.Buffer to reduce allocations
var bufferPool = &sync.Pool{
	New: func() interface{} {
		b := new(bytes.Buffer)
		b.Grow(256)
		return b
	},
}

func getBuffer() *bytes.Buffer {
	buf := bufferPool.Get().(*bytes.Buffer)
	buf.Reset()
	return buf
}

func putBuffer(buf *bytes.Buffer) {
	if buf.Cap() > 64*1024 { // Don't keep very large buffers
		return
	}
	bufferPool.Put(buf)
}

// FormatStdout renders a record for the terminal, without a trailing
// newline. The layout is "[time LEVEL file:line] message"; the
// file:line segment appears only when ShowFileInfo is set and the
// record carries caller data.
func (f *Formatter) FormatStdout(rec *core.Record) []byte {
	buf := getBuffer()
	defer putBuffer(buf)

	f.stdoutToBuffer(rec, buf)

	result := make([]byte, buf.Len())
	copy(result, buf.Bytes())
	return result
}

// FormatFile renders a record for the log file, with a trailing
// newline. File output is always plain text with a full date; the
// file:line segment appears whenever the record carries caller data.
func (f *Formatter) FormatFile(rec *core.Record) []byte {
	buf := getBuffer()
	defer putBuffer(buf)

	f.fileToBuffer(rec, buf)

	result := make([]byte, buf.Len())
	copy(result, buf.Bytes())
	return result
}

// WriteStdout renders a record for the terminal and writes the line
// plus newline to w in a single Write call, so concurrent writers to
// the same stream never interleave within a line.
func (f *Formatter) WriteStdout(w io.Writer, rec *core.Record) error {
	buf := getBuffer()

	f.stdoutToBuffer(rec, buf)
	buf.WriteByte('\n')

	_, err := w.Write(buf.Bytes())
	putBuffer(buf)
	return err
}

// WriteFile renders a record for the log file and writes it to w in a
// single Write call.
func (f *Formatter) WriteFile(w io.Writer, rec *core.Record) error {
	buf := getBuffer()

	f.fileToBuffer(rec, buf)

	_, err := w.Write(buf.Bytes())
	putBuffer(buf)
	return err
}

// stdoutToBuffer writes the terminal rendering into the given buffer
func (f *Formatter) stdoutToBuffer(rec *core.Record, buf *bytes.Buffer) {
	colors := f.cfg.UseColors

	timeFormat := stdoutTimeFormat
	if f.cfg.ShowDateInStdout {
		timeFormat = fullTimeFormat
	}

	// Opening bracket and timestamp, dimmed
	if colors {
		buf.WriteString(escDim)
	}
	buf.WriteByte('[')
	buf.Write(rec.Time.AppendFormat(buf.AvailableBuffer(), timeFormat))
	if colors {
		buf.WriteString(escReset)
	}
	buf.WriteByte(' ')

	// Level token in its level color
	color := ""
	if colors {
		color = levelColor(rec.Level)
	}
	if color != "" {
		buf.WriteString(color)
	}
	buf.WriteString(rec.Level.String())
	if color != "" {
		buf.WriteString(escReset)
	}

	// file:line and closing bracket, dimmed
	if f.cfg.ShowFileInfo && rec.Caller.Defined {
		buf.WriteByte(' ')
		if colors {
			buf.WriteString(escDim)
		}
		buf.WriteString(rec.Caller.File)
		buf.WriteByte(':')
		buf.Write(strconv.AppendInt(buf.AvailableBuffer(), int64(rec.Caller.Line), 10))
		buf.WriteByte(']')
	} else {
		if colors {
			buf.WriteString(escDim)
		}
		buf.WriteByte(']')
	}
	if colors {
		buf.WriteString(escReset)
	}
	buf.WriteByte(' ')

	// Message in the level color
	if color != "" {
		buf.WriteString(color)
	}
	buf.WriteString(rec.Message)
	if color != "" {
		buf.WriteString(escReset)
	}
}

// fileToBuffer writes the file rendering into the given buffer. The
// terminal-only toggles (ShowFileInfo, ShowDateInStdout, UseColors)
// are ignored here: file logs are always maximally verbose and plain.
func (f *Formatter) fileToBuffer(rec *core.Record, buf *bytes.Buffer) {
	buf.WriteByte('[')
	buf.Write(rec.Time.AppendFormat(buf.AvailableBuffer(), fullTimeFormat))
	buf.WriteByte(' ')
	buf.WriteString(rec.Level.String())
	if rec.Caller.Defined {
		buf.WriteByte(' ')
		buf.WriteString(rec.Caller.File)
		buf.WriteByte(':')
		buf.Write(strconv.AppendInt(buf.AvailableBuffer(), int64(rec.Caller.Line), 10))
	}
	buf.WriteString("] ")
	buf.WriteString(rec.Message)
	buf.WriteByte('\n')
}
