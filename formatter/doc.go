// Package formatter renders log records into lines of text.
//
// Each record has two renderings. The terminal variant is compact and
// optionally colored: the timestamp defaults to time-only, the
// file:line segment can be suppressed, and when colors are enabled the
// LEVEL token and message wear a per-level ANSI color (Error bold red,
// Warn bold yellow, Info bold blue, Debug green, Trace uncolored)
// while the bracketed timestamp and file:line segments are dimmed.
// The file variant is always plain text with a full date and includes
// file:line whenever the record carries it.
//
// When a record has no caller data the file:line segment is omitted
// together with its separator; there is no "unknown:0" placeholder.
//
// Formatting is deterministic: the same record and configuration
// always produce the same bytes. The write path uses a pooled
// bytes.Buffer and Go's Append-style functions (time.AppendFormat,
// strconv.AppendInt) to avoid per-call allocations; buffers larger
// than 64 KiB are not returned to the pool.
package formatter
