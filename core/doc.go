// Package core defines the shared types used across fstdout-logger.
//
// It provides the Level type for severity filtering, the Record type
// that represents a single log event, and caller capture via GetCaller.
//
// Levels form a total order (Trace < Debug < Info < Warn < Error), so
// filtering is a single integer comparison. Records are plain values
// owned by the call stack for the duration of one log call; they are
// never retained after the dispatcher has written them.
//
// Caller data is optional. A Record whose CallerInfo has Defined set to
// false simply renders without the file:line segment.
package core
