package core

import (
	"path/filepath"
	"runtime"
	"time"
)

// Record represents one log event prior to formatting
type Record struct {
	Time    time.Time
	Level   Level
	Message string
	Caller  CallerInfo
}

// CallerInfo contains information about the call site that produced a
// record. Defined is false when no caller data was supplied, which the
// formatters treat as a normal case rather than an error.
type CallerInfo struct {
	File string
	Line int
	// Defined reports whether File and Line carry real data
	Defined bool
}

// GetCaller retrieves caller information. File is reduced to its base
// name so that formatted output stays compact.
func GetCaller(skip int) CallerInfo {
	_, file, line, ok := runtime.Caller(skip)
	if !ok {
		return CallerInfo{}
	}

	return CallerInfo{
		File:    filepath.Base(file),
		Line:    line,
		Defined: true,
	}
}
