package formatter

import (
	"github.com/LOSEARDES77/fstdout-logger/core"
)

// ANSI escape sequences used for terminal output. No capability
// detection is performed; the terminal is assumed to understand ANSI.
const (
	escReset = "\x1b[0m"
	escDim   = "\x1b[90m"

	escBoldRed    = "\x1b[1;31m"
	escBoldYellow = "\x1b[1;33m"
	escBoldBlue   = "\x1b[1;34m"
	escGreen      = "\x1b[32m"
)

// levelColors maps each level to the escape sequence for its LEVEL
// token and message. Trace renders in the default terminal color.
var levelColors = [...]string{
	core.TraceLevel: "",
	core.DebugLevel: escGreen,
	core.InfoLevel:  escBoldBlue,
	core.WarnLevel:  escBoldYellow,
	core.ErrorLevel: escBoldRed,
}

// levelColor returns the escape sequence for a level, or the empty
// string when the level renders uncolored.
func levelColor(level core.Level) string {
	if level >= 0 && int(level) < len(levelColors) {
		return levelColors[level]
	}
	return ""
}
