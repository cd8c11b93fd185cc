package logger_test

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/LOSEARDES77/fstdout-logger/config"
	"github.com/LOSEARDES77/fstdout-logger/logger"
)

// Compiled but not executed: Init functions install a process-wide
// logger exactly once, which does not mix with the test binary.
func ExampleInitLogger() {
	if err := logger.InitLogger("application.log"); err != nil {
		panic(err)
	}

	logger.Info("application started")
	logger.Debugf("config loaded in %dms", 12) // filtered at the default Info level
}

func ExampleInitProductionLogger() {
	if err := logger.InitProductionLogger(""); err != nil {
		panic(err)
	}

	// Terminal-only, concise output: [HH:MM:SS INFO] started
	logger.Info("started")
}

func ExampleNewWithWriter() {
	var buf bytes.Buffer

	cfg := config.NewBuilder().
		WithLevel(logger.DebugLevel).
		WithColors(false).
		WithFileInfo(false).
		WithDateInStdout(false).
		Build()

	l, _ := logger.NewWithWriter(&buf, "", cfg)
	l.Trace("filtered out")
	l.Debug("kept")

	fmt.Println(strings.Contains(buf.String(), "filtered out"))
	fmt.Println(strings.Contains(buf.String(), "DEBUG] kept"))
	// Output:
	// false
	// true
}
