package formatter_test

import (
	"fmt"
	"time"

	"github.com/LOSEARDES77/fstdout-logger/config"
	"github.com/LOSEARDES77/fstdout-logger/core"
	"github.com/LOSEARDES77/fstdout-logger/formatter"
)

func ExampleFormatter_FormatStdout() {
	cfg := config.NewBuilder().
		WithColors(false).
		Build()
	f := formatter.New(cfg)

	rec := &core.Record{
		Time:    time.Date(2026, 1, 15, 12, 0, 0, 0, time.UTC),
		Level:   core.InfoLevel,
		Message: "hello world",
		Caller:  core.CallerInfo{File: "main.go", Line: 10, Defined: true},
	}

	fmt.Println(string(f.FormatStdout(rec)))
	// Output:
	// [2026-01-15 12:00:00 INFO main.go:10] hello world
}

func ExampleFormatter_FormatFile() {
	// File output ignores the terminal toggles: always full date,
	// always plain.
	f := formatter.New(config.Production())

	rec := &core.Record{
		Time:    time.Date(2026, 1, 15, 12, 0, 0, 0, time.UTC),
		Level:   core.DebugLevel,
		Message: "x=1",
		Caller:  core.CallerInfo{File: "main.go", Line: 27, Defined: true},
	}

	fmt.Print(string(f.FormatFile(rec)))
	// Output:
	// [2026-01-15 12:00:00 DEBUG main.go:27] x=1
}
