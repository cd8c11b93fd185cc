package config

import (
	"github.com/LOSEARDES77/fstdout-logger/core"
)

// Config controls the behavior and appearance of the logger (immutable
// once handed to a dispatcher)
type Config struct {
	// Level is the minimum level a record needs to be written
	Level core.Level
	// ShowFileInfo includes the file:line segment in terminal output
	ShowFileInfo bool
	// ShowDateInStdout includes the full date in terminal timestamps.
	// File output always carries the full date regardless.
	ShowDateInStdout bool
	// UseColors enables ANSI colors in terminal output. File output is
	// always plain regardless.
	UseColors bool
}

// Default returns the default configuration: Info level, file info and
// date shown, colors enabled.
func Default() Config {
	return Config{
		Level:            core.InfoLevel,
		ShowFileInfo:     true,
		ShowDateInStdout: true,
		UseColors:        true,
	}
}

// Production returns a preset optimized for clean, minimal terminal
// output: Info level, no file info, time-only timestamps, colors on.
func Production() Config {
	return Config{
		Level:            core.InfoLevel,
		ShowFileInfo:     false,
		ShowDateInStdout: false,
		UseColors:        true,
	}
}

// Development returns a preset optimized for detailed output while
// debugging: Debug level, file info and date shown, colors on.
func Development() Config {
	return Config{
		Level:            core.DebugLevel,
		ShowFileInfo:     true,
		ShowDateInStdout: true,
		UseColors:        true,
	}
}

// Builder provides a fluent API for building Config values
type Builder struct {
	cfg Config
}

// NewBuilder creates a new config builder starting from Default()
func NewBuilder() *Builder {
	return &Builder{cfg: Default()}
}

// WithLevel sets the minimum log level
func (b *Builder) WithLevel(level core.Level) *Builder {
	b.cfg.Level = level
	return b
}

// WithFileInfo sets whether terminal output includes the file:line segment
func (b *Builder) WithFileInfo(show bool) *Builder {
	b.cfg.ShowFileInfo = show
	return b
}

// WithDateInStdout sets whether terminal timestamps include the date
func (b *Builder) WithDateInStdout(show bool) *Builder {
	b.cfg.ShowDateInStdout = show
	return b
}

// WithColors sets whether terminal output uses ANSI colors
func (b *Builder) WithColors(use bool) *Builder {
	b.cfg.UseColors = use
	return b
}

// Build creates the Config value. It never fails; every field is a
// plain enum or bool.
func (b *Builder) Build() Config {
	return b.cfg
}
