// Package config holds the logger configuration and its builder.
//
// A Config is a plain immutable snapshot of four settings: the minimum
// level, whether terminal output shows file:line, whether terminal
// timestamps include the date, and whether terminal output is colored.
// The last three are terminal-only toggles; file output is always
// maximally verbose and always plain.
//
// Configs are built once, via the Builder or one of the presets, and
// shared read-only by the dispatcher for the process lifetime:
//
//	cfg := config.NewBuilder().
//	    WithLevel(core.DebugLevel).
//	    WithFileInfo(false).
//	    Build()
package config
