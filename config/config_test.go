package config

import (
	"testing"

	"github.com/LOSEARDES77/fstdout-logger/core"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Level != core.InfoLevel {
		t.Errorf("Default().Level = %v, want InfoLevel", cfg.Level)
	}
	if !cfg.ShowFileInfo {
		t.Error("Default().ShowFileInfo = false, want true")
	}
	if !cfg.ShowDateInStdout {
		t.Error("Default().ShowDateInStdout = false, want true")
	}
	if !cfg.UseColors {
		t.Error("Default().UseColors = false, want true")
	}
}

func TestPresets(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
		want Config
	}{
		{
			name: "production",
			cfg:  Production(),
			want: Config{Level: core.InfoLevel, ShowFileInfo: false, ShowDateInStdout: false, UseColors: true},
		},
		{
			name: "development",
			cfg:  Development(),
			want: Config{Level: core.DebugLevel, ShowFileInfo: true, ShowDateInStdout: true, UseColors: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.cfg != tt.want {
				t.Errorf("preset = %+v, want %+v", tt.cfg, tt.want)
			}
		})
	}
}

func TestBuilder_Defaults(t *testing.T) {
	got := NewBuilder().Build()
	if got != Default() {
		t.Errorf("NewBuilder().Build() = %+v, want %+v", got, Default())
	}
}

func TestBuilder_Chaining(t *testing.T) {
	got := NewBuilder().
		WithLevel(core.WarnLevel).
		WithFileInfo(false).
		WithDateInStdout(false).
		WithColors(false).
		Build()

	want := Config{
		Level:            core.WarnLevel,
		ShowFileInfo:     false,
		ShowDateInStdout: false,
		UseColors:        false,
	}
	if got != want {
		t.Errorf("Build() = %+v, want %+v", got, want)
	}
}

func TestBuilder_PartialOverride(t *testing.T) {
	// Untouched fields keep their defaults
	got := NewBuilder().WithLevel(core.TraceLevel).Build()

	if got.Level != core.TraceLevel {
		t.Errorf("Level = %v, want TraceLevel", got.Level)
	}
	if !got.ShowFileInfo || !got.ShowDateInStdout || !got.UseColors {
		t.Errorf("expected untouched fields to keep defaults, got %+v", got)
	}
}
