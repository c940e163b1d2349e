package log

import (
	"slices"
	"testing"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input string
		want  Level
	}{
		{"trace", LevelTrace},
		{"TRACE", LevelTrace},
		{"debug", LevelDebug},
		{"info", LevelInfo},
		{"WARN", LevelWarn},
		{"error", LevelError},
		{"nonsense", DefaultLevel},
		{"", DefaultLevel},
	}

	for _, tt := range tests {
		if got := ParseLevel(tt.input); got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input string
		want  Format
	}{
		{"json", FormatJSON},
		{"JSON", FormatJSON},
		{"text", FormatText},
		{" text ", FormatText},
		{"xml", DefaultFormat},
		{"", DefaultFormat},
	}

	for _, tt := range tests {
		if got := ParseFormat(tt.input); got != tt.want {
			t.Errorf("ParseFormat(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestLevel_String(t *testing.T) {
	tests := []struct {
		level Level
		want  string
	}{
		{LevelTrace, "trace"},
		{LevelDebug, "debug"},
		{LevelInfo, "info"},
		{LevelWarn, "warn"},
		{LevelError, "error"},
	}

	for _, tt := range tests {
		if got := tt.level.String(); got != tt.want {
			t.Errorf("Level(%d).String() = %q, want %q",
				tt.level, got, tt.want)
		}
	}
}

func TestLevels_EnumeratesAll(t *testing.T) {
	var names []string
	for name := range Levels() {
		names = append(names, name)
	}

	want := []string{"trace", "debug", "info", "warn", "error"}
	if !slices.Equal(names, want) {
		t.Errorf("Levels() = %v, want %v", names, want)
	}
}

func TestFormats_EnumeratesAll(t *testing.T) {
	var names []string
	for name := range Formats() {
		names = append(names, name)
	}

	want := []string{"text", "json"}
	if !slices.Equal(names, want) {
		t.Errorf("Formats() = %v, want %v", names, want)
	}
}
