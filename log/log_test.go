package log

import (
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input string
		want  Level
	}{
		{input: "trace", want: LevelTrace},
		{input: "TRACE", want: LevelTrace},
		{input: " trace ", want: LevelTrace},
		{input: "debug", want: LevelDebug},
		{input: "info", want: LevelInfo},
		{input: "warn", want: LevelWarn},
		{input: "error", want: LevelError},
		{input: "ERROR", want: LevelError},
		{input: "bogus", want: DefaultLevel},
		{input: "", want: DefaultLevel},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := ParseLevel(tt.input); got != tt.want {
				t.Errorf("ParseLevel(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestLevelString(t *testing.T) {
	tests := []struct {
		level Level
		want  string
	}{
		{level: LevelTrace, want: "trace"},
		{level: LevelDebug, want: "debug"},
		{level: LevelInfo, want: "info"},
		{level: LevelWarn, want: "warn"},
		{level: LevelError, want: "error"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.level.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input string
		want  Format
	}{
		{input: "json", want: FormatJSON},
		{input: "JSON", want: FormatJSON},
		{input: "text", want: FormatText},
		{input: "bogus", want: DefaultFormat},
		{input: "", want: DefaultFormat},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := ParseFormat(tt.input); got != tt.want {
				t.Errorf("ParseFormat(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestZeroLogger(t *testing.T) {
	var l Logger

	// Must not panic, must report defaults.
	l.Trace("discarded")
	l.Debug("discarded")
	l.Info("discarded")
	l.Warn("discarded")
	l.Error("discarded")

	if l.Level() != DefaultLevel {
		t.Errorf("Level() = %v, want %v", l.Level(), DefaultLevel)
	}

	if l.Format() != DefaultFormat {
		t.Errorf("Format() = %v, want %v", l.Format(), DefaultFormat)
	}
}

func TestLoggerLevelFiltering(t *testing.T) {
	var sb strings.Builder

	l := Make(&sb,
		WithLevel(LevelInfo),
		WithFormat(FormatJSON),
	)

	l.Debug("hidden")
	l.Info("shown")

	out := sb.String()

	if strings.Contains(out, "hidden") {
		t.Errorf("debug message leaked through info filter: %q", out)
	}

	if !strings.Contains(out, `"msg":"shown"`) {
		t.Errorf("info message missing from output: %q", out)
	}
}

func TestLoggerTraceLevel(t *testing.T) {
	var sb strings.Builder

	l := Make(&sb,
		WithLevel(LevelTrace),
		WithFormat(FormatJSON),
	)

	l.Trace("deep detail")

	out := sb.String()

	if !strings.Contains(out, `"msg":"deep detail"`) {
		t.Fatalf("trace message missing from output: %q", out)
	}

	// The replaced level attribute reads TRACE, not DEBUG-4.
	if !strings.Contains(out, `"level":"TRACE"`) {
		t.Errorf("expected TRACE level label, got: %q", out)
	}
}

func TestLoggerWrap(t *testing.T) {
	var sb strings.Builder

	l := Make(&sb, WithLevel(LevelError), WithFormat(FormatJSON))

	wrapped := l.Wrap(WithLevel(LevelDebug))

	if l.Level() != LevelError {
		t.Errorf("original logger level changed to %v", l.Level())
	}

	if wrapped.Level() != LevelDebug {
		t.Errorf("wrapped logger level = %v, want %v",
			wrapped.Level(), LevelDebug)
	}

	wrapped.Debug("visible")

	if !strings.Contains(sb.String(), "visible") {
		t.Errorf("wrapped logger dropped message: %q", sb.String())
	}
}

func TestLoggerTextFormat(t *testing.T) {
	var sb strings.Builder

	l := Make(&sb, WithPretty(false))

	l.Info("plain text")

	if !strings.Contains(sb.String(), "msg=\"plain text\"") {
		t.Errorf("unexpected text output: %q", sb.String())
	}
}
