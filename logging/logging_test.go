package logging

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
)

func TestDefaultLoggerLevels(t *testing.T) {
	var out, errOut bytes.Buffer
	l := NewWriterLogger(&out, &errOut)

	l.Debug("hidden")
	l.Info("shown", Fields{"note": "C#"})
	l.Warn("careful")
	l.Error(errors.New("boom"), "failed")

	if strings.Contains(out.String(), "hidden") {
		t.Errorf("debug message logged at info level: %q", out.String())
	}
	if !strings.Contains(out.String(), "[INFO] shown note=C#") {
		t.Errorf("info message missing: %q", out.String())
	}
	if !strings.Contains(errOut.String(), "[WARN] careful") {
		t.Errorf("warn message missing: %q", errOut.String())
	}
	if !strings.Contains(errOut.String(), "[ERROR] failed: boom") {
		t.Errorf("error message missing: %q", errOut.String())
	}

	l.SetLevel(DebugLevel)
	l.Debug("now visible")
	if !strings.Contains(out.String(), "[DEBUG] now visible") {
		t.Errorf("debug message missing after SetLevel: %q", out.String())
	}
}

func TestWithFieldsSortedAndMerged(t *testing.T) {
	var out bytes.Buffer
	l := NewWriterLogger(&out, &out).WithFields(Fields{"b": 2})
	l.Info("msg", Fields{"a": 1})

	if !strings.Contains(out.String(), "msg a=1 b=2") {
		t.Errorf("fields not merged in sorted order: %q", out.String())
	}
}

func TestWithContext(t *testing.T) {
	var out bytes.Buffer
	ctx := ContextWithFields(context.Background(), Fields{"component": "fretboard"})
	ctx = ContextWithFields(ctx, Fields{"strings": 6})

	NewWriterLogger(&out, &out).WithContext(ctx).Info("resolved")
	if !strings.Contains(out.String(), "component=fretboard strings=6") {
		t.Errorf("context fields missing: %q", out.String())
	}
}

func TestSetGlobalLoggerNil(t *testing.T) {
	prev := GetGlobalLogger()
	defer SetGlobalLogger(prev)

	SetGlobalLogger(nil)
	if _, ok := GetGlobalLogger().(*NoOpLogger); !ok {
		t.Fatalf("expected NoOpLogger, got %T", GetGlobalLogger())
	}
	Warn("discarded")
}

func TestParseLevel(t *testing.T) {
	tests := map[string]Level{
		"debug":   DebugLevel,
		"warning": WarnLevel,
		"ERROR":   ErrorLevel,
		"bogus":   InfoLevel,
	}
	for name, want := range tests {
		if got := ParseLevel(name); got != want {
			t.Errorf("ParseLevel(%q) = %v, want %v", name, got, want)
		}
	}
}
