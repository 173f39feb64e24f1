package logging

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func TestLoggerDefaultsToDiscard(t *testing.T) {
	SetLogger(nil)
	l := Logger()
	if l == nil {
		t.Fatal("Logger() returned nil")
	}
	// must not panic
	l.Info("into the void")
}

func TestSetLoggerRoutesOutput(t *testing.T) {
	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, nil)))
	defer SetLogger(nil)

	Logger().Warn("disk almost full", "free_mb", 12)
	out := buf.String()
	if !strings.Contains(out, "disk almost full") || !strings.Contains(out, "free_mb=12") {
		t.Fatalf("log output missing expected fields: %q", out)
	}
}

func TestSetLoggerNilRestoresDiscard(t *testing.T) {
	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, nil)))
	SetLogger(nil)

	Logger().Error("should go nowhere")
	if buf.Len() != 0 {
		t.Fatalf("expected no output after SetLogger(nil), got %q", buf.String())
	}
}
