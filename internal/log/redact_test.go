package log

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func TestRedactHandlerMasksSensitiveKeys(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		key      string
		wantMask bool
	}{
		{name: "secret", key: "secret", wantMask: true},
		{name: "mixed case passphrase", key: "PassPhrase", wantMask: true},
		{name: "password suffix", key: "old_password", wantMask: true},
		{name: "length is kept", key: "length", wantMask: false},
		{name: "entropy is kept", key: "entropy_bits", wantMask: false},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			var buf bytes.Buffer
			logger := slog.New(NewRedactHandler(slog.NewTextHandler(&buf, nil)))
			logger.Info("generated", tt.key, "Xk7m#q2vRt9w")
			out := buf.String()
			if got := strings.Contains(out, MaskValue); got != tt.wantMask {
				t.Fatalf("mask=%v, want %v: %s", got, tt.wantMask, out)
			}
			if tt.wantMask && strings.Contains(out, "Xk7m#q2vRt9w") {
				t.Fatalf("secret leaked: %s", out)
			}
		})
	}
}

func TestRedactHandlerGroupsAndWithAttrs(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	logger := slog.New(NewRedactHandler(slog.NewTextHandler(&buf, nil)))
	logger = logger.With("secret", "hunter2")
	logger.Info("result", slog.Group("result", slog.String("password", "hunter3"), slog.Int("score", 40)))
	out := buf.String()
	if strings.Contains(out, "hunter2") || strings.Contains(out, "hunter3") {
		t.Fatalf("secret leaked: %s", out)
	}
	if !strings.Contains(out, "result.score=40") {
		t.Fatalf("non-sensitive group attr missing: %s", out)
	}
}

func TestNewLevel(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	New(&buf, false).Debug("hidden")
	if buf.Len() != 0 {
		t.Fatalf("debug output without verbose: %s", buf.String())
	}
	New(&buf, true).Debug("shown")
	if !strings.Contains(buf.String(), "shown") {
		t.Fatalf("expected debug output with verbose")
	}
}
