package log

import (
	"context"
	"testing"

	"go.uber.org/zap/zapcore"
)

func TestParseLevel(t *testing.T) {
	tests := map[string]zapcore.Level{
		"debug":   zapcore.DebugLevel,
		"WARN":    zapcore.WarnLevel,
		"error":   zapcore.ErrorLevel,
		"":        zapcore.InfoLevel,
		"verbose": zapcore.InfoLevel,
	}
	for in, want := range tests {
		if got := parseLevel(in); got != want {
			t.Errorf("parseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestRequestID(t *testing.T) {
	ctx := WithRequestID(context.Background(), "req-1")
	if got := RequestID(ctx); got != "req-1" {
		t.Errorf("RequestID() = %q, want req-1", got)
	}
	if got := RequestID(context.Background()); got != "" {
		t.Errorf("RequestID() on empty ctx = %q", got)
	}
}

func TestNopLogger(t *testing.T) {
	l := NewNop()
	ctx := WithRequestID(context.Background(), "req-2")
	l.Infof(ctx, "%s: hello", "pkg.log")
	l.Warn(ctx, "warn")
}
