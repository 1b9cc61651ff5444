package logger

import (
	"testing"

	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestNoopLoggerDiscards(t *testing.T) {
	l := Noop()
	l.Debug("debug", "k", 1)
	l.Info("info")
	l.Warn("warn", "dangling")
	l.Error("error", "k", "v")
}

func TestZapLoggerRedactsContactDetails(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	l := NewWithCore(core)

	l.Info("order added", "command", "add", "email", "alex@example.com", "customer_phone", "98765432")

	entries := logs.All()
	if len(entries) != 1 {
		t.Fatalf("expected one entry, got %d", len(entries))
	}
	fields := entries[0].ContextMap()
	if fields["command"] != "add" {
		t.Fatalf("expected command field to pass through, got %v", fields["command"])
	}
	if fields["email"] != "[REDACTED]" || fields["customer_phone"] != "[REDACTED]" {
		t.Fatalf("expected contact fields redacted, got %v", fields)
	}
}

func TestZapLoggerLevels(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	l := NewWithCore(core)

	l.Debug("d")
	l.Warn("w")
	l.Error("e")
	l.With("command", "list").Info("i")

	want := []zapcore.Level{zapcore.DebugLevel, zapcore.WarnLevel, zapcore.ErrorLevel, zapcore.InfoLevel}
	entries := logs.All()
	if len(entries) != len(want) {
		t.Fatalf("expected %d entries, got %d", len(want), len(entries))
	}
	for i, lvl := range want {
		if entries[i].Level != lvl {
			t.Fatalf("entry %d: expected level %s, got %s", i, lvl, entries[i].Level)
		}
	}
	if entries[3].ContextMap()["command"] != "list" {
		t.Fatalf("expected With fields on child logger")
	}
}

func TestSanitizeKeepsDanglingKey(t *testing.T) {
	out := sanitizeKVs([]any{"a", 1, "orphan"})
	if len(out) != 3 || out[2] != "orphan" {
		t.Fatalf("unexpected sanitized kvs %v", out)
	}
}

func TestNewSelectsMode(t *testing.T) {
	for _, mode := range []string{"development", "production"} {
		l, err := New(mode)
		if err != nil {
			t.Fatalf("New(%q): %v", mode, err)
		}
		if l.SugaredLogger == nil {
			t.Fatalf("New(%q): nil logger", mode)
		}
	}
}
