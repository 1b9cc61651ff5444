// Package logger provides the structured logger used across CakeCollate and
// a zap-backed implementation of it.
package logger

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger is the structured logging surface the model and executor write to.
// Arguments after msg are alternating keys and values.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

type noopLogger struct{}

func (noopLogger) Debug(string, ...any) {}
func (noopLogger) Info(string, ...any)  {}
func (noopLogger) Warn(string, ...any)  {}
func (noopLogger) Error(string, ...any) {}

// Noop returns a Logger that discards everything.
func Noop() Logger { return noopLogger{} }

// Zap adapts a zap.SugaredLogger to Logger and masks customer contact details.
type Zap struct {
	SugaredLogger *zap.SugaredLogger
}

// New builds a zap logger. mode "prod" or "production" selects JSON output;
// anything else selects the console development encoder.
func New(mode string) (*Zap, error) {
	var cfg zap.Config
	switch strings.ToLower(mode) {
	case "prod", "production":
		cfg = zap.NewProductionConfig()
	default:
		cfg = zap.NewDevelopmentConfig()
	}
	cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	zl, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("build zap logger: %w", err)
	}
	return &Zap{SugaredLogger: zl.Sugar()}, nil
}

// NewWithCore wraps an existing zap core, mainly for tests using zaptest/observer.
func NewWithCore(core zapcore.Core) *Zap {
	return &Zap{SugaredLogger: zap.New(core).Sugar()}
}

// Sync flushes buffered entries.
func (l *Zap) Sync() {
	_ = l.SugaredLogger.Sync()
}

func (l *Zap) Debug(msg string, args ...any) {
	l.SugaredLogger.Debugw(msg, sanitizeKVs(args)...)
}

func (l *Zap) Info(msg string, args ...any) {
	l.SugaredLogger.Infow(msg, sanitizeKVs(args)...)
}

func (l *Zap) Warn(msg string, args ...any) {
	l.SugaredLogger.Warnw(msg, sanitizeKVs(args)...)
}

func (l *Zap) Error(msg string, args ...any) {
	l.SugaredLogger.Errorw(msg, sanitizeKVs(args)...)
}

// With returns a child logger carrying the given fields on every entry.
func (l *Zap) With(args ...any) *Zap {
	return &Zap{SugaredLogger: l.SugaredLogger.With(sanitizeKVs(args)...)}
}

func sanitizeKVs(kv []any) []any {
	if len(kv) == 0 {
		return kv
	}
	out := make([]any, 0, len(kv))
	for i := 0; i < len(kv); i += 2 {
		if i == len(kv)-1 {
			out = append(out, kv[i])
			break
		}
		key := fmt.Sprint(kv[i])
		out = append(out, key, sanitizeValue(strings.ToLower(strings.TrimSpace(key)), kv[i+1]))
	}
	return out
}

func sanitizeValue(key string, val any) any {
	if isRedactKey(key) {
		return "[REDACTED]"
	}
	return val
}

func isRedactKey(key string) bool {
	switch {
	case strings.Contains(key, "phone"),
		strings.Contains(key, "email"),
		strings.Contains(key, "address"),
		strings.Contains(key, "password"),
		strings.Contains(key, "secret"):
		return true
	default:
		return false
	}
}
