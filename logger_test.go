package strbuild

import (
	"context"
	"testing"
)

type mockLogger struct {
	debugCalls []logCall
	infoCalls  []logCall
	warnCalls  []logCall
	errorCalls []logCall
}

type logCall struct {
	msg    string
	fields map[string]interface{}
}

func (m *mockLogger) Debug(ctx context.Context, msg string, fields map[string]interface{}) {
	m.debugCalls = append(m.debugCalls, logCall{msg: msg, fields: fields})
}

func (m *mockLogger) Info(ctx context.Context, msg string, fields map[string]interface{}) {
	m.infoCalls = append(m.infoCalls, logCall{msg: msg, fields: fields})
}

func (m *mockLogger) Warn(ctx context.Context, msg string, fields map[string]interface{}) {
	m.warnCalls = append(m.warnCalls, logCall{msg: msg, fields: fields})
}

func (m *mockLogger) Error(ctx context.Context, msg string, fields map[string]interface{}) {
	m.errorCalls = append(m.errorCalls, logCall{msg: msg, fields: fields})
}

func (m *mockLogger) IsNoop() bool {
	return false
}

func TestNoopLogger(t *testing.T) {
	t.Run("noop logger does not panic", func(t *testing.T) {
		logger := newNoopLogger()
		ctx := context.Background()

		logger.Debug(ctx, "debug message", map[string]interface{}{"key": "value"})
		logger.Info(ctx, "info message", map[string]interface{}{"key": "value"})
		logger.Warn(ctx, "warn message", map[string]interface{}{"key": "value"})
		logger.Error(ctx, "error message", map[string]interface{}{"key": "value"})
	})

	t.Run("noop logger returns true for IsNoop", func(t *testing.T) {
		logger := newNoopLogger()
		if !logger.IsNoop() {
			t.Error("expected IsNoop to return true")
		}
	})

	t.Run("noop logger with nil fields", func(t *testing.T) {
		logger := newNoopLogger()
		ctx := context.Background()

		logger.Debug(ctx, "debug", nil)
		logger.Info(ctx, "info", nil)
		logger.Warn(ctx, "warn", nil)
		logger.Error(ctx, "error", nil)
	})

	t.Run("builder with noop logger skips field construction", func(t *testing.T) {
		b, err := New(Config{InitialCapacity: 8})
		if err != nil {
			t.Fatalf("failed to create builder: %v", err)
		}
		defer b.Dispose()

		// Exercises the IsNoop fast path on rent, grow and dispose.
		if err := b.AppendRepeat('x', 1000); err != nil {
			t.Fatalf("append failed: %v", err)
		}
	})
}
