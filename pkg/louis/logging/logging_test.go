package logging

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func newBufferLogger(level slog.Level) (Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	h := slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: level})
	return New(slog.New(h)), &buf
}

func TestSlogLoggerWritesLevels(t *testing.T) {
	ctx := context.Background()
	l, buf := newBufferLogger(LevelTrace)

	l.Debug(ctx, "debug message")
	l.Info(ctx, "info message")
	l.Warn(ctx, "warn message")
	l.Error(ctx, "error message")
	l.Log(ctx, LevelTrace, "trace message")

	out := buf.String()
	for _, want := range []string{"debug message", "info message", "warn message", "error message", "trace message"} {
		assert.Contains(t, out, want)
	}
}

func TestSlogLoggerEnabled(t *testing.T) {
	ctx := context.Background()
	l, _ := newBufferLogger(slog.LevelWarn)

	assert.False(t, l.Enabled(ctx, slog.LevelInfo))
	assert.True(t, l.Enabled(ctx, slog.LevelWarn))
	assert.True(t, l.Enabled(ctx, slog.LevelError))
}

func TestSlogLoggerWith(t *testing.T) {
	l, buf := newBufferLogger(slog.LevelInfo)
	l.With("source", "liblouis").Info(context.Background(), "hello")
	assert.Contains(t, buf.String(), "source=liblouis")
}

func TestNewNilUsesDefault(t *testing.T) {
	require.NotNil(t, New(nil))
}

func TestRedacted(t *testing.T) {
	l, buf := newBufferLogger(slog.LevelInfo)
	l.Info(context.Background(), "translate", Redacted("text"))
	assert.Contains(t, buf.String(), "text="+Placeholder())
}

func TestZapLoggerLevels(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	l := NewZap(zap.New(core))
	ctx := context.Background()

	l.Log(ctx, LevelTrace, "trace")
	l.Debug(ctx, "debug")
	l.Info(ctx, "info")
	l.Warn(ctx, "warn")
	l.Error(ctx, "error")

	entries := logs.AllUntimed()
	require.Len(t, entries, 5)
	assert.Equal(t, zapcore.DebugLevel, entries[0].Level)
	assert.Equal(t, zapcore.DebugLevel, entries[1].Level)
	assert.Equal(t, zapcore.InfoLevel, entries[2].Level)
	assert.Equal(t, zapcore.WarnLevel, entries[3].Level)
	assert.Equal(t, zapcore.ErrorLevel, entries[4].Level)
}

func TestZapLoggerFields(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	l := NewZap(zap.New(core)).With("source", "liblouis")

	l.Info(context.Background(), "record", "tables", "en_US.tbl", Redacted("text"), "dangling")

	entries := logs.AllUntimed()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, "liblouis", fields["source"])
	assert.Equal(t, "en_US.tbl", fields["tables"])
	assert.Equal(t, Placeholder(), fields["text"])
	assert.Equal(t, "dangling", fields["!BADKEY"])
}

func TestZapLoggerEnabled(t *testing.T) {
	core, _ := observer.New(zapcore.WarnLevel)
	l := NewZap(zap.New(core))
	ctx := context.Background()

	assert.False(t, l.Enabled(ctx, LevelTrace))
	assert.False(t, l.Enabled(ctx, slog.LevelInfo))
	assert.True(t, l.Enabled(ctx, slog.LevelWarn))
}

func TestNewZapNilIsNop(t *testing.T) {
	l := NewZap(nil)
	assert.False(t, l.Enabled(context.Background(), slog.LevelError))
}
