package logging

import (
	"context"
	"log/slog"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// NewZap returns a Logger backed by a zap.Logger. Passing nil yields a no-op
// logger. Arguments are interpreted as slog-style key/value pairs.
func NewZap(logger *zap.Logger) Logger {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &zapLogger{logger: logger}
}

type zapLogger struct {
	logger *zap.Logger
}

func (l *zapLogger) Debug(ctx context.Context, msg string, args ...any) {
	l.Log(ctx, slog.LevelDebug, msg, args...)
}

func (l *zapLogger) Info(ctx context.Context, msg string, args ...any) {
	l.Log(ctx, slog.LevelInfo, msg, args...)
}

func (l *zapLogger) Warn(ctx context.Context, msg string, args ...any) {
	l.Log(ctx, slog.LevelWarn, msg, args...)
}

func (l *zapLogger) Error(ctx context.Context, msg string, args ...any) {
	l.Log(ctx, slog.LevelError, msg, args...)
}

func (l *zapLogger) Log(_ context.Context, level slog.Level, msg string, args ...any) {
	if ce := l.logger.Check(zapLevel(level), msg); ce != nil {
		ce.Write(zapFields(args)...)
	}
}

func (l *zapLogger) Enabled(_ context.Context, level slog.Level) bool {
	return l.logger.Core().Enabled(zapLevel(level))
}

func (l *zapLogger) With(args ...any) Logger {
	return &zapLogger{logger: l.logger.With(zapFields(args)...)}
}

// zapLevel folds slog levels onto zap's scale. zap has no trace level, so
// anything below debug lands on debug.
func zapLevel(level slog.Level) zapcore.Level {
	switch {
	case level >= slog.LevelError:
		return zapcore.ErrorLevel
	case level >= slog.LevelWarn:
		return zapcore.WarnLevel
	case level >= slog.LevelInfo:
		return zapcore.InfoLevel
	default:
		return zapcore.DebugLevel
	}
}

func zapFields(args []any) []zap.Field {
	fields := make([]zap.Field, 0, len(args)/2+1)
	for i := 0; i < len(args); i++ {
		switch a := args[i].(type) {
		case slog.Attr:
			fields = append(fields, zap.Any(a.Key, a.Value.Any()))
		case string:
			if i+1 >= len(args) {
				fields = append(fields, zap.Any("!BADKEY", a))
				continue
			}
			fields = append(fields, zap.Any(a, args[i+1]))
			i++
		default:
			fields = append(fields, zap.Any("!BADKEY", a))
		}
	}
	return fields
}
