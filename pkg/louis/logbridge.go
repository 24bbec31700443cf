package louis

import (
	"context"
	"log/slog"

	"github.com/brailleworks/louis-go/internal/bindings"
	"github.com/brailleworks/louis-go/pkg/louis/logging"
)

// logSource tags every record forwarded from the engine.
const logSource = "liblouis"

// slogLevel maps an engine level onto slog using the most severe slog level
// whose engine range contains it.
func slogLevel(level int) slog.Level {
	switch {
	case level <= bindings.LogAll:
		return logging.LevelTrace
	case level <= bindings.LogDebug:
		return slog.LevelDebug
	case level <= bindings.LogInfo:
		return slog.LevelInfo
	case level <= bindings.LogWarn:
		return slog.LevelWarn
	default:
		return slog.LevelError
	}
}

// engineThreshold returns the engine level matching the lowest slog level the
// logger has enabled, or LogOff when it has none enabled.
func engineThreshold(ctx context.Context, logger logging.Logger) int {
	steps := []struct {
		level  slog.Level
		engine int
	}{
		{logging.LevelTrace, bindings.LogAll},
		{slog.LevelDebug, bindings.LogDebug},
		{slog.LevelInfo, bindings.LogInfo},
		{slog.LevelWarn, bindings.LogWarn},
		{slog.LevelError, bindings.LogError},
	}
	for _, s := range steps {
		if logger.Enabled(ctx, s.level) {
			return s.engine
		}
	}
	return bindings.LogOff
}

// newLogSink forwards engine records to logger. It runs inside engine calls
// and only touches the logger.
func newLogSink(logger logging.Logger) bindings.LogSink {
	return func(level int, message string) {
		logger.Log(context.Background(), slogLevel(level), message, "engine_level", level)
	}
}
