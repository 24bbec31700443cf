// Package logging provides a minimal logging facade for the louis wrapper.
//
// The Logger interface wraps the subset of log/slog the wrapper needs: the
// four leveled methods, Log for arbitrary levels (the engine emits records
// below debug, see LevelTrace), Enabled so the wrapper can derive the engine's
// log threshold from the host configuration, and With.
//
// Two implementations ship with the package:
//
//	// slog-backed; nil binds to slog.Default()
//	logger := logging.New(nil)
//
//	// zap-backed; nil yields a no-op logger
//	z, _ := zap.NewDevelopment()
//	logger := logging.NewZap(z)
//
// Text handed to a translation is user content. The wrapper never logs it and
// marks its place with logging.Redacted instead:
//
//	logger.Debug(ctx, "translate", "tables", tables, logging.Redacted("text"))
//	// Logs: text="[redacted]"
package logging
