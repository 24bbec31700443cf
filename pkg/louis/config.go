package louis

import "github.com/brailleworks/louis-go/pkg/louis/logging"

// Config expresses the knobs applied to the engine when a handle is opened.
type Config struct {
	// Logger receives wrapper diagnostics and every record the engine emits
	// while the handle is open. The engine's log threshold is derived from
	// the lowest level this logger has enabled. Nil uses slog.Default().
	Logger logging.Logger

	// DataPath adds a directory to the engine's table search path for the
	// lifetime of the handle. Empty keeps the engine defaults.
	DataPath string
}

func (c Config) logger() logging.Logger {
	if c.Logger == nil {
		return logging.New(nil)
	}
	return c.Logger
}
