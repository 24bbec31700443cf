package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/brailleworks/louis-go/pkg/louis"
	"github.com/brailleworks/louis-go/pkg/louis/logging"
)

// app carries the state shared by the lou-translate commands. The engine
// handle is opened lazily and closed by main after the command returns.
type app struct {
	configFile string

	cfg    cliConfig
	logger *zap.Logger
	handle *louis.Louis
}

// setup resolves configuration and builds the logger. It runs before every
// command.
func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := loadConfig(cmd, a.configFile)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	logger, err := newLogger(cfg.LogLevel, cmd.ErrOrStderr())
	if err != nil {
		return fmt.Errorf("initialize logger: %w", err)
	}
	a.cfg = cfg
	a.logger = logger
	return nil
}

func (a *app) open() (*louis.Louis, error) {
	if a.handle != nil {
		return a.handle, nil
	}
	logger := a.logger
	if logger == nil {
		logger = zap.NewNop()
	}
	h, err := louis.New(louis.Config{
		Logger:   logging.NewZap(logger),
		DataPath: a.cfg.TablePath,
	})
	if err != nil {
		return nil, fmt.Errorf("open liblouis: %w", err)
	}
	a.handle = h
	return h, nil
}

func (a *app) close() error {
	var err error
	if a.handle != nil {
		err = a.handle.Close()
		a.handle = nil
	}
	if a.logger != nil {
		_ = a.logger.Sync()
	}
	if errors.Is(err, louis.ErrClosed) {
		return nil
	}
	return err
}

// newLogger returns a console zap logger writing to w at the named level.
func newLogger(level string, w io.Writer) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, err
	}
	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()),
		zapcore.AddSync(w),
		zap.NewAtomicLevelAt(lvl),
	)
	return zap.New(core), nil
}
