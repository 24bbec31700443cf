package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/brailleworks/louis-go/pkg/louis"
)

const (
	envPrefix = "LOU_TRANSLATE"

	keyForward        = "forward"
	keyBackward       = "backward"
	keyDotsUnicode    = "dots-unicode"
	keyNoContractions = "no-contractions"
	keyLogLevel       = "log-level"
	keyTablePath      = "table-path"

	defaultLogLevel = "warn"
)

// cliConfig is the resolved configuration for one invocation. Precedence is
// flag > LOU_TRANSLATE_* environment > config file > default.
type cliConfig struct {
	Backward       bool
	DotsUnicode    bool
	NoContractions bool
	LogLevel       string
	TablePath      string
}

func (c cliConfig) direction() louis.Direction {
	if c.Backward {
		return louis.Backward
	}
	return louis.Forward
}

func (c cliConfig) mode() louis.Mode {
	var m louis.Mode
	if c.DotsUnicode {
		m |= louis.DotsUnicode
	}
	if c.NoContractions {
		m |= louis.NoContractions
	}
	return m
}

// loadConfig resolves cliConfig from the parsed flags of cmd, the environment
// and, when configFile is set, a YAML file.
func loadConfig(cmd *cobra.Command, configFile string) (cliConfig, error) {
	v := viper.New()
	v.SetDefault(keyLogLevel, defaultLogLevel)
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return cliConfig{}, fmt.Errorf("bind flags: %w", err)
	}

	if configFile != "" {
		v.SetConfigFile(configFile)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return cliConfig{}, fmt.Errorf("read config %s: %w", configFile, err)
		}
	}

	cfg := cliConfig{
		Backward:       v.GetBool(keyBackward),
		DotsUnicode:    v.GetBool(keyDotsUnicode),
		NoContractions: v.GetBool(keyNoContractions),
		LogLevel:       v.GetString(keyLogLevel),
		TablePath:      v.GetString(keyTablePath),
	}

	// An explicit --forward wins over a backward default from env or file.
	if f := cmd.Flags().Lookup(keyForward); f != nil && f.Changed && v.GetBool(keyForward) {
		cfg.Backward = false
	}
	return cfg, nil
}
