package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/brailleworks/louis-go/pkg/louis"
)

func newVersionCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the wrapper and liblouis versions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "lou-translate", louis.WrapperVersion())

			h, err := a.open()
			if errors.Is(err, louis.ErrNotBuilt) {
				fmt.Fprintln(out, "liblouis unavailable:", err)
				return nil
			}
			if err != nil {
				return err
			}
			v, err := h.Version()
			if err != nil {
				return fmt.Errorf("engine version: %w", err)
			}
			fmt.Fprintln(out, "liblouis", v)
			if err := louis.CheckEngineVersion(v); err != nil {
				a.logger.Warn("unsupported engine", zap.Error(err))
			}
			return nil
		},
	}
}
