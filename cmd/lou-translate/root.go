package main

import (
	"github.com/spf13/cobra"

	"github.com/brailleworks/louis-go/pkg/louis"
)

func newRootCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lou-translate [flags] TABLE...",
		Short: "Translate text to and from Braille with liblouis",
		Long: `lou-translate reads standard input line by line and writes one translated
line per input line. The tables named on the command line are joined into a
single table list in the order given.

A first table named "tables" or "version" is read as a subcommand. Put the
table names after "--", or give a path such as ./tables, to translate with it:

  lou-translate -- tables en_US.tbl

Flags may also be set through LOU_TRANSLATE_* environment variables or a YAML
file passed with --config.`,
		Version:       louis.WrapperVersion(),
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runTranslate(cmd, args)
		},
	}

	pf := cmd.PersistentFlags()
	pf.StringVar(&a.configFile, "config", "", "YAML config file")
	pf.String(keyLogLevel, defaultLogLevel, "log level (debug, info, warn, error)")
	pf.String(keyTablePath, "", "directory searched for translation tables")

	f := cmd.Flags()
	f.BoolP(keyForward, "f", false, "translate text to Braille (default)")
	f.BoolP(keyBackward, "b", false, "translate Braille to text")
	f.Bool(keyDotsUnicode, false, "emit Unicode Braille patterns")
	f.Bool(keyNoContractions, false, "disable contractions")
	cmd.MarkFlagsMutuallyExclusive(keyForward, keyBackward)

	cmd.AddCommand(newTablesCmd(a), newVersionCmd(a))
	return cmd
}
