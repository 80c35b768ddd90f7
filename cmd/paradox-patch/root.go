package main

import (
	"github.com/spf13/cobra"
)

func newRootCommand() *cobra.Command {
	var configFlag string
	var logFormatFlag string
	var verbosity int
	var quiet bool

	ctx := newCommandContext(&configFlag, &logFormatFlag, &verbosity, &quiet)

	rootCmd := &cobra.Command{
		Use:           "paradox-patch",
		Short:         "Unlock DLCs for Paradox games through the Goldberg Steam emulator",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if shouldSkipConfig(cmd) {
				return nil
			}
			_, err := ctx.ensureConfig()
			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "Configuration file path")
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", "Increase log detail (-v info, -vv debug)")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Only log errors")
	rootCmd.PersistentFlags().StringVar(&logFormatFlag, "log-format", "", "Log format override (console or json)")

	rootCmd.AddCommand(newDlcCommand(ctx))
	rootCmd.AddCommand(newPatchCommand(ctx))
	rootCmd.AddCommand(newGamesCommand())
	rootCmd.AddCommand(newConfigCommand(ctx))

	return rootCmd
}
