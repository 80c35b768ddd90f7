package main

import (
	"fmt"
	"path/filepath"
	"strconv"

	"github.com/spf13/cobra"

	"paradoxpatch/internal/dlc"
)

func newDlcCommand(ctx *commandContext) *cobra.Command {
	var output string
	var dryRun bool
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "dlc [target]",
		Short: "Generate DLC.txt for a game folder",
		Long: `Scan the game's dlc/ (or game/dlc/) folder and write one "<steam_id>=<name>"
line per DLC to the Goldberg steam_settings/DLC.txt of the game.

The target defaults to the current directory.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var target string
			if len(args) > 0 {
				target = args[0]
			}
			logger, err := ctx.logger(cmd)
			if err != nil {
				return err
			}

			opts := dlc.Options{Target: target, Output: output, DryRun: dryRun}
			var result dlc.Result
			run := func() error {
				var genErr error
				result, genErr = dlc.Generate(cmd.Context(), opts, logger)
				return genErr
			}
			if dryRun {
				err = run()
			} else {
				err = ctx.withLock(run)
			}
			if err != nil {
				return err
			}

			if jsonOutput {
				return writeJSON(cmd, result)
			}
			out := cmd.OutOrStdout()
			if dryRun {
				fmt.Fprintln(out, renderEntries(result))
				fmt.Fprintf(out, "Found %d DLCs, dry run: nothing written to '%s'\n", result.Count(), result.Output)
				return nil
			}
			fmt.Fprintf(out, "Found %d DLCs, write to '%s'\n", result.Count(), result.Output)
			if n := len(result.Warnings); n > 0 {
				fmt.Fprintf(out, "Skipped %d folder(s); rerun with -v for details\n", n)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "Output file (default: the game's steam_settings/DLC.txt)")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Show the entries without writing the output file")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Print the result as JSON")
	return cmd
}

func renderEntries(result dlc.Result) string {
	rows := make([][]string, 0, len(result.Entries))
	for _, entry := range result.Entries {
		file := entry.Path
		if rel, err := filepath.Rel(result.Dir, entry.Path); err == nil {
			file = rel
		}
		rows = append(rows, []string{strconv.FormatUint(uint64(entry.ID), 10), entry.Name, file})
	}
	return renderTable(result.Dir, []string{"Steam ID", "Name", "File"}, rows, []columnAlignment{alignRight, alignLeft, alignLeft})
}
