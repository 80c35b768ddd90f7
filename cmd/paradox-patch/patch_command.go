package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"paradoxpatch/internal/patch"
)

func newPatchCommand(ctx *commandContext) *cobra.Command {
	var proxy bool
	var check bool
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "patch [target]",
		Short: "Replace libsteam_api.dylib with the Goldberg emulator build",
		Long: `Download the Goldberg emulator build of libsteam_api.dylib and install it into
the game folder. The original library is kept as libsteam_api.bak; an
existing backup is never overwritten.

The target defaults to the current directory.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var target string
			if len(args) > 0 {
				target = args[0]
			}
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger, err := ctx.logger(cmd)
			if err != nil {
				return err
			}

			patcher := patch.New(patch.Options{
				URL:      cfg.Patch.URL,
				ProxyURL: cfg.Patch.ProxyURL,
				Timeout:  cfg.DownloadTimeout(),
			}, logger)
			useProxy := proxy || cfg.Patch.UseProxy

			if check {
				return runPatchCheck(cmd, patcher, target, useProxy)
			}

			var result patch.Result
			err = ctx.withLock(func() error {
				var patchErr error
				result, patchErr = patcher.Patch(cmd.Context(), target, useProxy)
				return patchErr
			})
			if err != nil {
				return err
			}

			if jsonOutput {
				return writeJSON(cmd, result)
			}
			out := cmd.OutOrStdout()
			if result.BackedUp {
				fmt.Fprintf(out, "Backed up original to '%s'\n", result.Backup)
			} else {
				fmt.Fprintf(out, "Kept existing backup '%s'\n", result.Backup)
			}
			fmt.Fprintf(out, "Patched '%s' successfully!\n", result.Library)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&proxy, "proxy", "p", false, "Download through the configured mirror")
	cmd.Flags().BoolVar(&check, "check", false, "Run preflight checks without changing anything")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Print the result as JSON")
	return cmd
}

var errChecksFailed = errors.New("preflight checks failed")

func runPatchCheck(cmd *cobra.Command, patcher *patch.Patcher, target string, proxy bool) error {
	results, err := patcher.Check(cmd.Context(), target, proxy)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	colorize := shouldColorize(out)
	for _, line := range renderSectionHeader("Patch preflight", colorize) {
		fmt.Fprintln(out, line)
	}
	failed := false
	for _, r := range results {
		kind := statusOK
		if !r.Passed {
			kind = statusError
			failed = true
		}
		fmt.Fprintln(out, renderStatusLine(r.Name, kind, r.Detail, colorize))
	}
	if failed {
		return errChecksFailed
	}
	return nil
}
