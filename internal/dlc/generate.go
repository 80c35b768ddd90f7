package dlc

import (
	"context"
	"errors"
	"log/slog"
	"path/filepath"

	"paradoxpatch/internal/game"
	"paradoxpatch/internal/logging"
	"paradoxpatch/internal/preflight"
)

// Options configures a Generate run.
type Options struct {
	// Target is the game folder; empty means the working directory.
	Target string
	// Output overrides the per-game DLC.txt location.
	Output string
	// DryRun parses everything but writes nothing.
	DryRun bool
}

// Result summarizes a Generate run.
type Result struct {
	Dir      string    `json:"dlc_dir"`
	Output   string    `json:"output"`
	Game     string    `json:"game,omitempty"`
	Entries  []Entry   `json:"entries"`
	Warnings []Warning `json:"warnings"`
	Written  bool      `json:"written"`
}

// Count returns the number of entries in the result.
func (r Result) Count() int { return len(r.Entries) }

// Generate resolves, scans, parses and writes DLC.txt for one game folder.
// Nothing is written unless every definition file parses.
func Generate(ctx context.Context, opts Options, logger *slog.Logger) (Result, error) {
	logger = logging.NewComponentLogger(logger, "dlc")

	paths, err := ResolvePaths(opts.Target, opts.Output)
	if err != nil {
		return Result{}, err
	}
	result := Result{Dir: paths.Dir, Output: paths.Output}
	if paths.Game != game.Unknown {
		result.Game = paths.Game.String()
	}
	logger.Info("resolved paths",
		logging.String("dlc_dir", paths.Dir),
		logging.String("output", paths.Output),
		logging.String(logging.FieldGame, paths.Game.String()),
	)

	candidates, warnings, err := Scan(paths.Dir, logger)
	if err != nil {
		return result, err
	}
	result.Warnings = warnings

	if err := ctx.Err(); err != nil {
		return result, err
	}

	entries, err := Aggregate(candidates, logger)
	if err != nil {
		return result, err
	}
	result.Entries = entries

	if opts.DryRun {
		logger.Info("dry run, output not written", logging.Int("entries", len(entries)))
		return result, nil
	}

	if err := EnsureOutputDir(paths.Output); err != nil {
		return result, err
	}
	if check := preflight.CheckDirectoryAccess("output directory", filepath.Dir(paths.Output)); !check.Passed {
		return result, &Error{Kind: KindCreateOutputFailed, Path: paths.Output, Err: errors.New(check.Detail)}
	}
	if err := WriteOutput(paths.Output, entries); err != nil {
		return result, err
	}
	result.Written = true
	logger.Info("wrote DLC list",
		logging.Path(paths.Output),
		logging.Int("entries", len(entries)),
	)
	return result, nil
}
