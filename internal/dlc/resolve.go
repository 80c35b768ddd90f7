package dlc

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"paradoxpatch/internal/game"
)

// Paths is the outcome of resolving a target folder.
type Paths struct {
	// Target is the absolute game folder.
	Target string
	// Dir is the canonical DLC metadata directory.
	Dir string
	// Output is where DLC.txt is written.
	Output string
	// Game is the detected profile, Unknown when Output was given explicitly
	// and the folder is not recognized.
	Game game.Profile
}

var metadataDirs = []string{"dlc", filepath.Join("game", "dlc")}

// ResolvePaths locates the metadata directory beneath target and computes the
// output file path. An empty target means the working directory; a non-empty
// output is used verbatim. No directories are created.
func ResolvePaths(target, output string) (Paths, error) {
	if target == "" {
		target = "."
	}
	absTarget, err := filepath.Abs(target)
	if err != nil {
		return Paths{}, &Error{Kind: KindDlcFolderNotFound, Path: target, Err: err}
	}

	dir, err := findMetadataDir(absTarget)
	if err != nil {
		return Paths{}, err
	}

	profile, matched := game.Detect(absTarget)
	if output == "" {
		if !matched {
			return Paths{}, &Error{Kind: KindInvalidOutput, Path: absTarget}
		}
		output = filepath.Join(absTarget, profile.DLCOutputPath())
	}

	return Paths{Target: absTarget, Dir: dir, Output: output, Game: profile}, nil
}

func findMetadataDir(target string) (string, error) {
	var attempted string
	var lastErr error
	for _, rel := range metadataDirs {
		attempted = filepath.Join(target, rel)
		resolved, err := filepath.EvalSymlinks(attempted)
		if err != nil {
			lastErr = err
			continue
		}
		info, err := os.Stat(resolved)
		if err != nil {
			lastErr = err
			continue
		}
		if !info.IsDir() {
			lastErr = fmt.Errorf("%s is not a directory", resolved)
			continue
		}
		abs, err := filepath.Abs(resolved)
		if err != nil {
			lastErr = err
			continue
		}
		return abs, nil
	}
	if lastErr == nil {
		lastErr = errors.New("no candidate directories")
	}
	return "", &Error{Kind: KindDlcFolderNotFound, Path: attempted, Err: lastErr}
}

// EnsureOutputDir creates the missing parent directories of output.
func EnsureOutputDir(output string) error {
	if err := os.MkdirAll(filepath.Dir(output), 0o755); err != nil {
		return &Error{Kind: KindCreateOutputFailed, Path: output, Err: err}
	}
	return nil
}
