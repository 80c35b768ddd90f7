package dlc

import (
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"paradoxpatch/internal/fileutil"
	"paradoxpatch/internal/logging"
)

// WarningKind classifies tolerated scan anomalies.
type WarningKind string

const (
	// WarningInvalidFolder marks a subdirectory whose name has no `<id>_` prefix.
	WarningInvalidFolder WarningKind = "invalid_folder"
	// WarningMissingFile marks a subdirectory without its `<id>.dlc` file.
	WarningMissingFile WarningKind = "missing_dlc_file"
)

// Warning records a skipped subdirectory.
type Warning struct {
	Kind WarningKind `json:"kind"`
	// Path is the subdirectory, or the expected .dlc file for WarningMissingFile.
	Path    string `json:"path"`
	Message string `json:"message"`
}

const definitionExt = ".dlc"

// Scan lists the definition file of every DLC subdirectory in dir, sorted by
// full path. Subdirectories that cannot yield a candidate are skipped and
// reported as warnings.
func Scan(dir string, logger *slog.Logger) ([]string, []Warning, error) {
	logger = logging.NewComponentLogger(logger, "scanner")

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, nil, &Error{Kind: KindReadDlcFolderFailed, Path: dir, Err: err}
	}

	var (
		paths    []string
		warnings []Warning
	)
	for _, entry := range entries {
		sub := filepath.Join(dir, entry.Name())
		if !isDir(entry, sub) {
			continue
		}

		stem, _, found := strings.Cut(entry.Name(), "_")
		if !found || stem == "" {
			w := Warning{
				Kind:    WarningInvalidFolder,
				Path:    sub,
				Message: "folder name does not start with '<id>_'",
			}
			warnings = append(warnings, w)
			logging.WarnWithContext(logger, "invalid DLC folder name, skipping", "dlc_invalid_folder",
				logging.Path(sub),
				logging.String(logging.FieldErrorHint, "DLC folders are named like 1234_expansion"),
				logging.String(logging.FieldImpact, "folder is left out of DLC.txt"),
			)
			continue
		}

		candidate := filepath.Join(sub, stem+definitionExt)
		if !fileutil.IsRegular(candidate) {
			w := Warning{
				Kind:    WarningMissingFile,
				Path:    candidate,
				Message: "DLC definition file not found",
			}
			warnings = append(warnings, w)
			logging.WarnWithContext(logger, "DLC file not found, skipping", "dlc_missing_file",
				logging.Path(candidate),
				logging.String(logging.FieldErrorHint, "verify the game files in Steam"),
				logging.String(logging.FieldImpact, "DLC is left out of DLC.txt"),
			)
			continue
		}
		logger.Debug("found DLC definition", logging.Path(candidate))
		paths = append(paths, candidate)
	}

	sort.Strings(paths)
	logger.Info("scanned DLC folder",
		logging.Path(dir),
		logging.Int("candidates", len(paths)),
		logging.Int("skipped", len(warnings)),
	)
	return paths, warnings, nil
}

// isDir follows symlinked subdirectories, which ReadDir reports as links.
func isDir(entry os.DirEntry, path string) bool {
	if entry.IsDir() {
		return true
	}
	if entry.Type()&os.ModeSymlink == 0 {
		return false
	}
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
