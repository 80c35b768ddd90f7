package dlc

import (
	"bytes"
	"log/slog"
	"strconv"

	"paradoxpatch/internal/fileutil"
	"paradoxpatch/internal/logging"
)

const outputMode = 0o644

// Aggregate parses every path in order and stops at the first failure.
func Aggregate(paths []string, logger *slog.Logger) ([]Entry, error) {
	logger = logging.NewComponentLogger(logger, "aggregator")

	entries := make([]Entry, 0, len(paths))
	for _, path := range paths {
		entry, err := ParseFile(path)
		if err != nil {
			return nil, err
		}
		logger.Debug("parsed DLC",
			logging.Path(path),
			logging.Uint64("steam_id", uint64(entry.ID)),
			logging.String("name", entry.Name),
		)
		entries = append(entries, entry)
	}
	return entries, nil
}

// Format renders one `<id>=<name>` line per entry.
func Format(entries []Entry) []byte {
	var buf bytes.Buffer
	for _, entry := range entries {
		buf.WriteString(strconv.FormatUint(uint64(entry.ID), 10))
		buf.WriteByte('=')
		buf.WriteString(entry.Name)
		buf.WriteByte('\n')
	}
	return buf.Bytes()
}

// WriteOutput replaces output with the formatted entries in one write.
func WriteOutput(output string, entries []Entry) error {
	if err := fileutil.WriteFileAtomic(output, Format(entries), outputMode); err != nil {
		return &Error{Kind: KindCreateOutputFailed, Path: output, Err: err}
	}
	return nil
}
