// Package dlc builds the DLC.txt list consumed by the Goldberg Steam emulator.
//
// The pipeline resolves the metadata directory and output path for a game
// install, scans the per-DLC subdirectories for their .dlc definition files,
// parses each file for its steam_id and name, and writes one `<id>=<name>`
// line per entry. Entries are ordered by definition file path so repeated
// runs over the same tree produce identical output.
//
// Any fatal problem is returned as an *Error whose Kind identifies the
// failing step. Parse failures carry a diagnostic.Diagnostic with the file
// text and, for malformed values, the byte span of the offending token.
// Tolerated anomalies (badly named folders, missing definition files) are
// reported as Warning values and never abort the run.
package dlc
