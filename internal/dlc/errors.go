package dlc

import (
	"errors"
	"fmt"

	"paradoxpatch/internal/diagnostic"
)

// Kind classifies pipeline failures.
type Kind int

const (
	KindDlcFolderNotFound Kind = iota + 1
	KindInvalidOutput
	KindReadDlcFolderFailed
	KindReadDlcFileFailed
	KindParseDlcFailed
	KindCreateOutputFailed
)

func (k Kind) String() string {
	switch k {
	case KindDlcFolderNotFound:
		return "dlc_folder_not_exists"
	case KindInvalidOutput:
		return "unknown_game"
	case KindReadDlcFolderFailed:
		return "read_dlc_folder_failed"
	case KindReadDlcFileFailed:
		return "read_dlc_file_failed"
	case KindParseDlcFailed:
		return "parse_dlc_failed"
	case KindCreateOutputFailed:
		return "create_output_file_failed"
	default:
		return "unknown"
	}
}

// Error is returned by every fatal step of the pipeline.
type Error struct {
	Kind Kind
	// Path is the file or directory the step was working on.
	Path string
	Err  error
	// Diagnostic is set for parse failures.
	Diagnostic *diagnostic.Diagnostic
}

func (e *Error) Error() string {
	msg := e.message()
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

func (e *Error) Unwrap() error { return e.Err }

func (e *Error) message() string {
	switch e.Kind {
	case KindDlcFolderNotFound:
		return fmt.Sprintf("DLC folder '%s' does not exist", e.Path)
	case KindInvalidOutput:
		return fmt.Sprintf("cannot determine output path: '%s' is not a supported game folder", e.Path)
	case KindReadDlcFolderFailed:
		return fmt.Sprintf("failed to read DLC folder '%s'", e.Path)
	case KindReadDlcFileFailed:
		return fmt.Sprintf("failed to read DLC file '%s'", e.Path)
	case KindParseDlcFailed:
		if e.Diagnostic != nil && e.Diagnostic.Message != "" {
			return fmt.Sprintf("failed to parse DLC file '%s': %s", e.Path, e.Diagnostic.Message)
		}
		return fmt.Sprintf("failed to parse DLC file '%s'", e.Path)
	case KindCreateOutputFailed:
		return fmt.Sprintf("failed to create output file '%s'", e.Path)
	default:
		return fmt.Sprintf("dlc generation failed for '%s'", e.Path)
	}
}

// Code returns a stable identifier such as generate::parse_dlc_failed.
func (e *Error) Code() string {
	return "generate::" + e.Kind.String()
}

// Help returns a suggestion for resolving the failure.
func (e *Error) Help() string {
	switch e.Kind {
	case KindDlcFolderNotFound:
		return "Please check if the DLC folder exists under the game folder (dlc/ or game/dlc/)"
	case KindInvalidOutput:
		return "Run inside a supported game folder or pass --output explicitly"
	case KindReadDlcFolderFailed:
		return "Please check the permissions of the DLC folder"
	case KindReadDlcFileFailed:
		return "Please check the permissions of the DLC file"
	case KindParseDlcFailed:
		return "Each .dlc file needs a name and a numeric steam_id, e.g. steam_id = \"1234\""
	case KindCreateOutputFailed:
		return "Please check that the output location is writable"
	default:
		return ""
	}
}

// IsKind reports whether err's chain contains an *Error of the given kind.
func IsKind(err error, kind Kind) bool {
	var dlcErr *Error
	return errors.As(err, &dlcErr) && dlcErr.Kind == kind
}
