package patch

import (
	"errors"
	"fmt"
)

// Kind classifies patch failures.
type Kind int

const (
	KindGameNotRecognized Kind = iota + 1
	KindLibNotExists
	KindDownloadFailed
	KindBackupFailed
	KindPatchFailed
)

func (k Kind) String() string {
	switch k {
	case KindGameNotRecognized:
		return "game_not_recognized"
	case KindLibNotExists:
		return "libsteam_api_not_exists"
	case KindDownloadFailed:
		return "download_failed"
	case KindBackupFailed:
		return "backup_failed"
	case KindPatchFailed:
		return "patch_failed"
	default:
		return "unknown"
	}
}

// Error is returned by Patch.
type Error struct {
	Kind Kind
	Path string
	Err  error
}

func (e *Error) Error() string {
	var msg string
	switch e.Kind {
	case KindGameNotRecognized:
		msg = fmt.Sprintf("'%s' is not a supported game folder", e.Path)
	case KindLibNotExists:
		msg = fmt.Sprintf("libsteam_api not found at '%s'", e.Path)
	case KindDownloadFailed:
		msg = fmt.Sprintf("failed to download '%s'", e.Path)
	case KindBackupFailed:
		msg = fmt.Sprintf("failed to back up '%s'", e.Path)
	case KindPatchFailed:
		msg = fmt.Sprintf("failed to patch '%s'", e.Path)
	default:
		msg = fmt.Sprintf("patch failed for '%s'", e.Path)
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

func (e *Error) Unwrap() error { return e.Err }

// Code returns a stable identifier such as patch::download_failed.
func (e *Error) Code() string { return "patch::" + e.Kind.String() }

// Help returns a suggestion for resolving the failure.
func (e *Error) Help() string {
	switch e.Kind {
	case KindGameNotRecognized:
		return "Run inside the game folder, e.g. '.../steamapps/common/Stellaris'"
	case KindLibNotExists:
		return "Please verify the game files in Steam"
	case KindDownloadFailed:
		return "Check your network connection, or try again with --proxy"
	case KindBackupFailed:
		return "Please check the permissions of the game folder"
	case KindPatchFailed:
		return "Restore libsteam_api.bak over libsteam_api.dylib and try again"
	default:
		return ""
	}
}

// IsKind reports whether err's chain contains an *Error of the given kind.
func IsKind(err error, kind Kind) bool {
	var patchErr *Error
	return errors.As(err, &patchErr) && patchErr.Kind == kind
}
