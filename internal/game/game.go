package game

import (
	"path/filepath"
	"strings"
)

// Profile identifies a supported game.
type Profile int

const (
	Unknown Profile = iota
	EU4
	HOI4
	Stellaris
	CK3
	Vic3
)

// All lists every supported profile in display order.
var All = []Profile{EU4, HOI4, Stellaris, CK3, Vic3}

const (
	settingsDir   = "steam_settings"
	dlcListFile   = "DLC.txt"
	steamLibrary  = "libsteam_api.dylib"
	eu4Frameworks = "eu4.app/Contents/Frameworks"
	vic3Binaries  = "binaries"
)

// FolderName returns the install folder name Steam uses for the game.
func (p Profile) FolderName() string {
	switch p {
	case EU4:
		return "Europa Universalis IV"
	case HOI4:
		return "Hearts of Iron IV"
	case Stellaris:
		return "Stellaris"
	case CK3:
		return "Crusader Kings III"
	case Vic3:
		return "Victoria 3"
	default:
		return ""
	}
}

// String returns a short identifier suitable for logs and flags.
func (p Profile) String() string {
	switch p {
	case EU4:
		return "eu4"
	case HOI4:
		return "hoi4"
	case Stellaris:
		return "stellaris"
	case CK3:
		return "ck3"
	case Vic3:
		return "vic3"
	default:
		return "unknown"
	}
}

// binaryDir is the folder, relative to the game root, holding libsteam_api.
func (p Profile) binaryDir() string {
	switch p {
	case EU4:
		return eu4Frameworks
	case Vic3:
		return vic3Binaries
	default:
		return ""
	}
}

// DLCOutputPath returns the DLC list location relative to the game root.
func (p Profile) DLCOutputPath() string {
	if p == Unknown {
		return ""
	}
	return filepath.Join(filepath.FromSlash(p.binaryDir()), settingsDir, dlcListFile)
}

// LibraryPath returns the libsteam_api location relative to the game root.
func (p Profile) LibraryPath() string {
	if p == Unknown {
		return ""
	}
	return filepath.Join(filepath.FromSlash(p.binaryDir()), steamLibrary)
}

// Detect matches the final segment of folder against the supported games.
// The comparison is exact, mirroring how Steam names install folders.
func Detect(folder string) (Profile, bool) {
	folder = strings.TrimRight(strings.TrimSpace(folder), `/\`)
	if folder == "" {
		return Unknown, false
	}
	base := filepath.Base(folder)
	for _, p := range All {
		if base == p.FolderName() {
			return p, true
		}
	}
	return Unknown, false
}
