// Package patch swaps a game's libsteam_api.dylib for the Goldberg emulator
// build.
//
// Patcher.Patch detects the game from the target folder, downloads the
// replacement library, moves the original aside as libsteam_api.bak (once;
// an existing backup is never overwritten) and writes the download in its
// place with the original file mode.
package patch
