// Package game identifies supported Paradox titles from their install folder.
//
// A Profile is resolved once from the final path segment of a game's root
// folder and answers where that title keeps its Steam emulator settings and
// its libsteam_api library. Adding a title means adding one constant and one
// case to each switch.
package game
