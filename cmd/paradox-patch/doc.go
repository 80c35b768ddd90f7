// Package main hosts the paradox-patch CLI entrypoint and command graph.
//
// The Cobra command tree wires configuration, logging and the instance lock
// around the internal dlc and patch packages. Commands stay thin: new
// behavior belongs in an internal package first and is surfaced here through
// a command or flag.
package main
