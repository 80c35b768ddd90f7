// Package textutil provides small text helpers shared by the DLC parser and
// the CLI: byte-order-mark removal for files written by Windows editors and
// truncation of long values in table cells.
package textutil
