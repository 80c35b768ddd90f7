// Package fileutil holds filesystem helpers: existence checks, single-shot
// atomic file replacement and an advisory process lock.
package fileutil
