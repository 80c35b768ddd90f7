package main

import (
	"errors"
	"fmt"
	"io"

	"paradoxpatch/internal/diagnostic"
	"paradoxpatch/internal/dlc"
)

// codedError is implemented by the dlc and patch error types.
type codedError interface {
	error
	Code() string
	Help() string
}

// renderError prints err for a terminal user. Parse failures show the
// offending source; other coded errors get their code and help text.
func renderError(w io.Writer, err error, colorize bool) error {
	var dlcErr *dlc.Error
	if errors.As(err, &dlcErr) && dlcErr.Diagnostic != nil {
		return diagnostic.Render(w, *dlcErr.Diagnostic, colorize)
	}

	var coded codedError
	if errors.As(err, &coded) {
		return diagnostic.Render(w, diagnostic.Diagnostic{
			Code:    coded.Code(),
			Message: err.Error(),
			Help:    coded.Help(),
		}, colorize)
	}

	_, werr := fmt.Fprintln(w, err)
	return werr
}
