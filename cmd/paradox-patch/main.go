package main

import (
	"context"
	"errors"
	"os"
)

func main() {
	cmd := newRootCommand()
	if err := cmd.Execute(); err != nil {
		if !errors.Is(err, context.Canceled) {
			_ = renderError(os.Stderr, err, shouldColorize(os.Stderr))
		}
		os.Exit(1)
	}
}
