package main

import (
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"paradoxpatch/internal/config"
	"paradoxpatch/internal/fileutil"
	"paradoxpatch/internal/logging"
)

type commandContext struct {
	configFlag    *string
	logFormatFlag *string
	verbosity     *int
	quiet         *bool

	configOnce sync.Once
	config     *config.Config
	configErr  error
}

func newCommandContext(configFlag, logFormatFlag *string, verbosity *int, quiet *bool) *commandContext {
	return &commandContext{
		configFlag:    configFlag,
		logFormatFlag: logFormatFlag,
		verbosity:     verbosity,
		quiet:         quiet,
	}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		var path string
		if c.configFlag != nil {
			path = strings.TrimSpace(*c.configFlag)
		}
		cfg, _, _, err := config.Load(path)
		if err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
	})
	return c.config, c.configErr
}

// logLevelShift combines -v and -q into a single verbosity offset.
func (c *commandContext) logLevelShift() int {
	shift := 0
	if c.verbosity != nil {
		shift = *c.verbosity
	}
	if c.quiet != nil && *c.quiet {
		shift = -1
	}
	return shift
}

// logger builds the per-invocation logger writing to the command's stderr.
// Every line carries a fresh run_id.
func (c *commandContext) logger(cmd *cobra.Command) (*slog.Logger, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	effective := *cfg
	if c.logFormatFlag != nil {
		if format := strings.ToLower(strings.TrimSpace(*c.logFormatFlag)); format != "" {
			effective.Logging.Format = format
		}
	}
	w := cmd.ErrOrStderr()
	logger, err := logging.NewFromConfig(&effective, c.logLevelShift(), w, shouldColorize(w))
	if err != nil {
		return nil, err
	}
	return logger.With(logging.String(logging.FieldRunID, uuid.NewString())), nil
}

// withLock runs fn while holding the instance lock from the state directory.
func (c *commandContext) withLock(fn func() error) error {
	cfg, err := c.ensureConfig()
	if err != nil {
		return err
	}
	if err := cfg.EnsureDirectories(); err != nil {
		return err
	}
	unlock, err := fileutil.Lock(cfg.LockPath())
	if err != nil {
		return fmt.Errorf("acquire instance lock: %w", err)
	}
	defer unlock()
	return fn()
}

func shouldSkipConfig(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations != nil && c.Annotations["skipConfigLoad"] == "true" {
			return true
		}
	}
	return false
}
