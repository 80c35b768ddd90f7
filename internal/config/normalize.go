package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

const (
	envLibraryURL = "PARADOX_PATCH_URL"
	envProxyURL   = "PARADOX_PATCH_PROXY_URL"
	envUseProxy   = "PARADOX_PATCH_PROXY"
	envLogLevel   = "PARADOX_PATCH_LOG_LEVEL"
)

func (c *Config) normalize() error {
	if err := c.normalizePaths(); err != nil {
		return err
	}
	if err := c.normalizePatch(); err != nil {
		return err
	}
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizePaths() error {
	if strings.TrimSpace(c.Paths.StateDir) == "" {
		c.Paths.StateDir = defaultStateDir
	}
	var err error
	if c.Paths.StateDir, err = expandPath(strings.TrimSpace(c.Paths.StateDir)); err != nil {
		return fmt.Errorf("paths.state_dir: %w", err)
	}
	return nil
}

func (c *Config) normalizePatch() error {
	if value, ok := lookupEnv(envLibraryURL); ok {
		c.Patch.URL = value
	}
	if value, ok := lookupEnv(envProxyURL); ok {
		c.Patch.ProxyURL = value
	}
	if value, ok := lookupEnv(envUseProxy); ok {
		useProxy, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("%s: expected a boolean, got %q", envUseProxy, value)
		}
		c.Patch.UseProxy = useProxy
	}

	c.Patch.URL = strings.TrimSpace(c.Patch.URL)
	if c.Patch.URL == "" {
		c.Patch.URL = defaultLibraryURL
	}
	c.Patch.ProxyURL = strings.TrimSpace(c.Patch.ProxyURL)
	if c.Patch.ProxyURL == "" {
		c.Patch.ProxyURL = defaultLibraryMirror
	}
	if c.Patch.TimeoutSeconds == 0 {
		c.Patch.TimeoutSeconds = defaultTimeoutSeconds
	}
	return nil
}

func (c *Config) normalizeLogging() {
	if value, ok := lookupEnv(envLogLevel); ok {
		c.Logging.Level = value
	}
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = DefaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = DefaultLogLevel
	}
}

func lookupEnv(key string) (string, bool) {
	value, ok := os.LookupEnv(key)
	if !ok {
		return "", false
	}
	value = strings.TrimSpace(value)
	return value, value != ""
}
