package config

import (
	"errors"
	"fmt"
	"net/url"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validatePatch(); err != nil {
		return err
	}
	if err := c.validateLogging(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validatePatch() error {
	if err := validateDownloadURL("patch.url", c.Patch.URL); err != nil {
		return err
	}
	if err := validateDownloadURL("patch.proxy_url", c.Patch.ProxyURL); err != nil {
		return err
	}
	if c.Patch.TimeoutSeconds <= 0 {
		return errors.New("patch.timeout_seconds must be positive")
	}
	return nil
}

func validateDownloadURL(key, raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("%s: %w", key, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("%s must be an http(s) URL, got %q", key, raw)
	}
	if u.Host == "" {
		return fmt.Errorf("%s is missing a host: %q", key, raw)
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format must be console or json, got %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "error", "warn", "warning", "info", "debug", "trace":
	default:
		return fmt.Errorf("logging.level must be one of error, warn, info, debug; got %q", c.Logging.Level)
	}
	return nil
}
