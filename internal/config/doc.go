// Package config loads, normalizes, and validates paradox-patch configuration.
//
// It supplies repository defaults (download mirrors, state directory, log
// format), expands user paths (including tilde shortcuts), reads TOML files,
// and honours environment overrides such as PARADOX_PATCH_PROXY. Variables may
// also be placed in ~/.config/paradox-patch/.env.
//
// Always obtain settings through this package so commands receive sanitized
// paths, canonical log settings, and clear validation errors.
package config
