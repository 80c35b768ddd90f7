// Package logging assembles the structured slog loggers used by the
// paradox-patch CLI.
//
// It owns the console and JSON handlers, maps the CLI's -v/-q flags onto slog
// levels, and defines the standard attribute keys (component, run_id,
// event_type, error_hint, impact) so warnings about skipped DLC folders and
// patch steps share one shape. The package also provides a no-op logger for
// tests and wiring code that cannot fail.
package logging
