// Package logging assembles the structured slog loggers used across the
// hashmill CLI.
//
// It owns the console and JSON handlers, centralizes level and output
// plumbing, and exposes attribute helpers so components tag log lines with
// consistent field names. The package also provides a no-op logger for tests
// and wiring code that cannot fail.
//
// Loggers default to stderr: stdout is reserved for result lines, and the two
// streams must stay separable when output is piped.
package logging
