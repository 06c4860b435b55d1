// Package log provides structured logging for confl, wrapping log/slog
// with an added Trace level, text and JSON output formats, and a
// colorized pretty handler for terminals.
//
// The zero-value [Logger] is a no-op, so library code can accept a Logger
// unconditionally and callers opt in to diagnostics. The package-level
// functions log through a default logger writing to stderr, configurable
// with [Config].
package log
