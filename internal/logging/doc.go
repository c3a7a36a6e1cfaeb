// Package logging assembles structured slog loggers for slipstats commands.
//
// It owns the console and JSON handlers, centralizes level and output
// plumbing, and exposes the standard field keys so scanner diagnostics,
// cache warnings, and command output share one shape. A no-op logger is
// provided for tests and wiring code that cannot fail.
package logging
