// Package logging assembles the structured slog loggers used across the
// tool.
//
// It owns the console/JSON handler selection, centralizes level and output
// plumbing (console plus an optional file under the configured log
// directory), and provides a no-op logger for tests and wiring code that
// cannot fail. Prefer these constructors over hand-rolled slog setup so
// every component emits data with the same shape.
package logging
