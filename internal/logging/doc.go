// Package logging builds slog loggers for the daemon and CLI.
//
// Two output formats are supported: a human-oriented console format and
// line-delimited JSON. Loggers write to stdout/stderr and, when a log
// directory is configured, to a rolling carmatch.log file as well.
package logging
