// Package log builds the slog loggers used by wordrank.
//
// Loggers write to stderr so that report output on stdout stays clean for
// piping. The level is Warn by default and Debug in verbose mode.
//
// # Path redaction
//
// RedactingHandler rewrites string attribute values that start with the
// user's home directory so that "/home/alice/notes.txt" is logged as
// "~/notes.txt". Logs can then be shared without exposing account names.
//
// # Usage
//
//	logger := log.NewLogger(os.Stderr, verbose)
//	slog.SetDefault(logger)
//	logger.Debug("reading input", "source", path)
package log
