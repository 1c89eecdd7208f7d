// Package logging provides structured logging for the vin CLI using slog.
//
// Text output goes through [Handler], which colourises levels and keys when
// the writer is a terminal. JSON output uses the standard library handler.
// [MultiHandler] fans records out to several handlers, which the CLI uses to
// mirror logs into a --log-file.
//
//	logger := logging.New(logging.Config{
//		Level:  slog.LevelInfo,
//		Format: logging.FormatText,
//		Output: os.Stderr,
//	})
//	logger.Info("generated", "count", 10)
//
// Commands obtain their logger from the command context:
//
//	logger := logging.FromContext(cmd.Context())
//
// In tests use [ForTest] so output only shows up for failing tests.
package logging
