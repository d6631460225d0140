// Package log provides a concurrency-safe simplified logging interface
// based on [log/slog].
//
// It is the diagnostic sink for the vetvar importers: redefinition and
// completeness warnings produced while scanning untrusted config files are
// reported through a [Logger] (or the package-level default logger) rather
// than returned to callers.
//
// # Basic Usage
//
//	logger := log.Make(os.Stderr)
//	logger.Warn("redefinition of FOO, overriding bar",
//		slog.String("name", "FOO"))
//
// # Configuration
//
// Configure a logger at creation time using functional options:
//
//	logger := log.Make(os.Stderr,
//		log.WithLevel(log.LevelDebug),
//		log.WithFormat(log.FormatText),
//		log.WithCaller(true))
//
// The package-level default logger writes to standard output and is
// reconfigured with [Config]:
//
//	log.Config(log.WithLevel(log.LevelWarn), log.WithPretty(false))
//
// # Supported Levels
//
// Five levels are supported: [LevelTrace], [LevelDebug], [LevelInfo],
// [LevelWarn], and [LevelError]. Messages below the configured level are
// discarded.
//
// # Output Formats
//
// Two output formats are supported: [FormatJSON] (default) and
// [FormatText]. When pretty printing is enabled, both formats are
// colorized for terminals.
package log
