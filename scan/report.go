package scan

import (
	"log/slog"

	"github.com/ardnew/vetvar/log"
)

// Reporter receives the diagnostic warnings produced while scanning:
// unreadable files, redefinitions, and missing required variables.
//
// Warnings are observational only. They never alter the result of an
// import, except that the Require path returns an error after reporting
// missing names. Injecting the reporter keeps the importers free of
// global state and makes diagnostics testable.
type Reporter interface {
	Warn(msg string, attrs ...slog.Attr)
}

// LogReporter adapts a [log.Logger] as a Reporter.
type LogReporter struct {
	Logger log.Logger
}

// Warn forwards the warning to the wrapped logger.
func (r LogReporter) Warn(msg string, attrs ...slog.Attr) {
	r.Logger.Warn(msg, attrs...)
}

// defaultReporter forwards warnings to the process-wide default logger.
// The logger is resolved at call time so CLI flags parsed after importer
// construction still take effect.
type defaultReporter struct{}

func (defaultReporter) Warn(msg string, attrs ...slog.Attr) {
	log.Warn(msg, attrs...)
}

// Discard is a Reporter that drops all warnings.
//
//nolint:gochecknoglobals
var Discard Reporter = discard{}

type discard struct{}

func (discard) Warn(string, ...slog.Attr) {}

// Recorder is a Reporter that captures warnings in memory, primarily for
// tests and for callers that inspect diagnostics after an import.
type Recorder struct {
	Warnings []string
}

// Warn records the warning message, ignoring attributes.
func (r *Recorder) Warn(msg string, _ ...slog.Attr) {
	r.Warnings = append(r.Warnings, msg)
}
