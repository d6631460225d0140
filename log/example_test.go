package log_test

import (
	"log/slog"
	"os"

	"github.com/ardnew/vetvar/log"
)

func ExampleMake() {
	logger := log.Make(os.Stdout,
		log.WithTimeLayout(""),
		log.WithFormat(log.FormatText),
		log.WithPretty(false),
	)

	logger.Info("config imported", slog.String("file", "app.conf"))
	// Output: level=INFO msg="config imported" file=app.conf
}

func ExampleLogger_With() {
	logger := log.Make(os.Stdout,
		log.WithTimeLayout(""),
		log.WithFormat(log.FormatText),
		log.WithPretty(false),
	).With(slog.String("component", "scan"))

	logger.Warn("redefinition of FOO, overriding bar")
	// Output: level=WARN msg="redefinition of FOO, overriding bar" component=scan
}
