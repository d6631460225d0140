package cmd

import (
	"context"
	"fmt"
	"maps"
	"os"
	"slices"
	"strings"

	"github.com/ardnew/mung"
)

// Export prints shell export statements for required variables. Every
// requested name must be found; a missing name fails the command before
// any output is written.
type Export struct {
	Names []string `arg:"" help:"Variable names to export." name:"names"`

	Prepend []string `help:"Treat NAME as a path list and prepend its imported value to the current process value." placeholder:"NAME"`

	source `embed:""`
}

// Run executes the export command.
func (e *Export) Run(ctx context.Context) error {
	imp, err := e.importer()
	if err != nil {
		return err
	}

	vars, err := imp.Require(e.File, e.Names, e.Pattern)
	if err != nil {
		return err
	}

	prepend := make(map[string]struct{}, len(e.Prepend))
	for _, name := range e.Prepend {
		prepend[name] = struct{}{}
	}

	w := stdout(ctx)

	for _, name := range slices.Sorted(maps.Keys(vars)) {
		value := vars[name]
		if _, ok := prepend[name]; ok {
			value = prependList(name, value)
		}

		_, err := fmt.Fprintf(w, "export %s=%s\n", name, shellQuote(value))
		if err != nil {
			return err
		}
	}

	return nil
}

// prependList merges value onto the current process value of name as a
// path list, dropping elements that would repeat.
func prependList(name, value string) string {
	return mung.Make(
		mung.WithSubjectItems(os.Getenv(name)),
		mung.WithDelim(string(os.PathListSeparator)),
		mung.WithPrefixItems(value),
	).String()
}

// shellQuote wraps value in single quotes, escaping embedded quotes, so
// the output is safe to eval in POSIX shells.
func shellQuote(value string) string {
	return "'" + strings.ReplaceAll(value, "'", `'\''`) + "'"
}
