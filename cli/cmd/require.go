package cmd

import (
	"context"
)

// Require imports variables that must all be present. If any requested
// name cannot be imported, the command fails without printing a partial
// result.
type Require struct {
	Names []string `arg:"" help:"Variable names to import." name:"names"`

	Format string `default:"text" enum:"text,json,yaml" help:"Output format." short:"o"`

	source `embed:""`
}

// Run executes the require command.
func (r *Require) Run(ctx context.Context) error {
	imp, err := r.importer()
	if err != nil {
		return err
	}

	vars, err := imp.Require(r.File, r.Names, r.Pattern)
	if err != nil {
		return err
	}

	return emit(ctx, stdout(ctx), r.Format, imp.Separator(), vars)
}
