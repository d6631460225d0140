package cmd

import (
	"context"
)

// Values imports whichever of the requested variables can be found and
// prints them. Names that never match are omitted from the output without
// failing the command.
type Values struct {
	Names []string `arg:"" help:"Variable names to import." name:"names"`

	Format string `default:"text" enum:"text,json,yaml" help:"Output format." short:"o"`

	source `embed:""`
}

// Run executes the values command.
func (v *Values) Run(ctx context.Context) error {
	imp, err := v.importer()
	if err != nil {
		return err
	}

	vars, err := imp.Many(v.File, v.Names, v.Pattern)
	if err != nil {
		return err
	}

	return emit(ctx, stdout(ctx), v.Format, imp.Separator(), vars)
}
