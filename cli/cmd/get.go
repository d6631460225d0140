package cmd

import (
	"context"
	"fmt"
	"log/slog"
)

// Get imports a single variable and prints its vetted value.
type Get struct {
	Name string `arg:"" help:"Variable name to import." name:"name"`

	Quiet bool `help:"Suppress output; report presence via exit status." short:"q"`

	source `embed:""`
}

// Run executes the get command.
func (g *Get) Run(ctx context.Context) error {
	imp, err := g.importer()
	if err != nil {
		return err
	}

	res, err := imp.One(g.File, g.Name, g.Pattern)
	if err != nil {
		return err
	}

	if !res.Found {
		return ErrNotFound.With(
			slog.String("name", g.Name),
			slog.String("file", g.File),
		)
	}

	if g.Quiet {
		return nil
	}

	_, err = fmt.Fprintln(stdout(ctx), res.Value)

	return err
}
