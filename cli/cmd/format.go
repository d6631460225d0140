package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"maps"
	"slices"

	"github.com/goccy/go-yaml"

	"github.com/ardnew/vetvar/pkg"
)

const yamlIndent = 2

// emit writes the imported variables to w in the selected format. Text
// output reuses the separator the variables were matched with, one
// assignment per line, sorted by name so output is stable for scripts.
func emit(
	ctx context.Context,
	w io.Writer,
	format, sep string,
	vars map[string]string,
) error {
	switch format {
	case "json":
		data, err := json.MarshalIndent(vars, "", "  ")
		if err != nil {
			return ErrJSONMarshal.Wrap(err)
		}

		_, err = fmt.Fprintln(w, string(data))

		return err

	case "yaml":
		data, err := yaml.MarshalContext(ctx, vars, yaml.Indent(yamlIndent))
		if err != nil {
			return ErrYAMLMarshal.Wrap(err)
		}

		_, err = fmt.Fprint(w, string(data))

		return err

	case "text":
		for _, name := range slices.Sorted(maps.Keys(vars)) {
			_, err := fmt.Fprintf(w, "%s%s%s\n", name, sep, vars[name])
			if err != nil {
				return err
			}
		}

		return nil

	default:
		// Unreachable via the CLI, whose format flag is an enum.
		return pkg.ErrInvalidFormat.
			Wrapf("%q (valid: text, json, yaml)", format)
	}
}
