package cmd

import (
	"github.com/ardnew/vetvar/log"
	"github.com/ardnew/vetvar/scan"
)

// source carries the flags shared by every import command: the config file
// to scan and the shape a qualifying assignment line must have.
type source struct {
	File    string `help:"Config file to scan."                                  required:"" short:"f" type:"existingfile"`
	Sep     string `default:"="    help:"Literal separator between name and value."                    name:"sep"`
	Pattern string `default:"\\S+" help:"Pattern a candidate value must match in full."                short:"m"`
	Check   string `help:"Boolean expression each candidate value must satisfy."                       short:"c"`
}

// importer builds the scanner configured by this invocation's flags.
func (s source) importer() (scan.Importer, error) {
	opts := []scan.Option{
		scan.WithSeparator(s.Sep),
		scan.WithLogger(log.Default()),
	}

	if s.Check != "" {
		check, err := scan.CompileCheck(s.Check)
		if err != nil {
			return scan.Importer{}, err
		}

		opts = append(opts, scan.WithCheck(check))
	}

	return scan.Make(opts...), nil
}
