// Package cmd implements the vetvar subcommands.
//
// Each command wraps one operation of the scan package:
//
//   - get:     import a single variable and print its value
//   - values:  import whichever of the requested variables can be found
//   - require: import variables, failing unless every one is found
//   - export:  print shell export statements for required variables
//   - pick:    interactively select one variable discovered in the file
//
// Commands share the flags that shape a qualifying assignment line: the
// config file to scan, the literal name/value separator, the pattern a
// candidate value must match, and an optional boolean check expression.
//
// Variable values are printed on stdout; warnings and diagnostics go to
// the process logger on stderr, so command output stays machine-readable.
package cmd
