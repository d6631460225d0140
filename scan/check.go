package scan

import (
	"log/slog"
	"os"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

// Check is a compiled boolean expression applied to each candidate value
// after the pattern accepts it. The expression environment exposes:
//
//	name   string               the variable name being imported
//	file   string               the config file path being scanned
//	value  string               the captured candidate value
//	env    func(string) string  process environment lookup
//
// For example, to accept only values naming a registered TCP port:
//
//	int(value) > 0 && int(value) < 49152
//
// A value whose check evaluates to false (or fails to evaluate) is
// treated exactly like a pattern mismatch: the line is a non-match.
type Check struct {
	program *vm.Program
	source  string
}

// checkEnv builds the evaluation environment for one candidate value.
func checkEnv(name, file, value string) map[string]any {
	return map[string]any{
		"name":  name,
		"file":  file,
		"value": value,
		"env":   func(key string) string { return os.Getenv(key) },
	}
}

// CompileCheck compiles source into a Check using expr-lang.
// The expression must produce a boolean.
func CompileCheck(source string) (*Check, error) {
	program, err := expr.Compile(
		source,
		expr.Env(checkEnv("", "", "")),
		expr.AsBool(),
	)
	if err != nil {
		return nil, ErrBadCheck.Wrap(err).
			With(slog.String("check", source))
	}

	return &Check{program: program, source: source}, nil
}

// Source returns the original expression text.
func (c *Check) Source() string { return c.source }

// Accept evaluates the check against one candidate value.
// Evaluation errors reject the value and are returned for logging.
func (c *Check) Accept(name, file, value string) (bool, error) {
	out, err := expr.Run(c.program, checkEnv(name, file, value))
	if err != nil {
		return false, ErrBadCheck.Wrap(err).
			With(
				slog.String("check", c.source),
				slog.String("name", name),
				slog.String("value", value),
			)
	}

	ok, isBool := out.(bool)

	return isBool && ok, nil
}
