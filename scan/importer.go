package scan

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/ardnew/vetvar/log"
)

// Importer scans config files for validated variable assignments.
//
// The zero value is usable: it matches with [DefaultSeparator] and sends
// warnings to the process-wide default logger. Construct variants with
// [Make] and functional options. Importers hold no per-call state, so a
// single Importer is safe for concurrent use; each operation opens,
// drains, and releases its own file.
type Importer struct {
	reporter Reporter
	check    *Check
	sep      string
	logger   log.Logger
}

// Result is the outcome of a single-variable import.
// Value is meaningful only when Found is true.
type Result struct {
	Value string
	Found bool
}

// Option applies a configuration option to an Importer.
type Option func(Importer) Importer

// Make creates an Importer with the provided options applied over the
// defaults.
func Make(opts ...Option) Importer {
	var imp Importer

	for _, opt := range opts {
		imp = opt(imp)
	}

	return imp
}

// WithSeparator returns an option that sets the literal separator required
// between name and value. An empty separator selects [DefaultSeparator].
func WithSeparator(sep string) Option {
	return func(i Importer) Importer {
		i.sep = sep

		return i
	}
}

// WithReporter returns an option that sets the warning sink.
// A nil reporter restores the default (the process-wide logger).
func WithReporter(r Reporter) Option {
	return func(i Importer) Importer {
		i.reporter = r

		return i
	}
}

// WithLogger returns an option that sets the logger used for scan traces.
// The zero logger discards them.
func WithLogger(l log.Logger) Option {
	return func(i Importer) Importer {
		i.logger = l

		return i
	}
}

// WithCheck returns an option that sets a post-match value check.
// Candidate values rejected by the check are treated as non-matches.
func WithCheck(c *Check) Option {
	return func(i Importer) Importer {
		i.check = c

		return i
	}
}

// Separator returns the effective separator for this importer.
func (i Importer) Separator() string {
	if i.sep == "" {
		return DefaultSeparator
	}

	return i.sep
}

// warn resolves the effective reporter and forwards the warning.
func (i Importer) warn(msg string, attrs ...slog.Attr) {
	r := i.reporter
	if r == nil {
		r = defaultReporter{}
	}

	r.Warn(msg, attrs...)
}

// One scans the file at path for assignments of name whose value matches
// pattern, returning the last captured value. Each line that redefines an
// already-captured value emits one redefinition warning citing the value
// being discarded; later definitions always win.
//
// An unreadable file emits a "could not open" warning and yields
// Result{Found: false} with a nil error, indistinguishable at the result
// level from the variable being absent. A non-nil error is returned only
// for invalid input (empty name, invalid pattern).
func (i Importer) One(path, name, pattern string) (Result, error) {
	matcher, err := VariableSpec{
		Name:      name,
		Separator: i.Separator(),
		Pattern:   pattern,
	}.Compile()
	if err != nil {
		return Result{}, err
	}

	lines, err := readLines(path)
	if err != nil {
		i.warnUnreadable(path, err)

		return Result{}, nil
	}

	var res Result

	for _, line := range lines {
		value, ok := i.capture(matcher, path, line)
		if !ok {
			continue
		}

		if res.Found {
			i.warnRedefinition(path, name, res.Value)
		}

		res = Result{Value: value, Found: true}
	}

	return res, nil
}

// Many scans the file at path once, testing every requested name against
// every line independently with the same pattern. The returned mapping
// contains exactly the names that matched at least once, each holding its
// last captured value; names never matched are omitted, silently.
//
// A readable file with zero matches yields an empty, non-nil mapping and
// a nil error. An unreadable file emits a "could not open" warning and
// yields a nil mapping with [ErrUnreadable], keeping the two outcomes
// distinguishable.
func (i Importer) Many(
	path string,
	names []string,
	pattern string,
) (map[string]string, error) {
	matchers, err := i.compileAll(names, pattern)
	if err != nil {
		return nil, err
	}

	lines, err := readLines(path)
	if err != nil {
		i.warnUnreadable(path, err)

		return nil, ErrUnreadable.Wrap(err).
			With(slog.String("file", path))
	}

	found := make(map[string]string, len(matchers))

	for _, line := range lines {
		// Every spec is tested against every line: one line may define
		// values for multiple names, and each capture is independent.
		for _, matcher := range matchers {
			value, ok := i.capture(matcher, path, line)
			if !ok {
				continue
			}

			name := matcher.Spec().Name
			if prev, defined := found[name]; defined {
				i.warnRedefinition(path, name, prev)
			}

			found[name] = value
		}
	}

	return found, nil
}

// Require scans like [Importer.Many] but demands completeness: every
// requested name must have been found. Each missing name emits one
// "failed to import" warning, and any missing name fails the whole
// operation with [ErrIncomplete] and a nil mapping. Callers never receive
// a partial mapping from this operation.
func (i Importer) Require(
	path string,
	names []string,
	pattern string,
) (map[string]string, error) {
	found, err := i.Many(path, names, pattern)
	if err != nil {
		return nil, err
	}

	var missing []string

	for _, name := range dedupe(names) {
		if _, ok := found[name]; !ok {
			i.warn(
				fmt.Sprintf("failed to import %s from %s", name, path),
				slog.String("name", name),
				slog.String("file", path),
			)

			missing = append(missing, name)
		}
	}

	if len(missing) > 0 {
		return nil, ErrIncomplete.With(
			slog.String("file", path),
			slog.Any("missing", missing),
		)
	}

	return found, nil
}

// capture applies the matcher to one line and vets the candidate value
// against the configured check, if any.
func (i Importer) capture(
	matcher *Matcher,
	path, line string,
) (string, bool) {
	value, ok := matcher.Match(line)
	if !ok {
		return "", false
	}

	name := matcher.Spec().Name

	if i.check != nil {
		accept, err := i.check.Accept(name, path, value)
		if err != nil {
			i.logger.Debug("value check failed",
				slog.Any("error", err),
			)

			return "", false
		}

		if !accept {
			i.logger.Trace("value rejected by check",
				slog.String("name", name),
				slog.String("value", value),
			)

			return "", false
		}
	}

	i.logger.Trace("captured value",
		slog.String("name", name),
		slog.String("value", value),
		slog.String("file", path),
	)

	return value, true
}

// compileAll compiles one matcher per distinct requested name, preserving
// the order in which names first appear. Duplicate names are tolerated but
// redundant.
func (i Importer) compileAll(
	names []string,
	pattern string,
) ([]*Matcher, error) {
	distinct := dedupe(names)
	if len(distinct) == 0 {
		return nil, ErrEmptyNames
	}

	matchers := make([]*Matcher, 0, len(distinct))

	for _, name := range distinct {
		matcher, err := VariableSpec{
			Name:      name,
			Separator: i.Separator(),
			Pattern:   pattern,
		}.Compile()
		if err != nil {
			return nil, err
		}

		matchers = append(matchers, matcher)
	}

	return matchers, nil
}

func (i Importer) warnUnreadable(path string, err error) {
	i.warn(
		fmt.Sprintf("could not open %s for reading", path),
		slog.String("file", path),
		slog.Any("error", err),
	)
}

func (i Importer) warnRedefinition(path, name, prev string) {
	i.warn(
		fmt.Sprintf("redefinition of %s, overriding %s", name, prev),
		slog.String("name", name),
		slog.String("overridden", prev),
		slog.String("file", path),
	)
}

// readLines reads the whole file into memory and splits it into lines.
// The file handle is released before scanning begins, so a call never
// holds the file open while matching.
func readLines(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	lines := strings.Split(string(data), "\n")
	for n, line := range lines {
		lines[n] = strings.TrimSuffix(line, "\r")
	}

	return lines, nil
}

// dedupe returns the distinct names in first-appearance order.
func dedupe(names []string) []string {
	seen := make(map[string]struct{}, len(names))
	distinct := make([]string, 0, len(names))

	for _, name := range names {
		if _, ok := seen[name]; ok {
			continue
		}

		seen[name] = struct{}{}
		distinct = append(distinct, name)
	}

	return distinct
}
