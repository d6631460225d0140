package scan

import (
	"log/slog"
	"regexp"
)

// DefaultSeparator is the separator used when none is configured.
const DefaultSeparator = "="

// VariableSpec describes one variable to locate in a config file.
//
// Name and Separator are matched literally: any regular expression
// metacharacters they contain are escaped before the per-line rule is
// built, so a caller cannot widen the match by passing pattern syntax in
// either field. Pattern is the only regex-interpreted input, and it
// applies to the captured value substring alone.
type VariableSpec struct {
	// Name is the literal token expected at the start of a defining line.
	Name string
	// Separator is the literal string required between name and value.
	Separator string
	// Pattern is an RE2 expression the captured value must satisfy.
	Pattern string
}

// Matcher is the compiled per-line matching rule for one VariableSpec.
type Matcher struct {
	spec VariableSpec
	rule *regexp.Regexp
}

// Compile builds the anchored per-line rule for the spec:
//
//	^name<sep>(pattern)<whitespace>*(#<any>*)?$
//
// A line matches only when it is consumed entirely: literal name, literal
// separator, a value accepted by the pattern, then optional whitespace and
// an optional #-comment running to end of line.
func (s VariableSpec) Compile() (*Matcher, error) {
	if s.Name == "" {
		return nil, ErrEmptyName
	}

	if s.Separator == "" {
		return nil, ErrEmptySeparator
	}

	rule, err := regexp.Compile(
		`^` + regexp.QuoteMeta(s.Name) + regexp.QuoteMeta(s.Separator) +
			`(` + s.Pattern + `)` + `[ \t]*(?:#.*)?$`,
	)
	if err != nil {
		return nil, ErrBadPattern.Wrap(err).
			With(
				slog.String("name", s.Name),
				slog.String("pattern", s.Pattern),
			)
	}

	return &Matcher{spec: s, rule: rule}, nil
}

// Spec returns the VariableSpec the matcher was compiled from.
func (m *Matcher) Spec() VariableSpec { return m.spec }

// Match tests one line of text against the rule and returns the captured
// value on success. Lines with unconsumed trailing text do not match, even
// when the name<sep>value prefix is well formed.
func (m *Matcher) Match(line string) (value string, ok bool) {
	sub := m.rule.FindStringSubmatch(line)
	if sub == nil {
		return "", false
	}

	return sub[1], true
}
