package scan

import (
	"errors"
	"testing"
)

func TestVariableSpec_Compile_ValidatesInputs(t *testing.T) {
	tests := []struct {
		name    string
		spec    VariableSpec
		wantErr error
	}{
		{
			name:    "empty name",
			spec:    VariableSpec{Name: "", Separator: "=", Pattern: `\w+`},
			wantErr: ErrEmptyName,
		},
		{
			name:    "empty separator",
			spec:    VariableSpec{Name: "FOO", Separator: "", Pattern: `\w+`},
			wantErr: ErrEmptySeparator,
		},
		{
			name:    "invalid pattern",
			spec:    VariableSpec{Name: "FOO", Separator: "=", Pattern: `(`},
			wantErr: ErrBadPattern,
		},
		{
			name:    "valid",
			spec:    VariableSpec{Name: "FOO", Separator: "=", Pattern: `\w+`},
			wantErr: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.spec.Compile()

			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("Compile() unexpected error: %v", err)
				}

				return
			}

			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Compile() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestMatcher_Match_LineShapes(t *testing.T) {
	matcher, err := VariableSpec{
		Name:      "FOO",
		Separator: "=",
		Pattern:   `\w+`,
	}.Compile()
	if err != nil {
		t.Fatalf("Compile() error: %v", err)
	}

	tests := []struct {
		name  string
		line  string
		value string
		ok    bool
	}{
		{"plain assignment", "FOO=bar", "bar", true},
		{"trailing spaces", "FOO=bar   ", "bar", true},
		{"trailing tab", "FOO=bar\t", "bar", true},
		{"inline comment", "FOO=bar # comment", "bar", true},
		{"comment without space", "FOO=bar# comment", "bar", true},
		{"comment only after tabs", "FOO=bar\t\t#x", "bar", true},
		{"empty line", "", "", false},
		{"comment line", "# FOO=bar", "", false},
		{"wrong name", "FOOD=bar", "", false},
		{"name is suffix", "XFOO=bar", "", false},
		{"spaces around separator", "FOO = bar", "", false},
		{"space before separator", "FOO =bar", "", false},
		{"trailing garbage", "FOO=bar baz", "", false},
		{"garbage after comment marker position", "FOO=bar x # c", "", false},
		{"value fails pattern", "FOO=!!!", "", false},
		{"missing value", "FOO=", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			value, ok := matcher.Match(tt.line)

			if ok != tt.ok {
				t.Fatalf("Match(%q) ok = %v, want %v", tt.line, ok, tt.ok)
			}

			if value != tt.value {
				t.Errorf("Match(%q) value = %q, want %q", tt.line, value, tt.value)
			}
		})
	}
}

func TestMatcher_Match_NameIsLiteral(t *testing.T) {
	// Metacharacters in the name must not widen the match.
	matcher, err := VariableSpec{
		Name:      "FOO.BAR",
		Separator: "=",
		Pattern:   `\w+`,
	}.Compile()
	if err != nil {
		t.Fatalf("Compile() error: %v", err)
	}

	if _, ok := matcher.Match("FOOXBAR=1"); ok {
		t.Error("dot in name matched as wildcard; names must be literal")
	}

	if value, ok := matcher.Match("FOO.BAR=1"); !ok || value != "1" {
		t.Errorf("literal name failed to match: value=%q ok=%v", value, ok)
	}
}

func TestMatcher_Match_SeparatorIsLiteral(t *testing.T) {
	matcher, err := VariableSpec{
		Name:      "FOO",
		Separator: "+=",
		Pattern:   `\w+`,
	}.Compile()
	if err != nil {
		t.Fatalf("Compile() error: %v", err)
	}

	if value, ok := matcher.Match("FOO+=bar"); !ok || value != "bar" {
		t.Errorf("literal separator failed to match: value=%q ok=%v", value, ok)
	}

	// "+" must not act as repetition on the preceding character.
	if _, ok := matcher.Match("FOOO=bar"); ok {
		t.Error("separator metacharacter widened the match")
	}
}

func TestMatcher_Match_PatternGroupsDoNotShiftCapture(t *testing.T) {
	// A caller pattern containing its own groups still captures the whole
	// value, not one of the inner groups.
	matcher, err := VariableSpec{
		Name:      "MODE",
		Separator: "=",
		Pattern:   `(on|off)(-\d+)?`,
	}.Compile()
	if err != nil {
		t.Fatalf("Compile() error: %v", err)
	}

	value, ok := matcher.Match("MODE=on-42")
	if !ok || value != "on-42" {
		t.Errorf("Match() value = %q ok = %v, want %q true", value, ok, "on-42")
	}
}
