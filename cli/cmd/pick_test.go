package cmd

import (
	"slices"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestAssignmentNames(t *testing.T) {
	path := writeConfig(t, `# comment
HOST=example.test
PORT=8080
HOST=override.test
  INDENTED=skipped
no.sep.here
EMPTY=
`)

	names, err := assignmentNames(path, "=")
	if err != nil {
		t.Fatalf("assignmentNames() error: %v", err)
	}

	want := []string{"HOST", "PORT", "EMPTY"}
	if !slices.Equal(names, want) {
		t.Errorf("assignmentNames() = %v, want %v", names, want)
	}
}

func TestAssignmentNames_SeparatorIsLiteral(t *testing.T) {
	path := writeConfig(t, "A+=1\nB=2\n")

	names, err := assignmentNames(path, "+=")
	if err != nil {
		t.Fatalf("assignmentNames() error: %v", err)
	}

	if !slices.Equal(names, []string{"A"}) {
		t.Errorf("assignmentNames() = %v, want [A]", names)
	}
}

func TestPickModel_FilterAndSelect(t *testing.T) {
	m := newPickModel([]string{"HOST", "PORT", "PROXY"})

	if len(m.matches) != 3 {
		t.Fatalf("initial matches = %d, want 3", len(m.matches))
	}

	// Typing narrows the candidates.
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("p")})

	m, ok := next.(pickModel)
	if !ok {
		t.Fatal("Update() did not return a pickModel")
	}

	if len(m.matches) != 2 {
		t.Fatalf("filtered matches = %d, want 2", len(m.matches))
	}

	// Arrow down moves the cursor; enter accepts the selection.
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m = next.(pickModel)

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(pickModel)

	if m.choice != m.matches[1].Str {
		t.Errorf("choice = %q, want %q", m.choice, m.matches[1].Str)
	}
}

func TestPickModel_EscapeAborts(t *testing.T) {
	m := newPickModel([]string{"HOST"})

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyEsc})

	m = next.(pickModel)
	if !m.aborted {
		t.Error("aborted = false after escape")
	}
}
