package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"regexp"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/lipgloss"
	"github.com/sahilm/fuzzy"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ardnew/vetvar/pkg"
)

// Pick interactively selects one variable discovered in the file and
// prints its vetted assignment.
type Pick struct {
	source `embed:""`
}

// Run executes the pick command.
func (p *Pick) Run(ctx context.Context) error {
	imp, err := p.importer()
	if err != nil {
		return err
	}

	names, err := assignmentNames(p.File, imp.Separator())
	if err != nil {
		return err
	}

	if len(names) == 0 {
		return ErrNoVariables.With(slog.String("file", p.File))
	}

	// The picker renders on stderr so stdout carries only the result.
	prog := tea.NewProgram(
		newPickModel(names),
		tea.WithContext(ctx),
		tea.WithOutput(os.Stderr),
	)

	final, err := prog.Run()
	if err != nil {
		return err
	}

	m, ok := final.(pickModel)
	if !ok || m.aborted || m.choice == "" {
		return ErrPickAborted.With(slog.String("file", p.File))
	}

	res, err := imp.One(p.File, m.choice, p.Pattern)
	if err != nil {
		return err
	}

	if !res.Found {
		// Discovered by name shape, but its value failed the pattern or
		// check.
		return ErrNotFound.With(
			slog.String("name", m.choice),
			slog.String("file", p.File),
		)
	}

	_, err = fmt.Fprintf(
		stdout(ctx), "%s%s%s\n", m.choice, imp.Separator(), res.Value,
	)

	return err
}

// assignmentNames returns the distinct names appearing on assignment-shaped
// lines of the file, in first-appearance order. Discovery is intentionally
// looser than import: any identifier-shaped name directly followed by the
// separator qualifies, so the picker can offer names whose values would
// still be rejected.
func assignmentNames(path, sep string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, pkg.ErrReadInput.Wrap(err)
	}

	rex := regexp.MustCompile(`^(\w[\w.-]*)` + regexp.QuoteMeta(sep))

	var names []string

	seen := make(map[string]struct{})

	for _, line := range strings.Split(string(data), "\n") {
		sub := rex.FindStringSubmatch(strings.TrimSuffix(line, "\r"))
		if sub == nil {
			continue
		}

		if _, ok := seen[sub[1]]; ok {
			continue
		}

		seen[sub[1]] = struct{}{}
		names = append(names, sub[1])
	}

	return names, nil
}

const (
	pickPrompt  = "➜ "
	maxVisible  = 10
	promptWidth = 64
)

// Styles.
var (
	pickPromptStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("6")).
			Bold(true)
	pickHintStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	pickMatchStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("4")).Bold(true)
	pickItemStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("7"))
	pickSelectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("4"))
)

// pickModel is the Bubble Tea model for the variable picker.
type pickModel struct {
	input   textinput.Model
	names   []string
	matches fuzzy.Matches
	cursor  int
	choice  string
	aborted bool
}

func newPickModel(names []string) pickModel {
	ti := textinput.New()
	ti.Prompt = pickPromptStyle.Render(pickPrompt)
	ti.Placeholder = "type to filter"
	ti.Focus()
	ti.Width = promptWidth

	m := pickModel{input: ti, names: names}
	m.refilter()

	return m
}

// refilter recomputes the fuzzy matches for the current query. An empty
// query lists every discovered name unfiltered.
func (m *pickModel) refilter() {
	query := m.input.Value()
	if query == "" {
		m.matches = make(fuzzy.Matches, len(m.names))
		for i, name := range m.names {
			m.matches[i] = fuzzy.Match{Str: name, Index: i}
		}
	} else {
		m.matches = fuzzy.Find(query, m.names)
	}

	if m.cursor >= len(m.matches) {
		m.cursor = max(len(m.matches)-1, 0)
	}
}

func (m pickModel) Init() tea.Cmd { return textinput.Blink }

func (m pickModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)

		return m, cmd
	}

	switch key.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		m.aborted = true

		return m, tea.Quit

	case tea.KeyEnter:
		if len(m.matches) > 0 {
			m.choice = m.matches[m.cursor].Str
		}

		return m, tea.Quit

	case tea.KeyUp, tea.KeyCtrlP:
		if m.cursor > 0 {
			m.cursor--
		}

		return m, nil

	case tea.KeyDown, tea.KeyCtrlN:
		if m.cursor < len(m.matches)-1 {
			m.cursor++
		}

		return m, nil

	default:
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		m.refilter()

		return m, cmd
	}
}

func (m pickModel) View() string {
	if m.choice != "" || m.aborted {
		return ""
	}

	var b strings.Builder

	b.WriteString(m.input.View())
	b.WriteString("\n")

	if len(m.matches) == 0 {
		b.WriteString(pickHintStyle.Render("  (no matches)"))
		b.WriteString("\n")

		return b.String()
	}

	for i, match := range m.matches {
		if i >= maxVisible {
			b.WriteString(pickHintStyle.Render(
				fmt.Sprintf("  ... %d more", len(m.matches)-maxVisible),
			))
			b.WriteString("\n")

			break
		}

		b.WriteString("  ")
		b.WriteString(renderPick(match, i == m.cursor))
		b.WriteString("\n")
	}

	return b.String()
}

// renderPick renders one candidate with its matched characters highlighted.
func renderPick(match fuzzy.Match, selected bool) string {
	baseStyle := pickItemStyle
	highlightStyle := pickMatchStyle

	if selected {
		baseStyle = pickSelectedStyle
		highlightStyle = pickSelectedStyle.Bold(true)
	}

	matchSet := make(map[int]bool, len(match.MatchedIndexes))
	for _, idx := range match.MatchedIndexes {
		matchSet[idx] = true
	}

	var b strings.Builder

	for i, r := range match.Str {
		ch := string(r)
		if matchSet[i] {
			b.WriteString(highlightStyle.Render(ch))
		} else {
			b.WriteString(baseStyle.Render(ch))
		}
	}

	return b.String()
}
