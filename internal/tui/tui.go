// Package tui implements the calculator as a terminal user interface.
package tui

import (
	"context"
	"fmt"
	"strings"
	"unicode"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"

	"github.com/zephyrtronium/calculator"
)

// buttons is the layout of the button grid.
var buttons = [][]calculator.Key{
	{calculator.KeyClear, calculator.KeyBackspace, calculator.KeySign, calculator.KeyDiv},
	{'7', '8', '9', calculator.KeyMul},
	{'4', '5', '6', calculator.KeySub},
	{'1', '2', '3', calculator.KeyAdd},
	{'0', calculator.KeyDot, calculator.KeyPercent, calculator.KeyEquals},
}

const panelWidth = 31

var (
	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")).
			Padding(0, 1).
			Width(panelWidth).
			Align(lipgloss.Right)
	exprStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	displayStyle = lipgloss.NewStyle().Bold(true)
	errorStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("196"))
	historyStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

	buttonStyle   = lipgloss.NewStyle().Width(7).Align(lipgloss.Center).Padding(0, 0, 1, 0)
	digitStyle    = buttonStyle.Foreground(lipgloss.Color("252"))
	operatorStyle = buttonStyle.Bold(true).Foreground(lipgloss.Color("205"))
	controlStyle  = buttonStyle.Foreground(lipgloss.Color("111"))
	focusStyle    = lipgloss.NewStyle().Reverse(true)
)

// Options configures a Model.
type Options struct {
	// HistoryRows is the number of history entries shown under the display.
	HistoryRows int
	// Logger receives a record of each evaluation.
	Logger zerolog.Logger
}

// Model is the bubbletea model of the calculator.
type Model struct {
	state    calculator.State
	row, col int
	rows     int
	keys     keyMap
	help     help.Model
	log      zerolog.Logger
	quitting bool
}

// New creates a calculator model with an empty expression.
func New(opts Options) Model {
	return Model{
		state: calculator.NewState(),
		row:   len(buttons) - 1,
		col:   len(buttons[0]) - 1,
		rows:  max(0, min(opts.HistoryRows, calculator.HistorySize)),
		keys:  defaultKeyMap(),
		help:  help.New(),
		log:   opts.Logger,
	}
}

// State returns the calculator's state.
func (m Model) State() calculator.State {
	return m.state
}

// Focused returns the key on the focused button.
func (m Model) Focused() calculator.Key {
	return buttons[m.row][m.col]
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
		case key.Matches(msg, m.keys.Up):
			m.row = max(m.row-1, 0)
		case key.Matches(msg, m.keys.Down):
			m.row = min(m.row+1, len(buttons)-1)
		case key.Matches(msg, m.keys.Left):
			m.col = max(m.col-1, 0)
		case key.Matches(msg, m.keys.Right):
			m.col = min(m.col+1, len(buttons[m.row])-1)
		case key.Matches(msg, m.keys.Press):
			m = m.press(m.Focused())
		case key.Matches(msg, m.keys.Equals):
			m = m.press(calculator.KeyEquals)
		case key.Matches(msg, m.keys.Clear):
			m = m.press(calculator.KeyClear)
		case key.Matches(msg, m.keys.Backspace):
			m = m.press(calculator.KeyBackspace)
		case msg.Type == tea.KeyRunes:
			for _, r := range msg.Runes {
				k, err := calculator.ParseKey(string(r))
				if err != nil {
					continue
				}
				m = m.press(k)
			}
		}
	}
	return m, nil
}

// press applies a key and moves the focus to its button.
func (m Model) press(k calculator.Key) Model {
	prev := m.state
	m.state = m.state.Apply(k)
	for i, row := range buttons {
		for j, b := range row {
			if b == k {
				m.row, m.col = i, j
			}
		}
	}
	if k != calculator.KeyEquals {
		return m
	}
	// Evaluation is skipped only when the expression has no digits.
	switch {
	case m.state.IsError():
		m.log.Debug().
			Str("expression", m.state.Expr).
			Stringer("kind", calculator.KindOf(m.state.Err)).
			Err(m.state.Err).
			Msg("evaluation failed")
	case strings.ContainsFunc(prev.Expr, unicode.IsDigit):
		m.log.Debug().
			Str("expression", m.state.History[0].Expr).
			Str("result", m.state.History[0].Result).
			Msg("evaluated")
	}
	return m
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}
	var b strings.Builder
	b.WriteString(m.panel())
	b.WriteByte('\n')
	b.WriteString(m.grid())
	b.WriteByte('\n')
	b.WriteString(m.help.View(m.keys))
	b.WriteByte('\n')
	return b.String()
}

// panel renders the expression, the display, and recent history.
func (m Model) panel() string {
	expr := m.state.Expr
	if strings.TrimSpace(expr) == "" {
		expr = " "
	}
	lines := []string{exprStyle.Render(expr)}
	if m.state.IsError() {
		lines = append(lines, errorStyle.Render(m.state.Display))
	} else {
		lines = append(lines, displayStyle.Render(m.state.Display))
	}
	for i, e := range m.state.History {
		if i >= m.rows {
			break
		}
		if i == 0 {
			lines = append(lines, "")
		}
		lines = append(lines, historyStyle.Render(e.String()))
	}
	return panelStyle.Render(lipgloss.JoinVertical(lipgloss.Right, lines...))
}

// grid renders the buttons.
func (m Model) grid() string {
	rows := make([]string, len(buttons))
	for i, row := range buttons {
		cells := make([]string, len(row))
		for j, k := range row {
			label := fmt.Sprintf(" %s ", k)
			if i == m.row && j == m.col {
				label = focusStyle.Render(label)
			}
			cells[j] = styleFor(k).Render(label)
		}
		rows[i] = lipgloss.JoinHorizontal(lipgloss.Top, cells...)
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func styleFor(k calculator.Key) lipgloss.Style {
	switch {
	case k.IsOperator(), k == calculator.KeyEquals:
		return operatorStyle
	case k == calculator.KeyClear, k == calculator.KeyBackspace:
		return controlStyle
	default:
		return digitStyle
	}
}

// Run runs the calculator until the user quits or ctx is canceled, and
// returns the final state.
func Run(ctx context.Context, m Model, opts ...tea.ProgramOption) (calculator.State, error) {
	opts = append([]tea.ProgramOption{tea.WithContext(ctx)}, opts...)
	final, err := tea.NewProgram(m, opts...).Run()
	if err != nil {
		return m.state, fmt.Errorf("running calculator: %w", err)
	}
	return final.(Model).state, nil
}
