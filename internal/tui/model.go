package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"calcpad/internal/domain"
	"calcpad/internal/services/keypad"
)

// Model is the terminal keypad: a display line over a grid of buttons.
type Model struct {
	keypad   domain.KeypadService
	buffer   domain.Buffer
	grid     [][]domain.Button
	row, col int
	keys     keyMap
	help     help.Model
	quitting bool
}

// New returns a keypad model with an empty display and focus on "7".
func New(kp domain.KeypadService) Model {
	return Model{
		keypad: kp,
		grid:   keypad.Layout(),
		row:    1,
		keys:   defaultKeyMap(),
		help:   help.New(),
	}
}

// Buffer returns the current display contents.
func (m Model) Buffer() domain.Buffer { return m.buffer }

// Focused returns the button under the cursor.
func (m Model) Focused() domain.Button { return m.grid[m.row][m.col] }

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Up):
		m.move(-1, 0)
	case key.Matches(msg, m.keys.Down):
		m.move(1, 0)
	case key.Matches(msg, m.keys.Left):
		m.move(0, -1)
	case key.Matches(msg, m.keys.Right):
		m.move(0, 1)
	case key.Matches(msg, m.keys.Press):
		m.buffer, _ = m.keypad.Dispatch(m.buffer, domain.ButtonInput(m.Focused()))
	default:
		if k := keyboardKey(msg); k != "" {
			m.buffer, _ = m.keypad.Dispatch(m.buffer, domain.KeyInput(k))
		}
	}
	return m, nil
}

// move shifts focus, clamping to the grid; rows may differ in length.
func (m *Model) move(dr, dc int) {
	m.row = clamp(m.row+dr, 0, len(m.grid)-1)
	m.col = clamp(m.col+dc, 0, len(m.grid[m.row])-1)
}

func clamp(v, lo, hi int) int {
	return max(lo, min(v, hi))
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	display := m.buffer.String()
	if display == "" {
		display = "0"
	}
	style := displayStyle
	if m.buffer.IsError() {
		style = displayErrorStyle
	}

	rows := make([]string, 0, len(m.grid)+2)
	rows = append(rows, style.Render(display))
	for r, line := range m.grid {
		cells := make([]string, 0, len(line))
		for c, b := range line {
			cells = append(cells, m.renderButton(b, r == m.row && c == m.col, len(line)))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	rows = append(rows, helpStyle.Render(m.help.View(m.keys)))
	return lipgloss.JoinVertical(lipgloss.Left, rows...) + "\n"
}

func (m Model) renderButton(b domain.Button, focused bool, perRow int) string {
	style := buttonStyle
	switch {
	case focused:
		style = focusedStyle
	case b.Action != domain.ButtonDigit && b.Action != domain.ButtonDecimal:
		style = operatorStyle
	}
	if perRow < columns {
		// widen so short rows span the grid
		span := columns / perRow
		style = style.Width(cellWidth*span + span - 1)
	}
	return style.Render(strings.TrimSpace(b.Text))
}

// Run starts the keypad on the terminal and blocks until the user quits.
func Run(kp domain.KeypadService, opts ...tea.ProgramOption) (domain.Buffer, error) {
	final, err := tea.NewProgram(New(kp), opts...).Run()
	if err != nil {
		return "", err
	}
	if m, ok := final.(Model); ok {
		return m.Buffer(), nil
	}
	return "", nil
}
