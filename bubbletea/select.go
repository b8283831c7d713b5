// Package bubbletea implements the interactive terminal layer: the search
// match selector and the full-screen tabbed feature viewer. Both are plain
// Elm-style state machines (immutable inputs, one transition per input
// event) and are testable without a terminal by driving Update directly.
package bubbletea

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/fwojciec/caniuse"
	"github.com/mattn/go-isatty"
	"github.com/mattn/go-runewidth"
	"github.com/muesli/reflow/truncate"
)

// Default terminal geometry assumed before the first WindowSizeMsg arrives.
const (
	defaultWidth  = 80
	defaultHeight = 24
)

// selectKeyMap defines the selector's key bindings.
type selectKeyMap struct {
	Up      key.Binding
	Down    key.Binding
	Confirm key.Binding
	Cancel  key.Binding
}

func newSelectKeyMap() selectKeyMap {
	return selectKeyMap{
		Up:      key.NewBinding(key.WithKeys("up", "k")),
		Down:    key.NewBinding(key.WithKeys("down", "j")),
		Confirm: key.NewBinding(key.WithKeys("enter")),
		Cancel:  key.NewBinding(key.WithKeys("q", "esc", "ctrl+c")),
	}
}

// SelectModel is the list-selector state machine: a cursor over an immutable
// ordered list of matches, with a viewport that scrolls only when the cursor
// would leave the visible window.
type SelectModel struct {
	items  []caniuse.Match
	keys   selectKeyMap
	cursor int
	offset int
	width  int
	height int

	chosen    bool
	cancelled bool
}

// NewSelectModel creates a selector over the given matches.
func NewSelectModel(items []caniuse.Match) SelectModel {
	return SelectModel{
		items:  items,
		keys:   newSelectKeyMap(),
		width:  defaultWidth,
		height: defaultHeight,
	}
}

// Init implements tea.Model.
func (m SelectModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model: at most one transition per input event.
func (m SelectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.scrollIntoView()
		return m, nil
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
			m.scrollIntoView()
		case key.Matches(msg, m.keys.Down):
			if m.cursor < len(m.items)-1 {
				m.cursor++
			}
			m.scrollIntoView()
		case key.Matches(msg, m.keys.Confirm):
			m.chosen = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Cancel):
			m.cancelled = true
			return m, tea.Quit
		}
	}
	return m, nil
}

// scrollIntoView adjusts the viewport offset only when the cursor would
// leave the visible window.
func (m *SelectModel) scrollIntoView() {
	visible := m.visibleRows()
	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if m.cursor >= m.offset+visible {
		m.offset = m.cursor - visible + 1
	}
	if m.offset < 0 {
		m.offset = 0
	}
}

// visibleRows is the number of list rows that fit under the title and above
// the hint line.
func (m SelectModel) visibleRows() int {
	rows := m.height - 3
	if rows < 1 {
		rows = 1
	}
	return rows
}

// Choice returns the chosen match, if any.
func (m SelectModel) Choice() (caniuse.Match, bool) {
	if !m.chosen || m.cursor >= len(m.items) {
		return caniuse.Match{}, false
	}
	return m.items[m.cursor], true
}

// Cancelled reports whether the user cancelled the selection.
func (m SelectModel) Cancelled() bool {
	return m.cancelled
}

// Cursor returns the highlighted index.
func (m SelectModel) Cursor() int {
	return m.cursor
}

// Offset returns the viewport offset.
func (m SelectModel) Offset() int {
	return m.offset
}

var (
	selectTitleStyle = lipgloss.NewStyle().Bold(true)
	selectedRowStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	slugStyle        = lipgloss.NewStyle().Faint(true)
	hintStyle        = lipgloss.NewStyle().Faint(true)
)

// View implements tea.Model. Each row shows the title, ellipsized so that
// the full slug always stays visible, followed by the slug itself.
func (m SelectModel) View() string {
	var b strings.Builder
	b.WriteString(selectTitleStyle.Render("Select a feature"))
	b.WriteString("\n")

	end := m.offset + m.visibleRows()
	if end > len(m.items) {
		end = len(m.items)
	}
	for i := m.offset; i < end; i++ {
		item := m.items[i]
		prefix := "  "
		if i == m.cursor {
			prefix = "> "
		}
		slug := "/" + item.Slug
		titleWidth := m.width - len(prefix) - runewidth.StringWidth(slug) - 2
		if titleWidth < 1 {
			titleWidth = 1
		}
		title := truncate.StringWithTail(item.Title, uint(titleWidth), "…")
		row := fmt.Sprintf("%s%s %s", prefix, title, slugStyle.Render(slug))
		if i == m.cursor {
			row = selectedRowStyle.Render(fmt.Sprintf("%s%s", prefix, title)) + " " + slugStyle.Render(slug)
		}
		b.WriteString(row)
		b.WriteString("\n")
	}

	b.WriteString(hintStyle.Render("↑/↓ move · enter select · q cancel"))
	return b.String()
}

// Select runs the interactive selector and returns the chosen slug. On a
// non-interactive terminal the first match is returned without prompting.
// User cancellation yields an ECANCELLED error.
func Select(matches []caniuse.Match) (string, error) {
	if len(matches) == 0 {
		return "", caniuse.Errorf(caniuse.ENOTFOUND, "no matches to select from")
	}
	if !interactive() {
		return matches[0].Slug, nil
	}

	p := tea.NewProgram(NewSelectModel(matches), tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return "", caniuse.Errorf(caniuse.EINTERNAL, "selector failed: %v", err)
	}

	m, ok := final.(SelectModel)
	if !ok {
		return "", caniuse.Errorf(caniuse.EINTERNAL, "unexpected selector model type")
	}
	if choice, ok := m.Choice(); ok {
		return choice.Slug, nil
	}
	return "", caniuse.Errorf(caniuse.ECANCELLED, "selection cancelled")
}

func interactive() bool {
	return isatty.IsTerminal(os.Stdin.Fd()) && isatty.IsTerminal(os.Stdout.Fd())
}
