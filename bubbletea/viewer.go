package bubbletea

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/fwojciec/caniuse"
	"github.com/muesli/reflow/wordwrap"
)

// Minimum usable terminal geometry: below this the viewer renders only an
// advisory message and waits for a resize.
const (
	minViewerWidth  = 40
	minViewerHeight = 10
)

// chromeRows is the number of non-content rows in the viewer layout:
// title, meta line, tab bar, separator, and the footer hint.
const chromeRows = 5

// viewerKeyMap defines the viewer's key bindings.
type viewerKeyMap struct {
	PrevTab    key.Binding
	NextTab    key.Binding
	JumpTab    key.Binding
	ScrollUp   key.Binding
	ScrollDown key.Binding
	PageUp     key.Binding
	PageDown   key.Binding
	Home       key.Binding
	End        key.Binding
	Quit       key.Binding
}

func newViewerKeyMap() viewerKeyMap {
	return viewerKeyMap{
		PrevTab:    key.NewBinding(key.WithKeys("left", "[", "shift+tab")),
		NextTab:    key.NewBinding(key.WithKeys("right", "]", "tab")),
		JumpTab:    key.NewBinding(key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9")),
		ScrollUp:   key.NewBinding(key.WithKeys("up", "k")),
		ScrollDown: key.NewBinding(key.WithKeys("down", "j")),
		PageUp:     key.NewBinding(key.WithKeys("pgup")),
		PageDown:   key.NewBinding(key.WithKeys("pgdown")),
		Home:       key.NewBinding(key.WithKeys("home", "g")),
		End:        key.NewBinding(key.WithKeys("end", "G")),
		Quit:       key.NewBinding(key.WithKeys("q", "esc", "ctrl+c")),
	}
}

// viewerTab is one content pane with its lines wrapped to the current width.
type viewerTab struct {
	name    string
	content string
	lines   []string
}

// ViewerModel is the full-screen tabbed viewer state machine.
type ViewerModel struct {
	feature  *caniuse.Feature
	keys     viewerKeyMap
	tabs     []viewerTab
	active   int
	scroll   int
	width    int
	height   int
	tooSmall bool
	done     bool
}

// NewViewerModel creates a viewer over the feature's tab sections. Sections
// with no content were never added to the tab list, so every pane here has
// something to show. The Notes tab is active by default when present.
func NewViewerModel(f *caniuse.Feature) ViewerModel {
	m := ViewerModel{
		feature: f,
		keys:    newViewerKeyMap(),
		width:   defaultWidth,
		height:  defaultHeight,
	}
	for _, tab := range f.Tabs {
		m.tabs = append(m.tabs, viewerTab{name: tab.Name, content: tab.Content})
	}
	for i, tab := range f.Tabs {
		if tab.Kind == caniuse.TabNotes {
			m.active = i
			break
		}
	}
	m.rewrap()
	return m
}

// Init implements tea.Model.
func (m ViewerModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model. While the terminal is too small only resize
// and quit events do anything; tab and scroll state stay untouched so the
// view is restored intact once the terminal grows back.
func (m ViewerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.tooSmall = msg.Width < minViewerWidth || msg.Height < minViewerHeight
		if !m.tooSmall {
			m.rewrap()
			m.clampScroll()
		}
		return m, nil
	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			m.done = true
			return m, tea.Quit
		}
		if m.tooSmall {
			return m, nil
		}
		switch {
		case key.Matches(msg, m.keys.PrevTab):
			m.setTab(m.active - 1)
		case key.Matches(msg, m.keys.NextTab):
			m.setTab(m.active + 1)
		case key.Matches(msg, m.keys.JumpTab):
			idx := int(msg.String()[0] - '1')
			if idx >= 0 && idx < len(m.tabs) {
				m.setTab(idx)
			}
		case key.Matches(msg, m.keys.ScrollUp):
			m.scroll--
			m.clampScroll()
		case key.Matches(msg, m.keys.ScrollDown):
			m.scroll++
			m.clampScroll()
		case key.Matches(msg, m.keys.PageUp):
			m.scroll -= m.viewportHeight()
			m.clampScroll()
		case key.Matches(msg, m.keys.PageDown):
			m.scroll += m.viewportHeight()
			m.clampScroll()
		case key.Matches(msg, m.keys.Home):
			m.scroll = 0
		case key.Matches(msg, m.keys.End):
			m.scroll = m.maxScroll()
		}
	}
	return m, nil
}

// setTab clamps the index to the valid range and resets the scroll offset.
func (m *ViewerModel) setTab(idx int) {
	if idx < 0 {
		idx = 0
	}
	if idx > len(m.tabs)-1 {
		idx = len(m.tabs) - 1
	}
	if idx < 0 {
		idx = 0
	}
	m.active = idx
	m.scroll = 0
}

func (m *ViewerModel) rewrap() {
	wrapWidth := m.width - 2
	if wrapWidth < 20 {
		wrapWidth = 20
	}
	for i := range m.tabs {
		m.tabs[i].lines = strings.Split(wordwrap.String(m.tabs[i].content, wrapWidth), "\n")
	}
}

func (m *ViewerModel) clampScroll() {
	if m.scroll > m.maxScroll() {
		m.scroll = m.maxScroll()
	}
	if m.scroll < 0 {
		m.scroll = 0
	}
}

func (m ViewerModel) maxScroll() int {
	if len(m.tabs) == 0 {
		return 0
	}
	max := len(m.tabs[m.active].lines) - m.viewportHeight()
	if max < 0 {
		return 0
	}
	return max
}

func (m ViewerModel) viewportHeight() int {
	h := m.height - chromeRows
	if h < 1 {
		h = 1
	}
	return h
}

// ActiveTab returns the active tab index.
func (m ViewerModel) ActiveTab() int {
	return m.active
}

// Scroll returns the content scroll offset.
func (m ViewerModel) Scroll() int {
	return m.scroll
}

// TooSmall reports whether the terminal is below the minimum usable size.
func (m ViewerModel) TooSmall() bool {
	return m.tooSmall
}

// Done reports whether the user quit the viewer.
func (m ViewerModel) Done() bool {
	return m.done
}

var (
	viewerTitleStyle = lipgloss.NewStyle().Bold(true)
	metaStyle        = lipgloss.NewStyle().Faint(true)
	activeTabStyle   = lipgloss.NewStyle().Bold(true).Underline(true)
	inactiveTabStyle = lipgloss.NewStyle().Faint(true)
	advisoryStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11"))
)

// View implements tea.Model.
func (m ViewerModel) View() string {
	if m.tooSmall {
		return advisoryStyle.Render(
			fmt.Sprintf("Terminal too small: need at least %dx%d. Resize to continue, or press q to quit.",
				minViewerWidth, minViewerHeight))
	}

	var b strings.Builder
	b.WriteString(viewerTitleStyle.Render(m.feature.Title))
	b.WriteString("\n")
	b.WriteString(metaStyle.Render(m.metaLine()))
	b.WriteString("\n")
	b.WriteString(m.tabBar())
	b.WriteString("\n")
	b.WriteString(strings.Repeat("─", max(1, m.width-1)))
	b.WriteString("\n")

	if len(m.tabs) > 0 {
		lines := m.tabs[m.active].lines
		end := m.scroll + m.viewportHeight()
		if end > len(lines) {
			end = len(lines)
		}
		for i := m.scroll; i < end; i++ {
			b.WriteString(lines[i])
			b.WriteString("\n")
		}
		for i := end - m.scroll; i < m.viewportHeight(); i++ {
			b.WriteString("\n")
		}
	}

	b.WriteString(hintStyle.Render("←/→ tabs · ↑/↓ scroll · 1-9 jump · q quit"))
	return b.String()
}

func (m ViewerModel) metaLine() string {
	var parts []string
	parts = append(parts, "/"+m.feature.Slug)
	if m.feature.SpecStatus != nil {
		parts = append(parts, "["+*m.feature.SpecStatus+"]")
	}
	if m.feature.UsageTotal != nil {
		parts = append(parts, fmt.Sprintf("global usage %.2f%%", *m.feature.UsageTotal))
	}
	return strings.Join(parts, "  ")
}

func (m ViewerModel) tabBar() string {
	labels := make([]string, len(m.tabs))
	for i, tab := range m.tabs {
		label := fmt.Sprintf("%d:%s", i+1, tab.name)
		if i == m.active {
			labels[i] = activeTabStyle.Render(label)
		} else {
			labels[i] = inactiveTabStyle.Render(label)
		}
	}
	return strings.Join(labels, "  ")
}

// View runs the full-screen viewer. On a non-interactive terminal the tab
// contents are written to out sequentially instead.
func View(f *caniuse.Feature, out io.Writer) error {
	if !interactive() {
		for _, tab := range f.Tabs {
			fmt.Fprintf(out, "%s\n%s\n\n", tab.Name, tab.Content)
		}
		return nil
	}

	p := tea.NewProgram(NewViewerModel(f), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return caniuse.Errorf(caniuse.EINTERNAL, "viewer failed: %v", err)
	}
	return nil
}
