// Package tui is the interactive terminal dashboard.
package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	"github.com/etnz/retrofit"
	"github.com/etnz/retrofit/renderer"
	"github.com/etnz/retrofit/view"
)

// headerHeight is the number of lines of the navigation header.
const headerHeight = 2

// stickyLines is the scroll offset, in lines, past which the header sticks.
const stickyLines = 2

var (
	navStyle    = lipgloss.NewStyle().Padding(0, 1)
	activeStyle = navStyle.Bold(true).Underline(true)
	ruleStyle   = lipgloss.NewStyle().Faint(true)
)

// Model is the bubbletea model of the dashboard.
type Model struct {
	dashboard *retrofit.Dashboard
	state     view.State

	width  int
	height int
	ready  bool
	dirty  bool

	viewport viewport.Model
}

// New returns a model showing every section of d.
func New(d *retrofit.Dashboard) Model {
	return Model{dashboard: d, dirty: true}
}

// State returns the current view state.
func (m Model) State() view.State { return m.state }

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.viewport = viewport.New(m.width, max(m.height-headerHeight, 1))
		m.ready = true
		m.dirty = true

	case tea.KeyMsg:
		handled := true
		switch {
		case key.Matches(msg, keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, keys.Next):
			m.state = m.state.CloseDrawer().Activate(step(m.state.Active, 1))
		case key.Matches(msg, keys.Prev):
			m.state = m.state.CloseDrawer().Activate(step(m.state.Active, -1))
		case key.Matches(msg, keys.All):
			m.state = m.state.CloseDrawer().Activate(view.All)
		case key.Matches(msg, keys.Drawer):
			if m.state.Active != view.All {
				m.state = m.state.OpenDrawer(m.state.Active)
			}
		case key.Matches(msg, keys.Close):
			m.state = m.state.CloseDrawer()
		default:
			handled = false
		}
		if handled {
			m.dirty = true
			if m.ready {
				m.rebuildContent()
				m.state = m.state.Scroll(float64(m.viewport.YOffset), stickyLines)
			}
			return m, nil
		}
	}

	if !m.ready {
		return m, nil
	}
	if m.dirty {
		m.rebuildContent()
	}
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	m.state = m.state.Scroll(float64(m.viewport.YOffset), stickyLines)
	return m, cmd
}

func (m Model) View() string {
	if !m.ready {
		return "\n  Loading..."
	}
	return m.header() + "\n" + m.viewport.View()
}

// step returns the section n positions after s, All included, wrapping
// around.
func step(s view.Section, n int) view.Section {
	count := len(view.Sections()) + 1
	return view.Section(((int(s)+n)%count + count) % count)
}

func (m Model) header() string {
	var nav []string
	for _, s := range append([]view.Section{view.All}, view.Sections()...) {
		style := navStyle
		if s == m.state.Active {
			style = activeStyle
		}
		nav = append(nav, style.Render(s.String()))
	}
	rule := ""
	if m.state.Scrolled {
		rule = ruleStyle.Render(strings.Repeat("─", max(m.width, 1)))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, nav...) + "\n" + rule
}

func (m *Model) rebuildContent() {
	m.dirty = false
	md, err := m.markdown()
	if err != nil {
		m.viewport.SetContent("Error: " + err.Error())
		return
	}
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(m.width))
	if err == nil {
		if out, rerr := r.Render(md); rerr == nil {
			md = out
		}
	}
	m.viewport.SetContent(md)
	m.viewport.GotoTop()
}

// markdown renders the visible sections, and the details of the open
// drawer.
func (m Model) markdown() (string, error) {
	return renderer.RenderDashboard(m.dashboard, m.state)
}
