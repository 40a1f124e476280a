// Package resultview is the interactive viewer for tool results. It owns the
// single piece of transient UI state in the rendering path: which section tab
// is active. Everything else is re-derived from (data, schema) on each View.
package resultview

import (
	"strconv"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/sitescan/sitescan-cli/internal/toolview"
	"github.com/sitescan/sitescan-cli/internal/tui"
)

// KeyMap defines the viewer key bindings.
type KeyMap struct {
	NextTab key.Binding
	PrevTab key.Binding
	Jump    key.Binding
	Quit    key.Binding
}

// DefaultKeyMap returns the default bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		NextTab: key.NewBinding(
			key.WithKeys("tab", "right", "l"),
			key.WithHelp("tab", "next tab"),
		),
		PrevTab: key.NewBinding(
			key.WithKeys("shift+tab", "left", "h"),
			key.WithHelp("shift+tab", "prev tab"),
		),
		Jump: key.NewBinding(
			key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9"),
			key.WithHelp("1-9", "jump to tab"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// Model displays one tool result, with tab switching for multi-section
// schemas and viewport scrolling for long content.
type Model struct {
	styles *tui.Styles
	keys   KeyMap

	data      any
	rawSchema any
	schema    *toolview.Schema // normalized, nil when invalid/absent

	active   int
	viewport viewport.Model
	width    int
	height   int
	ready    bool
}

// New creates a viewer for the given payload and raw schema value.
func New(data any, rawSchema any, styles *tui.Styles) Model {
	m := Model{
		styles:    styles,
		keys:      DefaultKeyMap(),
		data:      data,
		rawSchema: rawSchema,
	}
	if schema, err := toolview.ParseSchema(rawSchema); err == nil {
		m.schema = toolview.Normalize(schema)
	}
	return m
}

// sectionCount returns the number of tabs, 0 when the view is untabbed.
func (m Model) sectionCount() int {
	if m.schema == nil || len(m.schema.Sections) < 2 {
		return 0
	}
	return len(m.schema.Sections)
}

// ActiveSectionID returns the id of the active tab, or empty when the
// section list is empty. The surrounding UI consumes this selection; it is
// never persisted.
func (m Model) ActiveSectionID() string {
	if m.schema == nil || len(m.schema.Sections) == 0 {
		return ""
	}
	return m.schema.Sections[m.active].ID
}

// Select activates the section with the given id. Unknown ids are ignored.
func (m *Model) Select(id string) {
	if m.schema == nil {
		return
	}
	for i, sec := range m.schema.Sections {
		if sec.ID == id {
			m.active = i
			return
		}
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if !m.ready {
			m.viewport = viewport.New(msg.Width, max(msg.Height-2, 1))
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = max(msg.Height-2, 1)
		}
		m.viewport.SetContent(m.content())
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit

		case key.Matches(msg, m.keys.NextTab):
			if n := m.sectionCount(); n > 0 {
				m.active = (m.active + 1) % n
				m.viewport.SetContent(m.content())
				m.viewport.GotoTop()
			}
			return m, nil

		case key.Matches(msg, m.keys.PrevTab):
			if n := m.sectionCount(); n > 0 {
				m.active = (m.active + n - 1) % n
				m.viewport.SetContent(m.content())
				m.viewport.GotoTop()
			}
			return m, nil

		case key.Matches(msg, m.keys.Jump):
			if idx, err := strconv.Atoi(msg.String()); err == nil {
				if n := m.sectionCount(); n > 0 && idx >= 1 && idx <= n {
					m.active = idx - 1
					m.viewport.SetContent(m.content())
					m.viewport.GotoTop()
				}
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// content renders the current result through the dispatcher with the active
// tab selected.
func (m Model) content() string {
	return toolview.Render(m.data, m.rawSchema, toolview.Options{
		Mode:          toolview.ModeStyled,
		Styles:        toolview.NewStyles(m.styles.Theme(), true),
		ActiveSection: m.ActiveSectionID(),
	})
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return ""
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		m.viewport.View(),
		m.statusBar(),
	)
}

func (m Model) statusBar() string {
	hints := []key.Binding{m.keys.Quit}
	if m.sectionCount() > 0 {
		hints = []key.Binding{m.keys.NextTab, m.keys.PrevTab, m.keys.Jump, m.keys.Quit}
	}

	var parts []string
	for _, h := range hints {
		help := h.Help()
		parts = append(parts,
			m.styles.StatusKey.Render(help.Key)+
				m.styles.StatusDesc.Render(" "+help.Desc))
	}
	bar := ""
	for i, p := range parts {
		if i > 0 {
			bar += m.styles.Muted.Render("  ")
		}
		bar += p
	}
	return m.styles.Panel.Render(bar)
}
