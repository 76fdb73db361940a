// Package tui is the interactive lookup-path browser: entries on the
// left, the selected entry's methods columnized on the right, with
// visibility toggles that re-run the query live.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/wonderchook/looksee/pkg/layout"
	"github.com/wonderchook/looksee/pkg/looksee"
	"github.com/wonderchook/looksee/pkg/style"
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39"))
	selectedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("214"))
	listStyle     = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	detailStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	statusStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
)

// Model is the bubbletea model for the browser.
type Model struct {
	inspector *looksee.Inspector
	subject   any
	title     string
	opts      looksee.Options
	styles    style.Table
	caser     cases.Caser

	path     *looksee.Path
	selected int
	viewport viewport.Model

	width       int
	height      int
	listWidth   int
	detailWidth int
	ready       bool
	err         error
}

// New builds a browser over one subject. opts is the effective option
// set the toggles start from.
func New(ins *looksee.Inspector, subject any, title string, opts looksee.Options, styles style.Table) (Model, error) {
	path, err := ins.LookupPath(subject, opts)
	if err != nil {
		return Model{}, err
	}
	vp := viewport.New(0, 0)
	return Model{
		inspector: ins,
		subject:   subject,
		title:     title,
		opts:      opts.Clone(),
		styles:    styles,
		caser:     cases.Title(language.English),
		path:      path,
		viewport:  vp,
	}, nil
}

// Run launches the browser and blocks until the user quits.
func Run(ins *looksee.Inspector, subject any, title string, opts looksee.Options, styles style.Table) error {
	m, err := New(ins, subject, title, opts, styles)
	if err != nil {
		return err
	}
	_, err = tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}

func (m Model) Init() tea.Cmd { return nil }

// Update handles keys and resizes. Visibility toggles rebuild the path
// through the inspector so the entry list always reflects the query
// the report would show.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.selected > 0 {
				m.selected--
				m.refreshViewport()
			}
		case "down", "j":
			if m.selected < len(m.path.Entries())-1 {
				m.selected++
				m.refreshViewport()
			}
		case "p":
			m.toggle(looksee.Public)
		case "t":
			m.toggle(looksee.Protected)
		case "v":
			m.toggle(looksee.Private)
		case "o":
			m.toggle(looksee.Overridden)
		default:
			var cmd tea.Cmd
			m.viewport, cmd = m.viewport.Update(msg)
			return m, cmd
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.listWidth = m.calculateListWidth()
		if m.listWidth > m.width/2 {
			m.listWidth = m.width / 2
		}
		m.detailWidth = m.width - m.listWidth - 6
		m.viewport.Width = m.detailWidth
		m.viewport.Height = m.height - 7
		m.ready = true
		m.refreshViewport()
	}
	return m, nil
}

// toggle flips one visibility and re-queries.
func (m *Model) toggle(v looksee.Visibility) {
	m.opts[string(v)] = !m.opts[string(v)]
	path, err := m.inspector.LookupPath(m.subject, m.opts)
	if err != nil {
		m.err = err
		return
	}
	m.path = path
	if m.selected >= len(path.Entries()) {
		m.selected = len(path.Entries()) - 1
	}
	m.refreshViewport()
}

func (m *Model) calculateListWidth() int {
	widest := 12
	for _, entry := range m.path.Entries() {
		if w := layout.DisplayWidth(entry.Label()) + 6; w > widest {
			widest = w
		}
	}
	return widest
}

// refreshViewport re-columnizes the selected entry at the detail width.
func (m *Model) refreshViewport() {
	entries := m.path.Entries()
	if m.selected < 0 || m.selected >= len(entries) {
		m.viewport.SetContent("")
		return
	}
	entry := entries[m.selected]
	labels := make([]string, 0, len(entry.Methods()))
	for _, method := range entry.Methods() {
		labels = append(labels, m.styles.Format(style.Category(method.Tag), method.Name))
	}
	content := layout.Columnize(labels, m.detailWidth-4)
	if content == "" {
		content = "  (no methods under the current filter)"
	}
	m.viewport.SetContent(content)
}

func (m Model) View() string {
	if !m.ready {
		return "Loading lookup path..."
	}
	if m.err != nil {
		return fmt.Sprintf("error: %v\n\npress q to quit", m.err)
	}

	title := titleStyle.Render("looksee " + m.title)

	entries := m.path.Entries()
	var list strings.Builder
	for i, entry := range entries {
		if i == m.selected {
			list.WriteString(selectedStyle.Render("▶ " + entry.Label()))
		} else {
			list.WriteString("  " + entry.Label())
		}
		list.WriteString("\n")
	}
	contentHeight := m.height - 6
	if contentHeight < 3 {
		contentHeight = 3
	}
	listPanel := listStyle.Width(m.listWidth).Height(contentHeight).Render(list.String())

	header := selectedStyle.Render(entries[m.selected].Label())
	detailPanel := detailStyle.Width(m.detailWidth).Height(contentHeight).
		Render(header + "\n\n" + m.viewport.View())

	panels := lipgloss.JoinHorizontal(lipgloss.Top, listPanel, detailPanel)

	help := statusStyle.Render("↑/↓ navigate • " + m.toggleLegend() + " • q quit")
	return lipgloss.JoinVertical(lipgloss.Left, title, panels, help)
}

// toggleLegend summarizes the visibility toggles and their state.
func (m Model) toggleLegend() string {
	toggles := []struct {
		key string
		vis looksee.Visibility
	}{
		{"p", looksee.Public},
		{"t", looksee.Protected},
		{"v", looksee.Private},
		{"o", looksee.Overridden},
	}
	parts := make([]string, 0, len(toggles))
	for _, t := range toggles {
		state := "off"
		if m.opts[string(t.vis)] {
			state = "on"
		}
		parts = append(parts, fmt.Sprintf("%s %s:%s", t.key, m.caser.String(string(t.vis)), state))
	}
	return strings.Join(parts, " ")
}
