// Package tui is the interactive roadmap viewer: the table inside a scrollable viewport.
package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/TudorHulban/roadmap/internal/render"
	"github.com/TudorHulban/roadmap/internal/ui"
)

const (
	defaultWidth  = 100
	defaultHeight = 20

	// header and footer lines around the viewport
	chromeHeight = 2
)

var (
	styleTitle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#5f87ff"))

	styleHelp = lipgloss.NewStyle().
			Faint(true)
)

type Model struct {
	doc      *render.Document
	viewport viewport.Model

	table   string
	summary string

	showSummary bool
}

func New(doc *render.Document) Model {
	result := Model{
		doc:      doc,
		viewport: viewport.New(defaultWidth, defaultHeight),
		table:    render.Table(doc),
		summary:  ui.SummaryText(doc),
	}

	result.viewport.SetHorizontalStep(4)
	result.refresh()

	return result
}

func (m *Model) refresh() {
	if m.showSummary {
		m.viewport.SetContent(m.table + "\n\n" + m.summary)

		return
	}

	m.viewport.SetContent(m.table)
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.viewport.Width = msg.Width
		m.viewport.Height = max(msg.Height-chromeHeight, 1)

		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit

		case "s":
			m.showSummary = !m.showSummary
			m.refresh()

			return m, nil
		}
	}

	var cmd tea.Cmd

	m.viewport, cmd = m.viewport.Update(msg)

	return m, cmd
}

func (m Model) View() string {
	title := styleTitle.Render(
		fmt.Sprintf(
			"Roadmap, %d weeks, %d engineers",

			len(m.doc.Weeks),
			m.doc.TeamSize,
		),
	)

	help := styleHelp.Render("↑/↓ j/k scroll • ←/→ h/l pan • s summary • q quit")

	return title + "\n" + m.viewport.View() + "\n" + help
}

// Run blocks until the viewer is closed.
func Run(doc *render.Document) error {
	_, errRun := tea.NewProgram(
		New(doc),
		tea.WithAltScreen(),
	).Run()

	return errRun
}
