package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fatih/color"
	"github.com/stretchr/testify/require"

	"github.com/TudorHulban/roadmap"
	"github.com/TudorHulban/roadmap/internal/render"
)

func newTestModel(t *testing.T) Model {
	t.Helper()

	color.NoColor = true

	grid, errSchedule := roadmap.Schedule(
		[]roadmap.WorkItem{
			{Name: "A", Priority: 1, Size: 3, MaxTracks: 1},
			{Name: "B", Priority: 2, Size: 2, MaxTracks: 2},
		},
		2,
	)
	require.NoError(t, errSchedule)

	doc, errCr := render.NewDocument(
		&render.ParamsNewDocument{
			Roadmap:  grid,
			TeamSize: 2,
		},
	)
	require.NoError(t, errCr)

	return New(doc)
}

func keyRunes(key string) tea.KeyMsg {
	return tea.KeyMsg{
		Type:  tea.KeyRunes,
		Runes: []rune(key),
	}
}

func TestQuitKeys(t *testing.T) {
	for ix, msg := range []tea.KeyMsg{
		keyRunes("q"),
		{Type: tea.KeyCtrlC},
		{Type: tea.KeyEsc},
	} {
		t.Run(
			msg.String(),
			func(t *testing.T) {
				_, cmd := newTestModel(t).Update(msg)
				require.NotNil(t, cmd, "key %d", ix)
				require.IsType(t, tea.QuitMsg{}, cmd())
			},
		)
	}
}

func TestToggleSummary(t *testing.T) {
	model := newTestModel(t)
	require.NotContains(t, model.View(), "engineer-weeks")

	updated, cmd := model.Update(keyRunes("s"))
	require.Nil(t, cmd)
	require.True(t, updated.(Model).showSummary)
	require.Contains(t, updated.(Model).View(), "engineer-weeks")

	updated, _ = updated.Update(keyRunes("s"))
	require.False(t, updated.(Model).showSummary)
}

func TestWindowResize(t *testing.T) {
	updated, _ := newTestModel(t).Update(
		tea.WindowSizeMsg{
			Width:  40,
			Height: 3,
		},
	)

	model := updated.(Model)
	require.Equal(t, 40, model.viewport.Width)
	require.Equal(t, 1, model.viewport.Height)

	updated, _ = model.Update(keyRunes("j"))
	require.Equal(t, 1, updated.(Model).viewport.YOffset)
}

func TestView(t *testing.T) {
	view := newTestModel(t).View()

	require.True(t, strings.HasPrefix(view, "Roadmap, 3 weeks, 2 engineers"))
	require.Contains(t, view, "Engineer 1")
	require.Contains(t, view, "q quit")
}
