package controller

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "cleanup.dev/pkg/cleanup/internal/model"
)

func pickerFixture(n int) []m.Checkpoint {
	ids := []string{"checkpoint-3-cccccc", "checkpoint-2-bbbbbb", "checkpoint-1-aaaaaa", "checkpoint-0-zzzzzz"}

	out := make([]m.Checkpoint, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, m.Checkpoint{ID: ids[i], FilesCount: i + 1})
	}

	return out
}

func press(t *testing.T, pm checkpointPickerModel, msg tea.KeyMsg) (checkpointPickerModel, tea.Cmd) {
	t.Helper()

	next, cmd := pm.Update(msg)

	out, ok := next.(checkpointPickerModel)
	require.True(t, ok)

	return out, cmd
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestCheckpointPicker_Navigation(t *testing.T) {
	pm := newCheckpointPickerModel(pickerFixture(3))

	pm, _ = press(t, pm, tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, 1, pm.cursor)

	pm, _ = press(t, pm, runes("j"))
	pm, _ = press(t, pm, runes("j"))
	assert.Equal(t, 2, pm.cursor, "cursor stops at the last entry")

	pm, _ = press(t, pm, runes("k"))
	assert.Equal(t, 1, pm.cursor)

	pm, _ = press(t, pm, runes("g"))
	assert.Equal(t, 0, pm.cursor)

	pm, _ = press(t, pm, tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, 0, pm.cursor)

	pm, _ = press(t, pm, runes("G"))
	assert.Equal(t, 2, pm.cursor)
}

func TestCheckpointPicker_Choose(t *testing.T) {
	pm := newCheckpointPickerModel(pickerFixture(3))

	pm, _ = press(t, pm, tea.KeyMsg{Type: tea.KeyDown})
	pm, cmd := press(t, pm, tea.KeyMsg{Type: tea.KeyEnter})

	require.NotNil(t, cmd)
	assert.Equal(t, "checkpoint-2-bbbbbb", pm.chosen)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestCheckpointPicker_Quit(t *testing.T) {
	for _, msg := range []tea.KeyMsg{runes("q"), {Type: tea.KeyEsc}, {Type: tea.KeyCtrlC}} {
		pm := newCheckpointPickerModel(pickerFixture(2))

		pm, cmd := press(t, pm, msg)

		require.NotNil(t, cmd)
		assert.True(t, pm.quitting)
		assert.Empty(t, pm.chosen)
		assert.Empty(t, pm.View())
	}
}

func TestCheckpointPicker_ScrollsWithCursor(t *testing.T) {
	pm := newCheckpointPickerModel(pickerFixture(4))

	next, _ := pm.Update(tea.WindowSizeMsg{Width: 80, Height: 6})
	pm = next.(checkpointPickerModel)
	assert.Equal(t, 2, pm.itemsPerPage())

	pm, _ = press(t, pm, runes("G"))
	assert.Equal(t, 3, pm.cursor)
	assert.Equal(t, 2, pm.offset)

	view := pm.View()
	assert.Contains(t, view, "checkpoint-0-zzzzzz")
	assert.NotContains(t, view, "checkpoint-3-cccccc")

	pm, _ = press(t, pm, runes("g"))
	assert.Equal(t, 0, pm.offset)
}

func TestCheckpointPicker_View(t *testing.T) {
	pm := newCheckpointPickerModel(pickerFixture(2))

	view := pm.View()

	assert.Contains(t, view, "Select a checkpoint to restore")
	assert.Contains(t, view, "checkpoint-3-cccccc")
	assert.Contains(t, view, "checkpoint-2-bbbbbb")
	assert.Contains(t, view, "enter: restore")
}

func TestTUI_SelectCheckpointEmpty(t *testing.T) {
	ui := &TUI{SimpleUI: &SimpleUI{}}

	_, err := ui.SelectCheckpoint(context.Background(), nil)

	assert.ErrorIs(t, err, ErrNoSelection)
}
