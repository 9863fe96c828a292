package tui

import (
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-snooker/internal/snooker"
	"github.com/vovakirdan/tui-snooker/internal/storage"
)

// keyMsg builds a key message from its string form.
func keyMsg(k string) tea.KeyMsg {
	switch k {
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "shift+tab":
		return tea.KeyMsg{Type: tea.KeyShiftTab}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "backspace":
		return tea.KeyMsg{Type: tea.KeyBackspace}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
	}
}

func press(t *testing.T, m ScoreModel, keys ...string) ScoreModel {
	t.Helper()
	for _, k := range keys {
		next, _ := m.Update(keyMsg(k))
		var ok bool
		m, ok = next.(ScoreModel)
		require.True(t, ok, "Update returned %T", next)
	}
	return m
}

func newTestModel(store *storage.Store) ScoreModel {
	return NewScoreModel(store, Options{
		Names:  [2]string{"Alice", "Bob"},
		Width:  80,
		Height: 24,
	})
}

func openTestStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "frames.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestNewScoreModelDefaults(t *testing.T) {
	m := NewScoreModel(nil, Options{Width: 80, Height: 24})

	assert.Equal(t, [2]string{"Player 1", "Player 2"}, m.Names())
	assert.Equal(t, snooker.Player1, m.Selected())
	assert.Equal(t, snooker.NewState(), m.State())
	assert.False(t, m.EditingNames())
	assert.False(t, m.keys.Undo.Enabled())
	assert.False(t, m.keys.Board.Enabled(), "board needs a store")
	assert.Nil(t, m.Init())
}

func TestPotScoresForSelectedPlayer(t *testing.T) {
	m := press(t, newTestModel(nil), "1", "7")

	s := m.State()
	assert.Equal(t, 8, s.Score(snooker.Player1))
	assert.Equal(t, 0, s.Score(snooker.Player2))
	assert.Equal(t, 14, s.RedsLeft)
	assert.Equal(t, 14*8+27, s.Remaining)
	assert.Equal(t, 8, s.Lead)
	assert.Equal(t, "Alice potted black (+7)", m.Status())
}

func TestSwitchPlayer(t *testing.T) {
	m := newTestModel(nil)

	m = press(t, m, "tab")
	assert.Equal(t, snooker.Player2, m.Selected())

	m = press(t, m, "5")
	assert.Equal(t, 5, m.State().Score(snooker.Player2))

	m = press(t, m, "shift+tab")
	assert.Equal(t, snooker.Player1, m.Selected())

	m = press(t, m, "l")
	assert.Equal(t, snooker.Player2, m.Selected())
	m = press(t, m, "h")
	assert.Equal(t, snooker.Player1, m.Selected())
}

func TestFoulMode(t *testing.T) {
	m := press(t, newTestModel(nil), "tab", "f")
	assert.Equal(t, modeFoul, m.mode)
	assert.Contains(t, m.View(), "Foul by Bob")

	// Digits outside 4-7 are not penalties
	m = press(t, m, "2")
	assert.Equal(t, modeFoul, m.mode)
	assert.Equal(t, snooker.NewState().Frame, m.State().Frame)

	m = press(t, m, "7")
	assert.Equal(t, modeScoring, m.mode)
	assert.Equal(t, 7, m.State().Score(snooker.Player1))
	assert.Equal(t, 0, m.State().Score(snooker.Player2))
	assert.Equal(t, 15, m.State().RedsLeft)
	assert.Equal(t, "Foul by Bob: +7 to Alice", m.Status())
}

func TestFoulModeCancel(t *testing.T) {
	for _, k := range []string{"esc", "f"} {
		t.Run(k, func(t *testing.T) {
			m := press(t, newTestModel(nil), "f", k)
			assert.Equal(t, modeScoring, m.mode)
			assert.False(t, m.State().CanUndo())

			m = press(t, m, "4")
			assert.Equal(t, 4, m.State().Score(snooker.Player1), "4 is a pot again")
		})
	}
}

func TestUndo(t *testing.T) {
	m := newTestModel(nil)

	m = press(t, m, "u")
	assert.Equal(t, "Nothing to undo", m.Status())
	assert.Equal(t, snooker.NewState(), m.State())

	m = press(t, m, "1")
	assert.True(t, m.keys.Undo.Enabled())

	m = press(t, m, "backspace")
	assert.Equal(t, snooker.NewState(), m.State())
	assert.False(t, m.keys.Undo.Enabled())
	assert.Equal(t, "Undone", m.Status())
}

func TestResetIsUndoable(t *testing.T) {
	m := press(t, newTestModel(nil), "1", "6", "x")

	assert.Equal(t, snooker.NewFrame(), m.State().Frame)
	assert.Equal(t, "Frame reset", m.Status())

	m = press(t, m, "u")
	assert.Equal(t, 7, m.State().Score(snooker.Player1))
}

func TestSaveWithoutStore(t *testing.T) {
	m := press(t, newTestModel(nil), "1", "s")
	assert.Equal(t, "No database: frame not saved", m.Status())
}

func TestSaveOncePerState(t *testing.T) {
	store := openTestStore(t)
	m := newTestModel(store)

	m = press(t, m, "1", "5", "tab", "1", "s")
	assert.Equal(t, "Frame saved (6-1)", m.Status())

	m = press(t, m, "s")
	assert.Equal(t, "Frame already saved", m.Status())

	frames, err := store.RecentFrames(10)
	require.NoError(t, err)
	require.Len(t, frames, 1)
	assert.Equal(t, "Alice", frames[0].Player1)
	assert.Equal(t, "Bob", frames[0].Player2)
	assert.Equal(t, 6, frames[0].Score1)
	assert.Equal(t, 1, frames[0].Score2)

	// A new action makes the frame savable again
	m = press(t, m, "2", "s")
	assert.Equal(t, "Frame saved (6-3)", m.Status())

	frames, err = store.RecentFrames(10)
	require.NoError(t, err)
	assert.Len(t, frames, 2)
}

func TestNameEntry(t *testing.T) {
	m := NewScoreModel(nil, Options{AskNames: true, Width: 80, Height: 24})
	require.True(t, m.EditingNames())
	assert.NotNil(t, m.Init())

	// Keys go to the text field, not the engine
	m = press(t, m, "A", "l", "i", "c", "e", "1")
	assert.Equal(t, snooker.NewState(), m.State())

	m = press(t, m, "enter", "B", "o", "b", "enter")
	assert.False(t, m.EditingNames())
	assert.Equal(t, [2]string{"Alice1", "Bob"}, m.Names())
}

func TestNameEntryBlankKeepsName(t *testing.T) {
	m := press(t, newTestModel(nil), "n")
	require.True(t, m.EditingNames())

	m = press(t, m, "tab", "C", "a", "r", "l", "enter")
	assert.False(t, m.EditingNames())
	assert.Equal(t, [2]string{"Alice", "Carl"}, m.Names())
}

func TestNameEntryCancel(t *testing.T) {
	m := press(t, newTestModel(nil), "n", "Z", "e", "d", "esc")
	assert.False(t, m.EditingNames())
	assert.Equal(t, [2]string{"Alice", "Bob"}, m.Names())
}

func TestQuit(t *testing.T) {
	m := newTestModel(nil)
	next, cmd := m.Update(keyMsg("q"))
	m = next.(ScoreModel)

	assert.True(t, m.IsQuitting())
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
	assert.Empty(t, m.View())
}

func TestStatusExpires(t *testing.T) {
	m := press(t, newTestModel(nil), "1")
	require.NotEmpty(t, m.Status())

	// A stale timer leaves a newer status alone
	next, _ := m.Update(statusExpiredMsg{id: m.statusID - 1})
	m = next.(ScoreModel)
	assert.NotEmpty(t, m.Status())

	next, _ = m.Update(statusExpiredMsg{id: m.statusID})
	m = next.(ScoreModel)
	assert.Empty(t, m.Status())
}

func TestViewShowsFrame(t *testing.T) {
	m := press(t, newTestModel(nil), "1", "7")
	view := m.View()

	assert.Contains(t, view, "Alice")
	assert.Contains(t, view, "Bob")
	assert.Contains(t, view, "Remaining: 139")
	assert.Contains(t, view, "Alice leads by 8")
	assert.Contains(t, view, "Reds left: 14")
}

func TestBoardRequest(t *testing.T) {
	m := press(t, newTestModel(nil), "b")
	assert.False(t, m.WantsBoard(), "board disabled without a store")

	m = press(t, newTestModel(openTestStore(t)), "b")
	assert.True(t, m.WantsBoard())
	assert.False(t, m.boardClosed().WantsBoard())
}
