package tui

import (
	"strings"
	"testing"
	"unicode/utf8"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-snooker/internal/snooker"
	"github.com/vovakirdan/tui-snooker/internal/storage"
)

func saveTestFrame(t *testing.T, store *storage.Store, names [2]string, actions ...snooker.Action) {
	t.Helper()
	s := snooker.Replay(actions...)
	_, err := store.SaveFrame(storage.NewFrameResult(s.Frame, names))
	require.NoError(t, err)
}

func pressBoard(t *testing.T, m BoardModel, keys ...string) BoardModel {
	t.Helper()
	for _, k := range keys {
		next, _ := m.Update(keyMsg(k))
		var ok bool
		m, ok = next.(BoardModel)
		require.True(t, ok, "Update returned %T", next)
	}
	return m
}

func TestBoardWithoutStore(t *testing.T) {
	m := NewBoardModel(nil, 80, 24, false)

	assert.Empty(t, m.Frames())
	assert.Contains(t, m.View(), "No frames database available.")
}

func TestBoardEmptyStore(t *testing.T) {
	m := NewBoardModel(openTestStore(t), 80, 24, false)

	assert.Empty(t, m.Frames())
	assert.Contains(t, m.View(), "No frames saved yet.")
}

func TestBoardPlayerFilter(t *testing.T) {
	store := openTestStore(t)
	saveTestFrame(t, store, [2]string{"Alice", "Bob"}, snooker.Pot{Player: snooker.Player1, Ball: snooker.Red})
	saveTestFrame(t, store, [2]string{"Carl", "Bob"}, snooker.Pot{Player: snooker.Player2, Ball: snooker.Red})
	saveTestFrame(t, store, [2]string{"Alice", "Dan"})

	m := NewBoardModel(store, 120, 30, false)
	assert.Len(t, m.Frames(), 3)
	assert.Equal(t, []string{allPlayers, "Alice", "Bob", "Carl", "Dan"}, m.players)

	m = pressBoard(t, m, "tab")
	assert.Len(t, m.Frames(), 2, "Alice")
	require.NotNil(t, m.stats)
	assert.Equal(t, 2, m.stats.FramesPlayed)
	assert.Equal(t, 1, m.stats.FramesWon)
	assert.Contains(t, m.View(), "Alice: 2 frames, 1 won")

	m = pressBoard(t, m, "tab")
	assert.Len(t, m.Frames(), 2, "Bob")

	m = pressBoard(t, m, "shift+tab", "shift+tab", "shift+tab")
	assert.Equal(t, "Dan", m.players[m.playerCursor])
	assert.Len(t, m.Frames(), 1)
}

func TestBoardDelete(t *testing.T) {
	store := openTestStore(t)
	saveTestFrame(t, store, [2]string{"Alice", "Bob"})
	saveTestFrame(t, store, [2]string{"Carl", "Dan"})

	m := NewBoardModel(store, 80, 24, false)
	require.Len(t, m.Frames(), 2)

	m = pressBoard(t, m, "d")
	assert.Len(t, m.Frames(), 1)
	assert.Len(t, m.players, 3)

	frames, err := store.RecentFrames(10)
	require.NoError(t, err)
	assert.Len(t, frames, 1)
}

func TestBoardBack(t *testing.T) {
	m := NewBoardModel(nil, 80, 24, false)
	next, cmd := m.Update(keyMsg("esc"))
	m = next.(BoardModel)
	assert.True(t, m.IsGoingBack())
	assert.False(t, m.IsQuitting())
	assert.Nil(t, cmd)

	standalone := NewBoardModel(nil, 80, 24, true)
	next, cmd = standalone.Update(keyMsg("b"))
	standalone = next.(BoardModel)
	assert.True(t, standalone.IsGoingBack())
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestBoardResize(t *testing.T) {
	m := NewBoardModel(nil, 60, 20, false)
	assert.False(t, m.showSidebar)

	next, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	m = next.(BoardModel)
	assert.True(t, m.showSidebar)
	assert.Contains(t, m.View(), "Players")
}

func TestBoardPlayerNamedLikeAllEntry(t *testing.T) {
	store := openTestStore(t)
	saveTestFrame(t, store, [2]string{"All players", "Bob"})
	saveTestFrame(t, store, [2]string{"Carl", "Dan"})

	m := NewBoardModel(store, 80, 24, false)
	assert.Len(t, m.Frames(), 2)
	require.Equal(t, []string{allPlayers, "All players", "Bob", "Carl", "Dan"}, m.players)

	m = pressBoard(t, m, "tab")
	assert.Equal(t, 1, m.playerCursor)
	require.Len(t, m.Frames(), 1)
	assert.Equal(t, "Bob", m.Frames()[0].Player2)

	// Deleting from the unfiltered list stays unfiltered
	m = pressBoard(t, m, "shift+tab")
	require.Equal(t, 0, m.playerCursor)
	m = pressBoard(t, m, "d")
	assert.Equal(t, 0, m.playerCursor)
	assert.Len(t, m.Frames(), 1)
}

func TestTruncateName(t *testing.T) {
	tests := []struct {
		name  string
		input string
		width int
		want  string
	}{
		{"short", "Alice", 14, "Alice"},
		{"exact", "Maximilianusss", 14, "Maximilianusss"},
		{"ascii", "Maximilian Schmidt", 14, "Maximilian Sc."},
		{"umlauts", "Jürgen Müller-Lüdenscheid", 14, "Jürgen Müller."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := truncateName(tt.input, tt.width)
			assert.Equal(t, tt.want, got)
			assert.True(t, utf8.ValidString(got))
		})
	}
}

func TestBoardSidebarKeepsUTF8(t *testing.T) {
	store := openTestStore(t)
	saveTestFrame(t, store, [2]string{"Jürgen Müller-Lüdenscheid", "Björn"})

	m := NewBoardModel(store, 120, 30, false)
	view := m.View()

	assert.True(t, utf8.ValidString(view))
	assert.True(t, strings.Contains(view, "Jürgen Müller."))
}
