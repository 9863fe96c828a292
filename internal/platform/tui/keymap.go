package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-snooker/internal/snooker"
)

// ScoreKeyMap defines the key bindings for the scoring screen.
type ScoreKeyMap struct {
	Pot      key.Binding
	Foul     key.Binding
	Penalty  key.Binding
	Switch   key.Binding
	Player1  key.Binding
	Player2  key.Binding
	Undo     key.Binding
	Reset    key.Binding
	Save     key.Binding
	Names    key.Binding
	Board    key.Binding
	Cancel   key.Binding
	Help     key.Binding
	Quit     key.Binding
	fouling  bool
	hasBoard bool
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreKeyMap) ShortHelp() []key.Binding {
	if k.fouling {
		return []key.Binding{k.Penalty, k.Cancel}
	}
	return []key.Binding{k.Pot, k.Foul, k.Switch, k.Undo, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreKeyMap) FullHelp() [][]key.Binding {
	if k.fouling {
		return [][]key.Binding{{k.Penalty, k.Cancel}}
	}
	return [][]key.Binding{
		{k.Pot, k.Foul, k.Switch, k.Player1, k.Player2},
		{k.Undo, k.Reset, k.Save, k.Names, k.Board},
		{k.Help, k.Quit},
	}
}

// DefaultScoreKeyMap returns default key bindings.
func DefaultScoreKeyMap() ScoreKeyMap {
	return ScoreKeyMap{
		Pot: key.NewBinding(
			key.WithKeys("1", "2", "3", "4", "5", "6", "7"),
			key.WithHelp("1-7", "pot ball"),
		),
		Foul: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "foul"),
		),
		Penalty: key.NewBinding(
			key.WithKeys("4", "5", "6", "7"),
			key.WithHelp("4-7", "penalty"),
		),
		Switch: key.NewBinding(
			key.WithKeys("tab", "shift+tab"),
			key.WithHelp("tab", "switch player"),
		),
		Player1: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("left/h", "player 1"),
		),
		Player2: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("right/l", "player 2"),
		),
		Undo: key.NewBinding(
			key.WithKeys("u", "backspace"),
			key.WithHelp("u", "undo"),
			key.WithDisabled(),
		),
		Reset: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "reset frame"),
		),
		Save: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "save frame"),
		),
		Names: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "edit names"),
		),
		Board: key.NewBinding(
			key.WithKeys("b"),
			key.WithHelp("b", "saved frames"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc", "f"),
			key.WithHelp("esc", "cancel"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more keys"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// sync enables the bindings that make sense for the given state and mode.
func (k *ScoreKeyMap) sync(s snooker.State, fouling bool) {
	k.fouling = fouling
	k.Undo.SetEnabled(s.CanUndo())
	k.Board.SetEnabled(k.hasBoard)
}

// ballForKey returns the ball for a digit key.
func ballForKey(msg tea.KeyMsg) (snooker.Ball, bool) {
	s := msg.String()
	if len(s) != 1 || s[0] < '1' || s[0] > '7' {
		return 0, false
	}
	return snooker.Ball(s[0] - '0'), true
}

// NamesKeyMap defines the key bindings for the name entry screen.
type NamesKeyMap struct {
	Next    key.Binding
	Prev    key.Binding
	Confirm key.Binding
	Cancel  key.Binding
	Quit    key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k NamesKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Confirm, k.Cancel, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k NamesKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Next, k.Prev, k.Confirm, k.Cancel, k.Quit}}
}

// DefaultNamesKeyMap returns default key bindings.
func DefaultNamesKeyMap() NamesKeyMap {
	return NamesKeyMap{
		Next: key.NewBinding(
			key.WithKeys("tab", "down"),
			key.WithHelp("tab", "next field"),
		),
		Prev: key.NewBinding(
			key.WithKeys("shift+tab", "up"),
			key.WithHelp("S-tab", "prev field"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "confirm"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "keep names"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
	}
}
