package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/vovakirdan/tui-snooker/internal/storage"
)

// Board layout constants
const (
	minWidthForSidebar = 90  // Minimum width to show player list sidebar
	sidebarWidth       = 20  // Width of player list sidebar
	maxFrames          = 100 // Max frames to load
	allPlayers         = "All players" // Label of the unfiltered entry at index 0
)

// BoardKeyMap defines the key bindings for the saved frames board.
type BoardKeyMap struct {
	Up         key.Binding
	Down       key.Binding
	NextPlayer key.Binding
	PrevPlayer key.Binding
	Delete     key.Binding
	Back       key.Binding
	Quit       key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k BoardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextPlayer, k.PrevPlayer, k.Delete, k.Back, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k BoardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.NextPlayer, k.PrevPlayer},
		{k.Delete, k.Back, k.Quit},
	}
}

// DefaultBoardKeyMap returns default key bindings.
func DefaultBoardKeyMap() BoardKeyMap {
	return BoardKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		NextPlayer: key.NewBinding(
			key.WithKeys("tab", "right", "l"),
			key.WithHelp("tab", "next player"),
		),
		PrevPlayer: key.NewBinding(
			key.WithKeys("shift+tab", "left", "h"),
			key.WithHelp("S-tab", "prev player"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d", "delete"),
			key.WithHelp("d", "delete frame"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// BoardModel is the Bubble Tea model for browsing saved frames.
type BoardModel struct {
	players      []string // Filter entries, allPlayers first
	playerCursor int
	store        *storage.Store
	frames       []storage.FrameResult
	stats        *storage.PlayerStats
	err          error
	table        table.Model
	help         help.Model
	keys         BoardKeyMap
	width        int
	height       int
	standalone   bool // Quit the program on back instead of returning to the scoreboard
	quitting     bool
	goingBack    bool
	showSidebar  bool
}

// NewBoardModel creates a new saved frames board.
func NewBoardModel(store *storage.Store, width, height int, standalone bool) BoardModel {
	h := help.New()
	h.ShowAll = false
	h.Width = width

	m := BoardModel{
		store:       store,
		keys:        DefaultBoardKeyMap(),
		help:        h,
		width:       width,
		height:      height,
		standalone:  standalone,
		showSidebar: width >= minWidthForSidebar,
	}

	m.loadPlayers()
	m.table = m.createTable()
	m.loadFrames()

	return m
}

// createTable creates a new table with appropriate columns.
func (m *BoardModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "Date", Width: 12},
		{Title: "Player 1", Width: 14},
		{Title: "Score", Width: 9},
		{Title: "Player 2", Width: 14},
		{Title: "Left", Width: 5},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(3, m.height-10)), // Leave room for header, stats, help
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// loadPlayers loads the player filter list.
func (m *BoardModel) loadPlayers() {
	m.players = []string{allPlayers}
	if m.store == nil {
		return
	}
	names, err := m.store.Players()
	if err != nil {
		m.err = err
		return
	}
	m.players = append(m.players, names...)
	if m.playerCursor >= len(m.players) {
		m.playerCursor = 0
	}
}

// loadFrames loads frames for the selected player filter.
func (m *BoardModel) loadFrames() {
	m.frames = nil
	m.stats = nil
	if m.store == nil {
		m.updateTableRows()
		return
	}

	var err error
	if m.playerCursor == 0 {
		m.frames, err = m.store.RecentFrames(maxFrames)
	} else {
		player := m.players[m.playerCursor]
		m.frames, err = m.store.PlayerFrames(player, maxFrames)
		if err == nil {
			m.stats, err = m.store.GetPlayerStats(player)
		}
	}
	m.err = err
	m.updateTableRows()
}

// updateTableRows updates the table with current frames.
func (m *BoardModel) updateTableRows() {
	rows := make([]table.Row, len(m.frames))
	for i, f := range m.frames {
		rows[i] = table.Row{
			f.CreatedAt.Format("Jan 02 15:04"),
			f.Player1,
			fmt.Sprintf("%d-%d", f.Score1, f.Score2),
			f.Player2,
			fmt.Sprintf("%d", f.Remaining),
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// Init initializes the board model.
func (m BoardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the board.
func (m BoardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			if m.standalone {
				return m, tea.Quit
			}
			return m, nil

		case key.Matches(msg, m.keys.NextPlayer):
			m.playerCursor = (m.playerCursor + 1) % len(m.players)
			m.loadFrames()
			return m, nil

		case key.Matches(msg, m.keys.PrevPlayer):
			m.playerCursor--
			if m.playerCursor < 0 {
				m.playerCursor = len(m.players) - 1
			}
			m.loadFrames()
			return m, nil

		case key.Matches(msg, m.keys.Delete):
			m.deleteSelected()
			return m, nil

		case key.Matches(msg, m.keys.Up), key.Matches(msg, m.keys.Down):
			m.table, cmd = m.table.Update(msg)
			return m, cmd
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.showSidebar = m.width >= minWidthForSidebar
		m.table = m.createTable()
		m.updateTableRows()
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// deleteSelected removes the highlighted frame from the store.
func (m *BoardModel) deleteSelected() {
	if m.store == nil || len(m.frames) == 0 {
		return
	}
	i := m.table.Cursor()
	if i < 0 || i >= len(m.frames) {
		return
	}
	if err := m.store.DeleteFrame(m.frames[i].FrameID); err != nil {
		m.err = err
		return
	}
	wasAll := m.playerCursor == 0
	current := m.players[m.playerCursor]
	m.loadPlayers()
	m.playerCursor = 0
	if !wasAll {
		for j, p := range m.players[1:] {
			if p == current {
				m.playerCursor = j + 1
			}
		}
	}
	m.loadFrames()
}

// View renders the board.
func (m BoardModel) View() string {
	if m.quitting || (m.goingBack && m.standalone) {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		MarginBottom(1)

	title := "SAVED FRAMES - " + m.players[m.playerCursor]
	b.WriteString(titleStyle.Render(centerText(title, m.width)))
	b.WriteString("\n\n")

	if m.showSidebar {
		b.WriteString(m.renderWideLayout())
	} else {
		b.WriteString(m.renderNarrowLayout())
	}

	b.WriteString("\n")
	if line := m.statsLine(); line != "" {
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}
	if m.err != nil {
		b.WriteString(centerText(warnStyle.Render(m.err.Error()), m.width))
		b.WriteString("\n")
	}

	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// statsLine summarises the selected player's results.
func (m BoardModel) statsLine() string {
	if m.stats == nil || m.stats.FramesPlayed == 0 {
		return ""
	}
	return fmt.Sprintf("%s: %d frames, %d won, high score %d",
		m.stats.Player, m.stats.FramesPlayed, m.stats.FramesWon, m.stats.HighScore)
}

// renderWideLayout renders the board with a sidebar for player selection.
func (m BoardModel) renderWideLayout() string {
	sidebarStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Width(sidebarWidth).
		Padding(0, 1)

	var sidebar strings.Builder
	sidebar.WriteString("Players\n")
	sidebar.WriteString(strings.Repeat("-", sidebarWidth-4))
	sidebar.WriteString("\n")

	for i, p := range m.players {
		cursor := "  "
		style := lipgloss.NewStyle()
		if i == m.playerCursor {
			cursor = "> "
			style = style.Bold(true).Foreground(lipgloss.Color("229"))
		}

		sidebar.WriteString(style.Render(cursor + truncateName(p, sidebarWidth-6)))
		sidebar.WriteString("\n")
	}

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	return lipgloss.JoinHorizontal(lipgloss.Top,
		sidebarStyle.Render(sidebar.String()),
		"  ",
		tableStyle.Render(m.renderTableContent()),
	)
}

// truncateName shortens a name to at most width terminal cells.
func truncateName(name string, width int) string {
	return runewidth.Truncate(name, width, ".")
}

// renderNarrowLayout renders the board with the player filter above the table.
func (m BoardModel) renderNarrowLayout() string {
	var b strings.Builder

	b.WriteString(centerText(fmt.Sprintf("< %s >", m.players[m.playerCursor]), m.width))
	b.WriteString("\n\n")

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	b.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, tableStyle.Render(m.renderTableContent())))

	return b.String()
}

// renderTableContent renders the table or empty message.
func (m BoardModel) renderTableContent() string {
	if len(m.frames) == 0 {
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(2, 4)
		if m.store == nil {
			return emptyStyle.Render("No frames database available.")
		}
		return emptyStyle.Render("No frames saved yet.\nPress s on the scoreboard to save one!")
	}

	return m.table.View()
}

// Frames returns the frames currently listed.
func (m BoardModel) Frames() []storage.FrameResult {
	return m.frames
}

// IsGoingBack returns true if user wants to go back to the scoreboard.
func (m BoardModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m BoardModel) IsQuitting() bool {
	return m.quitting
}

// RunBoard runs the saved frames board as a standalone program.
func RunBoard(store *storage.Store, width, height int) error {
	model := NewBoardModel(store, width, height, true)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
