package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"github.com/vovakirdan/tui-snooker/internal/storage"
)

// SessionModel manages the full session flow: scoreboard -> saved frames -> scoreboard.
// This is the top-level model used for local play and SSH sessions.
type SessionModel struct {
	store     *storage.Store
	sessionID string
	score     ScoreModel
	board     *BoardModel
	width     int
	height    int
	quitting  bool
}

// NewSessionModel creates a new session with its own frame state.
func NewSessionModel(store *storage.Store, opts Options) SessionModel {
	if opts.SessionID == "" {
		opts.SessionID = uuid.NewString()
	}

	return SessionModel{
		store:     store,
		sessionID: opts.SessionID,
		score:     NewScoreModel(store, opts),
		width:     opts.Width,
		height:    opts.Height,
	}
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return m.score.Init()
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		// Both screens track the size so switching back renders correctly
		newScore, _ := m.score.Update(msg)
		m.score = newScore.(ScoreModel)
		if m.board != nil {
			newBoard, _ := m.board.Update(msg)
			board := newBoard.(BoardModel)
			m.board = &board
		}
		return m, nil

	case statusExpiredMsg:
		newScore, cmd := m.score.Update(msg)
		m.score = newScore.(ScoreModel)
		return m, cmd
	}

	if m.board != nil {
		return m.updateBoard(msg)
	}
	return m.updateScore(msg)
}

// updateScore handles updates when the scoreboard is shown.
func (m SessionModel) updateScore(msg tea.Msg) (tea.Model, tea.Cmd) {
	newScore, cmd := m.score.Update(msg)
	if scoreModel, ok := newScore.(ScoreModel); ok {
		m.score = scoreModel
	}

	if m.score.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if m.score.WantsBoard() {
		m.score = m.score.boardClosed()
		board := NewBoardModel(m.store, m.width, m.height, false)
		m.board = &board
		return m, m.board.Init()
	}

	return m, cmd
}

// updateBoard handles updates when the saved frames board is shown.
func (m SessionModel) updateBoard(msg tea.Msg) (tea.Model, tea.Cmd) {
	newBoard, cmd := m.board.Update(msg)
	if boardModel, ok := newBoard.(BoardModel); ok {
		m.board = &boardModel
	}

	if m.board.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if m.board.IsGoingBack() {
		m.board = nil
		// Frames may have been deleted on the board
		m.score = m.score.refreshSaved()
		return m, nil
	}

	return m, cmd
}

// View renders the current screen.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}
	if m.board != nil {
		return m.board.View()
	}
	return m.score.View()
}

// SessionID returns the session identifier.
func (m SessionModel) SessionID() string {
	return m.sessionID
}

// Score returns the scoring screen model.
func (m SessionModel) Score() ScoreModel {
	return m.score
}

// OnBoard returns true while the saved frames board is shown.
func (m SessionModel) OnBoard() bool {
	return m.board != nil
}

// Run starts a local scoring session in the current terminal.
func Run(store *storage.Store, opts Options) error {
	p := tea.NewProgram(
		NewSessionModel(store, opts),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
