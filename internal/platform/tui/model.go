package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snooker/internal/snooker"
	"github.com/vovakirdan/tui-snooker/internal/storage"
)

// nameCharLimit caps the length of a player name.
const nameCharLimit = 20

type scoreMode int

const (
	modeScoring scoreMode = iota
	modeFoul              // Waiting for a 4-7 penalty
	modeNames             // Editing player names
)

// Options configures a scoring screen.
type Options struct {
	Names     [2]string   // Initial player names
	AskNames  bool        // Start on the name entry screen
	Width     int         // Terminal width
	Height    int         // Terminal height
	Logger    *log.Logger // Optional, nil disables logging
	SessionID string      // Included in log lines
}

// ScoreModel is the Bubble Tea model for the scoring screen.
// It owns the frame state exclusively and replaces it on every action.
type ScoreModel struct {
	state    snooker.State
	names    [2]string
	selected snooker.Player // Panel that receives pots and fouls
	mode     scoreMode

	inputs     [2]textinput.Model
	inputFocus int

	keys      ScoreKeyMap
	nameKeys  NamesKeyMap
	help      help.Model
	store     *storage.Store
	logger    *log.Logger
	sessionID string

	status   string
	statusID int
	saved    bool   // Current frame state is already in the store
	savedID  string // FrameID of the last saved result

	width      int
	height     int
	quitting   bool
	wantsBoard bool
}

// NewScoreModel creates a scoring screen starting from a fresh frame.
func NewScoreModel(store *storage.Store, opts Options) ScoreModel {
	names := opts.Names
	for i, n := range names {
		if strings.TrimSpace(n) == "" {
			names[i] = snooker.Player(i).String()
		}
	}

	keys := DefaultScoreKeyMap()
	keys.hasBoard = store != nil

	h := help.New()
	h.Width = opts.Width

	m := ScoreModel{
		state:     snooker.NewState(),
		names:     names,
		selected:  snooker.Player1,
		keys:      keys,
		nameKeys:  DefaultNamesKeyMap(),
		help:      h,
		store:     store,
		logger:    opts.Logger,
		sessionID: opts.SessionID,
		width:     opts.Width,
		height:    opts.Height,
	}

	for i := range m.inputs {
		ti := textinput.New()
		ti.Placeholder = snooker.Player(i).String()
		ti.Prompt = fmt.Sprintf("Player %d: ", i+1)
		ti.CharLimit = nameCharLimit
		ti.Width = nameCharLimit
		m.inputs[i] = ti
	}

	if opts.AskNames {
		m.startNameEntry()
	}
	m.keys.sync(m.state, false)

	return m
}

// Init initializes the scoring screen.
func (m ScoreModel) Init() tea.Cmd {
	if m.mode == modeNames {
		return textinput.Blink
	}
	return nil
}

// Update handles messages and updates the model state.
func (m ScoreModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case statusExpiredMsg:
		if msg.id == m.statusID {
			m.status = ""
		}
		return m, nil

	case tea.KeyMsg:
		switch m.mode {
		case modeNames:
			return m.handleNamesKey(msg)
		case modeFoul:
			return m.handleFoulKey(msg)
		default:
			return m.handleScoringKey(msg)
		}
	}

	if m.mode == modeNames {
		return m.updateInputs(msg)
	}
	return m, nil
}

// handleScoringKey processes keyboard input on the scoring screen.
func (m ScoreModel) handleScoringKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Pot):
		ball, ok := ballForKey(msg)
		if !ok {
			return m, nil
		}
		return m.apply(snooker.Pot{Player: m.selected, Ball: ball})

	case key.Matches(msg, m.keys.Foul):
		m.mode = modeFoul
		m.keys.sync(m.state, true)
		return m, nil

	case key.Matches(msg, m.keys.Switch):
		m.selected = m.selected.Opponent()

	case key.Matches(msg, m.keys.Player1):
		m.selected = snooker.Player1

	case key.Matches(msg, m.keys.Player2):
		m.selected = snooker.Player2

	case key.Matches(msg, m.keys.Undo):
		return m.apply(snooker.Undo{})

	case key.Matches(msg, m.keys.Reset):
		return m.apply(snooker.Reset{})

	case key.Matches(msg, m.keys.Save):
		return m.saveFrame()

	case key.Matches(msg, m.keys.Names):
		m.startNameEntry()
		return m, textinput.Blink

	case key.Matches(msg, m.keys.Board):
		m.wantsBoard = true

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll

	default:
		if msg.String() == "u" || msg.String() == "backspace" {
			return m.setStatus("Nothing to undo")
		}
	}

	return m, nil
}

// handleFoulKey waits for a penalty value after the foul key.
func (m ScoreModel) handleFoulKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Penalty):
		ball, _ := ballForKey(msg)
		m.mode = modeScoring
		return m.apply(snooker.Foul{Offender: m.selected, Penalty: ball.Value()})

	case key.Matches(msg, m.keys.Cancel):
		m.mode = modeScoring
		m.keys.sync(m.state, false)
	}

	return m, nil
}

// handleNamesKey processes keyboard input on the name entry screen.
func (m ScoreModel) handleNamesKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.nameKeys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.nameKeys.Cancel):
		m.finishNameEntry(false)
		return m, nil

	case key.Matches(msg, m.nameKeys.Confirm):
		if m.inputFocus == 0 {
			return m, m.focusInput(1)
		}
		m.finishNameEntry(true)
		return m, nil

	case key.Matches(msg, m.nameKeys.Next), key.Matches(msg, m.nameKeys.Prev):
		return m, m.focusInput(1 - m.inputFocus)
	}

	return m.updateInputs(msg)
}

// updateInputs forwards a message to the focused name field.
func (m ScoreModel) updateInputs(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.inputs[m.inputFocus], cmd = m.inputs[m.inputFocus].Update(msg)
	return m, cmd
}

func (m *ScoreModel) startNameEntry() {
	m.mode = modeNames
	for i := range m.inputs {
		m.inputs[i].Reset()
		m.inputs[i].Placeholder = m.names[i]
	}
	m.focusInput(0)
}

func (m *ScoreModel) focusInput(i int) tea.Cmd {
	m.inputFocus = i
	m.inputs[1-i].Blur()
	return m.inputs[i].Focus()
}

// finishNameEntry leaves the name screen, keeping the old name for blank fields.
func (m *ScoreModel) finishNameEntry(commit bool) {
	if commit {
		for i := range m.inputs {
			if v := strings.TrimSpace(m.inputs[i].Value()); v != "" && v != m.names[i] {
				m.names[i] = v
				m.saved = false
			}
		}
	}
	for i := range m.inputs {
		m.inputs[i].Blur()
	}
	m.mode = modeScoring
	m.keys.sync(m.state, false)
}

// apply validates and applies an action to the frame state.
func (m ScoreModel) apply(a snooker.Action) (tea.Model, tea.Cmd) {
	next, err := snooker.Apply(m.state, a)
	if err != nil {
		return m.setStatus(err.Error())
	}

	m.state = next
	m.saved = false
	m.keys.sync(m.state, false)

	if m.logger != nil {
		m.logger.Debug("action applied",
			"session", m.sessionID,
			"action", fmt.Sprintf("%T", a),
			"score1", m.state.Score(snooker.Player1),
			"score2", m.state.Score(snooker.Player2),
			"remaining", m.state.Remaining,
		)
	}

	return m.setStatus(snooker.Describe(a, m.names))
}

// saveFrame stores the current scores as a frame result.
func (m ScoreModel) saveFrame() (tea.Model, tea.Cmd) {
	if m.store == nil {
		return m.setStatus("No database: frame not saved")
	}
	if m.saved {
		return m.setStatus("Frame already saved")
	}

	result, err := m.store.SaveFrame(storage.NewFrameResult(m.state.Frame, m.names))
	if err != nil {
		if m.logger != nil {
			m.logger.Error("could not save frame", "session", m.sessionID, "error", err)
		}
		return m.setStatus("Save failed: " + err.Error())
	}

	m.saved = true
	m.savedID = result.FrameID
	if m.logger != nil {
		m.logger.Info("frame saved",
			"session", m.sessionID,
			"frame", result.FrameID,
			"player1", result.Player1,
			"player2", result.Player2,
			"score", fmt.Sprintf("%d-%d", result.Score1, result.Score2),
		)
	}
	return m.setStatus(fmt.Sprintf("Frame saved (%d-%d)", result.Score1, result.Score2))
}

func (m ScoreModel) setStatus(s string) (tea.Model, tea.Cmd) {
	m.statusID++
	m.status = s
	return m, statusExpireCmd(m.statusID)
}

// View renders the scoring screen.
func (m ScoreModel) View() string {
	if m.quitting {
		return ""
	}
	if m.mode == modeNames {
		return m.viewNames()
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render("S N O O K E R"), m.width))
	b.WriteString("\n\n")

	panels := lipgloss.JoinHorizontal(lipgloss.Top,
		m.renderPanel(snooker.Player1),
		"  ",
		m.renderPanel(snooker.Player2),
	)
	b.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, panels))
	b.WriteString("\n\n")

	b.WriteString(centerText(m.renderInfo(), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(renderBallRow(m.state.Frame), m.width))
	b.WriteString("\n\n")

	if m.mode == modeFoul {
		prompt := fmt.Sprintf("Foul by %s: penalty 4-7?", m.names[m.selected])
		b.WriteString(centerText(foulStyle.Render(prompt), m.width))
		b.WriteString("\n")
	} else {
		b.WriteString("\n")
	}

	b.WriteString(centerText(m.status, m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(m.help.View(m.keys), m.width))
	b.WriteString("\n")

	return b.String()
}

// renderPanel renders one player's name and score.
func (m ScoreModel) renderPanel(p snooker.Player) string {
	style := panelStyle
	marker := " "
	if p == m.selected {
		style = selectedPanelStyle
		marker = ">"
	}

	content := lipgloss.JoinVertical(lipgloss.Center,
		nameStyle.Render(marker+" "+m.names[p]),
		"",
		scoreStyle.Render(fmt.Sprintf("%d", m.state.Score(p))),
		dimStyle.Render("points"),
	)
	return style.Render(content)
}

// renderInfo renders remaining points, lead and phase.
func (m ScoreModel) renderInfo() string {
	parts := []string{
		fmt.Sprintf("Remaining: %d", m.state.Remaining),
	}

	if leader, ok := m.state.Leader(); ok {
		parts = append(parts, fmt.Sprintf("%s leads by %d", m.names[leader], m.state.Lead))
	} else {
		parts = append(parts, "Level")
	}

	parts = append(parts, phaseLabel(m.state.Frame))

	info := strings.Join(parts, "  |  ")
	if m.state.SnookersRequired() {
		info += "  " + warnStyle.Render("Snookers required")
	}
	return info
}

// viewNames renders the name entry screen.
func (m ScoreModel) viewNames() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render("S N O O K E R"), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Enter player names", m.width))
	b.WriteString("\n\n")

	fields := lipgloss.JoinVertical(lipgloss.Left, m.inputs[0].View(), m.inputs[1].View())
	b.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, fields))
	b.WriteString("\n\n")
	b.WriteString(centerText(m.help.View(m.nameKeys), m.width))
	b.WriteString("\n")

	return b.String()
}

// State returns the current frame state.
func (m ScoreModel) State() snooker.State {
	return m.state
}

// Names returns the current player names.
func (m ScoreModel) Names() [2]string {
	return m.names
}

// Selected returns the player whose panel receives pots and fouls.
func (m ScoreModel) Selected() snooker.Player {
	return m.selected
}

// Status returns the current status line.
func (m ScoreModel) Status() string {
	return m.status
}

// EditingNames returns true while the name entry screen is shown.
func (m ScoreModel) EditingNames() bool {
	return m.mode == modeNames
}

// IsQuitting returns true if user requested to quit.
func (m ScoreModel) IsQuitting() bool {
	return m.quitting
}

// WantsBoard returns true if user requested the saved frames board.
func (m ScoreModel) WantsBoard() bool {
	return m.wantsBoard
}

// refreshSaved makes the frame savable again if its saved result was deleted.
func (m ScoreModel) refreshSaved() ScoreModel {
	if !m.saved || m.store == nil {
		return m
	}
	result, err := m.store.FrameByID(m.savedID)
	if err == nil && result == nil {
		m.saved = false
		m.savedID = ""
	}
	return m
}

// boardClosed clears a pending board request.
func (m ScoreModel) boardClosed() ScoreModel {
	m.wantsBoard = false
	return m
}
