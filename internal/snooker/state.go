package snooker

// Player identifies one of the two players in a frame.
type Player int

const (
	Player1 Player = iota
	Player2
)

// Valid reports whether p is Player1 or Player2.
func (p Player) Valid() bool {
	return p == Player1 || p == Player2
}

// Opponent returns the other player.
func (p Player) Opponent() Player {
	if p == Player1 {
		return Player2
	}
	return Player1
}

// String returns a human-readable name for the player.
func (p Player) String() string {
	switch p {
	case Player1:
		return "Player 1"
	case Player2:
		return "Player 2"
	default:
		return "Unknown"
	}
}

// Frame is the scoring state of a frame without its undo history.
// All fields are plain values, so copying a Frame never shares memory.
type Frame struct {
	Scores    [2]int // Points per player, indexed by Player
	Remaining int    // Points still potable on the table
	Lead      int    // Absolute score difference
	RedsLeft  int    // Reds not yet potted
	OnColors  bool   // Reds are gone and the colors are being cleared in order
	NextColor int    // Index into Colors of the next color in sequence; len(Colors) when cleared
}

// NewFrame returns the scoring state at the start of a frame.
func NewFrame() Frame {
	return Frame{
		Remaining: RemainingPoints(StartingReds, false, 0),
		RedsLeft:  StartingReds,
	}
}

// Score returns the points of the given player.
func (f Frame) Score(p Player) int {
	return f.Scores[p]
}

// Leader returns the player ahead and true, or false when the scores are level.
func (f Frame) Leader() (Player, bool) {
	switch {
	case f.Scores[Player1] > f.Scores[Player2]:
		return Player1, true
	case f.Scores[Player2] > f.Scores[Player1]:
		return Player2, true
	default:
		return Player1, false
	}
}

// SnookersRequired reports whether the trailing player can no longer catch
// up from the balls left on the table alone.
func (f Frame) SnookersRequired() bool {
	_, ok := f.Leader()
	return ok && f.Lead > f.Remaining
}

// NextBall returns the color that must be potted next in the colors phase.
// It returns false outside the colors phase and once the table is clear.
func (f Frame) NextBall() (Ball, bool) {
	if !f.OnColors || f.NextColor >= len(Colors) {
		return 0, false
	}
	return Colors[f.NextColor], true
}

// Cleared reports whether every color has been potted in sequence.
func (f Frame) Cleared() bool {
	return f.OnColors && f.NextColor >= len(Colors)
}

// State is the full game state: the current frame plus its undo history.
type State struct {
	Frame
	History History
}

// NewState returns the initial state with an empty history.
func NewState() State {
	return State{Frame: NewFrame()}
}

// CanUndo reports whether there is a previous frame state to restore.
func (s State) CanUndo() bool {
	return s.History.Len() > 0
}
