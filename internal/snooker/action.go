package snooker

import (
	"errors"
	"fmt"
)

// Action is an input to the score engine. The set of actions is closed:
// Pot, Foul, Reset and Undo.
type Action interface {
	action()
}

// Pot scores a potted ball for a player.
type Pot struct {
	Player Player
	Ball   Ball
}

func (Pot) action() {}

// Foul awards a penalty to the opponent of the offending player.
type Foul struct {
	Offender Player
	Penalty  int
}

func (Foul) action() {}

// Reset starts a new frame. It is recorded in the history and can be undone.
type Reset struct{}

func (Reset) action() {}

// Undo restores the state before the most recent recorded action.
type Undo struct{}

func (Undo) action() {}

// Foul penalties range from the minimum of four up to the value of the black.
const (
	MinPenalty = 4
	MaxPenalty = 7
)

// Validation errors returned by Validate and Apply.
var (
	ErrInvalidPlayer  = errors.New("invalid player")
	ErrInvalidBall    = errors.New("invalid ball")
	ErrInvalidPenalty = errors.New("invalid foul penalty")
	ErrUnknownAction  = errors.New("unknown action")
)

// Validate checks that an action's fields are within the modelled domain.
func Validate(a Action) error {
	switch a := a.(type) {
	case Pot:
		if !a.Player.Valid() {
			return fmt.Errorf("snooker: pot by %d: %w", a.Player, ErrInvalidPlayer)
		}
		if !a.Ball.Valid() {
			return fmt.Errorf("snooker: pot value %d: %w", a.Ball, ErrInvalidBall)
		}
	case Foul:
		if !a.Offender.Valid() {
			return fmt.Errorf("snooker: foul by %d: %w", a.Offender, ErrInvalidPlayer)
		}
		if a.Penalty < MinPenalty || a.Penalty > MaxPenalty {
			return fmt.Errorf("snooker: foul penalty %d: %w", a.Penalty, ErrInvalidPenalty)
		}
	case Reset, Undo:
	default:
		return fmt.Errorf("snooker: %T: %w", a, ErrUnknownAction)
	}
	return nil
}

// Describe returns a short human-readable description of an action using
// the given player names.
func Describe(a Action, names [2]string) string {
	switch a := a.(type) {
	case Pot:
		if !a.Player.Valid() {
			return "Pot"
		}
		return fmt.Sprintf("%s potted %s (+%d)", names[a.Player], a.Ball, a.Ball.Value())
	case Foul:
		if !a.Offender.Valid() {
			return "Foul"
		}
		return fmt.Sprintf("Foul by %s: +%d to %s", names[a.Offender], a.Penalty, names[a.Offender.Opponent()])
	case Reset:
		return "Frame reset"
	case Undo:
		return "Undone"
	default:
		return ""
	}
}
