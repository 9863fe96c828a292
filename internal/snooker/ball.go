// Package snooker implements the scoring state machine for a two-player
// snooker frame. It contains pure logic only: the caller owns the current
// State and threads it through Transition for every action.
package snooker

// Ball is a snooker ball identified by its point value.
type Ball int

const (
	Red    Ball = 1
	Yellow Ball = 2
	Green  Ball = 3
	Brown  Ball = 4
	Blue   Ball = 5
	Pink   Ball = 6
	Black  Ball = 7
)

// Colors is the fixed order in which the colors are cleared once the reds are gone.
var Colors = [6]Ball{Yellow, Green, Brown, Blue, Pink, Black}

const (
	// StartingReds is the number of reds racked at the start of a frame.
	StartingReds = 15

	// colorsTotal is the sum of all six color values.
	colorsTotal = 27

	// redBreakValue is the most a single red is worth: the red plus a black.
	redBreakValue = 8
)

// Value returns the points scored for potting the ball.
func (b Ball) Value() int {
	return int(b)
}

// Valid reports whether b is one of the seven balls.
func (b Ball) Valid() bool {
	return b >= Red && b <= Black
}

// String returns the ball color name.
func (b Ball) String() string {
	switch b {
	case Red:
		return "red"
	case Yellow:
		return "yellow"
	case Green:
		return "green"
	case Brown:
		return "brown"
	case Blue:
		return "blue"
	case Pink:
		return "pink"
	case Black:
		return "black"
	default:
		return "unknown"
	}
}

// ColorIndex returns the position of b in Colors, or -1 for red and invalid values.
func (b Ball) ColorIndex() int {
	for i, c := range Colors {
		if c == b {
			return i
		}
	}
	return -1
}

// RemainingPoints returns the maximum number of points still available on the table.
func RemainingPoints(redsLeft int, onColors bool, nextColor int) int {
	if !onColors {
		return redsLeft*redBreakValue + colorsTotal
	}
	sum := 0
	for i := nextColor; i < len(Colors); i++ {
		sum += Colors[i].Value()
	}
	return sum
}
