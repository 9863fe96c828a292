package snooker

// Transition returns the state that follows s after applying a.
//
// Every action except Undo records the current frame in the history first.
// Transition does not validate its input: out-of-range ball values and
// penalties are scored as given. Actions naming an unknown player, and
// unknown action types, leave the state unchanged. Use Apply to reject
// invalid actions instead.
func Transition(s State, a Action) State {
	switch a := a.(type) {
	case Pot:
		if !a.Player.Valid() {
			return s
		}
		return pot(s, a)
	case Foul:
		if !a.Offender.Valid() {
			return s
		}
		return foul(s, a)
	case Reset:
		return State{Frame: NewFrame(), History: s.History.Push(s.Frame)}
	case Undo:
		prev, rest, ok := s.History.Pop()
		if !ok {
			return s
		}
		return State{Frame: prev, History: rest}
	default:
		return s
	}
}

// Apply validates a and then applies it to s.
// On error s is returned unchanged.
func Apply(s State, a Action) (State, error) {
	if err := Validate(a); err != nil {
		return s, err
	}
	return Transition(s, a), nil
}

// Replay applies the actions in order starting from the initial state.
func Replay(actions ...Action) State {
	s := NewState()
	for _, a := range actions {
		s = Transition(s, a)
	}
	return s
}

func pot(s State, a Pot) State {
	next := State{Frame: s.Frame, History: s.History.Push(s.Frame)}
	f := &next.Frame

	if !f.OnColors {
		if a.Ball == Red {
			f.RedsLeft = max(0, f.RedsLeft-1)
			if f.RedsLeft == 0 {
				f.OnColors = true
			}
		}
	} else if a.Ball.ColorIndex() == f.NextColor {
		f.NextColor++
	}

	f.Scores[a.Player] += a.Ball.Value()
	f.Remaining = RemainingPoints(f.RedsLeft, f.OnColors, f.NextColor)
	f.Lead = lead(f.Scores)
	return next
}

func foul(s State, a Foul) State {
	next := State{Frame: s.Frame, History: s.History.Push(s.Frame)}
	next.Scores[a.Offender.Opponent()] += a.Penalty
	next.Lead = lead(next.Scores)
	return next
}

func lead(scores [2]int) int {
	d := scores[Player1] - scores[Player2]
	if d < 0 {
		return -d
	}
	return d
}
