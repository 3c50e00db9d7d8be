package game

// PlyCap is the last ply that is still played. Any state past it is a win
// for the evader; changing it changes the solved winner of the initial state.
const PlyCap = 30

// HasEvaderPassed reports whether no pursuer sits on a lower rank than the
// evader, i.e. the evader has broken through the whole pursuer line.
func (s BoardState) HasEvaderPassed() bool {
	rank := s.Evader.Rank()
	for _, p := range s.Pursuers {
		if p.Rank() < rank {
			return false
		}
	}
	return true
}

// PlyCapExceeded reports whether the game ran past PlyCap.
func (s BoardState) PlyCapExceeded() bool {
	return s.Ply > PlyCap
}

// IsTerminal reports whether the state is decided without looking at any move.
func (s BoardState) IsTerminal() bool {
	return s.PlyCapExceeded() || s.HasEvaderPassed()
}

// Winner returns the evader for terminal states. Non-terminal states have no
// immediate winner, even when the side to move is stuck.
func (s BoardState) Winner() (Role, bool) {
	if s.IsTerminal() {
		return Evader, true
	}
	return Pursuer, false
}
