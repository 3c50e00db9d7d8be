package game

// Role is one of the two sides of the game.
type Role uint8

const (
	Pursuer Role = iota // Three interchangeable pieces
	Evader              // Single piece
)

// Opponent returns the other side.
func (r Role) Opponent() Role {
	if r == Pursuer {
		return Evader
	}
	return Pursuer
}

func (r Role) String() string {
	switch r {
	case Pursuer:
		return "pursuer"
	case Evader:
		return "evader"
	default:
		return "unknown"
	}
}
