package game

import "fmt"

// Move relocates one piece of the side to move. The owner is implied by the turn.
type Move struct {
	From Position
	To   Position
}

func (m Move) String() string {
	return fmt.Sprintf("%s->%s", m.From, m.To)
}
