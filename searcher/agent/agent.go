package agent

import (
	"errors"
	"hounds/game"
)

var ErrNoMove = errors.New("no legal move")

type Agent interface {
	// FindMove returns the move the agent plays in state, or ErrNoMove if the side to move is stuck
	FindMove(state game.BoardState) (game.Move, error)
}
