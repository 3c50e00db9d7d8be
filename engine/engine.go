package engine

import (
	"errors"
	"hounds/game"
	"time"
)

var ErrIllegalMove = errors.New("illegal move")

type GameMetric struct {
	StartingPlayer game.Role
	Winner         game.Role
	StartTime      time.Time
	EndTime        time.Time
	Duration       time.Duration
	TotalMoves     int
}

type Engine interface {
	// Run plays the game till one side wins
	Run() (winner game.Role, gameMetric GameMetric, err error)
}
