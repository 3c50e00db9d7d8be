package agent

import (
	"fmt"
	"hounds/game"
	"hounds/searcher"
)

type perfectAgent struct {
	ctx *searcher.Context
}

// NewPerfectAgent returns an agent that plays the first winning move found by
// the solver. Agents sharing ctx share its memo table.
func NewPerfectAgent(ctx *searcher.Context) Agent {
	if ctx == nil {
		ctx = searcher.NewContext()
	}
	return perfectAgent{ctx: ctx}
}

func (a perfectAgent) FindMove(state game.BoardState) (game.Move, error) {
	move, ok := searcher.BestMove(a.ctx, state)
	if !ok {
		return game.Move{}, fmt.Errorf("perfect %s agent at ply %d: %w", state.Player(), state.Ply, ErrNoMove)
	}
	return move, nil
}
