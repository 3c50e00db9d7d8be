package agent

import (
	"fmt"
	"hounds/game"

	"golang.org/x/exp/rand"
)

type randomAgent struct {
	rng *rand.Rand
}

// NewRandomAgent returns an agent that plays uniformly random legal moves.
func NewRandomAgent(seed uint64) Agent {
	return &randomAgent{rng: rand.New(rand.NewSource(seed))}
}

func (a *randomAgent) FindMove(state game.BoardState) (game.Move, error) {
	moves := state.LegalMoves()
	if len(moves) == 0 {
		return game.Move{}, fmt.Errorf("random %s agent at ply %d: %w", state.Player(), state.Ply, ErrNoMove)
	}
	return moves[a.rng.Intn(len(moves))], nil // Random rollout policy
}
