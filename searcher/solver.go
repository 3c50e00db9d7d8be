package searcher

import (
	"hounds/game"

	"github.com/rs/zerolog/log"
)

// Solve returns the side that wins state under perfect play. Children are
// looked up in, or added to, the memo of ctx; state itself is never stored.
func Solve(ctx *Context, state game.BoardState) game.Role {
	ctx.calls++
	ctx.depth++
	defer func() { ctx.depth-- }()
	ctx.metrics.AddCall(ctx.depth)

	if winner, over := state.Winner(); over {
		ctx.metrics.AddTerminal()
		return winner
	}

	mover := state.Player()
	for _, move := range state.LegalMoves() {
		// Any winning move will do
		if ctx.outcome(state.Play(move)) == mover {
			return mover
		}
	}

	// No winning move, or no move at all
	return mover.Opponent()
}

// Search solves state as a top level query and reports the collected metrics.
func Search(ctx *Context, state game.BoardState) (game.Role, SearchMetric) {
	log.Debug().Stringer("state", state).Msg("solving")

	ctx.metrics.Start()
	winner := Solve(ctx, state)
	metric := ctx.metrics.Complete()

	log.Debug().
		Stringer("winner", winner).
		Int("calls", ctx.calls).
		Int("memo", len(ctx.memo)).
		Msg("solved")
	return winner, metric
}
