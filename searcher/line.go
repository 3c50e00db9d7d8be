package searcher

import "hounds/game"

// BestMove returns the first move, in enumeration order, that wins for the
// side to move. A lost side gets its first legal move. It returns false on
// terminal states and when the side to move is stuck.
func BestMove(ctx *Context, state game.BoardState) (game.Move, bool) {
	if state.IsTerminal() {
		return game.Move{}, false
	}
	moves := state.LegalMoves()
	if len(moves) == 0 {
		return game.Move{}, false
	}

	mover := state.Player()
	for _, move := range moves {
		if ctx.outcome(state.Play(move)) == mover {
			return move, true
		}
	}
	return moves[0], true
}

// PrincipalLine plays BestMove for both sides until the game is decided.
func PrincipalLine(ctx *Context, state game.BoardState) []game.Move {
	var line []game.Move
	for {
		move, ok := BestMove(ctx, state)
		if !ok {
			return line
		}
		line = append(line, move)
		state = state.Play(move)
	}
}
