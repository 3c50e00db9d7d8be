package engine

import (
	"fmt"
	"hounds/game"
	"hounds/searcher/agent"
	"slices"
	"time"

	"github.com/rs/zerolog/log"
)

type Update struct {
	Move  game.Move
	State game.BoardState
	Hash  game.StateHash
}

var _ Engine = (*localEngine)(nil)

type localEngine struct {
	state   game.BoardState
	agents  [2]agent.Agent // Indexed by game.Role
	history []Update
}

// LocalEngine plays a game from the initial state between two in-process agents.
func LocalEngine(pursuer, evader agent.Agent) *localEngine {
	return LocalEngineFrom(game.NewBoardState(), pursuer, evader)
}

// LocalEngineFrom is LocalEngine starting from an arbitrary valid state.
func LocalEngineFrom(state game.BoardState, pursuer, evader agent.Agent) *localEngine {
	if pursuer == nil || evader == nil {
		panic("both sides need an agent")
	}
	if err := state.Validate(); err != nil {
		panic(fmt.Sprintf("cannot start from %v: %v", state, err))
	}

	e := &localEngine{state: state}
	e.agents[game.Pursuer] = pursuer
	e.agents[game.Evader] = evader
	return e
}

// Run executes the game loop until one side wins. Every agent move is checked
// against the legal moves of the current state.
func (e *localEngine) Run() (game.Role, GameMetric, error) {
	metric := GameMetric{
		StartingPlayer: e.state.Player(),
		StartTime:      time.Now(),
	}

	log.Info().Msgf("%s is starting", e.state.Player())

	var winner game.Role
	for {
		if w, over := e.state.Winner(); over {
			winner = w
			break
		}
		moves := e.state.LegalMoves()
		if len(moves) == 0 { // Side to move is stuck
			winner = e.state.Player().Opponent()
			break
		}

		player := e.state.Player()
		move, err := e.agents[player].FindMove(e.state)
		if err != nil {
			return winner, metric, fmt.Errorf("ply %d: %w", e.state.Ply, err)
		}
		if !slices.Contains(moves, move) {
			return winner, metric, fmt.Errorf("%s played %s at ply %d: %w", player, move, e.state.Ply, ErrIllegalMove)
		}

		e.state = e.state.Play(move)
		e.history = append(e.history, Update{
			Move:  move,
			State: e.state,
			Hash:  e.state.Hash(),
		})
		log.Debug().Msgf("ply %d: %s played %s", e.state.Ply-1, player, move)
	}

	metric.Winner = winner
	metric.EndTime = time.Now()
	metric.Duration = metric.EndTime.Sub(metric.StartTime)
	metric.TotalMoves = len(e.history)

	log.Info().Msgf("game over after %d moves, winner: %s", metric.TotalMoves, winner)
	return winner, metric, nil
}

// State returns the current state of the game.
func (e *localEngine) State() game.BoardState {
	return e.state
}

// History returns the moves played so far with the states they led to.
func (e *localEngine) History() []Update {
	return slices.Clone(e.history)
}

// Moves returns the moves played so far.
func (e *localEngine) Moves() []game.Move {
	moves := make([]game.Move, len(e.history))
	for i, u := range e.history {
		moves[i] = u.Move
	}
	return moves
}
