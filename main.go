package main

import (
	"errors"
	"flag"
	"fmt"
	"hounds/engine"
	"hounds/game"
	"hounds/searcher"
	"hounds/searcher/agent"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	level := flag.String("log-level", "info", "Log level (trace, debug, info, warn, error)")
	showLine := flag.Bool("line", false, "Replay and print the solved line of play")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
	lvl, err := zerolog.ParseLevel(*level)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid log level")
	}
	zerolog.SetGlobalLevel(lvl)

	ctx := searcher.NewContext(searcher.WithMetrics(), searcher.WithMemoCapacity(1<<16))
	winner, metric := searcher.Search(ctx, game.NewBoardState())

	log.Info().
		Dur("duration", metric.Duration).
		Int64("memo_hits", metric.MemoHits).
		Int64("terminals", metric.Terminals).
		Int64("max_depth", metric.MaxDepth).
		Msg("search complete")

	fmt.Printf("the winner is %s after %d recursions\n", winner, ctx.Calls())
	share, err := ctx.WinnerShare(winner)
	switch {
	case errors.Is(err, searcher.ErrEmptyMemo):
		fmt.Printf("no states were memoized\n")
	case err != nil:
		log.Fatal().Err(err).Msg("failed to compute winner share")
	default:
		fmt.Printf("the proportion of %s wins in memoization is %v\n", winner, share)
	}

	if *showLine {
		replay(ctx)
	}
}

// replay plays the solved line with two perfect agents sharing the search memo.
func replay(ctx *searcher.Context) {
	e := engine.LocalEngine(agent.NewPerfectAgent(ctx), agent.NewPerfectAgent(ctx))
	winner, _, err := e.Run()
	if err != nil {
		log.Fatal().Err(err).Msg("replay failed")
	}

	moves := make([]string, 0, len(e.Moves()))
	for _, move := range e.Moves() {
		moves = append(moves, move.String())
	}
	fmt.Printf("line of play (%d moves, %s wins): %s\n", len(moves), winner, strings.Join(moves, " "))
}
