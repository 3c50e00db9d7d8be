package searcher

import (
	"errors"
	"hounds/game"
	"maps"
)

var ErrEmptyMemo = errors.New("memo table is empty")

type Option func(ctx *Context)

// Context is the mutable state threaded through one search: the memo table,
// the invocation counter and the metrics collector. It must not be shared
// between goroutines.
type Context struct {
	memo    map[game.Key]game.Role
	calls   int
	depth   int
	metrics Collector
}

func WithMetrics() Option {
	return func(ctx *Context) {
		ctx.metrics = NewCollector()
	}
}

func WithMemoCapacity(capacity int) Option {
	return func(ctx *Context) {
		if capacity > 0 {
			ctx.memo = make(map[game.Key]game.Role, capacity)
		}
	}
}

func NewContext(options ...Option) *Context {
	ctx := &Context{ // Default values
		memo:    make(map[game.Key]game.Role),
		metrics: NewDummyCollector(),
	}
	for _, option := range options {
		option(ctx)
	}
	return ctx
}

// Calls returns the number of Solve invocations made with this context.
func (c *Context) Calls() int {
	return c.calls
}

func (c *Context) MemoSize() int {
	return len(c.memo)
}

// Lookup returns the memoized winner of state, if any.
func (c *Context) Lookup(state game.BoardState) (game.Role, bool) {
	winner, ok := c.memo[state.Key()]
	return winner, ok
}

// Memo returns a copy of the memo table.
func (c *Context) Memo() map[game.Key]game.Role {
	return maps.Clone(c.memo)
}

func (c *Context) Metrics() Collector {
	return c.metrics
}

// WinnerShare returns the fraction of memoized states won by winner.
func (c *Context) WinnerShare(winner game.Role) (float64, error) {
	if len(c.memo) == 0 {
		return 0, ErrEmptyMemo
	}
	wins := 0
	for _, w := range c.memo {
		if w == winner {
			wins++
		}
	}
	return float64(wins) / float64(len(c.memo)), nil
}

// outcome returns the winner of child from the memo, solving and storing it on a miss.
func (c *Context) outcome(child game.BoardState) game.Role {
	key := child.Key()
	if winner, ok := c.memo[key]; ok {
		c.metrics.AddMemoHit()
		return winner
	}
	winner := Solve(c, child)
	c.memo[key] = winner
	c.metrics.AddMemoStore()
	return winner
}
