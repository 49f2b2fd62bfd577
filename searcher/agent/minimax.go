package agent

import (
	"reversi/game"
	"reversi/meta"
	"reversi/searcher"
	"time"

	"github.com/rs/zerolog/log"
)

type Option func(a *MinimaxAgent)

// WithDepth sets the depth bound of the first search.
func WithDepth(depth int) Option {
	return func(a *MinimaxAgent) {
		if depth > 0 {
			a.depth = depth
		}
	}
}

// WithBudget sets the wall-clock time allowed per move.
func WithBudget(budget time.Duration) Option {
	return func(a *MinimaxAgent) {
		if budget > 0 {
			a.budget = budget
		}
	}
}

// WithSearchOptions configures the underlying alpha-beta search.
func WithSearchOptions(options ...searcher.Option) Option {
	return func(a *MinimaxAgent) {
		a.searchOptions = append(a.searchOptions, options...)
	}
}

// MinimaxAgent plays one color for one game with an alpha-beta search whose depth bound
// tunes itself to the time budget. It is not safe for concurrent use.
type MinimaxAgent struct {
	color         game.Color
	depth         int
	budget        time.Duration
	searchOptions []searcher.Option
	search        *searcher.AlphaBeta
	controller    *searcher.DepthController
}

func NewMinimaxAgent(color game.Color, options ...Option) *MinimaxAgent {
	if color != game.Black && color != game.White {
		panic("agent color must be black or white")
	}
	a := &MinimaxAgent{ // Default values
		color:  color,
		depth:  meta.InitialDepth,
		budget: meta.TimeBudget,
	}
	for _, option := range options {
		option(a)
	}
	a.search = searcher.NewAlphaBeta(a.searchOptions...)
	a.controller = searcher.NewDepthController(a.depth, a.budget)
	return a
}

func (a *MinimaxAgent) Color() game.Color {
	return a.color
}

// Depth returns the depth bound the next search will use.
func (a *MinimaxAgent) Depth() int {
	return a.controller.Depth()
}

func (a *MinimaxAgent) FindMove(b game.Board) (game.Position, searcher.SearchMetrics, error) {
	result, err := a.controller.Search(a.search, b, a.color)
	if err != nil {
		return game.Position{}, searcher.SearchMetrics{}, err
	}
	log.Debug().
		Stringer("color", a.color).
		Stringer("move", result.Move.Position).
		Int("score", result.Score).
		Int("endDepth", result.Depth).
		Int("nextDepth", a.controller.Depth()).
		Msg("found move")
	return result.Move.Position, result.Metrics, nil
}

// DecideMove is the per-turn entry point for a referee: it returns the square to play, or
// searcher.ErrNoLegalMove when the agent has to pass.
func (a *MinimaxAgent) DecideMove(b game.Board) (game.Position, error) {
	pos, _, err := a.FindMove(b)
	return pos, err
}
