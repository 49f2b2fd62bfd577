package searcher

import (
	"reversi/game"
	"time"

	"github.com/rs/zerolog/log"
)

// DepthController owns the depth bound of one agent for one game and retunes it after every
// search: one ply deeper when the search came in under budget, one ply shallower when the
// chosen line stopped before reaching the bound. Both apply independently.
type DepthController struct {
	depth  int
	budget time.Duration
}

func NewDepthController(depth int, budget time.Duration) *DepthController {
	if depth < 1 {
		panic("initial depth must be positive")
	}
	if budget <= 0 {
		panic("time budget must be positive")
	}
	return &DepthController{depth: depth, budget: budget}
}

func (c *DepthController) Depth() int {
	return c.depth
}

func (c *DepthController) Budget() time.Duration {
	return c.budget
}

// Adjust applies the outcome of a search and returns the depth bound for the next one.
func (c *DepthController) Adjust(elapsed time.Duration, endDepth int) int {
	previous := c.depth
	if elapsed < c.budget {
		c.depth++
	}
	if endDepth > 0 {
		c.depth--
	}
	log.Debug().
		Int("from", previous).
		Int("to", c.depth).
		Dur("elapsed", elapsed).
		Int("endDepth", endDepth).
		Msg("adjusted search depth")
	return c.depth
}

// Search runs s with the current bound and a deadline one budget from now, then adjusts the
// bound. A pass leaves the bound unchanged.
func (c *DepthController) Search(s *AlphaBeta, b game.Board, color game.Color) (Result, error) {
	start := s.Now()
	result, err := s.Search(b, color, c.depth, start.Add(c.budget))
	if err != nil {
		return result, err
	}
	c.Adjust(s.Now().Sub(start), result.Depth)
	return result, nil
}
