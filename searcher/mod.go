package searcher

import (
	"errors"
	"reversi/game"
)

// Infinity bounds every score the evaluator can produce.
const Infinity = 999999

// ErrNoLegalMove is returned when the side to move has to pass.
var ErrNoLegalMove = errors.New("no legal move")

// Result is the outcome of a root search.
type Result struct {
	Move  game.Move
	Score int
	// Depth is the remaining depth at which the chosen line bottomed out. It is 0 when the line
	// was searched to the full depth bound and positive when the deadline or a position without
	// moves stopped it early.
	Depth   int
	Metrics SearchMetrics
}
