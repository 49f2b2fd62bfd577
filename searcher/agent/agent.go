package agent

import (
	"reversi/game"
	"reversi/searcher"
)

type Agent interface {
	// Color is the disc color the agent plays, fixed at construction.
	Color() game.Color
	// FindMove returns the square to play on b and the metrics of the search behind it (if
	// collected). searcher.ErrNoLegalMove signals a pass.
	FindMove(b game.Board) (game.Position, searcher.SearchMetrics, error)
}
