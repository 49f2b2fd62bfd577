package agent

import (
	"reversi/game"
	"reversi/searcher"
	"time"

	"golang.org/x/exp/rand"
)

type randomAgent struct {
	color game.Color
	rng   *rand.Rand
}

// NewRandomAgent returns a baseline agent that plays a uniformly random legal move.
func NewRandomAgent(color game.Color, seed uint64) Agent {
	return &randomAgent{color: color, rng: rand.New(rand.NewSource(seed))}
}

func (a *randomAgent) Color() game.Color {
	return a.color
}

func (a *randomAgent) FindMove(b game.Board) (game.Position, searcher.SearchMetrics, error) {
	start := time.Now()
	moves := game.LegalMoves(b, a.color)
	if len(moves) == 0 {
		return game.Position{}, searcher.SearchMetrics{}, searcher.ErrNoLegalMove
	}
	move := moves[a.rng.Intn(len(moves))]
	return move.Position, searcher.SearchMetrics{Duration: time.Since(start)}, nil
}
