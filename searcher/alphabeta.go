package searcher

import (
	"fmt"
	"reversi/game"
	"time"
)

type Option func(s *AlphaBeta)

// WithEvaluationFn replaces the positional evaluator used at the leaves.
func WithEvaluationFn(evaluate game.Evaluator) Option {
	return func(s *AlphaBeta) {
		if evaluate != nil {
			s.evaluate = evaluate
		}
	}
}

// WithClock replaces the wall clock polled against the deadline.
func WithClock(now func() time.Time) Option {
	return func(s *AlphaBeta) {
		if now != nil {
			s.now = now
		}
	}
}

func WithMetrics() Option {
	return func(s *AlphaBeta) {
		s.metrics = NewCollector()
	}
}

// AlphaBeta is a depth- and deadline-bounded minimax search with alpha-beta pruning.
type AlphaBeta struct {
	evaluate game.Evaluator
	now      func() time.Time
	metrics  Collector
}

func NewAlphaBeta(options ...Option) *AlphaBeta {
	s := &AlphaBeta{ // Default values
		evaluate: game.Evaluate,
		now:      time.Now,
		metrics:  NewDummyCollector(),
	}
	for _, option := range options {
		option(s)
	}
	return s
}

// Now reads the search clock.
func (s *AlphaBeta) Now() time.Time {
	return s.now()
}

// Search picks the move for color on b, looking at most depth plies ahead and no longer than
// deadline. Of several moves with the best score the first in generation order wins.
// ErrNoLegalMove is returned when color has to pass.
func (s *AlphaBeta) Search(b game.Board, color game.Color, depth int, deadline time.Time) (Result, error) {
	if depth < 1 {
		return Result{}, fmt.Errorf("search depth must be positive, got %d", depth)
	}
	moves := game.LegalMoves(b, color)
	if len(moves) == 0 {
		return Result{}, ErrNoLegalMove
	}

	s.metrics.Start(depth)
	n := node{search: s, me: color, opponent: color.Opponent(), deadline: deadline}

	best := Result{Score: -Infinity}
	alpha, beta := -Infinity, Infinity
	for _, move := range moves {
		score, endDepth := n.min(move.Apply(), depth-1, alpha, beta)
		if score > best.Score {
			best.Move, best.Score, best.Depth = move, score, endDepth
			alpha = max(alpha, score)
		}
	}
	best.Metrics = s.metrics.Complete(best.Depth)
	return best, nil
}

// node carries what stays fixed across one search. Every board below the root is a fresh
// value owned by the call that produced it.
type node struct {
	search   *AlphaBeta
	me       game.Color
	opponent game.Color
	deadline time.Time
}

// cutoff reports whether a node must be scored instead of expanded. moves is only generated
// when the depth and deadline checks pass.
func (n node) cutoff(b game.Board, color game.Color, depth int) ([]game.Move, bool) {
	n.search.metrics.AddNode()
	if depth == 0 {
		return nil, true
	}
	if !n.search.now().Before(n.deadline) {
		n.search.metrics.AddTimeout()
		return nil, true
	}
	moves := game.LegalMoves(b, color)
	return moves, len(moves) == 0
}

func (n node) max(b game.Board, depth, alpha, beta int) (int, int) {
	moves, stop := n.cutoff(b, n.me, depth)
	if stop {
		n.search.metrics.AddLeaf()
		my, _ := n.search.evaluate(b, n.me, n.opponent)
		return my, depth
	}

	best, endDepth := -Infinity, depth
	for _, move := range moves {
		score, d := n.min(move.Apply(), depth-1, alpha, beta)
		if score > best {
			best, endDepth = score, d
			alpha = max(alpha, best)
		}
		if beta <= alpha {
			n.search.metrics.AddCutoff()
			break
		}
	}
	return best, endDepth
}

func (n node) min(b game.Board, depth, alpha, beta int) (int, int) {
	moves, stop := n.cutoff(b, n.opponent, depth)
	if stop {
		n.search.metrics.AddLeaf()
		_, opp := n.search.evaluate(b, n.me, n.opponent)
		return opp, depth
	}

	best, endDepth := Infinity, depth
	for _, move := range moves {
		score, d := n.max(move.Apply(), depth-1, alpha, beta)
		if score < best {
			best, endDepth = score, d
			beta = min(beta, best)
		}
		if beta <= alpha {
			n.search.metrics.AddCutoff()
			break
		}
	}
	return best, endDepth
}
