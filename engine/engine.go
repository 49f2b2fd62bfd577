package engine

import (
	"reversi/experiments/metrics"
	"reversi/game"
)

type Engine interface {
	// Run plays a game till neither side can move or a max number of turns is reached
	Run() (winner game.Color, gameMetric metrics.GameMetric, moveMetrics []metrics.MoveMetric)
}
