package metrics

import (
	"reversi/game"
	"reversi/searcher"
	"time"
)

// AgentConfig describes an agent taking part in an experiment.
type AgentConfig struct {
	ID     int           `yaml:"id"`
	Kind   string        `yaml:"kind"` // "minimax", "random" or "remote"
	Depth  int           `yaml:"depth"`
	Budget time.Duration `yaml:"budget"`
	Seed   uint64        `yaml:"seed"`
	URL    string        `yaml:"url"`
}

type MoveMetric struct {
	Step     int
	Player   game.Color
	Position game.Position
	Pass     bool
	Forced   bool // The agent's answer was invalid and the engine substituted a legal move
	searcher.SearchMetrics
}

type GameMetric struct {
	StartingPlayer game.Color
	Winner         game.Color // Empty on a draw
	BlackDiscs     int
	WhiteDiscs     int
	StartTime      time.Time
	EndTime        time.Time
	Duration       time.Duration
	TotalMoves     int
}
