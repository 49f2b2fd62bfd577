package engine

import (
	"errors"
	"reversi/experiments/metrics"
	"reversi/game"
	"reversi/gamemaster"
	"reversi/meta"
	"reversi/searcher"
	"reversi/searcher/agent"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/slices"
)

type LocalEngine struct {
	Referee  *gamemaster.Referee
	Agents   map[game.Color]agent.Agent
	MaxTurns int

	// OnUpdate, when set, is called after every turn with the referee's latest update
	OnUpdate func(gamemaster.Update)
}

// NewLocalEngine referees a game from the standard position between two agents.
func NewLocalEngine(black, white agent.Agent) *LocalEngine {
	return NewLocalEngineFrom(gamemaster.NewReferee(), black, white)
}

func NewLocalEngineFrom(referee *gamemaster.Referee, black, white agent.Agent) *LocalEngine {
	if black.Color() != game.Black || white.Color() != game.White {
		panic("agents must play black and white respectively")
	}
	return &LocalEngine{
		Referee:  referee,
		Agents:   map[game.Color]agent.Agent{game.Black: black, game.White: white},
		MaxTurns: meta.MaxTurns,
	}
}

// Run executes the entire game loop until neither side can move.
func (e *LocalEngine) Run() (game.Color, metrics.GameMetric, []metrics.MoveMetric) {
	gameMetric := metrics.GameMetric{
		StartingPlayer: e.Referee.Turn(),
		StartTime:      time.Now(),
	}
	log.Info().Msgf("%s is starting", e.Referee.Turn())

	var moveMetrics []metrics.MoveMetric
	for turn := 1; !e.Referee.Over() && turn <= e.MaxTurns; turn++ {
		moveMetrics = append(moveMetrics, e.playTurn(turn))
		if e.OnUpdate != nil {
			history := e.Referee.History()
			e.OnUpdate(history[len(history)-1])
		}
	}

	if !e.Referee.Over() {
		log.Warn().Msgf("stopped after %d turns (game not finished)", e.MaxTurns)
	}

	outcome := e.Referee.Outcome()
	gameMetric.Winner = outcome.Winner
	gameMetric.BlackDiscs = outcome.Black
	gameMetric.WhiteDiscs = outcome.White
	gameMetric.EndTime = time.Now()
	gameMetric.Duration = gameMetric.EndTime.Sub(gameMetric.StartTime)
	gameMetric.TotalMoves = len(moveMetrics)

	log.Info().Msgf("game over: winner %s (black %d, white %d)", outcome.Winner, outcome.Black, outcome.White)
	return outcome.Winner, gameMetric, moveMetrics
}

func (e *LocalEngine) playTurn(turn int) metrics.MoveMetric {
	player := e.Referee.Turn()
	pos, searchMetrics, err := e.Agents[player].FindMove(e.Referee.Board())
	moveMetric := metrics.MoveMetric{Step: turn, Player: player, SearchMetrics: searchMetrics}

	legal := e.Referee.LegalMoves()
	if len(legal) == 0 {
		if err == nil {
			log.Warn().Msgf("%s returned %s without a legal move => forcing pass", player, pos)
			moveMetric.Forced = true
		}
		if err := e.Referee.Pass(); err != nil {
			panic(err)
		}
		moveMetric.Pass = true
		return moveMetric
	}

	if err != nil || !slices.Contains(legal, pos) {
		if err != nil && !errors.Is(err, searcher.ErrNoLegalMove) {
			log.Warn().Err(err).Msgf("%s failed to find a move", player)
		}
		log.Warn().Msgf("%s returned an invalid move %s => forcing %s", player, pos, legal[0])
		pos = legal[0]
		moveMetric.Forced = true
	}
	if err := e.Referee.Play(pos); err != nil {
		panic(err)
	}
	moveMetric.Position = pos
	return moveMetric
}
