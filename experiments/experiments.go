package experiments

import (
	"context"
	"errors"
	"fmt"
	"os"
	"reversi/communication/client"
	"reversi/engine"
	"reversi/experiments/metrics"
	"reversi/game"
	"reversi/searcher"
	"reversi/searcher/agent"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"
)

const (
	KindMinimax = "minimax"
	KindRandom  = "random"
	KindRemote  = "remote"
)

// Setup describes an arena experiment: every matchup plays Games games, the two agents
// swapping colors after each game.
type Setup struct {
	Name     string                `yaml:"name"`
	Games    int                   `yaml:"games"`    // Per matchup
	Parallel int                   `yaml:"parallel"` // Games played at once
	Agents   []metrics.AgentConfig `yaml:"agents"`
	Matchups [][]int               `yaml:"matchups"` // Pairs of agent IDs
}

// Results holds everything an experiment produced, in game order.
type Results struct {
	Games []metrics.GameRecord
	Moves []metrics.MoveRecord
	Wins  map[int]int // Agent ID -> games won
	Draws int
}

func LoadSetup(path string) (Setup, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Setup{}, fmt.Errorf("failed to read setup: %w", err)
	}
	var setup Setup
	if err := yaml.Unmarshal(data, &setup); err != nil {
		return Setup{}, fmt.Errorf("failed to parse setup %s: %w", path, err)
	}
	if err := setup.Validate(); err != nil {
		return Setup{}, err
	}
	return setup, nil
}

func (s *Setup) Validate() error {
	if s.Name == "" {
		return errors.New("setup needs a name")
	}
	if s.Games < 1 {
		return fmt.Errorf("setup %s: games must be positive, got %d", s.Name, s.Games)
	}
	if s.Parallel < 1 {
		s.Parallel = 1
	}

	ids := make(map[int]bool, len(s.Agents))
	for _, config := range s.Agents {
		if ids[config.ID] {
			return fmt.Errorf("setup %s: duplicate agent id %d", s.Name, config.ID)
		}
		ids[config.ID] = true

		switch config.Kind {
		case KindMinimax:
			if config.Depth < 0 || config.Budget < 0 {
				return fmt.Errorf("setup %s: agent %d has a negative depth or budget", s.Name, config.ID)
			}
		case KindRandom:
		case KindRemote:
			if config.URL == "" {
				return fmt.Errorf("setup %s: remote agent %d needs a url", s.Name, config.ID)
			}
		default:
			return fmt.Errorf("setup %s: agent %d has unknown kind %q", s.Name, config.ID, config.Kind)
		}
	}

	if len(s.Matchups) == 0 {
		return fmt.Errorf("setup %s: no matchups", s.Name)
	}
	for i, matchup := range s.Matchups {
		if len(matchup) != 2 {
			return fmt.Errorf("setup %s: matchup %d must name two agents", s.Name, i+1)
		}
		for _, id := range matchup {
			if !ids[id] {
				return fmt.Errorf("setup %s: matchup %d names unknown agent %d", s.Name, i+1, id)
			}
		}
	}
	return nil
}

type match struct {
	game         int
	matchup      int
	black, white metrics.AgentConfig
}

// Run plays every game of the experiment and returns the collected records.
func Run(ctx context.Context, setup Setup) (Results, error) {
	if err := setup.Validate(); err != nil {
		return Results{}, err
	}
	configs := make(map[int]metrics.AgentConfig, len(setup.Agents))
	for _, config := range setup.Agents {
		configs[config.ID] = config
	}

	var matches []match
	for mi, matchup := range setup.Matchups {
		config1, config2 := configs[matchup[0]], configs[matchup[1]]
		for i := 0; i < setup.Games; i++ {
			m := match{game: len(matches) + 1, matchup: mi + 1, black: config1, white: config2}
			if i%2 == 1 {
				m.black, m.white = config2, config1
			}
			matches = append(matches, m)
		}
	}

	log.Info().Msgf("starting %s experiment: %d games, %d at a time", setup.Name, len(matches), setup.Parallel)

	gameRecords := make([]metrics.GameRecord, len(matches))
	moveRecords := make([][]metrics.MoveRecord, len(matches))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(setup.Parallel)
	for i, m := range matches {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			record, moves, err := runGame(m)
			if err != nil {
				return err
			}
			gameRecords[i] = record
			moveRecords[i] = moves
			log.Info().Msgf("completed matchup %d game %d with winner: %s", m.matchup, m.game, record.Winner)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Results{}, err
	}

	results := Results{Games: gameRecords, Wins: make(map[int]int)}
	for i, record := range gameRecords {
		results.Moves = append(results.Moves, moveRecords[i]...)
		switch record.Winner {
		case game.Black:
			results.Wins[record.Black]++
		case game.White:
			results.Wins[record.White]++
		default:
			results.Draws++
		}
	}

	log.Info().Msgf("completed %s experiment: wins %v, draws %d", setup.Name, results.Wins, results.Draws)
	return results, nil
}

// RunAndStore runs the experiment and writes its setup and records below root.
func RunAndStore(ctx context.Context, setup Setup, root string) (string, error) {
	results, err := Run(ctx, setup)
	if err != nil {
		return "", err
	}

	writer, err := metrics.NewWriter(root, setup.Name)
	if err != nil {
		return "", fmt.Errorf("failed to create experiment writer: %w", err)
	}
	if err := writer.WriteSetup(setup); err != nil {
		return "", err
	}
	if err := writer.WriteAgentConfigs(setup.Agents); err != nil {
		return "", fmt.Errorf("failed to store agent configs: %w", err)
	}
	log.Info().Msg("stored agent configs")

	if err := writer.WriteGameRecords(results.Games); err != nil {
		return "", fmt.Errorf("failed to store game records: %w", err)
	}
	log.Info().Msg("stored game records")

	if err := writer.WriteMoveRecords(results.Moves); err != nil {
		return "", fmt.Errorf("failed to store move records: %w", err)
	}
	log.Info().Msg("stored move records")
	return writer.Dir(), nil
}

func runGame(m match) (metrics.GameRecord, []metrics.MoveRecord, error) {
	black, err := createAgent(m.black, game.Black)
	if err != nil {
		return metrics.GameRecord{}, nil, err
	}
	white, err := createAgent(m.white, game.White)
	if err != nil {
		return metrics.GameRecord{}, nil, err
	}

	_, gameMetric, moveMetrics := engine.NewLocalEngine(black, white).Run()

	record := metrics.GameRecord{
		ID:         m.game,
		Black:      m.black.ID,
		White:      m.white.ID,
		GameMetric: gameMetric,
	}
	moves := make([]metrics.MoveRecord, len(moveMetrics))
	for i, mm := range moveMetrics {
		moves[i] = metrics.MoveRecord{Game: m.game, MoveMetric: mm}
	}
	return record, moves, nil
}

func createAgent(config metrics.AgentConfig, color game.Color) (agent.Agent, error) {
	switch config.Kind {
	case KindMinimax:
		options := []agent.Option{agent.WithSearchOptions(searcher.WithMetrics())}
		if config.Depth > 0 {
			options = append(options, agent.WithDepth(config.Depth))
		}
		if config.Budget > 0 {
			options = append(options, agent.WithBudget(config.Budget))
		}
		return agent.NewMinimaxAgent(color, options...), nil
	case KindRandom:
		return agent.NewRandomAgent(color, config.Seed), nil
	case KindRemote:
		timeout := config.Budget + time.Second
		return client.NewClient(config.URL, color, game.DefaultEncoding, timeout), nil
	}
	return nil, fmt.Errorf("unknown agent kind %q", config.Kind)
}
