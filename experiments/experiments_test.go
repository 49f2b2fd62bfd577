package experiments

import (
	"context"
	"os"
	"path/filepath"
	"reversi/experiments/metrics"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

const setupYAML = `
name: random-vs-minimax
games: 2
parallel: 2
agents:
  - id: 1
    kind: random
    seed: 5
  - id: 2
    kind: minimax
    depth: 2
    budget: 20ms
matchups:
  - [1, 2]
`

func writeSetup(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "setup.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadSetup(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		setup, err := LoadSetup(writeSetup(t, setupYAML))
		require.NoError(t, err)
		require.Equal(t, "random-vs-minimax", setup.Name)
		require.Equal(t, 2, setup.Games)
		require.Equal(t, []metrics.AgentConfig{
			{ID: 1, Kind: KindRandom, Seed: 5},
			{ID: 2, Kind: KindMinimax, Depth: 2, Budget: 20 * time.Millisecond},
		}, setup.Agents)
		require.Equal(t, [][]int{{1, 2}}, setup.Matchups)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadSetup(filepath.Join(t.TempDir(), "nope.yaml"))
		require.Error(t, err)
	})

	t.Run("invalid setups", func(t *testing.T) {
		for name, content := range map[string]string{
			"no name":       "games: 1\nagents: [{id: 1, kind: random}]\nmatchups: [[1, 1]]",
			"no games":      "name: x\nagents: [{id: 1, kind: random}]\nmatchups: [[1, 1]]",
			"unknown kind":  "name: x\ngames: 1\nagents: [{id: 1, kind: mcts}]\nmatchups: [[1, 1]]",
			"duplicate id":  "name: x\ngames: 1\nagents: [{id: 1, kind: random}, {id: 1, kind: random}]\nmatchups: [[1, 1]]",
			"unknown agent": "name: x\ngames: 1\nagents: [{id: 1, kind: random}]\nmatchups: [[1, 2]]",
			"short matchup": "name: x\ngames: 1\nagents: [{id: 1, kind: random}]\nmatchups: [[1]]",
			"remote no url": "name: x\ngames: 1\nagents: [{id: 1, kind: remote}]\nmatchups: [[1, 1]]",
			"no matchups":   "name: x\ngames: 1\nagents: [{id: 1, kind: random}]",
		} {
			_, err := LoadSetup(writeSetup(t, content))
			require.Error(t, err, name)
		}
	})
}

func TestRun(t *testing.T) {
	setup, err := LoadSetup(writeSetup(t, setupYAML))
	require.NoError(t, err)

	results, err := Run(context.Background(), setup)
	require.NoError(t, err)

	require.Len(t, results.Games, 2)
	require.Equal(t, 1, results.Games[0].Black, "Agent 1 opens the first game")
	require.Equal(t, 2, results.Games[1].Black, "Colors swap between games")

	wins := results.Draws
	for _, n := range results.Wins {
		wins += n
	}
	require.Equal(t, 2, wins, "Every game is either won or drawn")

	moves := 0
	for i, record := range results.Games {
		require.Equal(t, i+1, record.ID)
		moves += record.TotalMoves
	}
	require.Len(t, results.Moves, moves)
	require.Equal(t, 1, results.Moves[0].Game)
}

func TestRunAndStore(t *testing.T) {
	setup, err := LoadSetup(writeSetup(t, setupYAML))
	require.NoError(t, err)
	setup.Games = 1

	dir, err := RunAndStore(context.Background(), setup, t.TempDir())
	require.NoError(t, err)
	for _, name := range []string{"setup.yaml", "agent_configs.csv", "game_records.csv", "move_records.csv"} {
		require.FileExists(t, filepath.Join(dir, name))
	}

	stored, err := LoadSetup(filepath.Join(dir, "setup.yaml"))
	require.NoError(t, err)
	require.Equal(t, setup, stored, "The stored setup reproduces the experiment")
}

func TestRunCancelled(t *testing.T) {
	setup, err := LoadSetup(writeSetup(t, setupYAML))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = Run(ctx, setup)
	require.ErrorIs(t, err, context.Canceled)
}
