package agent

import (
	"reversi/game"
	"reversi/searcher"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestMinimaxAgent(t *testing.T) {
	t.Run("plays a legal opening move", func(t *testing.T) {
		a := NewMinimaxAgent(game.White, WithDepth(3), WithBudget(time.Minute))

		pos, err := a.DecideMove(game.NewBoard())

		require.NoError(t, err)
		_, ok := game.FindMove(game.NewBoard(), game.White, pos)
		require.True(t, ok, "Chosen square %s should be legal", pos)
		require.Equal(t, 4, a.Depth(), "A fast full-depth search should deepen the next one")
	})

	t.Run("surfaces a pass", func(t *testing.T) {
		b := game.MustParseBoard(`
			XXXX....
			........
			........
			........
			........
			........
			........
			........`)
		a := NewMinimaxAgent(game.White)

		_, err := a.DecideMove(b)

		require.ErrorIs(t, err, searcher.ErrNoLegalMove)
		require.Equal(t, 5, a.Depth())
	})

	t.Run("backs off after running out of time", func(t *testing.T) {
		start := time.Unix(0, 0)
		reads := 0
		clock := func() time.Time {
			reads++
			if reads == 1 {
				return start
			}
			return start.Add(time.Second)
		}
		a := NewMinimaxAgent(game.Black,
			WithBudget(time.Second),
			WithSearchOptions(searcher.WithClock(clock), searcher.WithMetrics()))

		pos, metrics, err := a.FindMove(game.NewBoard())

		require.NoError(t, err)
		require.Equal(t, game.Position{Row: 2, Col: 3}, pos)
		require.True(t, metrics.TimedOut)
		require.Equal(t, 4, a.Depth())
	})

	t.Run("rejects empty as a color", func(t *testing.T) {
		require.Panics(t, func() { NewMinimaxAgent(game.Empty) })
	})
}

func TestRandomAgent(t *testing.T) {
	t.Run("plays legal moves reproducibly", func(t *testing.T) {
		a := NewRandomAgent(game.Black, 3)
		b := NewRandomAgent(game.Black, 3)

		for i := 0; i < 5; i++ {
			posA, _, errA := a.FindMove(game.NewBoard())
			posB, _, errB := b.FindMove(game.NewBoard())

			require.NoError(t, errA)
			require.NoError(t, errB)
			require.Equal(t, posA, posB, "Same seed should give the same moves")
			_, ok := game.FindMove(game.NewBoard(), game.Black, posA)
			require.True(t, ok)
		}
	})

	t.Run("passes without moves", func(t *testing.T) {
		_, _, err := NewRandomAgent(game.White, 1).FindMove(game.MustParseBoard(`
			XX......
			........
			........
			........
			........
			........
			........
			........`))
		require.ErrorIs(t, err, searcher.ErrNoLegalMove)
	})
}
