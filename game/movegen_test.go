package game

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

func positions(moves []Move) []Position {
	out := make([]Position, len(moves))
	for i, m := range moves {
		out[i] = m.Position
	}
	return out
}

func TestLegalMoves(t *testing.T) {
	t.Run("starting position offers four moves to either color", func(t *testing.T) {
		b := NewBoard()

		black := LegalMoves(b, Black)
		white := LegalMoves(b, White)

		require.Len(t, black, 4)
		require.Len(t, white, 4)
		require.Equal(t, []Position{{2, 3}, {3, 2}, {4, 5}, {5, 4}}, positions(black),
			"Moves should come out in row-major order")
		require.Equal(t, []Position{{2, 4}, {3, 5}, {4, 2}, {5, 3}}, positions(white),
			"Moves should come out in row-major order")
	})

	t.Run("collects a line per capturing direction", func(t *testing.T) {
		b := MustParseBoard(`
			........
			........
			...OX...
			..O.....
			..X.....
			........
			........
			........`)

		move, ok := FindMove(b, Black, Position{2, 2})

		require.True(t, ok)
		require.Equal(t, []CapturedLine{{{2, 3}}, {{3, 2}}}, move.Lines,
			"East line should precede the south line")
		require.Equal(t, 2, move.Captured())
	})

	t.Run("records a long line outward from the placed disc", func(t *testing.T) {
		b := MustParseBoard(`
			XOOOO...
			........
			........
			........
			........
			........
			........
			........`)

		moves := LegalMoves(b, Black)

		require.Len(t, moves, 1)
		require.Equal(t, Position{0, 5}, moves[0].Position)
		require.Equal(t, []CapturedLine{{{0, 4}, {0, 3}, {0, 2}, {0, 1}}}, moves[0].Lines)
	})

	t.Run("a run that falls off the board captures nothing", func(t *testing.T) {
		b := MustParseBoard(`
			OO......
			........
			........
			........
			........
			........
			........
			.......X`)

		require.Empty(t, LegalMoves(b, Black))
		require.False(t, HasMoves(b, Black))
	})

	t.Run("a run that ends on an empty square captures nothing", func(t *testing.T) {
		b := MustParseBoard(`
			........
			........
			........
			..OO.X..
			........
			........
			........
			........`)

		_, ok := FindMove(b, Black, Position{3, 1})

		require.False(t, ok, "Gap between the white run and the black disc should void the line")
	})

	t.Run("own disc next to the square is not a capture", func(t *testing.T) {
		b := MustParseBoard(`
			........
			........
			........
			...XO...
			........
			........
			........
			........`)

		_, ok := FindMove(b, Black, Position{3, 2})

		require.False(t, ok)
		require.Equal(t, []Position{{3, 5}}, positions(LegalMoves(b, Black)))
	})

	t.Run("empty has no moves", func(t *testing.T) {
		require.Empty(t, LegalMoves(NewBoard(), Empty))
	})
}

func TestFindMove(t *testing.T) {
	b := NewBoard()

	t.Run("rejects occupied squares", func(t *testing.T) {
		_, ok := FindMove(b, Black, Position{3, 3})
		require.False(t, ok)
	})

	t.Run("rejects squares off the board", func(t *testing.T) {
		_, ok := FindMove(b, Black, Position{-1, 8})
		require.False(t, ok)
	})

	t.Run("matches the generated move", func(t *testing.T) {
		move, ok := FindMove(b, White, Position{5, 3})
		require.True(t, ok)
		require.Equal(t, LegalMoves(b, White)[3], move)
	})
}

// randomBoards plays random games from the starting position and returns every position seen
// together with the side to move.
func randomBoards(t *testing.T, games int) ([]Board, []Color) {
	t.Helper()
	r := rand.New(rand.NewSource(7))
	var boards []Board
	var colors []Color
	for g := 0; g < games; g++ {
		b, color := NewBoard(), Black
		for passes := 0; passes < 2; {
			boards = append(boards, b)
			colors = append(colors, color)
			moves := LegalMoves(b, color)
			if len(moves) == 0 {
				passes++
			} else {
				passes = 0
				b = moves[r.Intn(len(moves))].Apply()
			}
			color = color.Opponent()
		}
	}
	return boards, colors
}

func TestLegalMovesProperties(t *testing.T) {
	boards, colors := randomBoards(t, 20)

	for i, b := range boards {
		color := colors[i]
		moves := LegalMoves(b, color)
		require.Equal(t, len(moves) > 0, HasMoves(b, color), "HasMoves should agree with LegalMoves")

		for _, m := range moves {
			require.NotEmpty(t, m.Lines, "Generated moves must capture")
			require.Equal(t, Empty, b.At(m.Position), "Moves are placed on empty squares")
			for _, line := range m.Lines {
				require.NotEmpty(t, line)
				for _, p := range line {
					require.Equal(t, color.Opponent(), b.At(p),
						"Captured squares hold the opponent's color before the move")
				}
			}
		}
	}
}
