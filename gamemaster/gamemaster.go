package gamemaster

import "reversi/game"

// Outcome summarises a finished (or abandoned) game.
type Outcome struct {
	Winner game.Color // Empty on a draw
	Black  int
	White  int
}

func (r *Referee) Outcome() Outcome {
	return Outcome{
		Winner: r.board.Winner(),
		Black:  r.board.Count(game.Black),
		White:  r.board.Count(game.White),
	}
}

// isGameOver checks if neither side can place a disc. A full board is the common case.
func isGameOver(b game.Board) bool {
	return !game.HasMoves(b, game.Black) && !game.HasMoves(b, game.White)
}
