package gamemaster

import (
	"errors"
	"fmt"
	"reversi/game"
)

var (
	ErrGameOver    = errors.New("game is over - no moves allowed")
	ErrIllegalMove = errors.New("illegal move")
)

// Update records one turn: a placement or a pass, and the board after it.
type Update struct {
	Turn     int           `json:"turn"`
	Player   game.Color    `json:"player"`
	Position game.Position `json:"position"`
	Pass     bool          `json:"pass"`
	Board    game.Board    `json:"board"`
}

// Referee holds the authoritative board of a game and the side to move. It accepts only legal
// placements, and passes only from a side without a legal placement.
type Referee struct {
	board   game.Board
	turn    game.Color
	over    bool
	history []Update
}

// NewReferee starts a game from the standard position with black to move.
func NewReferee() *Referee {
	return NewRefereeFrom(game.NewBoard(), game.Black)
}

func NewRefereeFrom(b game.Board, turn game.Color) *Referee {
	return &Referee{
		board: b,
		turn:  turn,
		over:  isGameOver(b),
	}
}

func (r *Referee) Board() game.Board {
	return r.board
}

func (r *Referee) Turn() game.Color {
	return r.turn
}

func (r *Referee) Over() bool {
	return r.over
}

// History returns a copy of every update so far, oldest first.
func (r *Referee) History() []Update {
	return append([]Update(nil), r.history...)
}

// LegalMoves lists the squares the side to move may play, in row-major order.
func (r *Referee) LegalMoves() []game.Position {
	moves := game.LegalMoves(r.board, r.turn)
	positions := make([]game.Position, len(moves))
	for i, m := range moves {
		positions[i] = m.Position
	}
	return positions
}

func (r *Referee) Play(pos game.Position) error {
	if r.over {
		return ErrGameOver
	}
	move, ok := game.FindMove(r.board, r.turn, pos)
	if !ok {
		return fmt.Errorf("%w: %s cannot play %s", ErrIllegalMove, r.turn, pos)
	}
	r.board = move.Apply()
	r.record(Update{Player: r.turn, Position: pos, Board: r.board})
	return nil
}

func (r *Referee) Pass() error {
	if r.over {
		return ErrGameOver
	}
	if game.HasMoves(r.board, r.turn) {
		return fmt.Errorf("%w: %s has a legal move and cannot pass", ErrIllegalMove, r.turn)
	}
	r.record(Update{Player: r.turn, Pass: true, Board: r.board})
	return nil
}

func (r *Referee) record(u Update) {
	u.Turn = len(r.history) + 1
	r.history = append(r.history, u)
	r.turn = r.turn.Opponent()
	r.over = isGameOver(r.board)
}
