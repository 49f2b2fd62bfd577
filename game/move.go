package game

// CapturedLine lists the discs flipped in one direction, ordered outward from the placed disc.
type CapturedLine []Position

// Move is a legal placement produced by LegalMoves or FindMove. It remembers the board it was
// generated from, so it can only ever be applied to that board.
type Move struct {
	Position
	Color Color
	Lines []CapturedLine

	origin Board
}

// Captured returns the number of discs the move flips.
func (m Move) Captured() int {
	n := 0
	for _, line := range m.Lines {
		n += len(line)
	}
	return n
}

// Origin returns the board the move was generated from.
func (m Move) Origin() Board {
	return m.origin
}

// Apply places the disc and flips every captured line, returning the resulting board.
// The origin board is left untouched.
func (m Move) Apply() Board {
	if len(m.Lines) == 0 {
		panic("game: applying a move that was not generated for a board")
	}
	b := m.origin
	b[m.Row][m.Col] = m.Color
	for _, line := range m.Lines {
		for _, p := range line {
			b[p.Row][p.Col] = m.Color
		}
	}
	return b
}
