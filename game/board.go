package game

import (
	"fmt"
	"strings"
)

// Size is the width and height of the board. The evaluation table is laid out for this size.
const Size = 8

// Color is the content of a square: Empty or a disc of one of the two players.
type Color int8

const (
	Empty Color = iota
	Black
	White
)

// Opponent returns the other disc color. Empty has no opponent.
func (c Color) Opponent() Color {
	switch c {
	case Black:
		return White
	case White:
		return Black
	}
	return Empty
}

func (c Color) String() string {
	switch c {
	case Black:
		return "black"
	case White:
		return "white"
	case Empty:
		return "empty"
	}
	return fmt.Sprintf("Color(%d)", int8(c))
}

// Symbol is the single character used by Board.String and ParseBoard.
func (c Color) Symbol() byte {
	switch c {
	case Black:
		return 'X'
	case White:
		return 'O'
	}
	return '.'
}

// Position is a 0-indexed (row, column) square on the board.
type Position struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

func (p Position) InBounds() bool {
	return p.Row >= 0 && p.Row < Size && p.Col >= 0 && p.Col < Size
}

func (p Position) add(d Position) Position {
	return Position{Row: p.Row + d.Row, Col: p.Col + d.Col}
}

// String returns the square in algebraic form, e.g. "d3" for row 2, column 3.
func (p Position) String() string {
	if !p.InBounds() {
		return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
	}
	return fmt.Sprintf("%c%d", 'a'+p.Col, p.Row+1)
}

// Board is an 8x8 grid. It is a value type: assignment copies it, so a board handed to
// another function can never be changed behind the caller's back.
type Board [Size][Size]Color

// NewBoard returns the standard starting position.
func NewBoard() Board {
	var b Board
	mid := Size / 2
	b[mid-1][mid-1], b[mid][mid] = White, White
	b[mid-1][mid], b[mid][mid-1] = Black, Black
	return b
}

func (b Board) At(p Position) Color {
	return b[p.Row][p.Col]
}

// With returns a copy of the board with the square p set to c.
func (b Board) With(p Position, c Color) Board {
	b[p.Row][p.Col] = c
	return b
}

// Count returns the number of squares holding c.
func (b Board) Count(c Color) int {
	n := 0
	for row := range b {
		for _, cell := range b[row] {
			if cell == c {
				n++
			}
		}
	}
	return n
}

func (b Board) Full() bool {
	return b.Count(Empty) == 0
}

// Winner compares disc counts. It returns Empty on a draw.
func (b Board) Winner() Color {
	black, white := b.Count(Black), b.Count(White)
	switch {
	case black > white:
		return Black
	case white > black:
		return White
	}
	return Empty
}

func (b Board) String() string {
	var sb strings.Builder
	for row := range b {
		for _, cell := range b[row] {
			sb.WriteByte(cell.Symbol())
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// ParseBoard reads the format produced by Board.String. Whitespace inside a row is ignored,
// so rows may be written spaced out. 'X' or 'B' is black, 'O' or 'W' is white, '.' or '-'
// is empty.
func ParseBoard(s string) (Board, error) {
	var b Board
	row := 0
	for _, line := range strings.Split(strings.TrimSpace(s), "\n") {
		line = strings.Join(strings.Fields(line), "")
		if line == "" {
			continue
		}
		if row >= Size {
			return Board{}, fmt.Errorf("%w: more than %d rows", ErrInvalidBoard, Size)
		}
		if len(line) != Size {
			return Board{}, fmt.Errorf("%w: row %d has %d squares", ErrInvalidBoard, row, len(line))
		}
		for col := 0; col < Size; col++ {
			switch line[col] {
			case 'X', 'x', 'B', 'b':
				b[row][col] = Black
			case 'O', 'o', 'W', 'w':
				b[row][col] = White
			case '.', '-':
				b[row][col] = Empty
			default:
				return Board{}, fmt.Errorf("%w: unknown square %q at row %d", ErrInvalidBoard, line[col], row)
			}
		}
		row++
	}
	if row != Size {
		return Board{}, fmt.Errorf("%w: got %d rows", ErrInvalidBoard, row)
	}
	return b, nil
}

// MustParseBoard is ParseBoard for fixed positions known to be valid.
func MustParseBoard(s string) Board {
	b, err := ParseBoard(s)
	if err != nil {
		panic(err)
	}
	return b
}
