package game

import (
	"errors"
	"fmt"
)

var ErrInvalidBoard = errors.New("invalid board")

// Encoding maps squares to the integers a referee uses on the wire.
type Encoding struct {
	Empty int `json:"empty" yaml:"empty"`
	Black int `json:"black" yaml:"black"`
	White int `json:"white" yaml:"white"`
}

// DefaultEncoding is the referee convention: -1 for a free square, 0 and 1 for the players.
var DefaultEncoding = Encoding{Empty: -1, Black: 0, White: 1}

func (e Encoding) validate() error {
	if e.Empty == e.Black || e.Empty == e.White || e.Black == e.White {
		return fmt.Errorf("encoding values must be distinct: %+v", e)
	}
	return nil
}

// Color decodes a single square value.
func (e Encoding) Color(v int) (Color, error) {
	switch v {
	case e.Empty:
		return Empty, nil
	case e.Black:
		return Black, nil
	case e.White:
		return White, nil
	}
	return Empty, fmt.Errorf("%w: unknown square value %d", ErrInvalidBoard, v)
}

// Value encodes a single square.
func (e Encoding) Value(c Color) int {
	switch c {
	case Black:
		return e.Black
	case White:
		return e.White
	}
	return e.Empty
}

// Decode converts a referee grid into a Board. The grid must be exactly 8x8.
func (e Encoding) Decode(grid [][]int) (Board, error) {
	var b Board
	if err := e.validate(); err != nil {
		return b, err
	}
	if len(grid) != Size {
		return b, fmt.Errorf("%w: got %d rows, want %d", ErrInvalidBoard, len(grid), Size)
	}
	for row, cells := range grid {
		if len(cells) != Size {
			return Board{}, fmt.Errorf("%w: row %d has %d squares, want %d", ErrInvalidBoard, row, len(cells), Size)
		}
		for col, v := range cells {
			c, err := e.Color(v)
			if err != nil {
				return Board{}, fmt.Errorf("row %d col %d: %w", row, col, err)
			}
			b[row][col] = c
		}
	}
	return b, nil
}

func (e Encoding) Encode(b Board) [][]int {
	grid := make([][]int, Size)
	for row := range b {
		grid[row] = make([]int, Size)
		for col, cell := range b[row] {
			grid[row][col] = e.Value(cell)
		}
	}
	return grid
}
