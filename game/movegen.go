package game

// Compass directions in probing order: N, NE, E, SE, S, SW, W, NW.
var directions = [8]Position{
	{-1, 0}, {-1, 1}, {0, 1}, {1, 1},
	{1, 0}, {1, -1}, {0, -1}, {-1, -1},
}

// LegalMoves returns every legal move for color in row-major order of the placed square.
// An empty result means color has to pass.
func LegalMoves(b Board, color Color) []Move {
	var moves []Move
	for row := 0; row < Size; row++ {
		for col := 0; col < Size; col++ {
			if b[row][col] != Empty {
				continue
			}
			pos := Position{Row: row, Col: col}
			if lines := captures(&b, pos, color); len(lines) > 0 {
				moves = append(moves, Move{Position: pos, Color: color, Lines: lines, origin: b})
			}
		}
	}
	return moves
}

// HasMoves reports whether color has at least one legal move.
func HasMoves(b Board, color Color) bool {
	for row := 0; row < Size; row++ {
		for col := 0; col < Size; col++ {
			if b[row][col] != Empty {
				continue
			}
			pos := Position{Row: row, Col: col}
			for _, dir := range directions {
				if len(captureLine(&b, pos, dir, color)) > 0 {
					return true
				}
			}
		}
	}
	return false
}

// FindMove returns the legal move placing color at pos, if there is one.
func FindMove(b Board, color Color, pos Position) (Move, bool) {
	if !pos.InBounds() || b.At(pos) != Empty {
		return Move{}, false
	}
	lines := captures(&b, pos, color)
	if len(lines) == 0 {
		return Move{}, false
	}
	return Move{Position: pos, Color: color, Lines: lines, origin: b}, true
}

func captures(b *Board, pos Position, color Color) []CapturedLine {
	var lines []CapturedLine
	for _, dir := range directions {
		if line := captureLine(b, pos, dir, color); len(line) > 0 {
			lines = append(lines, line)
		}
	}
	return lines
}

// captureLine walks from pos in direction dir over opponent discs. The run only counts when
// it is closed by a disc of color; running off the board or onto an empty square voids it.
func captureLine(b *Board, pos, dir Position, color Color) CapturedLine {
	opponent := color.Opponent()
	if opponent == Empty {
		return nil
	}
	var line CapturedLine
	for p := pos.add(dir); p.InBounds(); p = p.add(dir) {
		switch b[p.Row][p.Col] {
		case opponent:
			line = append(line, p)
		case color:
			return line
		default:
			return nil
		}
	}
	return nil
}
