package game

// Weights scores each square for positional play: corners dominate, squares next to a corner
// are penalised, the rest of the edge and the ring around the centre are mildly favoured.
var Weights = [Size][Size]int{
	{1000, -10, 20, 10, 10, 20, -10, 1000},
	{-10, -10, 20, 1, 1, 20, -10, -10},
	{20, 20, 20, 1, 1, 20, 20, 20},
	{10, 1, 1, 5, 5, 1, 1, 10},
	{10, 1, 1, 5, 5, 1, 1, 10},
	{20, 20, 20, 1, 1, 20, 20, 20},
	{-10, -10, 20, 1, 1, 20, -10, -10},
	{1000, -10, 20, 10, 10, 20, -10, 1000},
}

// Evaluate scores b for both players. While any square is empty each player gets the sum of
// Weights over their discs; on a full board the plain disc counts are returned, since that is
// what decides the game.
func Evaluate(b Board, me, opponent Color) (myScore, opponentScore int) {
	var myDiscs, opponentDiscs, empty int
	for row := range b {
		for col, cell := range b[row] {
			switch cell {
			case me:
				myDiscs++
				myScore += Weights[row][col]
			case opponent:
				opponentDiscs++
				opponentScore += Weights[row][col]
			default:
				empty++
			}
		}
	}
	if empty > 0 {
		return myScore, opponentScore
	}
	return myDiscs, opponentDiscs
}

// Evaluator scores a board from the point of view of me. Evaluate is the default.
type Evaluator func(b Board, me, opponent Color) (myScore, opponentScore int)
