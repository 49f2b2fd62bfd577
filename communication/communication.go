package communication

import "reversi/game"

// FindMoveRequest carries the current board in the referee's encoding.
type FindMoveRequest struct {
	Board [][]int `json:"board"`
}

// FindMoveResponse is the agent's answer. Pass is set when the agent has no legal move; Row
// and Col are meaningless then.
type FindMoveResponse struct {
	Row   int    `json:"row"`
	Col   int    `json:"col"`
	Pass  bool   `json:"pass"`
	Error string `json:"error,omitempty"`
}

func MoveResponse(pos game.Position) FindMoveResponse {
	return FindMoveResponse{Row: pos.Row, Col: pos.Col}
}

func PassResponse() FindMoveResponse {
	return FindMoveResponse{Pass: true}
}

func ErrorResponse(err error) FindMoveResponse {
	return FindMoveResponse{Error: err.Error()}
}

func (r FindMoveResponse) Position() game.Position {
	return game.Position{Row: r.Row, Col: r.Col}
}

// UpdateMessage reports one refereed turn to a viewer. Player and Board use the same encoding
// as FindMoveRequest.
type UpdateMessage struct {
	Turn     int           `json:"turn"`
	Player   int           `json:"player"`
	Position game.Position `json:"position"`
	Pass     bool          `json:"pass"`
	Board    [][]int       `json:"board"`
}
