package client

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"reversi/communication"
	"reversi/game"
	"reversi/searcher"
	"strings"
	"time"
)

// Client is an agent that asks a remote agent server for its moves.
type Client struct {
	serverURL  string
	color      game.Color
	encoding   game.Encoding
	httpClient *http.Client
}

// NewClient initializes and returns a new Client. A zero timeout means no timeout.
func NewClient(serverURL string, color game.Color, encoding game.Encoding, timeout time.Duration) *Client {
	return &Client{
		serverURL:  serverURL,
		color:      color,
		encoding:   encoding,
		httpClient: &http.Client{Timeout: timeout},
	}
}

func (c *Client) Color() game.Color {
	return c.color
}

func (c *Client) FindMove(b game.Board) (game.Position, searcher.SearchMetrics, error) {
	start := time.Now()
	data, err := json.Marshal(communication.FindMoveRequest{Board: c.encoding.Encode(b)})
	if err != nil {
		return game.Position{}, searcher.SearchMetrics{}, fmt.Errorf("failed to encode board: %w", err)
	}

	resp, err := c.httpClient.Post(c.serverURL+"/findmove", "application/json", bytes.NewReader(data))
	if err != nil {
		return game.Position{}, searcher.SearchMetrics{}, fmt.Errorf("failed to request move: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		var out communication.FindMoveResponse
		if json.Unmarshal(body, &out) == nil && out.Error != "" {
			body = []byte(out.Error)
		}
		return game.Position{}, searcher.SearchMetrics{}, fmt.Errorf("agent returned status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var out communication.FindMoveResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return game.Position{}, searcher.SearchMetrics{}, fmt.Errorf("failed to decode move: %w", err)
	}

	metrics := searcher.SearchMetrics{Duration: time.Since(start)}
	if out.Pass {
		return game.Position{}, metrics, searcher.ErrNoLegalMove
	}
	return out.Position(), metrics, nil
}
