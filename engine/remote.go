package engine

import (
	"bytes"
	"encoding/json"
	"net/http"
	"reversi/communication"
	"reversi/communication/client"
	"reversi/game"
	"reversi/gamemaster"
	"time"

	"github.com/rs/zerolog/log"
)

// NewRemoteEngine referees a game between two agent servers, black at blackURL and white at
// whiteURL. Boards are sent in the given encoding and every request is bounded by timeout.
func NewRemoteEngine(blackURL, whiteURL string, encoding game.Encoding, timeout time.Duration) *LocalEngine {
	return NewLocalEngine(
		client.NewClient(blackURL, game.Black, encoding, timeout),
		client.NewClient(whiteURL, game.White, encoding, timeout),
	)
}

// VisualHook returns an OnUpdate callback that posts every update as JSON to url, e.g. a
// board viewer, with colors in the given encoding. Delivery failures are logged and otherwise
// ignored.
func VisualHook(url string, encoding game.Encoding) func(gamemaster.Update) {
	httpClient := &http.Client{Timeout: time.Second}
	return func(u gamemaster.Update) {
		payload, err := json.Marshal(communication.UpdateMessage{
			Turn:     u.Turn,
			Player:   encoding.Value(u.Player),
			Position: u.Position,
			Pass:     u.Pass,
			Board:    encoding.Encode(u.Board),
		})
		if err != nil {
			log.Warn().Err(err).Msg("failed to encode update")
			return
		}
		resp, err := httpClient.Post(url, "application/json", bytes.NewReader(payload))
		if err != nil {
			log.Warn().Err(err).Msgf("failed to push turn %d to %s", u.Turn, url)
			return
		}
		resp.Body.Close()
	}
}
