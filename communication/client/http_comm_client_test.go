package client

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"reversi/game"
	"reversi/searcher"
	"reversi/searcher/agent"

	"github.com/stretchr/testify/require"
)

func TestClient(t *testing.T) {
	remote := func() agent.Agent {
		return agent.NewMinimaxAgent(game.Black, agent.WithDepth(2), agent.WithBudget(time.Minute))
	}
	srv := httptest.NewServer(agent.NewServer(remote, game.DefaultEncoding).Routes())
	defer srv.Close()

	c := NewClient(srv.URL, game.Black, game.DefaultEncoding, 5*time.Second)

	t.Run("fetches a legal move", func(t *testing.T) {
		pos, _, err := c.FindMove(game.NewBoard())

		require.NoError(t, err)
		_, ok := game.FindMove(game.NewBoard(), game.Black, pos)
		require.True(t, ok)
		require.Equal(t, game.Black, c.Color())
	})

	t.Run("turns a remote pass into ErrNoLegalMove", func(t *testing.T) {
		b := game.MustParseBoard(`
			OO......
			........
			........
			........
			........
			........
			........
			........`)

		_, _, err := c.FindMove(b)

		require.ErrorIs(t, err, searcher.ErrNoLegalMove)
	})

	t.Run("reports server errors", func(t *testing.T) {
		broken := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
			w.Write([]byte(`{"error":"boom"}`))
		}))
		defer broken.Close()

		_, _, err := NewClient(broken.URL, game.White, game.DefaultEncoding, time.Second).FindMove(game.NewBoard())

		require.ErrorContains(t, err, "agent returned status 500: boom")
	})

	t.Run("reports the status of non-JSON errors", func(t *testing.T) {
		broken := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, http.StatusText(http.StatusBadGateway), http.StatusBadGateway)
		}))
		defer broken.Close()

		_, _, err := NewClient(broken.URL, game.White, game.DefaultEncoding, time.Second).FindMove(game.NewBoard())

		require.ErrorContains(t, err, "agent returned status 502: Bad Gateway")
	})

	t.Run("reports an empty error body", func(t *testing.T) {
		broken := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer broken.Close()

		_, _, err := NewClient(broken.URL, game.White, game.DefaultEncoding, time.Second).FindMove(game.NewBoard())

		require.ErrorContains(t, err, "status 500")
	})

	t.Run("reports unreachable servers", func(t *testing.T) {
		_, _, err := NewClient("http://127.0.0.1:1", game.White, game.DefaultEncoding, time.Second).FindMove(game.NewBoard())
		require.Error(t, err)
	})
}
