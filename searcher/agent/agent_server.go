package agent

import (
	"encoding/json"
	"errors"
	"net/http"
	"sync"
	"time"

	"reversi/communication"
	"reversi/game"
	"reversi/searcher"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"
)

// Server exposes one agent to a remote referee, either as POST /findmove or as a websocket
// at /ws where every board message is answered with a move message. Requests are served one
// at a time since agents keep per-game state.
//
// Every game is played by a fresh agent from newAgent. A new game starts on POST /newgame, on
// a new websocket connection, or when a board holds no more discs than the previous one, which
// never happens within a game.
type Server struct {
	mu       sync.Mutex
	newAgent func() Agent
	agent    Agent
	discs    int // On the last board received, 0 before the first one
	encoding game.Encoding
	upgrader websocket.Upgrader
}

func NewServer(newAgent func() Agent, encoding game.Encoding) *Server {
	return &Server{
		newAgent: newAgent,
		agent:    newAgent(),
		encoding: encoding,
		upgrader: websocket.Upgrader{CheckOrigin: func(r *http.Request) bool { return true }},
	}
}

// StartAgentServer serves the agents built by newAgent on addr until the listener fails.
func StartAgentServer(addr string, newAgent func() Agent, encoding game.Encoding) error {
	s := NewServer(newAgent, encoding)
	log.Info().Msgf("starting agent server for %s on %s ...", s.agent.Color(), addr)
	return http.ListenAndServe(addr, s.Routes())
}

func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger)
	r.Use(middleware.Recoverer)

	r.Get("/ping", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok", "color": s.color().String()})
	})
	r.Post("/newgame", func(w http.ResponseWriter, r *http.Request) {
		s.mu.Lock()
		s.reset()
		s.mu.Unlock()
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Post("/findmove", s.handleFindMove)
	r.Get("/ws", s.handleWebSocket)
	return r
}

// Agent returns the agent playing the current game.
func (s *Server) Agent() Agent {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.agent
}

func (s *Server) color() game.Color {
	return s.Agent().Color()
}

// reset hands the next game to a fresh agent. Callers hold s.mu.
func (s *Server) reset() {
	if s.discs > 0 {
		log.Info().Msgf("new game for %s", s.agent.Color())
	}
	s.agent = s.newAgent()
	s.discs = 0
}

func (s *Server) handleFindMove(w http.ResponseWriter, r *http.Request) {
	var req communication.FindMoveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, communication.ErrorResponse(err))
		return
	}
	resp, status := s.decide(req)
	writeJSON(w, status, resp)
}

func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Warn().Err(err).Msg("websocket upgrade failed")
		return
	}
	defer conn.Close()

	s.mu.Lock()
	s.reset()
	s.mu.Unlock()

	for {
		var req communication.FindMoveRequest
		if err := conn.ReadJSON(&req); err != nil {
			if !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				log.Warn().Err(err).Msg("websocket read failed")
			}
			return
		}
		resp, _ := s.decide(req)
		if err := conn.WriteJSON(resp); err != nil {
			log.Warn().Err(err).Msg("websocket write failed")
			return
		}
	}
}

func (s *Server) decide(req communication.FindMoveRequest) (communication.FindMoveResponse, int) {
	b, err := s.encoding.Decode(req.Board)
	if err != nil {
		return communication.ErrorResponse(err), http.StatusBadRequest
	}

	discs := b.Count(game.Black) + b.Count(game.White)
	s.mu.Lock()
	if s.discs > 0 && discs <= s.discs {
		s.reset()
	}
	s.discs = discs
	pos, _, err := s.agent.FindMove(b)
	s.mu.Unlock()

	switch {
	case errors.Is(err, searcher.ErrNoLegalMove):
		return communication.PassResponse(), http.StatusOK
	case err != nil:
		log.Error().Err(err).Msg("agent failed to find a move")
		return communication.ErrorResponse(err), http.StatusInternalServerError
	}
	return communication.MoveResponse(pos), http.StatusOK
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Warn().Err(err).Msg("failed to encode response")
	}
}

func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		log.Debug().
			Str("request_id", middleware.GetReqID(r.Context())).
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", ww.Status()).
			Dur("duration", time.Since(start)).
			Msg("handled request")
	})
}
