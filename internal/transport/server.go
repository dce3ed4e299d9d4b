package transport

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/zerchniv/matchserver/internal/match"
	"github.com/zerchniv/matchserver/internal/match/state"
)

// Server wires the match registry to HTTP: a create-match endpoint and a
// WebSocket endpoint that binds one connection to one seat of one match,
// as plain net/http handlers sitting in front of a shared,
// mutex-protected registry.
type Server struct {
	registry *match.Registry
	log      *zap.Logger
	cfg      match.Config
}

// NewServer builds a Server. cfg is the per-match actor configuration
// (timer durations, channel sizes) applied to every match this server
// creates.
func NewServer(registry *match.Registry, log *zap.Logger, cfg match.Config) *Server {
	return &Server{registry: registry, log: log, cfg: cfg}
}

// Handler returns the server's HTTP routes.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/matches", s.handleCreateMatch)
	mux.HandleFunc("/ws", s.handleWebSocket)
	return mux
}

type createMatchRequest struct {
	P1Name string `json:"p1Name"`
	P2Name string `json:"p2Name"`
}

type createMatchResponse struct {
	MatchID string `json:"matchId"`
}

// handleCreateMatch starts a new match actor and returns its id. Any
// matchmaking/lobby flow that would normally front this is left to
// whatever calls this endpoint; here it just needs two display names.
func (s *Server) handleCreateMatch(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req createMatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, fmt.Sprintf("bad request: %v", err), http.StatusBadRequest)
		return
	}
	if req.P1Name == "" || req.P2Name == "" {
		http.Error(w, "p1Name and p2Name are required", http.StatusBadRequest)
		return
	}

	matchID := uuid.NewString()
	seed := time.Now().UnixNano()
	if _, err := s.registry.Create(matchID, seed, req.P1Name, req.P2Name, s.cfg); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(createMatchResponse{MatchID: matchID})
}

// handleWebSocket upgrades the connection and binds it to one seat of one
// already-created match, identified by the "match" and "seat" query
// parameters.
func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	matchID := r.URL.Query().Get("match")
	seat := state.Seat(r.URL.Query().Get("seat"))
	if seat != state.SeatP1 && seat != state.SeatP2 {
		http.Error(w, "seat must be p1 or p2", http.StatusBadRequest)
		return
	}

	actor, ok := s.registry.Lookup(matchID)
	if !ok {
		http.Error(w, "match not found", http.StatusNotFound)
		return
	}

	ServeSeat(w, r, actor, seat, s.log)
}
