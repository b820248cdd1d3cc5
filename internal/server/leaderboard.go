package server

import (
	"net/http"

	"solar-defender/internal/engine"
)

func (s *Server) Leaderboard(w http.ResponseWriter, r *http.Request) {
	entries, err := s.leaderboard.List(r.Context(), queryInt(r, "limit", engine.LeaderboardSize))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, toLeaderboardResponses(entries))
}

func (s *Server) TopLeaderboard(w http.ResponseWriter, r *http.Request) {
	entries, err := s.leaderboard.Top(r.Context())
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, toLeaderboardResponses(entries))
}
