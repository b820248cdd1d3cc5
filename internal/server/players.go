package server

import (
	"net/http"

	"github.com/gorilla/mux"
)

type createPlayerRequest struct {
	Name string `json:"name"`
}

func (s *Server) CreatePlayer(w http.ResponseWriter, r *http.Request) {
	var req createPlayerRequest
	if !s.decode(w, r, &req) {
		return
	}
	if req.Name == "" {
		s.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "name is required"})
		return
	}

	player, err := s.players.Create(r.Context(), req.Name)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusCreated, toPlayerResponse(*player))
}

func (s *Server) ListPlayers(w http.ResponseWriter, r *http.Request) {
	players, err := s.players.List(r.Context())
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	result := make([]playerResponse, len(players))
	for i, p := range players {
		result[i] = toPlayerResponse(p)
	}
	s.writeJSON(w, http.StatusOK, result)
}

func (s *Server) GetPlayer(w http.ResponseWriter, r *http.Request) {
	player, err := s.players.Get(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, toPlayerResponse(*player))
}

type playerStatsResponse struct {
	Player        playerResponse `json:"player"`
	TotalGames    int            `json:"total_games"`
	AverageScore  float64        `json:"average_score"`
	BestScore     int            `json:"best_score"`
	BestRank      string         `json:"best_rank"`
	TotalMissions int            `json:"total_missions"`
	DefenseUsage  map[int]int    `json:"defense_strategy_usage"`
	DefenseNames  map[int]string `json:"defense_strategy_names"`
	SuccessRate   float64        `json:"success_rate"`
}

func (s *Server) PlayerStats(w http.ResponseWriter, r *http.Request) {
	stats, err := s.players.Stats(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	s.writeJSON(w, http.StatusOK, playerStatsResponse{
		Player:        toPlayerResponse(stats.Player),
		TotalGames:    stats.TotalGames,
		AverageScore:  stats.AverageScore,
		BestScore:     stats.BestScore,
		BestRank:      string(stats.CurrentBestRank),
		TotalMissions: stats.TotalMissions,
		DefenseUsage:  stats.DefenseUsage,
		DefenseNames:  stats.DefenseNames,
		SuccessRate:   stats.SuccessRate,
	})
}

func (s *Server) PlayerHistory(w http.ResponseWriter, r *http.Request) {
	sessions, err := s.players.History(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	result := make([]sessionResponse, len(sessions))
	for i, session := range sessions {
		result[i] = toSessionResponse(session)
	}
	s.writeJSON(w, http.StatusOK, result)
}
