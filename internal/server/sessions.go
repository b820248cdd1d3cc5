package server

import (
	"net/http"

	"solar-defender/internal/engine"

	"github.com/gorilla/mux"
)

type createSessionRequest struct {
	PlayerID string `json:"player_id"`
}

func (s *Server) CreateSession(w http.ResponseWriter, r *http.Request) {
	var req createSessionRequest
	if !s.decode(w, r, &req) {
		return
	}
	if req.PlayerID == "" {
		s.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "player_id is required"})
		return
	}

	session, err := s.game.CreateSession(r.Context(), req.PlayerID)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusCreated, toSessionResponse(*session))
}

type sessionDetailResponse struct {
	Session  sessionResponse   `json:"session"`
	Missions []missionResponse `json:"missions"`
}

func (s *Server) GetSession(w http.ResponseWriter, r *http.Request) {
	session, missions, err := s.game.GetSession(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	detail := sessionDetailResponse{
		Session:  toSessionResponse(*session),
		Missions: make([]missionResponse, len(missions)),
	}
	for i, m := range missions {
		detail.Missions[i] = toMissionResponse(m)
	}
	s.writeJSON(w, http.StatusOK, detail)
}

type recordMissionRequest struct {
	FlareClassType string `json:"flare_class_type"`
	DefenseChoice  int    `json:"defense_choice"`
	PointsEarned   int    `json:"points_earned"`
}

type recordMissionResponse struct {
	Mission missionResponse `json:"mission"`
	Session sessionResponse `json:"session"`
}

func (s *Server) RecordMission(w http.ResponseWriter, r *http.Request) {
	var req recordMissionRequest
	if !s.decode(w, r, &req) {
		return
	}

	mission, session, err := s.game.RecordMission(r.Context(), mux.Vars(r)["id"], req.FlareClassType, req.DefenseChoice, req.PointsEarned)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	s.writeJSON(w, http.StatusCreated, recordMissionResponse{
		Mission: toMissionResponse(*mission),
		Session: toSessionResponse(*session),
	})
}

func (s *Server) CompleteSession(w http.ResponseWriter, r *http.Request) {
	session, err := s.game.CompleteSession(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, toSessionResponse(*session))
}

type previewDefenseRequest struct {
	FlareClassType string `json:"flare_class_type"`
	DefenseChoice  int    `json:"defense_choice"`
	PowerGrid      int    `json:"power_grid"`
	Satellites     int    `json:"satellites"`
	Communications int    `json:"communications"`
}

func (s *Server) PreviewDefense(w http.ResponseWriter, r *http.Request) {
	var req previewDefenseRequest
	if !s.decode(w, r, &req) {
		return
	}

	impact, outcome, err := s.game.PreviewDefense(req.FlareClassType, req.DefenseChoice, engine.Health{
		PowerGrid:      req.PowerGrid,
		Satellites:     req.Satellites,
		Communications: req.Communications,
	})
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, toOutcomeResponse(impact, outcome))
}
