package server

import (
	"net/http"
	"strconv"

	"solar-defender/internal/constants"
)

const defaultFlareLimit = 50

func queryInt(r *http.Request, key string, fallback int) int {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v <= 0 {
		return fallback
	}
	return v
}

func (s *Server) ListFlares(w http.ResponseWriter, r *http.Request) {
	flares, err := s.flares.List(r.Context(), queryInt(r, "limit", defaultFlareLimit))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, toFlareResponses(flares))
}

func (s *Server) RecentFlares(w http.ResponseWriter, r *http.Request) {
	flares, err := s.flares.Recent(r.Context(), queryInt(r, "days", constants.FlareFetchWindowDays))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, toFlareResponses(flares))
}

type fetchFlaresResponse struct {
	Flares         []flareResponse `json:"flares"`
	QuotaLimit     int             `json:"quota_limit"`
	QuotaRemaining int             `json:"quota_remaining"`
}

func (s *Server) FetchFlares(w http.ResponseWriter, r *http.Request) {
	flares, err := s.flares.FetchAndStore(r.Context())
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	quota := s.flares.QuotaInfo()
	s.writeJSON(w, http.StatusOK, fetchFlaresResponse{
		Flares:         toFlareResponses(flares),
		QuotaLimit:     quota.Limit,
		QuotaRemaining: quota.Remaining,
	})
}
