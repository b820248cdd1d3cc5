package server

import (
	"database/sql"
	"encoding/json"
	"errors"
	"net/http"

	"solar-defender/internal/domain"
	"solar-defender/internal/engine"
	"solar-defender/internal/service"

	"github.com/rs/zerolog"
)

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		s.logger.Error().Err(err).Msg("failed to encode response")
	}
}

// writeError maps domain and engine sentinels to HTTP statuses: bad input to
// 400, a second completion to 409, missing rows to 404, anything else 500.
func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	logger := zerolog.Ctx(r.Context())

	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, engine.ErrInvalidChoice),
		errors.Is(err, domain.ErrNegativePoints),
		errors.Is(err, service.ErrSessionNotCompleted),
		errors.Is(err, service.ErrUnknownChart):
		status = http.StatusBadRequest
	case errors.Is(err, domain.ErrSessionCompleted):
		status = http.StatusConflict
	case errors.Is(err, sql.ErrNoRows):
		status = http.StatusNotFound
	}

	logger.Warn().Err(err).Int("status", status).Str("path", r.URL.Path).Msg("request failed")
	s.writeJSON(w, status, errorResponse{Error: err.Error()})
}

func (s *Server) decode(w http.ResponseWriter, r *http.Request, v interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		s.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return false
	}
	return true
}
