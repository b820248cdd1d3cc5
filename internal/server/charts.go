package server

import (
	"net/http"

	"solar-defender/internal/service"

	"github.com/gorilla/mux"
)

type sessionChartsResponse struct {
	Session sessionResponse      `json:"session"`
	Charts  *service.ChartBundle `json:"charts"`
}

func (s *Server) SessionCharts(w http.ResponseWriter, r *http.Request) {
	session, bundle, err := s.charts.BuildAll(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, sessionChartsResponse{
		Session: toSessionResponse(*session),
		Charts:  bundle,
	})
}

func (s *Server) SingleChart(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	data, err := s.charts.BuildOne(r.Context(), vars["id"], vars["chart"])
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]interface{}{
		"chart_type": vars["chart"],
		"data":       data,
	})
}
