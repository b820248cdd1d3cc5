// Package server exposes the game over JSON HTTP.
package server

import (
	"net/http"

	"solar-defender/internal/service"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"
)

type Server struct {
	players     *service.PlayerService
	game        *service.GameService
	flares      *service.FlareService
	leaderboard *service.LeaderboardService
	stats       *service.StatsService
	reports     *service.ReportService
	charts      *service.ChartService
	logger      zerolog.Logger
}

func NewServer(
	players *service.PlayerService,
	game *service.GameService,
	flares *service.FlareService,
	leaderboard *service.LeaderboardService,
	stats *service.StatsService,
	reports *service.ReportService,
	charts *service.ChartService,
	logger zerolog.Logger,
) *Server {
	return &Server{
		players:     players,
		game:        game,
		flares:      flares,
		leaderboard: leaderboard,
		stats:       stats,
		reports:     reports,
		charts:      charts,
		logger:      logger,
	}
}

func (s *Server) Router() *mux.Router {
	r := mux.NewRouter()
	api := r.PathPrefix("/api").Subrouter()

	api.HandleFunc("/players", s.CreatePlayer).Methods(http.MethodPost)
	api.HandleFunc("/players", s.ListPlayers).Methods(http.MethodGet)
	api.HandleFunc("/players/{id}", s.GetPlayer).Methods(http.MethodGet)
	api.HandleFunc("/players/{id}/stats", s.PlayerStats).Methods(http.MethodGet)
	api.HandleFunc("/players/{id}/history", s.PlayerHistory).Methods(http.MethodGet)

	api.HandleFunc("/sessions", s.CreateSession).Methods(http.MethodPost)
	api.HandleFunc("/sessions/{id}", s.GetSession).Methods(http.MethodGet)
	api.HandleFunc("/sessions/{id}/missions", s.RecordMission).Methods(http.MethodPost)
	api.HandleFunc("/sessions/{id}/complete", s.CompleteSession).Methods(http.MethodPost)
	api.HandleFunc("/defense/preview", s.PreviewDefense).Methods(http.MethodPost)

	api.HandleFunc("/flares", s.ListFlares).Methods(http.MethodGet)
	api.HandleFunc("/flares/recent", s.RecentFlares).Methods(http.MethodGet)
	api.HandleFunc("/flares/fetch", s.FetchFlares).Methods(http.MethodPost)

	api.HandleFunc("/leaderboard", s.Leaderboard).Methods(http.MethodGet)
	api.HandleFunc("/leaderboard/top", s.TopLeaderboard).Methods(http.MethodGet)
	api.HandleFunc("/stats", s.GlobalStats).Methods(http.MethodGet)
	api.HandleFunc("/weather/report", s.WeatherReport).Methods(http.MethodGet)

	api.HandleFunc("/charts/session/{id}", s.SessionCharts).Methods(http.MethodGet)
	api.HandleFunc("/charts/session/{id}/{chart}", s.SingleChart).Methods(http.MethodGet)

	return r
}
