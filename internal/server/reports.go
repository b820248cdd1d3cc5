package server

import (
	"net/http"
	"time"

	"solar-defender/internal/service"
)

type globalStatsResponse struct {
	TotalGames    int            `json:"total_games"`
	TotalPlayers  int            `json:"total_players"`
	AverageScore  float64        `json:"average_score"`
	HighestScore  int            `json:"highest_score"`
	TotalMissions int            `json:"total_missions"`
	FlaresByClass map[string]int `json:"flares_by_class"`
}

func (s *Server) GlobalStats(w http.ResponseWriter, r *http.Request) {
	stats, err := s.stats.Global(r.Context())
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, globalStatsResponse{
		TotalGames:    stats.TotalGames,
		TotalPlayers:  stats.TotalPlayers,
		AverageScore:  stats.AverageScore,
		HighestScore:  stats.HighestScore,
		TotalMissions: stats.TotalMissions,
		FlaresByClass: stats.FlaresByClass,
	})
}

type flareAssessmentResponse struct {
	Flare     flareResponse `json:"flare"`
	RiskLevel string        `json:"risk_level"`
	RiskColor string        `json:"risk_color"`
	Effects   []string      `json:"effects"`
}

type weatherReportResponse struct {
	ID                   string                    `json:"id"`
	ReportDate           time.Time                 `json:"report_date"`
	TotalFlares          int                       `json:"total_flares"`
	StrongestFlareID     *string                   `json:"strongest_flare_id,omitempty"`
	RiskPercentage       float64                   `json:"risk_percentage"`
	PredictionConfidence float64                   `json:"prediction_confidence"`
	Strongest            *flareResponse            `json:"strongest,omitempty"`
	Flares               []flareAssessmentResponse `json:"flares"`
}

func (s *Server) WeatherReport(w http.ResponseWriter, r *http.Request) {
	report, err := s.reports.Generate(r.Context())
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, toWeatherReportResponse(report))
}

func toWeatherReportResponse(report *service.WeatherReport) weatherReportResponse {
	resp := weatherReportResponse{
		ID:                   report.Report.ID,
		ReportDate:           report.Report.ReportDate,
		TotalFlares:          report.Report.TotalFlares,
		StrongestFlareID:     report.Report.StrongestFlareID,
		RiskPercentage:       report.Report.RiskPercentage,
		PredictionConfidence: report.Report.PredictionConfidence,
		Flares:               make([]flareAssessmentResponse, len(report.Flares)),
	}
	if report.Strongest != nil {
		strongest := toFlareResponse(*report.Strongest)
		resp.Strongest = &strongest
	}
	for i, a := range report.Flares {
		resp.Flares[i] = flareAssessmentResponse{
			Flare:     toFlareResponse(a.Flare),
			RiskLevel: a.Risk.Level,
			RiskColor: a.Risk.Color,
			Effects:   a.Risk.Effects,
		}
	}
	return resp
}
