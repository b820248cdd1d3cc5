package server

import (
	"time"

	"solar-defender/internal/domain"
	"solar-defender/internal/engine"
)

type playerResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	TotalScore  int       `json:"total_score"`
	GamesPlayed int       `json:"games_played"`
	CreatedAt   time.Time `json:"created_at"`
}

func toPlayerResponse(p domain.Player) playerResponse {
	return playerResponse{
		ID:          p.ID,
		Name:        p.Name,
		TotalScore:  p.TotalScore,
		GamesPlayed: p.GamesPlayed,
		CreatedAt:   p.CreatedAt,
	}
}

type sessionResponse struct {
	ID             string     `json:"id"`
	PlayerID       string     `json:"player_id"`
	Score          int        `json:"score"`
	PowerGrid      int        `json:"power_grid"`
	Satellites     int        `json:"satellites"`
	Communications int        `json:"communications"`
	EarthHealth    int        `json:"earth_health"`
	Rank           string     `json:"rank"`
	RankName       string     `json:"rank_name,omitempty"`
	Completed      bool       `json:"completed"`
	CreatedAt      time.Time  `json:"created_at"`
	CompletedAt    *time.Time `json:"completed_at,omitempty"`
}

func toSessionResponse(s domain.GameSession) sessionResponse {
	return sessionResponse{
		ID:             s.ID,
		PlayerID:       s.PlayerID,
		Score:          s.Score,
		PowerGrid:      s.PowerGrid,
		Satellites:     s.Satellites,
		Communications: s.Communications,
		EarthHealth:    s.EarthHealth,
		Rank:           string(s.Rank),
		RankName:       s.Rank.DisplayName(),
		Completed:      s.Completed,
		CreatedAt:      s.CreatedAt,
		CompletedAt:    s.CompletedAt,
	}
}

type missionResponse struct {
	ID                  string    `json:"id"`
	SessionID           string    `json:"session_id"`
	FlareClassType      string    `json:"flare_class_type"`
	DefenseChoice       int       `json:"defense_choice"`
	DefenseName         string    `json:"defense_name"`
	Success             bool      `json:"success"`
	PhaseNumber         int       `json:"phase_number"`
	PowerGridAfter      int       `json:"power_grid_after"`
	SatellitesAfter     int       `json:"satellites_after"`
	CommunicationsAfter int       `json:"communications_after"`
	EarthHealthAfter    int       `json:"earth_health_after"`
	PointsEarned        int       `json:"points_earned"`
	CreatedAt           time.Time `json:"created_at"`
}

func toMissionResponse(m domain.Mission) missionResponse {
	return missionResponse{
		ID:                  m.ID,
		SessionID:           m.SessionID,
		FlareClassType:      m.FlareClassType,
		DefenseChoice:       m.DefenseChoice,
		DefenseName:         engine.StrategyName(m.DefenseChoice),
		Success:             m.Success,
		PhaseNumber:         m.PhaseNumber,
		PowerGridAfter:      m.PowerGridAfter,
		SatellitesAfter:     m.SatellitesAfter,
		CommunicationsAfter: m.CommunicationsAfter,
		EarthHealthAfter:    m.EarthHealthAfter,
		PointsEarned:        m.PointsEarned,
		CreatedAt:           m.CreatedAt,
	}
}

type flareResponse struct {
	FlareID      string     `json:"flare_id"`
	ClassType    string     `json:"class_type"`
	FlareClass   string     `json:"flare_class"`
	Intensity    float64    `json:"intensity"`
	BeginTime    time.Time  `json:"begin_time"`
	PeakTime     *time.Time `json:"peak_time,omitempty"`
	EndTime      *time.Time `json:"end_time,omitempty"`
	RiskLevel    string     `json:"risk_level"`
	RiskColor    string     `json:"risk_color"`
	IsSimulation bool       `json:"is_simulation"`
}

func toFlareResponse(f domain.SolarFlare) flareResponse {
	return flareResponse{
		FlareID:      f.FlareID,
		ClassType:    f.ClassType,
		FlareClass:   f.FlareClass,
		Intensity:    f.Intensity,
		BeginTime:    f.BeginTime,
		PeakTime:     f.PeakTime,
		EndTime:      f.EndTime,
		RiskLevel:    f.RiskLevel,
		RiskColor:    f.RiskColor,
		IsSimulation: f.IsSimulation,
	}
}

func toFlareResponses(flares []domain.SolarFlare) []flareResponse {
	result := make([]flareResponse, len(flares))
	for i, f := range flares {
		result[i] = toFlareResponse(f)
	}
	return result
}

type leaderboardEntryResponse struct {
	RankPosition int    `json:"rank_position"`
	PlayerID     string `json:"player_id"`
	PlayerName   string `json:"player_name"`
	SessionID    string `json:"session_id"`
	Score        int    `json:"score"`
}

func toLeaderboardResponses(entries []domain.LeaderboardEntry) []leaderboardEntryResponse {
	result := make([]leaderboardEntryResponse, len(entries))
	for i, e := range entries {
		result[i] = leaderboardEntryResponse{
			RankPosition: e.RankPosition,
			PlayerID:     e.PlayerID,
			PlayerName:   e.PlayerName,
			SessionID:    e.SessionID,
			Score:        e.Score,
		}
	}
	return result
}

type outcomeResponse struct {
	PowerGrid      int    `json:"power_grid"`
	Satellites     int    `json:"satellites"`
	Communications int    `json:"communications"`
	EarthHealth    int    `json:"earth_health"`
	PointsCost     int    `json:"points_cost"`
	Message        string `json:"message"`
}

func toOutcomeResponse(impact engine.Impact, outcome engine.Outcome) outcomeResponse {
	return outcomeResponse{
		PowerGrid:      outcome.Health.PowerGrid,
		Satellites:     outcome.Health.Satellites,
		Communications: outcome.Health.Communications,
		EarthHealth:    outcome.EarthHealth,
		PointsCost:     outcome.PointsCost,
		Message:        impact.Message,
	}
}
