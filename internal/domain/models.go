package domain

import (
	"time"

	"solar-defender/internal/engine"
)

type Player struct {
	ID          string
	Name        string
	TotalScore  int
	GamesPlayed int
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type GameSession struct {
	ID             string
	PlayerID       string
	Score          int
	PowerGrid      int
	Satellites     int
	Communications int
	EarthHealth    int
	Rank           engine.Rank
	Completed      bool
	CreatedAt      time.Time
	CompletedAt    *time.Time
}

type Mission struct {
	ID                  string
	SessionID           string
	FlareClassType      string
	DefenseChoice       int
	Success             bool
	PhaseNumber         int
	PowerGridAfter      int
	SatellitesAfter     int
	CommunicationsAfter int
	EarthHealthAfter    int
	PointsEarned        int
	CreatedAt           time.Time
}

type SolarFlare struct {
	FlareID      string
	ClassType    string
	FlareClass   string
	Intensity    float64
	BeginTime    time.Time
	PeakTime     *time.Time
	EndTime      *time.Time
	RiskLevel    string
	RiskColor    string
	IsSimulation bool
	CreatedAt    time.Time
}

type LeaderboardEntry struct {
	RankPosition int
	PlayerID     string
	PlayerName   string
	SessionID    string
	Score        int
	UpdatedAt    time.Time
}

type SpaceWeatherReport struct {
	ID                   string
	ReportDate           time.Time
	TotalFlares          int
	StrongestFlareID     *string
	RiskPercentage       float64
	PredictionConfidence float64
}
