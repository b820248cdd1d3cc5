package service

import (
	"context"
	"errors"
	"fmt"

	"solar-defender/internal/api"
	"solar-defender/internal/constants"
	"solar-defender/internal/domain"
	"solar-defender/internal/engine"
	"solar-defender/internal/repository"

	"github.com/rs/zerolog"
)

var (
	ErrSessionNotCompleted = errors.New("session must be completed before generating charts")
	ErrUnknownChart        = errors.New("unknown chart type")
)

// ChartService computes the presentational series for a completed session.
// The browser draws them; the backend only supplies numbers.
type ChartService struct {
	sessionRepo *repository.SessionRepository
	missionRepo *repository.MissionRepository
	logger      zerolog.Logger
}

func NewChartService(sessionRepo *repository.SessionRepository, missionRepo *repository.MissionRepository, logger zerolog.Logger) *ChartService {
	return &ChartService{sessionRepo: sessionRepo, missionRepo: missionRepo, logger: logger}
}

type TimelinePoint struct {
	Phase     int     `json:"phase"`
	ClassType string  `json:"class_type"`
	Intensity float64 `json:"intensity"`
}

type SystemBar struct {
	System string `json:"system"`
	Value  int    `json:"value"`
	Color  string `json:"color"`
}

type ImpactBar struct {
	Phase      int    `json:"phase"`
	ClassType  string `json:"class_type"`
	TotalLoss  int    `json:"total_loss"`
	RiskColor  string `json:"risk_color"`
	RiskLevel  string `json:"risk_level"`
	PointsCost int    `json:"points_cost"`
}

type PerformanceGauge struct {
	Score    int    `json:"score"`
	Rank     string `json:"rank"`
	RankName string `json:"rank_name"`
}

type EarthImpact struct {
	EarthHealth int    `json:"earth_health"`
	Status      string `json:"status"`
	Color       string `json:"color"`
}

type MissionLogRow struct {
	Phase       int    `json:"phase"`
	FlareClass  string `json:"flare_class"`
	Strategy    string `json:"strategy"`
	Points      int    `json:"points"`
	EarthHealth int    `json:"earth_health"`
	Success     bool   `json:"success"`
}

type ChartBundle struct {
	FlareDistribution map[string]int   `json:"flare_distribution"`
	IntensityTimeline []TimelinePoint  `json:"intensity_timeline"`
	SystemsStatus     []SystemBar      `json:"systems_status"`
	ImpactComparison  []ImpactBar      `json:"impact_comparison"`
	PerformanceGauge  PerformanceGauge `json:"performance_gauge"`
	EarthImpactMap    EarthImpact      `json:"earth_impact_map"`
	MissionLog        []MissionLogRow  `json:"mission_log"`
}

// ChartTypes lists the valid names for the single-chart endpoint.
var ChartTypes = []string{
	"flare_distribution",
	"intensity_timeline",
	"systems_status",
	"impact_comparison",
	"performance_gauge",
	"earth_impact_map",
	"mission_log",
}

func (s *ChartService) BuildAll(ctx context.Context, sessionID string) (*domain.GameSession, *ChartBundle, error) {
	session, missions, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, nil, err
	}

	bundle := &ChartBundle{
		FlareDistribution: flareDistribution(missions),
		IntensityTimeline: intensityTimeline(missions),
		SystemsStatus:     systemsStatus(session),
		ImpactComparison:  impactComparison(missions),
		PerformanceGauge:  performanceGauge(session),
		EarthImpactMap:    earthImpactMap(session),
		MissionLog:        missionLog(missions),
	}
	return session, bundle, nil
}

func (s *ChartService) BuildOne(ctx context.Context, sessionID, chartType string) (interface{}, error) {
	session, missions, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	switch chartType {
	case "flare_distribution":
		return flareDistribution(missions), nil
	case "intensity_timeline":
		return intensityTimeline(missions), nil
	case "systems_status":
		return systemsStatus(session), nil
	case "impact_comparison":
		return impactComparison(missions), nil
	case "performance_gauge":
		return performanceGauge(session), nil
	case "earth_impact_map":
		return earthImpactMap(session), nil
	case "mission_log":
		return missionLog(missions), nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownChart, chartType)
	}
}

func (s *ChartService) load(ctx context.Context, sessionID string) (*domain.GameSession, []domain.Mission, error) {
	ctx, cancel := context.WithTimeout(ctx, constants.DatabaseTimeout)
	defer cancel()

	session, err := s.sessionRepo.Get(ctx, sessionID)
	if err != nil {
		return nil, nil, fmt.Errorf("session not found: %w", err)
	}
	if !session.Completed {
		return nil, nil, ErrSessionNotCompleted
	}

	missions, err := s.missionRepo.ListBySession(ctx, sessionID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list missions: %w", err)
	}
	return session, missions, nil
}

func flareDistribution(missions []domain.Mission) map[string]int {
	dist := make(map[string]int)
	for _, m := range missions {
		dist[string(classOf(m.FlareClassType))]++
	}
	return dist
}

func intensityTimeline(missions []domain.Mission) []TimelinePoint {
	points := make([]TimelinePoint, len(missions))
	for i, m := range missions {
		points[i] = TimelinePoint{
			Phase:     m.PhaseNumber,
			ClassType: m.FlareClassType,
			Intensity: api.Intensity(m.FlareClassType),
		}
	}
	return points
}

func systemsStatus(session *domain.GameSession) []SystemBar {
	return []SystemBar{
		{System: "Power Grid", Value: session.PowerGrid, Color: healthColor(session.PowerGrid)},
		{System: "Satellites", Value: session.Satellites, Color: healthColor(session.Satellites)},
		{System: "Communications", Value: session.Communications, Color: healthColor(session.Communications)},
		{System: "Earth Health", Value: session.EarthHealth, Color: healthColor(session.EarthHealth)},
	}
}

func impactComparison(missions []domain.Mission) []ImpactBar {
	bars := make([]ImpactBar, len(missions))
	for i, m := range missions {
		class := classOf(m.FlareClassType)
		impact := engine.Classify(class)
		risk := engine.AssessRisk(class)
		bars[i] = ImpactBar{
			Phase:      m.PhaseNumber,
			ClassType:  m.FlareClassType,
			TotalLoss:  impact.Power + impact.Satellites + impact.Comms,
			RiskColor:  risk.Color,
			RiskLevel:  risk.Level,
			PointsCost: m.PointsEarned,
		}
	}
	return bars
}

func performanceGauge(session *domain.GameSession) PerformanceGauge {
	return PerformanceGauge{
		Score:    session.Score,
		Rank:     string(session.Rank),
		RankName: session.Rank.DisplayName(),
	}
}

func earthImpactMap(session *domain.GameSession) EarthImpact {
	status := "Stable"
	switch {
	case session.EarthHealth < 30:
		status = "Critical"
	case session.EarthHealth < 60:
		status = "Degraded"
	}
	return EarthImpact{
		EarthHealth: session.EarthHealth,
		Status:      status,
		Color:       healthColor(session.EarthHealth),
	}
}

func missionLog(missions []domain.Mission) []MissionLogRow {
	rows := make([]MissionLogRow, len(missions))
	for i, m := range missions {
		rows[i] = MissionLogRow{
			Phase:       m.PhaseNumber,
			FlareClass:  string(classOf(m.FlareClassType)),
			Strategy:    engine.StrategyName(m.DefenseChoice),
			Points:      m.PointsEarned,
			EarthHealth: m.EarthHealthAfter,
			Success:     m.Success,
		}
	}
	return rows
}

func healthColor(value int) string {
	switch {
	case value >= 60:
		return "#00FF00"
	case value >= 30:
		return "#FFD700"
	default:
		return "#FF0000"
	}
}
