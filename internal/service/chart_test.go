package service

import (
	"context"
	"testing"

	"solar-defender/internal/domain"
	"solar-defender/internal/engine"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func completedSessionWithMissions(t *testing.T, stack *testStack) string {
	t.Helper()

	game := stack.gameService()
	ctx := context.Background()
	stack.seedPlayer(t, "p1", "Nova")

	session, err := game.CreateSession(ctx, "p1")
	require.NoError(t, err)

	for _, step := range []struct {
		class  string
		choice int
		points int
	}{
		{"X1.3", 2, 30},
		{"M2.1", 4, 25},
		{"B7.8", 3, 30},
	} {
		_, _, err := game.RecordMission(ctx, session.ID, step.class, step.choice, step.points)
		require.NoError(t, err)
	}

	_, err = game.CompleteSession(ctx, session.ID)
	require.NoError(t, err)
	return session.ID
}

func TestBuildAllRequiresCompletedSession(t *testing.T) {
	stack := newTestStack(t)
	charts := NewChartService(stack.sessions, stack.missions, zerolog.Nop())
	game := stack.gameService()
	ctx := context.Background()
	stack.seedPlayer(t, "p1", "Nova")

	session, err := game.CreateSession(ctx, "p1")
	require.NoError(t, err)

	_, _, err = charts.BuildAll(ctx, session.ID)
	assert.ErrorIs(t, err, ErrSessionNotCompleted)
}

func TestBuildAllSeries(t *testing.T) {
	stack := newTestStack(t)
	charts := NewChartService(stack.sessions, stack.missions, zerolog.Nop())
	sessionID := completedSessionWithMissions(t, stack)

	session, bundle, err := charts.BuildAll(context.Background(), sessionID)
	require.NoError(t, err)

	assert.Equal(t, map[string]int{"X": 1, "M": 1, "B": 1}, bundle.FlareDistribution)

	require.Len(t, bundle.IntensityTimeline, 3)
	assert.Equal(t, 1, bundle.IntensityTimeline[0].Phase)
	assert.InDelta(t, 1.3, bundle.IntensityTimeline[0].Intensity, 0.001)

	require.Len(t, bundle.SystemsStatus, 4)
	assert.Equal(t, "Power Grid", bundle.SystemsStatus[0].System)
	assert.Equal(t, session.PowerGrid, bundle.SystemsStatus[0].Value)

	require.Len(t, bundle.ImpactComparison, 3)
	// X-class raw loss across the three systems.
	assert.Equal(t, 150, bundle.ImpactComparison[0].TotalLoss)
	assert.Equal(t, "EXTREME", bundle.ImpactComparison[0].RiskLevel)

	assert.Equal(t, 85, bundle.PerformanceGauge.Score)
	assert.Equal(t, string(engine.RankMaster), bundle.PerformanceGauge.Rank)
	assert.Equal(t, "Solar Defender Master", bundle.PerformanceGauge.RankName)

	assert.Equal(t, session.EarthHealth, bundle.EarthImpactMap.EarthHealth)

	require.Len(t, bundle.MissionLog, 3)
	assert.Equal(t, "Grid Protection", bundle.MissionLog[0].Strategy)
	assert.Equal(t, "Integrated Defense", bundle.MissionLog[1].Strategy)
	assert.Equal(t, "Communications Boost", bundle.MissionLog[2].Strategy)
}

func TestBuildOneDispatch(t *testing.T) {
	stack := newTestStack(t)
	charts := NewChartService(stack.sessions, stack.missions, zerolog.Nop())
	sessionID := completedSessionWithMissions(t, stack)
	ctx := context.Background()

	for _, chartType := range ChartTypes {
		data, err := charts.BuildOne(ctx, sessionID, chartType)
		require.NoError(t, err, chartType)
		assert.NotNil(t, data, chartType)
	}

	_, err := charts.BuildOne(ctx, sessionID, "pie_of_doom")
	assert.ErrorIs(t, err, ErrUnknownChart)
}

func TestEarthImpactStatusBands(t *testing.T) {
	tests := []struct {
		health int
		status string
		color  string
	}{
		{85, "Stable", "#00FF00"},
		{45, "Degraded", "#FFD700"},
		{10, "Critical", "#FF0000"},
	}
	for _, tc := range tests {
		impact := earthImpactMap(&domain.GameSession{EarthHealth: tc.health})
		assert.Equal(t, tc.status, impact.Status, "health %d", tc.health)
		assert.Equal(t, tc.color, impact.Color, "health %d", tc.health)
	}
}
