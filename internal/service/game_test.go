package service

import (
	"context"
	"testing"

	"solar-defender/internal/domain"
	"solar-defender/internal/engine"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateSessionRequiresPlayer(t *testing.T) {
	stack := newTestStack(t)
	game := stack.gameService()

	_, err := game.CreateSession(context.Background(), "missing")
	assert.Error(t, err)
}

func TestCreateSessionStartsFresh(t *testing.T) {
	stack := newTestStack(t)
	game := stack.gameService()
	stack.seedPlayer(t, "p1", "Nova")

	session, err := game.CreateSession(context.Background(), "p1")
	require.NoError(t, err)

	assert.NotEmpty(t, session.ID)
	assert.Equal(t, "p1", session.PlayerID)
	assert.Equal(t, domain.InitialSystemHealth, session.PowerGrid)
	assert.Equal(t, domain.InitialSystemHealth, session.EarthHealth)
	assert.False(t, session.Completed)
}

func TestRecordMissionAppliesEngineOutcome(t *testing.T) {
	stack := newTestStack(t)
	game := stack.gameService()
	ctx := context.Background()
	stack.seedPlayer(t, "p1", "Nova")

	created, err := game.CreateSession(ctx, "p1")
	require.NoError(t, err)

	mission, session, err := game.RecordMission(ctx, created.ID, "X1.3", 2, 30)
	require.NoError(t, err)

	assert.Equal(t, 1, mission.PhaseNumber)
	assert.Equal(t, 70, mission.PowerGridAfter)
	assert.Equal(t, 60, mission.SatellitesAfter)
	assert.Equal(t, 40, mission.CommunicationsAfter)
	assert.Equal(t, 56, mission.EarthHealthAfter)
	assert.True(t, mission.Success)

	assert.Equal(t, 30, session.Score)
	assert.Equal(t, 70, session.PowerGrid)

	// The next mission resolves against the degraded state and bumps the phase.
	mission2, session2, err := game.RecordMission(ctx, created.ID, "B3.2", 3, 20)
	require.NoError(t, err)
	assert.Equal(t, 2, mission2.PhaseNumber)
	assert.Equal(t, 65, mission2.PowerGridAfter)
	assert.Equal(t, 50, session2.Score)
}

func TestRecordMissionRejectsInvalidChoice(t *testing.T) {
	stack := newTestStack(t)
	game := stack.gameService()
	ctx := context.Background()
	stack.seedPlayer(t, "p1", "Nova")

	created, err := game.CreateSession(ctx, "p1")
	require.NoError(t, err)

	_, _, err = game.RecordMission(ctx, created.ID, "C1.5", 7, 10)
	assert.ErrorIs(t, err, engine.ErrInvalidChoice)

	// Nothing was persisted.
	_, missions, err := game.GetSession(ctx, created.ID)
	require.NoError(t, err)
	assert.Empty(t, missions)
}

func TestRecordMissionRejectsNegativePoints(t *testing.T) {
	stack := newTestStack(t)
	game := stack.gameService()
	ctx := context.Background()
	stack.seedPlayer(t, "p1", "Nova")

	created, err := game.CreateSession(ctx, "p1")
	require.NoError(t, err)

	_, _, err = game.RecordMission(ctx, created.ID, "C1.5", 1, -5)
	assert.ErrorIs(t, err, domain.ErrNegativePoints)
}

func TestRecordMissionAfterCompletionFails(t *testing.T) {
	stack := newTestStack(t)
	game := stack.gameService()
	ctx := context.Background()
	stack.seedPlayer(t, "p1", "Nova")

	created, err := game.CreateSession(ctx, "p1")
	require.NoError(t, err)
	_, err = game.CompleteSession(ctx, created.ID)
	require.NoError(t, err)

	_, _, err = game.RecordMission(ctx, created.ID, "C1.5", 1, 10)
	assert.ErrorIs(t, err, domain.ErrSessionCompleted)
}

func TestCompleteSessionAssignsRankOnce(t *testing.T) {
	stack := newTestStack(t)
	game := stack.gameService()
	ctx := context.Background()
	stack.seedPlayer(t, "p1", "Nova")

	created, err := game.CreateSession(ctx, "p1")
	require.NoError(t, err)

	_, _, err = game.RecordMission(ctx, created.ID, "M2.1", 4, 85)
	require.NoError(t, err)

	session, err := game.CompleteSession(ctx, created.ID)
	require.NoError(t, err)
	assert.True(t, session.Completed)
	assert.Equal(t, engine.RankMaster, session.Rank)

	_, err = game.CompleteSession(ctx, created.ID)
	assert.ErrorIs(t, err, domain.ErrSessionCompleted)
}

func TestPreviewDefenseDoesNotPersist(t *testing.T) {
	stack := newTestStack(t)
	game := stack.gameService()

	impact, outcome, err := game.PreviewDefense("X1.3", 2, engine.Health{
		PowerGrid: 100, Satellites: 100, Communications: 100,
	})
	require.NoError(t, err)
	assert.Equal(t, 50, impact.Power)
	assert.Equal(t, 56, outcome.EarthHealth)
	assert.Equal(t, 15, outcome.PointsCost)

	_, _, err = game.PreviewDefense("X1.3", 0, engine.Health{})
	assert.ErrorIs(t, err, engine.ErrInvalidChoice)
}
