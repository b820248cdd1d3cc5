package repository

import (
	"context"
	"fmt"
	"testing"
	"time"

	"solar-defender/internal/domain"
	"solar-defender/internal/engine"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordMissionPersistsBothSides(t *testing.T) {
	sqlDB, queries := newTestDB(t)
	logger := zerolog.Nop()
	players := NewPlayerRepository(sqlDB, queries, logger)
	sessions := NewSessionRepository(sqlDB, queries, logger)
	missions := NewMissionRepository(sqlDB, queries, logger)
	ctx := context.Background()

	seedPlayer(t, players, "p1", "Nova")
	session := seedSession(t, sessions, "s1", "p1")

	mission := &domain.Mission{
		ID:                  "m1",
		SessionID:           "s1",
		FlareClassType:      "X1.3",
		DefenseChoice:       2,
		Success:             true,
		PhaseNumber:         1,
		PowerGridAfter:      70,
		SatellitesAfter:     60,
		CommunicationsAfter: 40,
		EarthHealthAfter:    56,
		PointsEarned:        30,
		CreatedAt:           time.Now().UTC(),
	}
	require.NoError(t, session.ApplyMission(mission))
	require.NoError(t, sessions.RecordMission(ctx, session, mission))

	stored, err := sessions.Get(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, 30, stored.Score)
	assert.Equal(t, 70, stored.PowerGrid)
	assert.Equal(t, 60, stored.Satellites)
	assert.Equal(t, 40, stored.Communications)
	assert.Equal(t, 56, stored.EarthHealth)

	list, err := missions.ListBySession(ctx, "s1")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "m1", list[0].ID)
	assert.Equal(t, "X1.3", list[0].FlareClassType)
	assert.Equal(t, 1, list[0].PhaseNumber)

	count, err := missions.CountBySession(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestCompleteUpdatesPlayerStatsOnce(t *testing.T) {
	sqlDB, queries := newTestDB(t)
	logger := zerolog.Nop()
	players := NewPlayerRepository(sqlDB, queries, logger)
	sessions := NewSessionRepository(sqlDB, queries, logger)
	ctx := context.Background()

	seedPlayer(t, players, "p1", "Nova")
	session := seedSession(t, sessions, "s1", "p1")
	session.Score = 60
	require.NoError(t, session.Complete(time.Now().UTC()))
	require.NoError(t, sessions.Complete(ctx, session))

	player, err := players.Get(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, 60, player.TotalScore)
	assert.Equal(t, 1, player.GamesPlayed)

	stored, err := sessions.Get(ctx, "s1")
	require.NoError(t, err)
	assert.True(t, stored.Completed)
	assert.Equal(t, engine.RankCommander, stored.Rank)
	require.NotNil(t, stored.CompletedAt)
}

func TestCompleteRebuildsLeaderboard(t *testing.T) {
	sqlDB, queries := newTestDB(t)
	logger := zerolog.Nop()
	players := NewPlayerRepository(sqlDB, queries, logger)
	sessions := NewSessionRepository(sqlDB, queries, logger)
	leaderboard := NewLeaderboardRepository(sqlDB, queries, logger)
	ctx := context.Background()

	seedPlayer(t, players, "p1", "Nova")
	seedPlayer(t, players, "p2", "Vega")

	scores := map[string]int{"s1": 40, "s2": 85, "s3": 40}
	owners := map[string]string{"s1": "p1", "s2": "p2", "s3": "p1"}
	for _, id := range []string{"s1", "s2", "s3"} {
		session := seedSession(t, sessions, id, owners[id])
		session.Score = scores[id]
		require.NoError(t, session.Complete(time.Now().UTC()))
		require.NoError(t, sessions.Complete(ctx, session))
	}

	entries, err := leaderboard.List(ctx, engine.LeaderboardSize)
	require.NoError(t, err)
	require.Len(t, entries, 3)

	assert.Equal(t, 1, entries[0].RankPosition)
	assert.Equal(t, "s2", entries[0].SessionID)
	assert.Equal(t, "Vega", entries[0].PlayerName)
	assert.Equal(t, 85, entries[0].Score)

	// Tied scores fall back to session id order.
	assert.Equal(t, 2, entries[1].RankPosition)
	assert.Equal(t, "s1", entries[1].SessionID)
	assert.Equal(t, 3, entries[2].RankPosition)
	assert.Equal(t, "s3", entries[2].SessionID)
}

func TestLeaderboardCapsAtBoardSize(t *testing.T) {
	sqlDB, queries := newTestDB(t)
	logger := zerolog.Nop()
	players := NewPlayerRepository(sqlDB, queries, logger)
	sessions := NewSessionRepository(sqlDB, queries, logger)
	leaderboard := NewLeaderboardRepository(sqlDB, queries, logger)
	ctx := context.Background()

	seedPlayer(t, players, "p1", "Nova")

	for i := 0; i < engine.LeaderboardSize+10; i++ {
		session := seedSession(t, sessions, fmt.Sprintf("s%03d", i), "p1")
		session.Score = i
		require.NoError(t, session.Complete(time.Now().UTC()))
		require.NoError(t, sessions.Complete(ctx, session))
	}

	entries, err := leaderboard.List(ctx, engine.LeaderboardSize+10)
	require.NoError(t, err)
	require.Len(t, entries, engine.LeaderboardSize)
	assert.Equal(t, engine.LeaderboardSize+9, entries[0].Score)
}

func TestListCompletedOrdering(t *testing.T) {
	sqlDB, queries := newTestDB(t)
	logger := zerolog.Nop()
	players := NewPlayerRepository(sqlDB, queries, logger)
	sessions := NewSessionRepository(sqlDB, queries, logger)
	ctx := context.Background()

	seedPlayer(t, players, "p1", "Nova")
	for _, tc := range []struct {
		id    string
		score int
	}{{"sb", 50}, {"sa", 50}, {"sc", 90}} {
		session := seedSession(t, sessions, tc.id, "p1")
		session.Score = tc.score
		require.NoError(t, session.Complete(time.Now().UTC()))
		require.NoError(t, sessions.Complete(ctx, session))
	}

	completed, err := sessions.ListCompleted(ctx)
	require.NoError(t, err)
	require.Len(t, completed, 3)
	assert.Equal(t, "sc", completed[0].ID)
	assert.Equal(t, "sa", completed[1].ID)
	assert.Equal(t, "sb", completed[2].ID)
}

func TestScoreStats(t *testing.T) {
	sqlDB, queries := newTestDB(t)
	logger := zerolog.Nop()
	players := NewPlayerRepository(sqlDB, queries, logger)
	sessions := NewSessionRepository(sqlDB, queries, logger)
	ctx := context.Background()

	seedPlayer(t, players, "p1", "Nova")

	stats, err := sessions.GlobalScoreStats(ctx)
	require.NoError(t, err)
	assert.Zero(t, stats.TotalGames)

	for i, score := range []int{20, 40} {
		session := seedSession(t, sessions, fmt.Sprintf("s%d", i), "p1")
		session.Score = score
		require.NoError(t, session.Complete(time.Now().UTC()))
		require.NoError(t, sessions.Complete(ctx, session))
	}

	stats, err = sessions.GlobalScoreStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, stats.TotalGames)
	assert.InDelta(t, 30.0, stats.AverageScore, 0.001)
	assert.Equal(t, 40, stats.BestScore)

	playerStats, err := sessions.PlayerScoreStats(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, stats, playerStats)
}
