package repository

import (
	"context"
	"database/sql"
	"fmt"
	"testing"
	"time"

	"solar-defender/internal/domain"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlayerCreateAndGet(t *testing.T) {
	sqlDB, queries := newTestDB(t)
	players := NewPlayerRepository(sqlDB, queries, zerolog.Nop())
	ctx := context.Background()

	seedPlayer(t, players, "p1", "Nova")

	player, err := players.Get(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, "Nova", player.Name)
	assert.Zero(t, player.TotalScore)
	assert.Zero(t, player.GamesPlayed)

	_, err = players.Get(ctx, "missing")
	assert.ErrorIs(t, err, sql.ErrNoRows)
}

func TestPlayerListAndCount(t *testing.T) {
	sqlDB, queries := newTestDB(t)
	players := NewPlayerRepository(sqlDB, queries, zerolog.Nop())
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		seedPlayer(t, players, fmt.Sprintf("p%d", i), fmt.Sprintf("Player %d", i))
	}

	list, err := players.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 3)

	count, err := players.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, count)
}

func TestPlayerDefenseUsageAndOutcomes(t *testing.T) {
	sqlDB, queries := newTestDB(t)
	logger := zerolog.Nop()
	players := NewPlayerRepository(sqlDB, queries, logger)
	sessions := NewSessionRepository(sqlDB, queries, logger)
	ctx := context.Background()

	seedPlayer(t, players, "p1", "Nova")
	session := seedSession(t, sessions, "s1", "p1")

	for i, choice := range []int{2, 2, 4} {
		mission := &domain.Mission{
			ID:                  fmt.Sprintf("m%d", i),
			SessionID:           "s1",
			FlareClassType:      "C1.5",
			DefenseChoice:       choice,
			Success:             true,
			PhaseNumber:         i + 1,
			PowerGridAfter:      90,
			SatellitesAfter:     90,
			CommunicationsAfter: 90,
			EarthHealthAfter:    90,
			PointsEarned:        10,
			CreatedAt:           time.Now().UTC(),
		}
		require.NoError(t, session.ApplyMission(mission))
		require.NoError(t, sessions.RecordMission(ctx, session, mission))
	}

	usage, err := players.DefenseUsage(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, map[int]int{2: 2, 4: 1}, usage)

	total, successful, err := players.MissionOutcomes(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, 3, total)
	assert.Equal(t, 3, successful)
}
