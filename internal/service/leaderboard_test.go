package service

import (
	"context"
	"testing"

	"solar-defender/internal/constants"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLeaderboardTop(t *testing.T) {
	stack := newTestStack(t)
	leaderboard := NewLeaderboardService(stack.leaderboard, zerolog.Nop())
	game := stack.gameService()
	ctx := context.Background()

	stack.seedPlayer(t, "p1", "Nova")
	for i := 0; i < constants.TopPlayersLimit+5; i++ {
		session, err := game.CreateSession(ctx, "p1")
		require.NoError(t, err)
		_, _, err = game.RecordMission(ctx, session.ID, "B3.2", 1, i*5)
		require.NoError(t, err)
		_, err = game.CompleteSession(ctx, session.ID)
		require.NoError(t, err)
	}

	top, err := leaderboard.Top(ctx)
	require.NoError(t, err)
	require.Len(t, top, constants.TopPlayersLimit)
	assert.Equal(t, 1, top[0].RankPosition)
	assert.Equal(t, (constants.TopPlayersLimit+4)*5, top[0].Score)
	assert.Equal(t, "Nova", top[0].PlayerName)
}

func TestLeaderboardListClampsLimit(t *testing.T) {
	stack := newTestStack(t)
	leaderboard := NewLeaderboardService(stack.leaderboard, zerolog.Nop())

	entries, err := leaderboard.List(context.Background(), -3)
	require.NoError(t, err)
	assert.Empty(t, entries)
}
