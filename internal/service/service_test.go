package service

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"solar-defender/internal/database"
	"solar-defender/internal/db"
	"solar-defender/internal/domain"
	"solar-defender/internal/repository"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

type testStack struct {
	db          *sql.DB
	players     *repository.PlayerRepository
	sessions    *repository.SessionRepository
	missions    *repository.MissionRepository
	flares      *repository.FlareRepository
	leaderboard *repository.LeaderboardRepository
	reports     *repository.ReportRepository
}

func newTestStack(t *testing.T) *testStack {
	t.Helper()

	sqlDB, err := sql.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, database.Migrate(sqlDB, zerolog.Nop()))

	queries := db.New(sqlDB)
	logger := zerolog.Nop()
	return &testStack{
		db:          sqlDB,
		players:     repository.NewPlayerRepository(sqlDB, queries, logger),
		sessions:    repository.NewSessionRepository(sqlDB, queries, logger),
		missions:    repository.NewMissionRepository(sqlDB, queries, logger),
		flares:      repository.NewFlareRepository(sqlDB, queries, logger),
		leaderboard: repository.NewLeaderboardRepository(sqlDB, queries, logger),
		reports:     repository.NewReportRepository(sqlDB, queries, logger),
	}
}

func (ts *testStack) gameService() *GameService {
	return NewGameService(ts.sessions, ts.missions, ts.players, zerolog.Nop())
}

func (ts *testStack) seedPlayer(t *testing.T, id, name string) {
	t.Helper()

	now := time.Now().UTC()
	require.NoError(t, ts.players.Create(context.Background(), &domain.Player{
		ID: id, Name: name, CreatedAt: now, UpdatedAt: now,
	}))
}
