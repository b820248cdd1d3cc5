package repository

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"solar-defender/internal/database"
	"solar-defender/internal/db"
	"solar-defender/internal/domain"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func newTestDB(t *testing.T) (*sql.DB, *db.Queries) {
	t.Helper()

	sqlDB, err := sql.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	// A fresh in-memory database exists per connection, so the pool must
	// stay at one.
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, database.Migrate(sqlDB, zerolog.Nop()))
	return sqlDB, db.New(sqlDB)
}

func seedPlayer(t *testing.T, repo *PlayerRepository, id, name string) *domain.Player {
	t.Helper()

	now := time.Now().UTC()
	player := &domain.Player{ID: id, Name: name, CreatedAt: now, UpdatedAt: now}
	require.NoError(t, repo.Create(context.Background(), player))
	return player
}

func seedSession(t *testing.T, repo *SessionRepository, id, playerID string) *domain.GameSession {
	t.Helper()

	session := domain.NewGameSession(id, playerID, time.Now().UTC())
	require.NoError(t, repo.Create(context.Background(), session))
	return session
}
