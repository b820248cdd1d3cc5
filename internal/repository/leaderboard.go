package repository

import (
	"context"
	"database/sql"

	"solar-defender/internal/db"
	"solar-defender/internal/domain"

	"github.com/rs/zerolog"
)

type LeaderboardRepository struct {
	queries *db.Queries
	db      *sql.DB
	logger  zerolog.Logger
}

func NewLeaderboardRepository(sqlDB *sql.DB, queries *db.Queries, logger zerolog.Logger) *LeaderboardRepository {
	return &LeaderboardRepository{
		queries: queries,
		db:      sqlDB,
		logger:  logger,
	}
}

// List returns the current standings joined with player names and session
// scores, top positions first. Writes happen only through
// SessionRepository.Complete, inside the completion transaction.
func (r *LeaderboardRepository) List(ctx context.Context, limit int) ([]domain.LeaderboardEntry, error) {
	rows, err := r.queries.ListLeaderboard(ctx, int64(limit))
	if err != nil {
		return nil, err
	}

	entries := make([]domain.LeaderboardEntry, len(rows))
	for i, row := range rows {
		entries[i] = domain.LeaderboardEntry{
			RankPosition: int(row.RankPosition),
			PlayerID:     row.PlayerID,
			PlayerName:   row.PlayerName,
			SessionID:    row.SessionID,
			Score:        int(row.Score),
			UpdatedAt:    row.UpdatedAt,
		}
	}
	return entries, nil
}
