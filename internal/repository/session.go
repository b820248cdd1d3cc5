package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"solar-defender/internal/db"
	"solar-defender/internal/domain"
	"solar-defender/internal/engine"

	"github.com/rs/zerolog"
)

type SessionRepository struct {
	queries *db.Queries
	db      *sql.DB
	logger  zerolog.Logger
}

func NewSessionRepository(sqlDB *sql.DB, queries *db.Queries, logger zerolog.Logger) *SessionRepository {
	return &SessionRepository{
		queries: queries,
		db:      sqlDB,
		logger:  logger,
	}
}

func (r *SessionRepository) Create(ctx context.Context, session *domain.GameSession) error {
	return r.queries.CreateSession(ctx, db.CreateSessionParams{
		ID:             session.ID,
		PlayerID:       session.PlayerID,
		Score:          int64(session.Score),
		PowerGrid:      int64(session.PowerGrid),
		Satellites:     int64(session.Satellites),
		Communications: int64(session.Communications),
		EarthHealth:    int64(session.EarthHealth),
		Rank:           string(session.Rank),
		Completed:      session.Completed,
		CreatedAt:      session.CreatedAt,
	})
}

func (r *SessionRepository) Get(ctx context.Context, id string) (*domain.GameSession, error) {
	session, err := r.queries.GetSession(ctx, id)
	if err != nil {
		return nil, err
	}
	s := toDomainSession(session)
	return &s, nil
}

// RecordMission persists one mission and the session state it produced in a
// single transaction, so a mission row never exists without its session
// update and vice versa.
func (r *SessionRepository) RecordMission(ctx context.Context, session *domain.GameSession, mission *domain.Mission) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	qtx := r.queries.WithTx(tx)

	err = qtx.CreateMission(ctx, db.CreateMissionParams{
		ID:                  mission.ID,
		SessionID:           mission.SessionID,
		FlareClassType:      mission.FlareClassType,
		DefenseChoice:       int64(mission.DefenseChoice),
		Success:             mission.Success,
		PhaseNumber:         int64(mission.PhaseNumber),
		PowerGridAfter:      int64(mission.PowerGridAfter),
		SatellitesAfter:     int64(mission.SatellitesAfter),
		CommunicationsAfter: int64(mission.CommunicationsAfter),
		EarthHealthAfter:    int64(mission.EarthHealthAfter),
		PointsEarned:        int64(mission.PointsEarned),
		CreatedAt:           mission.CreatedAt,
	})
	if err != nil {
		return fmt.Errorf("failed to create mission %s: %w", mission.ID, err)
	}

	err = qtx.UpdateSessionProgress(ctx, db.UpdateSessionProgressParams{
		Score:          int64(session.Score),
		PowerGrid:      int64(session.PowerGrid),
		Satellites:     int64(session.Satellites),
		Communications: int64(session.Communications),
		EarthHealth:    int64(session.EarthHealth),
		ID:             session.ID,
	})
	if err != nil {
		return fmt.Errorf("failed to update session %s: %w", session.ID, err)
	}

	return tx.Commit()
}

// Complete applies the three completion effects atomically: the session's
// terminal state, the owning player's cumulative stats, and the full
// leaderboard rebuild. SQLite's single-writer transaction serializes
// concurrent completions, so two racing rebuilds cannot interleave their
// delete-all/reinsert steps.
func (r *SessionRepository) Complete(ctx context.Context, session *domain.GameSession) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	qtx := r.queries.WithTx(tx)

	err = qtx.CompleteSession(ctx, db.CompleteSessionParams{
		Rank:        string(session.Rank),
		CompletedAt: session.CompletedAt,
		ID:          session.ID,
	})
	if err != nil {
		return fmt.Errorf("failed to complete session %s: %w", session.ID, err)
	}

	now := time.Now()
	err = qtx.AddPlayerStats(ctx, db.AddPlayerStatsParams{
		TotalScore: int64(session.Score),
		UpdatedAt:  now,
		ID:         session.PlayerID,
	})
	if err != nil {
		return fmt.Errorf("failed to update player stats for %s: %w", session.PlayerID, err)
	}

	if err := rebuildLeaderboard(ctx, qtx, now); err != nil {
		return err
	}

	r.logger.Info().
		Str("session_id", session.ID).
		Str("player_id", session.PlayerID).
		Int("score", session.Score).
		Str("rank", string(session.Rank)).
		Msg("session completed")

	return tx.Commit()
}

func rebuildLeaderboard(ctx context.Context, qtx *db.Queries, now time.Time) error {
	completed, err := qtx.ListCompletedSessions(ctx)
	if err != nil {
		return fmt.Errorf("failed to list completed sessions: %w", err)
	}

	ranked := make([]engine.CompletedSession, len(completed))
	for i, s := range completed {
		ranked[i] = engine.CompletedSession{
			SessionID: s.ID,
			PlayerID:  s.PlayerID,
			Score:     int(s.Score),
		}
	}

	standings := engine.RankSessions(ranked)

	if err := qtx.DeleteLeaderboard(ctx); err != nil {
		return fmt.Errorf("failed to clear leaderboard: %w", err)
	}

	for _, standing := range standings {
		err := qtx.InsertLeaderboardEntry(ctx, db.InsertLeaderboardEntryParams{
			RankPosition: int64(standing.Position),
			PlayerID:     standing.PlayerID,
			SessionID:    standing.SessionID,
			UpdatedAt:    now,
		})
		if err != nil {
			return fmt.Errorf("failed to insert leaderboard entry %d: %w", standing.Position, err)
		}
	}

	return nil
}

func (r *SessionRepository) ListCompleted(ctx context.Context) ([]domain.GameSession, error) {
	sessions, err := r.queries.ListCompletedSessions(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]domain.GameSession, len(sessions))
	for i, s := range sessions {
		result[i] = toDomainSession(s)
	}
	return result, nil
}

func (r *SessionRepository) ListPlayerCompleted(ctx context.Context, playerID string) ([]domain.GameSession, error) {
	sessions, err := r.queries.ListPlayerCompletedSessions(ctx, playerID)
	if err != nil {
		return nil, err
	}

	result := make([]domain.GameSession, len(sessions))
	for i, s := range sessions {
		result[i] = toDomainSession(s)
	}
	return result, nil
}

type ScoreStats struct {
	TotalGames   int
	AverageScore float64
	BestScore    int
}

func (r *SessionRepository) GlobalScoreStats(ctx context.Context) (ScoreStats, error) {
	row, err := r.queries.SessionScoreStats(ctx)
	if err != nil {
		return ScoreStats{}, err
	}
	return ScoreStats{
		TotalGames:   int(row.TotalGames),
		AverageScore: row.AverageScore,
		BestScore:    int(row.BestScore),
	}, nil
}

func (r *SessionRepository) PlayerScoreStats(ctx context.Context, playerID string) (ScoreStats, error) {
	row, err := r.queries.PlayerScoreStats(ctx, playerID)
	if err != nil {
		return ScoreStats{}, err
	}
	return ScoreStats{
		TotalGames:   int(row.TotalGames),
		AverageScore: row.AverageScore,
		BestScore:    int(row.BestScore),
	}, nil
}

func toDomainSession(s db.GameSession) domain.GameSession {
	return domain.GameSession{
		ID:             s.ID,
		PlayerID:       s.PlayerID,
		Score:          int(s.Score),
		PowerGrid:      int(s.PowerGrid),
		Satellites:     int(s.Satellites),
		Communications: int(s.Communications),
		EarthHealth:    int(s.EarthHealth),
		Rank:           engine.Rank(s.Rank),
		Completed:      s.Completed,
		CreatedAt:      s.CreatedAt,
		CompletedAt:    s.CompletedAt,
	}
}
