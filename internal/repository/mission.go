package repository

import (
	"context"
	"database/sql"

	"solar-defender/internal/db"
	"solar-defender/internal/domain"

	"github.com/rs/zerolog"
)

type MissionRepository struct {
	queries *db.Queries
	db      *sql.DB
	logger  zerolog.Logger
}

func NewMissionRepository(sqlDB *sql.DB, queries *db.Queries, logger zerolog.Logger) *MissionRepository {
	return &MissionRepository{
		queries: queries,
		db:      sqlDB,
		logger:  logger,
	}
}

func (r *MissionRepository) ListBySession(ctx context.Context, sessionID string) ([]domain.Mission, error) {
	missions, err := r.queries.ListSessionMissions(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	result := make([]domain.Mission, len(missions))
	for i, m := range missions {
		result[i] = domain.Mission{
			ID:                  m.ID,
			SessionID:           m.SessionID,
			FlareClassType:      m.FlareClassType,
			DefenseChoice:       int(m.DefenseChoice),
			Success:             m.Success,
			PhaseNumber:         int(m.PhaseNumber),
			PowerGridAfter:      int(m.PowerGridAfter),
			SatellitesAfter:     int(m.SatellitesAfter),
			CommunicationsAfter: int(m.CommunicationsAfter),
			EarthHealthAfter:    int(m.EarthHealthAfter),
			PointsEarned:        int(m.PointsEarned),
			CreatedAt:           m.CreatedAt,
		}
	}
	return result, nil
}

func (r *MissionRepository) CountBySession(ctx context.Context, sessionID string) (int, error) {
	count, err := r.queries.CountSessionMissions(ctx, sessionID)
	return int(count), err
}

func (r *MissionRepository) Count(ctx context.Context) (int, error) {
	count, err := r.queries.CountMissions(ctx)
	return int(count), err
}
