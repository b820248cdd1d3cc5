package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"solar-defender/internal/constants"
	"solar-defender/internal/db"
	"solar-defender/internal/domain"

	"github.com/rs/zerolog"
)

type FlareRepository struct {
	queries *db.Queries
	db      *sql.DB
	logger  zerolog.Logger
}

func NewFlareRepository(sqlDB *sql.DB, queries *db.Queries, logger zerolog.Logger) *FlareRepository {
	return &FlareRepository{
		queries: queries,
		db:      sqlDB,
		logger:  logger,
	}
}

func (r *FlareRepository) UpsertBatch(ctx context.Context, flares []domain.SolarFlare) error {
	if len(flares) == 0 {
		return nil
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	qtx := r.queries.WithTx(tx)

	for i := 0; i < len(flares); i += constants.DBBatchSize {
		end := i + constants.DBBatchSize
		if end > len(flares) {
			end = len(flares)
		}

		for _, flare := range flares[i:end] {
			err := qtx.UpsertFlare(ctx, db.UpsertFlareParams{
				FlareID:      flare.FlareID,
				ClassType:    flare.ClassType,
				FlareClass:   flare.FlareClass,
				Intensity:    flare.Intensity,
				BeginTime:    flare.BeginTime,
				PeakTime:     flare.PeakTime,
				EndTime:      flare.EndTime,
				RiskLevel:    flare.RiskLevel,
				RiskColor:    flare.RiskColor,
				IsSimulation: flare.IsSimulation,
				CreatedAt:    flare.CreatedAt,
			})
			if err != nil {
				return fmt.Errorf("failed to upsert flare %s: %w", flare.FlareID, err)
			}
		}
	}

	return tx.Commit()
}

func (r *FlareRepository) ListSince(ctx context.Context, since time.Time, limit int) ([]domain.SolarFlare, error) {
	flares, err := r.queries.ListFlaresSince(ctx, db.ListFlaresSinceParams{
		BeginTime: since,
		Limit:     int64(limit),
	})
	if err != nil {
		return nil, err
	}
	return toDomainFlares(flares), nil
}

func (r *FlareRepository) List(ctx context.Context, limit int) ([]domain.SolarFlare, error) {
	flares, err := r.queries.ListFlares(ctx, int64(limit))
	if err != nil {
		return nil, err
	}
	return toDomainFlares(flares), nil
}

// StrongestSince returns the highest-intensity flare in the window, or nil
// when the window is empty.
func (r *FlareRepository) StrongestSince(ctx context.Context, since time.Time) (*domain.SolarFlare, error) {
	flare, err := r.queries.StrongestFlareSince(ctx, since)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	f := toDomainFlare(flare)
	return &f, nil
}

func (r *FlareRepository) ClassDistribution(ctx context.Context) (map[string]int, error) {
	rows, err := r.queries.FlareClassDistribution(ctx)
	if err != nil {
		return nil, err
	}

	dist := make(map[string]int, len(rows))
	for _, row := range rows {
		dist[row.FlareClass] = int(row.Count)
	}
	return dist, nil
}

func toDomainFlare(f db.SolarFlare) domain.SolarFlare {
	return domain.SolarFlare{
		FlareID:      f.FlareID,
		ClassType:    f.ClassType,
		FlareClass:   f.FlareClass,
		Intensity:    f.Intensity,
		BeginTime:    f.BeginTime,
		PeakTime:     f.PeakTime,
		EndTime:      f.EndTime,
		RiskLevel:    f.RiskLevel,
		RiskColor:    f.RiskColor,
		IsSimulation: f.IsSimulation,
		CreatedAt:    f.CreatedAt,
	}
}

func toDomainFlares(flares []db.SolarFlare) []domain.SolarFlare {
	result := make([]domain.SolarFlare, len(flares))
	for i, f := range flares {
		result[i] = toDomainFlare(f)
	}
	return result
}
