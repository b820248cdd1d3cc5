package repository

import (
	"context"
	"database/sql"

	"solar-defender/internal/db"
	"solar-defender/internal/domain"

	"github.com/rs/zerolog"
)

type ReportRepository struct {
	queries *db.Queries
	db      *sql.DB
	logger  zerolog.Logger
}

func NewReportRepository(sqlDB *sql.DB, queries *db.Queries, logger zerolog.Logger) *ReportRepository {
	return &ReportRepository{
		queries: queries,
		db:      sqlDB,
		logger:  logger,
	}
}

func (r *ReportRepository) Create(ctx context.Context, report *domain.SpaceWeatherReport) error {
	return r.queries.CreateWeatherReport(ctx, db.CreateWeatherReportParams{
		ID:                   report.ID,
		ReportDate:           report.ReportDate,
		TotalFlares:          int64(report.TotalFlares),
		StrongestFlareID:     report.StrongestFlareID,
		RiskPercentage:       report.RiskPercentage,
		PredictionConfidence: report.PredictionConfidence,
	})
}

func (r *ReportRepository) Latest(ctx context.Context) (*domain.SpaceWeatherReport, error) {
	report, err := r.queries.GetLatestWeatherReport(ctx)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &domain.SpaceWeatherReport{
		ID:                   report.ID,
		ReportDate:           report.ReportDate,
		TotalFlares:          int(report.TotalFlares),
		StrongestFlareID:     report.StrongestFlareID,
		RiskPercentage:       report.RiskPercentage,
		PredictionConfidence: report.PredictionConfidence,
	}, nil
}
