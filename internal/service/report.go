package service

import (
	"context"
	"fmt"
	"time"

	"solar-defender/internal/constants"
	"solar-defender/internal/domain"
	"solar-defender/internal/engine"
	"solar-defender/internal/repository"

	gonanoid "github.com/matoous/go-nanoid/v2"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

// ReportService builds and persists space-weather summaries over the recent
// flare window.
type ReportService struct {
	flareRepo  *repository.FlareRepository
	reportRepo *repository.ReportRepository
	logger     zerolog.Logger
}

func NewReportService(flareRepo *repository.FlareRepository, reportRepo *repository.ReportRepository, logger zerolog.Logger) *ReportService {
	return &ReportService{flareRepo: flareRepo, reportRepo: reportRepo, logger: logger}
}

// FlareAssessment pairs a stored flare with its current risk profile.
type FlareAssessment struct {
	Flare domain.SolarFlare
	Risk  engine.Risk
}

// WeatherReport is the stored report plus the flares that produced it.
type WeatherReport struct {
	Report    domain.SpaceWeatherReport
	Strongest *domain.SolarFlare
	Flares    []FlareAssessment
}

// Generate summarizes the last week of flares: total count, strongest event
// by intensity, and a weighted risk percentage (X-class triple weight,
// M-class double). The report row is persisted before returning.
func (s *ReportService) Generate(ctx context.Context) (*WeatherReport, error) {
	ctx, cancel := context.WithTimeout(ctx, constants.DatabaseTimeout)
	defer cancel()

	since := time.Now().AddDate(0, 0, -constants.ReportWindowDays)

	g, gCtx := errgroup.WithContext(ctx)
	var flares []domain.SolarFlare
	var strongest *domain.SolarFlare

	g.Go(func() error {
		var err error
		flares, err = s.flareRepo.ListSince(gCtx, since, constants.DBBatchSize)
		return err
	})

	g.Go(func() error {
		var err error
		strongest, err = s.flareRepo.StrongestSince(gCtx, since)
		return err
	})

	if err := g.Wait(); err != nil {
		s.logger.Error().Err(err).Msg("failed to load flares for report")
		return nil, fmt.Errorf("failed to load flares for report: %w", err)
	}

	riskPercentage := 0.0
	if len(flares) > 0 {
		riskSum := 0
		for _, f := range flares {
			riskSum += engine.RiskWeight(classOf(f.FlareClass))
		}
		riskPercentage = float64(riskSum) / float64(len(flares)*3) * 100
	}

	id, err := gonanoid.New()
	if err != nil {
		return nil, fmt.Errorf("failed to generate nanoid: %w", err)
	}

	report := domain.SpaceWeatherReport{
		ID:                   id,
		ReportDate:           time.Now(),
		TotalFlares:          len(flares),
		RiskPercentage:       riskPercentage,
		PredictionConfidence: constants.PredictionConfidence,
	}
	if strongest != nil {
		report.StrongestFlareID = &strongest.FlareID
	}

	if err := s.reportRepo.Create(ctx, &report); err != nil {
		s.logger.Error().Err(err).Msg("failed to store weather report")
		return nil, fmt.Errorf("failed to store weather report: %w", err)
	}

	assessments := make([]FlareAssessment, len(flares))
	for i, f := range flares {
		assessments[i] = FlareAssessment{
			Flare: f,
			Risk:  engine.AssessRisk(classOf(f.FlareClass)),
		}
	}

	s.logger.Info().
		Int("total_flares", report.TotalFlares).
		Float64("risk_percentage", report.RiskPercentage).
		Msg("weather report generated")

	return &WeatherReport{Report: report, Strongest: strongest, Flares: assessments}, nil
}

func classOf(classType string) byte {
	if classType == "" {
		return 'B'
	}
	return classType[0]
}
