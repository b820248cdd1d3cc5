package service

import (
	"context"
	"fmt"
	"time"

	"solar-defender/internal/api"
	"solar-defender/internal/constants"
	"solar-defender/internal/domain"
	"solar-defender/internal/engine"
	"solar-defender/internal/repository"

	"github.com/rs/zerolog"
)

// FlareService proxies the DONKI feed into local storage, falling back to a
// deterministic simulator whenever the feed is unreachable or empty so the
// game always has flares to throw at players.
type FlareService struct {
	donki  *api.DONKIClient
	repo   *repository.FlareRepository
	logger zerolog.Logger
}

func NewFlareService(donki *api.DONKIClient, repo *repository.FlareRepository, logger zerolog.Logger) *FlareService {
	return &FlareService{donki: donki, repo: repo, logger: logger}
}

// FetchAndStore pulls the last week of flares from DONKI and upserts them.
// API failure is not an error for callers: the simulator covers the gap.
func (s *FlareService) FetchAndStore(ctx context.Context) ([]domain.SolarFlare, error) {
	ctx, cancel := context.WithTimeout(ctx, constants.RequestTimeout)
	defer cancel()

	apiCtx, apiCancel := context.WithTimeout(ctx, constants.ExternalAPITimeout)
	defer apiCancel()

	now := time.Now()
	events, err := s.donki.GetFlares(apiCtx, now.AddDate(0, 0, -constants.FlareFetchWindowDays), now)
	if err != nil {
		s.logger.Warn().Err(err).Msg("DONKI fetch failed, falling back to simulation")
		return s.Simulate(ctx)
	}
	if len(events) == 0 {
		s.logger.Info().Msg("DONKI returned no flares, falling back to simulation")
		return s.Simulate(ctx)
	}

	if len(events) > constants.RecentFlareLimit {
		events = events[:constants.RecentFlareLimit]
	}

	flares := make([]domain.SolarFlare, len(events))
	for i, event := range events {
		flares[i] = flareFromEvent(event, now)
	}

	if err := s.repo.UpsertBatch(ctx, flares); err != nil {
		s.logger.Error().Err(err).Msg("failed to store flares")
		return nil, fmt.Errorf("failed to store flares: %w", err)
	}

	s.logger.Info().Int("count", len(flares)).Msg("flares fetched and stored")
	return flares, nil
}

// Recent returns flares whose begin time falls inside the window. An empty
// window triggers the simulator, matching the game's expectation of always
// having a handful of flares to play.
func (s *FlareService) Recent(ctx context.Context, days int) ([]domain.SolarFlare, error) {
	ctx, cancel := context.WithTimeout(ctx, constants.DatabaseTimeout)
	defer cancel()

	if days <= 0 {
		days = constants.FlareFetchWindowDays
	}

	flares, err := s.repo.ListSince(ctx, time.Now().AddDate(0, 0, -days), constants.RecentFlareLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to list flares: %w", err)
	}

	if len(flares) == 0 {
		s.logger.Info().Int("days", days).Msg("no stored flares in window, simulating")
		return s.Simulate(ctx)
	}
	return flares, nil
}

func (s *FlareService) List(ctx context.Context, limit int) ([]domain.SolarFlare, error) {
	ctx, cancel := context.WithTimeout(ctx, constants.DatabaseTimeout)
	defer cancel()

	if limit <= 0 || limit > constants.DBBatchSize {
		limit = constants.DBBatchSize
	}
	return s.repo.List(ctx, limit)
}

// Simulate builds and stores one flare per canned class string, spaced six
// hours apart going backward from now, flagged so clients can tell simulated
// data from the real feed.
func (s *FlareService) Simulate(ctx context.Context) ([]domain.SolarFlare, error) {
	now := time.Now()
	flares := make([]domain.SolarFlare, len(constants.SimulationClasses))

	for i, classType := range constants.SimulationClasses {
		risk := engine.AssessRisk(api.FlareClass(classType))
		flares[i] = domain.SolarFlare{
			FlareID:      fmt.Sprintf("SIMULATION-FLARE-%d-%d", now.Unix(), i),
			ClassType:    classType,
			FlareClass:   string(api.FlareClass(classType)),
			Intensity:    api.Intensity(classType),
			BeginTime:    now.Add(-time.Duration(i) * 6 * time.Hour),
			RiskLevel:    risk.Level,
			RiskColor:    risk.Color,
			IsSimulation: true,
			CreatedAt:    now,
		}
	}

	if err := s.repo.UpsertBatch(ctx, flares); err != nil {
		return nil, fmt.Errorf("failed to store simulated flares: %w", err)
	}

	s.logger.Info().Int("count", len(flares)).Msg("simulation flares created")
	return flares, nil
}

func (s *FlareService) QuotaInfo() api.QuotaInfo {
	return s.donki.GetQuotaInfo()
}

func flareFromEvent(event api.FlareEvent, now time.Time) domain.SolarFlare {
	class := api.FlareClass(event.ClassType)
	risk := engine.AssessRisk(class)

	flare := domain.SolarFlare{
		FlareID:    event.FlrID,
		ClassType:  event.ClassType,
		FlareClass: string(class),
		Intensity:  api.Intensity(event.ClassType),
		BeginTime:  event.BeginTime.Time,
		RiskLevel:  risk.Level,
		RiskColor:  risk.Color,
		CreatedAt:  now,
	}
	if flare.FlareID == "" {
		flare.FlareID = fmt.Sprintf("UNKNOWN-%d", now.UnixNano())
	}
	if flare.BeginTime.IsZero() {
		flare.BeginTime = now
	}
	if event.PeakTime != nil && !event.PeakTime.IsZero() {
		t := event.PeakTime.Time
		flare.PeakTime = &t
	}
	if event.EndTime != nil && !event.EndTime.IsZero() {
		t := event.EndTime.Time
		flare.EndTime = &t
	}
	return flare
}
