package service

import (
	"context"
	"fmt"

	"solar-defender/internal/constants"
	"solar-defender/internal/repository"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

type StatsService struct {
	sessionRepo *repository.SessionRepository
	playerRepo  *repository.PlayerRepository
	missionRepo *repository.MissionRepository
	flareRepo   *repository.FlareRepository
	logger      zerolog.Logger
}

func NewStatsService(sessionRepo *repository.SessionRepository, playerRepo *repository.PlayerRepository, missionRepo *repository.MissionRepository, flareRepo *repository.FlareRepository, logger zerolog.Logger) *StatsService {
	return &StatsService{sessionRepo: sessionRepo, playerRepo: playerRepo, missionRepo: missionRepo, flareRepo: flareRepo, logger: logger}
}

type GlobalStats struct {
	TotalGames    int
	TotalPlayers  int
	AverageScore  float64
	HighestScore  int
	TotalMissions int
	FlaresByClass map[string]int
}

func (s *StatsService) Global(ctx context.Context) (*GlobalStats, error) {
	ctx, cancel := context.WithTimeout(ctx, constants.DatabaseTimeout)
	defer cancel()

	g, gCtx := errgroup.WithContext(ctx)

	var scores repository.ScoreStats
	var players, missions int
	var distribution map[string]int

	g.Go(func() error {
		var err error
		scores, err = s.sessionRepo.GlobalScoreStats(gCtx)
		return err
	})
	g.Go(func() error {
		var err error
		players, err = s.playerRepo.Count(gCtx)
		return err
	})
	g.Go(func() error {
		var err error
		missions, err = s.missionRepo.Count(gCtx)
		return err
	})
	g.Go(func() error {
		var err error
		distribution, err = s.flareRepo.ClassDistribution(gCtx)
		return err
	})

	if err := g.Wait(); err != nil {
		s.logger.Error().Err(err).Msg("failed to gather global stats")
		return nil, fmt.Errorf("failed to gather global stats: %w", err)
	}

	return &GlobalStats{
		TotalGames:    scores.TotalGames,
		TotalPlayers:  players,
		AverageScore:  scores.AverageScore,
		HighestScore:  scores.BestScore,
		TotalMissions: missions,
		FlaresByClass: distribution,
	}, nil
}
