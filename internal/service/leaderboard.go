package service

import (
	"context"
	"fmt"

	"solar-defender/internal/constants"
	"solar-defender/internal/domain"
	"solar-defender/internal/engine"
	"solar-defender/internal/repository"

	"github.com/rs/zerolog"
)

type LeaderboardService struct {
	repo   *repository.LeaderboardRepository
	logger zerolog.Logger
}

func NewLeaderboardService(repo *repository.LeaderboardRepository, logger zerolog.Logger) *LeaderboardService {
	return &LeaderboardService{repo: repo, logger: logger}
}

func (s *LeaderboardService) List(ctx context.Context, limit int) ([]domain.LeaderboardEntry, error) {
	ctx, cancel := context.WithTimeout(ctx, constants.DatabaseTimeout)
	defer cancel()

	if limit <= 0 || limit > engine.LeaderboardSize {
		limit = engine.LeaderboardSize
	}

	entries, err := s.repo.List(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list leaderboard: %w", err)
	}
	return entries, nil
}

// Top returns the ten best standings, the shape the game's home screen shows.
func (s *LeaderboardService) Top(ctx context.Context) ([]domain.LeaderboardEntry, error) {
	return s.List(ctx, constants.TopPlayersLimit)
}
