package service

import (
	"context"
	"fmt"
	"time"

	"solar-defender/internal/constants"
	"solar-defender/internal/domain"
	"solar-defender/internal/engine"
	"solar-defender/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

type PlayerService struct {
	playerRepo  *repository.PlayerRepository
	sessionRepo *repository.SessionRepository
	logger      zerolog.Logger
}

func NewPlayerService(playerRepo *repository.PlayerRepository, sessionRepo *repository.SessionRepository, logger zerolog.Logger) *PlayerService {
	return &PlayerService{playerRepo: playerRepo, sessionRepo: sessionRepo, logger: logger}
}

func (s *PlayerService) Create(ctx context.Context, name string) (*domain.Player, error) {
	ctx, cancel := context.WithTimeout(ctx, constants.DatabaseTimeout)
	defer cancel()

	now := time.Now()
	player := &domain.Player{
		ID:        uuid.New().String(),
		Name:      name,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.playerRepo.Create(ctx, player); err != nil {
		s.logger.Error().Err(err).Str("name", name).Msg("failed to create player")
		return nil, fmt.Errorf("failed to create player: %w", err)
	}

	s.logger.Info().Str("player_id", player.ID).Str("name", name).Msg("player created")
	return player, nil
}

func (s *PlayerService) Get(ctx context.Context, id string) (*domain.Player, error) {
	ctx, cancel := context.WithTimeout(ctx, constants.DatabaseTimeout)
	defer cancel()

	player, err := s.playerRepo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("player not found: %w", err)
	}
	return player, nil
}

func (s *PlayerService) List(ctx context.Context) ([]domain.Player, error) {
	ctx, cancel := context.WithTimeout(ctx, constants.DatabaseTimeout)
	defer cancel()

	return s.playerRepo.List(ctx)
}

// PlayerStats aggregates a player's completed-session performance.
type PlayerStats struct {
	Player          domain.Player
	TotalGames      int
	AverageScore    float64
	BestScore       int
	TotalMissions   int
	DefenseUsage    map[int]int
	DefenseNames    map[int]string
	SuccessRate     float64
	CurrentBestRank engine.Rank
}

func (s *PlayerService) Stats(ctx context.Context, playerID string) (*PlayerStats, error) {
	ctx, cancel := context.WithTimeout(ctx, constants.DatabaseTimeout)
	defer cancel()

	player, err := s.playerRepo.Get(ctx, playerID)
	if err != nil {
		return nil, fmt.Errorf("player not found: %w", err)
	}

	scores, err := s.sessionRepo.PlayerScoreStats(ctx, playerID)
	if err != nil {
		return nil, fmt.Errorf("failed to load score stats: %w", err)
	}

	usage, err := s.playerRepo.DefenseUsage(ctx, playerID)
	if err != nil {
		return nil, fmt.Errorf("failed to load defense usage: %w", err)
	}

	total, successful, err := s.playerRepo.MissionOutcomes(ctx, playerID)
	if err != nil {
		return nil, fmt.Errorf("failed to load mission outcomes: %w", err)
	}

	successRate := 0.0
	if total > 0 {
		successRate = float64(successful) / float64(total) * 100
	}

	names := make(map[int]string, len(usage))
	for choice := range usage {
		names[choice] = engine.StrategyName(choice)
	}

	return &PlayerStats{
		Player:          *player,
		TotalGames:      scores.TotalGames,
		AverageScore:    scores.AverageScore,
		BestScore:       scores.BestScore,
		TotalMissions:   total,
		DefenseUsage:    usage,
		DefenseNames:    names,
		SuccessRate:     successRate,
		CurrentBestRank: engine.RankFor(scores.BestScore),
	}, nil
}

func (s *PlayerService) History(ctx context.Context, playerID string) ([]domain.GameSession, error) {
	ctx, cancel := context.WithTimeout(ctx, constants.DatabaseTimeout)
	defer cancel()

	if _, err := s.playerRepo.Get(ctx, playerID); err != nil {
		return nil, fmt.Errorf("player not found: %w", err)
	}

	return s.sessionRepo.ListPlayerCompleted(ctx, playerID)
}
