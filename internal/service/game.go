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
	gonanoid "github.com/matoous/go-nanoid/v2"
	"github.com/rs/zerolog"
)

// GameService drives the session aggregate: mission resolution against the
// engine, session completion and the side effects completion triggers.
type GameService struct {
	sessionRepo *repository.SessionRepository
	missionRepo *repository.MissionRepository
	playerRepo  *repository.PlayerRepository
	logger      zerolog.Logger
}

func NewGameService(sessionRepo *repository.SessionRepository, missionRepo *repository.MissionRepository, playerRepo *repository.PlayerRepository, logger zerolog.Logger) *GameService {
	return &GameService{sessionRepo: sessionRepo, missionRepo: missionRepo, playerRepo: playerRepo, logger: logger}
}

func (s *GameService) CreateSession(ctx context.Context, playerID string) (*domain.GameSession, error) {
	ctx, cancel := context.WithTimeout(ctx, constants.DatabaseTimeout)
	defer cancel()

	if _, err := s.playerRepo.Get(ctx, playerID); err != nil {
		s.logger.Error().Err(err).Str("player_id", playerID).Msg("player not found")
		return nil, fmt.Errorf("player not found: %w", err)
	}

	session := domain.NewGameSession(uuid.New().String(), playerID, time.Now())
	if err := s.sessionRepo.Create(ctx, session); err != nil {
		s.logger.Error().Err(err).Str("player_id", playerID).Msg("failed to create session")
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	s.logger.Info().Str("session_id", session.ID).Str("player_id", playerID).Msg("session created")
	return session, nil
}

func (s *GameService) GetSession(ctx context.Context, sessionID string) (*domain.GameSession, []domain.Mission, error) {
	ctx, cancel := context.WithTimeout(ctx, constants.DatabaseTimeout)
	defer cancel()

	session, err := s.sessionRepo.Get(ctx, sessionID)
	if err != nil {
		return nil, nil, fmt.Errorf("session not found: %w", err)
	}

	missions, err := s.missionRepo.ListBySession(ctx, sessionID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list missions: %w", err)
	}

	return session, missions, nil
}

// RecordMission resolves one defense action for an active session: the flare
// is classified, the chosen strategy applied against the session's current
// health, and the resulting mission plus session state are persisted together.
// The whole outcome is computed before any write, so a rejected choice or a
// completed session leaves nothing behind.
func (s *GameService) RecordMission(ctx context.Context, sessionID, flareClassType string, defenseChoice, points int) (*domain.Mission, *domain.GameSession, error) {
	ctx, cancel := context.WithTimeout(ctx, constants.DatabaseTimeout)
	defer cancel()

	session, err := s.sessionRepo.Get(ctx, sessionID)
	if err != nil {
		return nil, nil, fmt.Errorf("session not found: %w", err)
	}

	impact := engine.Classify(classOf(flareClassType))
	outcome, err := engine.Resolve(defenseChoice, impact, session.Health())
	if err != nil {
		return nil, nil, err
	}

	phase, err := s.missionRepo.CountBySession(ctx, sessionID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to count missions: %w", err)
	}

	id, err := gonanoid.New()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to generate nanoid: %w", err)
	}

	mission := &domain.Mission{
		ID:                  id,
		SessionID:           sessionID,
		FlareClassType:      flareClassType,
		DefenseChoice:       defenseChoice,
		Success:             true,
		PhaseNumber:         phase + 1,
		PowerGridAfter:      outcome.Health.PowerGrid,
		SatellitesAfter:     outcome.Health.Satellites,
		CommunicationsAfter: outcome.Health.Communications,
		EarthHealthAfter:    outcome.EarthHealth,
		PointsEarned:        points,
		CreatedAt:           time.Now(),
	}

	if err := session.ApplyMission(mission); err != nil {
		return nil, nil, err
	}

	if err := s.sessionRepo.RecordMission(ctx, session, mission); err != nil {
		s.logger.Error().Err(err).Str("session_id", sessionID).Msg("failed to record mission")
		return nil, nil, fmt.Errorf("failed to record mission: %w", err)
	}

	s.logger.Info().
		Str("session_id", sessionID).
		Str("mission_id", mission.ID).
		Int("phase", mission.PhaseNumber).
		Str("flare_class", flareClassType).
		Int("defense_choice", defenseChoice).
		Int("earth_health", mission.EarthHealthAfter).
		Msg("mission recorded")

	return mission, session, nil
}

// CompleteSession transitions the session to its terminal state. The rank
// assignment, the player's cumulative stats and the leaderboard rebuild land
// in one transaction; a second call fails with ErrSessionCompleted and
// changes nothing.
func (s *GameService) CompleteSession(ctx context.Context, sessionID string) (*domain.GameSession, error) {
	ctx, cancel := context.WithTimeout(ctx, constants.DatabaseTimeout)
	defer cancel()

	session, err := s.sessionRepo.Get(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("session not found: %w", err)
	}

	if err := session.Complete(time.Now()); err != nil {
		return nil, err
	}

	if err := s.sessionRepo.Complete(ctx, session); err != nil {
		s.logger.Error().Err(err).Str("session_id", sessionID).Msg("failed to complete session")
		return nil, fmt.Errorf("failed to complete session: %w", err)
	}

	return session, nil
}

// PreviewDefense runs the classifier and resolver without touching any
// session, for clients that want to show the outcome before committing.
func (s *GameService) PreviewDefense(flareClassType string, defenseChoice int, current engine.Health) (engine.Impact, engine.Outcome, error) {
	impact := engine.Classify(classOf(flareClassType))
	outcome, err := engine.Resolve(defenseChoice, impact, current)
	if err != nil {
		return engine.Impact{}, engine.Outcome{}, err
	}
	return impact, outcome, nil
}
