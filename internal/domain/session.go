package domain

import (
	"errors"
	"time"

	"solar-defender/internal/engine"
)

var (
	ErrSessionCompleted = errors.New("session already completed")
	ErrNegativePoints   = errors.New("mission points must not be negative")
)

// InitialSystemHealth is the value every system starts a session at.
const InitialSystemHealth = 100

// NewGameSession returns an active session with full health and zero score.
// Timestamps and the id come from the caller so the aggregate stays clock-free.
func NewGameSession(id, playerID string, now time.Time) *GameSession {
	return &GameSession{
		ID:             id,
		PlayerID:       playerID,
		PowerGrid:      InitialSystemHealth,
		Satellites:     InitialSystemHealth,
		Communications: InitialSystemHealth,
		EarthHealth:    InitialSystemHealth,
		CreatedAt:      now,
	}
}

// Health packs the session's system values for the engine.
func (s *GameSession) Health() engine.Health {
	return engine.Health{
		PowerGrid:      s.PowerGrid,
		Satellites:     s.Satellites,
		Communications: s.Communications,
	}
}

// ApplyMission folds one resolved mission into the session: health is
// overwritten with the mission's after-state and the score advances by the
// mission's own points. The session is the only authority over its score.
func (s *GameSession) ApplyMission(m *Mission) error {
	if s.Completed {
		return ErrSessionCompleted
	}
	if m.PointsEarned < 0 {
		return ErrNegativePoints
	}

	s.PowerGrid = m.PowerGridAfter
	s.Satellites = m.SatellitesAfter
	s.Communications = m.CommunicationsAfter
	s.EarthHealth = m.EarthHealthAfter
	s.Score += m.PointsEarned
	return nil
}

// Complete transitions the session to its terminal state and assigns the
// rank. Completing twice fails with ErrSessionCompleted and changes nothing.
func (s *GameSession) Complete(now time.Time) error {
	if s.Completed {
		return ErrSessionCompleted
	}

	s.Rank = engine.RankFor(s.Score)
	s.Completed = true
	s.CompletedAt = &now
	return nil
}
