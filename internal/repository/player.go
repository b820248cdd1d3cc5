package repository

import (
	"context"
	"database/sql"

	"solar-defender/internal/db"
	"solar-defender/internal/domain"

	"github.com/rs/zerolog"
)

type PlayerRepository struct {
	queries *db.Queries
	db      *sql.DB
	logger  zerolog.Logger
}

func NewPlayerRepository(sqlDB *sql.DB, queries *db.Queries, logger zerolog.Logger) *PlayerRepository {
	return &PlayerRepository{
		queries: queries,
		db:      sqlDB,
		logger:  logger,
	}
}

func (r *PlayerRepository) Create(ctx context.Context, player *domain.Player) error {
	return r.queries.CreatePlayer(ctx, db.CreatePlayerParams{
		ID:          player.ID,
		Name:        player.Name,
		TotalScore:  int64(player.TotalScore),
		GamesPlayed: int64(player.GamesPlayed),
		CreatedAt:   player.CreatedAt,
		UpdatedAt:   player.UpdatedAt,
	})
}

func (r *PlayerRepository) Get(ctx context.Context, id string) (*domain.Player, error) {
	player, err := r.queries.GetPlayer(ctx, id)
	if err != nil {
		return nil, err
	}
	p := toDomainPlayer(player)
	return &p, nil
}

func (r *PlayerRepository) List(ctx context.Context) ([]domain.Player, error) {
	players, err := r.queries.ListPlayers(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]domain.Player, len(players))
	for i, p := range players {
		result[i] = toDomainPlayer(p)
	}
	return result, nil
}

func (r *PlayerRepository) Count(ctx context.Context) (int, error) {
	count, err := r.queries.CountPlayers(ctx)
	return int(count), err
}

// DefenseUsage returns how many times the player has used each defense
// choice across all their missions, keyed by choice.
func (r *PlayerRepository) DefenseUsage(ctx context.Context, playerID string) (map[int]int, error) {
	rows, err := r.queries.PlayerDefenseUsage(ctx, playerID)
	if err != nil {
		return nil, err
	}

	usage := make(map[int]int, len(rows))
	for _, row := range rows {
		usage[int(row.DefenseChoice)] = int(row.Uses)
	}
	return usage, nil
}

func (r *PlayerRepository) MissionOutcomes(ctx context.Context, playerID string) (total, successful int, err error) {
	row, err := r.queries.PlayerMissionOutcomes(ctx, playerID)
	if err != nil {
		return 0, 0, err
	}
	return int(row.Total), int(row.Successful), nil
}

func toDomainPlayer(p db.Player) domain.Player {
	return domain.Player{
		ID:          p.ID,
		Name:        p.Name,
		TotalScore:  int(p.TotalScore),
		GamesPlayed: int(p.GamesPlayed),
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}
