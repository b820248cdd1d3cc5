package fx

import (
	"database/sql"
	"solar-defender/internal/api"
	"solar-defender/internal/config"
	"solar-defender/internal/database"
	"solar-defender/internal/db"
	"solar-defender/internal/logger"
	"solar-defender/internal/repository"
	"solar-defender/internal/server"
	"solar-defender/internal/service"

	"go.uber.org/fx"
)

func ProvideQueries(sqlDB *sql.DB) *db.Queries {
	return db.New(sqlDB)
}

var Module = fx.Options(
	fx.Provide(logger.New),
	fx.Provide(config.Load),
	fx.Provide(database.New),
	fx.Provide(ProvideQueries),
	// repos
	fx.Provide(repository.NewPlayerRepository),
	fx.Provide(repository.NewSessionRepository),
	fx.Provide(repository.NewMissionRepository),
	fx.Provide(repository.NewFlareRepository),
	fx.Provide(repository.NewLeaderboardRepository),
	fx.Provide(repository.NewReportRepository),
	// api client
	fx.Provide(api.NewDONKIClient),
	// svc
	fx.Provide(service.NewPlayerService),
	fx.Provide(service.NewGameService),
	fx.Provide(service.NewFlareService),
	fx.Provide(service.NewLeaderboardService),
	fx.Provide(service.NewStatsService),
	fx.Provide(service.NewReportService),
	fx.Provide(service.NewChartService),
	// server
	fx.Provide(server.NewServer),
)
