package main

import (
	"context"
	"database/sql"
	fxmodules "solar-defender/internal/fx"
	"solar-defender/internal/service"

	"github.com/rs/zerolog"
	"go.uber.org/fx"
)

// fetchflares pulls the recent solar flare window from DONKI, stores it and
// exits. Meant for cron or a manual refresh before the feed quota resets.
func main() {
	fx.New(
		fxmodules.Module,
		fx.Invoke(runFetch),
	).Run()
}

func runFetch(
	lc fx.Lifecycle,
	flares *service.FlareService,
	db *sql.DB,
	logger zerolog.Logger,
	shutdowner fx.Shutdowner,
) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				stored, err := flares.FetchAndStore(context.Background())
				if err != nil {
					logger.Error().Err(err).Msg("flare fetch failed")
				} else {
					quota := flares.QuotaInfo()
					logger.Info().
						Int("flares", len(stored)).
						Int("quota_remaining", quota.Remaining).
						Msg("flare fetch complete")
				}
				if err := shutdowner.Shutdown(); err != nil {
					logger.Error().Err(err).Msg("shutdown failed")
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			if err := db.Close(); err != nil {
				logger.Warn().Err(err).Msg("error closing database connection")
			}
			return nil
		},
	})
}
