package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"go.uber.org/fx"
)

type Config struct {
	NASAAPIKey string
	DBPath     string
	ServerPort string
	LogLevel   string
	FlareTTL   time.Duration
}

func Load(logger zerolog.Logger) (*Config, error) {
	if err := godotenv.Load(); err != nil {
		logger.Debug().Msg(".env file not found, using environment variables or defaults")
	}

	cfg := &Config{
		// DONKI accepts DEMO_KEY with a reduced quota, so a missing key is
		// not fatal: the simulator covers the gap anyway.
		NASAAPIKey: getEnv("NASA_API_KEY", "DEMO_KEY"),
		DBPath:     getEnv("DB_PATH", "solar_defender.db"),
		ServerPort: getEnv("SERVER_PORT", "8080"),
		LogLevel:   getEnv("LOG_LEVEL", "info"),
		FlareTTL:   30 * time.Minute,
	}

	logger.Info().
		Str("db_path", cfg.DBPath).
		Str("server_port", cfg.ServerPort).
		Str("log_level", cfg.LogLevel).
		Dur("flare_ttl", cfg.FlareTTL).
		Msg("configuration loaded")

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

var Module = fx.Provide(Load)
