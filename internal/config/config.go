package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds process configuration read from the environment
type Config struct {
	// Redis history, disabled when RedisAddr is empty
	RedisAddr     string `env:"REDIS_ADDR"`
	RedisPassword string `env:"REDIS_PASSWORD"`
	RedisDB       int    `env:"REDIS_DB" envDefault:"0"`

	LogLevel string `env:"LOG_LEVEL" envDefault:"warn"`
	Env      string `env:"ENV" envDefault:"development"`

	// DiceSeed of zero seeds the dice from the clock
	DiceSeed   uint64 `env:"FARKLE_DICE_SEED" envDefault:"0"`
	MaxPlayers int    `env:"FARKLE_MAX_PLAYERS" envDefault:"10"`
}

// IsProduction reports whether the process runs in production mode
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

// HistoryEnabled reports whether match history should be stored
func (c *Config) HistoryEnabled() bool {
	return c.RedisAddr != ""
}

// Load reads an optional .env file from the working directory and parses
// the environment
func Load() (*Config, error) {
	return LoadFiles(".env")
}

// LoadFiles is Load with explicit dotenv paths. Missing files are skipped.
func LoadFiles(filenames ...string) (*Config, error) {
	for _, filename := range filenames {
		if err := godotenv.Load(filename); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to load %s: %w", filename, err)
		}
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}

	if cfg.MaxPlayers < 1 {
		return nil, fmt.Errorf("FARKLE_MAX_PLAYERS must be at least 1, got %d", cfg.MaxPlayers)
	}

	return cfg, nil
}
