package config

import (
	"os"

	"github.com/BurntSushi/toml"
	"github.com/go-playground/validator/v10"

	"github.com/goserg/batchrating/internal/elo"
)

type Server struct {
	Host  string `toml:"host"`
	Port  int    `toml:"port" validate:"gte=0,lte=65535"`
	Debug bool   `toml:"debug_mode"`
	// RateLimit is the number of rating requests per second, Burst the bucket size.
	RateLimit float64 `toml:"rate_limit" validate:"gt=0"`
	Burst     int     `toml:"burst" validate:"gte=1"`
}

type Log struct {
	Level string `toml:"level" validate:"oneof=trace debug info warn warning error fatal panic"`
}

type Config struct {
	Solver elo.Params `toml:"solver"`
	Server Server     `toml:"server"`
	Log    Log        `toml:"log"`
}

func Default() Config {
	return Config{
		Solver: elo.DefaultParams(),
		Server: Server{
			Host:      "0.0.0.0",
			Port:      3000,
			RateLimit: 5,
			Burst:     10,
		},
		Log: Log{
			Level: "info",
		},
	}
}

// New reads the toml file at path over the defaults. An empty path means
// defaults only. RATING_LOG_LEVEL overrides the log level.
func New(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		_, err := toml.DecodeFile(path, &cfg)
		if err != nil {
			return Config{}, err
		}
	}
	level := os.Getenv("RATING_LOG_LEVEL")
	if level != "" {
		cfg.Log.Level = level
	}
	err := validator.New().Struct(cfg)
	if err != nil {
		return Config{}, err
	}
	return cfg, nil
}
