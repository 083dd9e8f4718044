package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/color-game/palettes/colorspace"
	"github.com/color-game/palettes/datastore"
	"github.com/color-game/palettes/shades"
)

type Config struct {
	HTTPPort string `env:"HTTP_PORT" envDefault:":8080"`

	DatabaseType     string `env:"DB_TYPE" envDefault:"postgres"`
	DatabaseHost     string `env:"DB_HOST" envDefault:"localhost"`
	DatabaseUser     string `env:"DB_USER" envDefault:"postgres"`
	DatabasePassword string `env:"DB_PASSWORD"`
	DatabaseName     string `env:"DB_NAME" envDefault:"palettes"`
	SSLMode          string `env:"SSL_MODE" envDefault:"disable"`
	DatabasePath     string `env:"DB_PATH" envDefault:"file:palettes.sqlite3?_foreign_keys=on"`

	JwtSecret          string   `env:"JWT_SECRET" envDefault:"your-secret-key-change-this"`
	JwtAccessDuration  int      `env:"JWT_ACCESS_DURATION" envDefault:"900"`     // seconds
	JwtRefreshDuration int      `env:"JWT_REFRESH_DURATION" envDefault:"604800"` // seconds
	JwtDomain          string   `env:"JWT_DOMAIN"`
	AllowedOrigins     []string `env:"ALLOWED_ORIGINS" envSeparator:"," envDefault:"http://localhost:3000,http://localhost:5173"`
	DevMode            bool     `env:"DEV_MODE" envDefault:"true"`

	DefaultAlgorithm     string `env:"DEFAULT_ALGORITHM" envDefault:"tailwind"`
	DefaultShadeCount    int    `env:"DEFAULT_SHADE_COUNT" envDefault:"11"`
	DefaultNamingPattern string `env:"DEFAULT_NAMING_PATTERN" envDefault:"50-950"`
	FallbackSeed         string `env:"FALLBACK_SEED" envDefault:"#3B82F6"`

	DailyPaletteEnabled bool `env:"DAILY_PALETTE_ENABLED" envDefault:"true"`
}

// Load reads an optional .env file and then the process environment.
func Load() (Config, error) {
	// Load .env file if it exists
	_ = godotenv.Load()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("could not parse configuration: %v", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate rejects palette defaults the engine would refuse at request time.
func (c Config) Validate() error {
	if _, err := shades.ParseAlgorithm(c.DefaultAlgorithm); err != nil {
		return fmt.Errorf("DEFAULT_ALGORITHM: %v", err)
	}
	if _, err := shades.ParsePattern(c.DefaultNamingPattern); err != nil {
		return fmt.Errorf("DEFAULT_NAMING_PATTERN: %v", err)
	}
	if _, err := colorspace.HexToColor(c.FallbackSeed); err != nil {
		return fmt.Errorf("FALLBACK_SEED: %v", err)
	}
	switch c.DatabaseType {
	case datastore.Postgres, datastore.SQLite:
	default:
		return fmt.Errorf("DB_TYPE must be postgres or sqlite3, got %q", c.DatabaseType)
	}
	return nil
}

// ConnString returns the driver connection string for the configured database.
func (c Config) ConnString() string {
	if c.DatabaseType == datastore.SQLite {
		return c.DatabasePath
	}
	return datastore.BuildDBConnStr(c.DatabasePassword, c.DatabaseUser, c.DatabaseHost, c.DatabaseName, c.SSLMode)
}
