package cmd

import (
	"database/sql"
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	HTTPPort string `env:"HTTP_PORT" envDefault:"8080"`

	DBHost     string `env:"DB_HOST" envDefault:"localhost"`
	DBPort     string `env:"DB_PORT" envDefault:"5432"`
	DBUser     string `env:"DB_USER" envDefault:"postgres"`
	DBPassword string `env:"DB_PASSWORD"`
	DBName     string `env:"DB_NAME" envDefault:"freight"`
	DBSslMode  string `env:"DB_SSLMODE" envDefault:"disable"`
	// DBIsolation is one of serializable, repeatable_read or read_committed.
	DBIsolation   string        `env:"DB_ISOLATION" envDefault:"serializable"`
	DBLockTimeout time.Duration `env:"DB_LOCK_TIMEOUT" envDefault:"5s"`

	// RedisAddr enables the place view cache when set.
	RedisAddr         string        `env:"REDIS_ADDR"`
	PlaceViewCacheTTL time.Duration `env:"PLACE_VIEW_CACHE_TTL" envDefault:"10m"`

	FulfillmentMaxAttempts int    `env:"FULFILLMENT_MAX_ATTEMPTS" envDefault:"3"`
	FleetAuditSchedule     string `env:"FLEET_AUDIT_SCHEDULE" envDefault:"0 * * * * *"`

	OTelEnabled  bool   `env:"OTEL_ENABLED" envDefault:"false"`
	OTelEndpoint string `env:"OTEL_ENDPOINT"`
}

// LoadConfig reads .env when present and then the process environment.
// Variables already set in the environment win over the file.
func LoadConfig() (Config, error) {
	if err := godotenv.Load(".env"); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if cfg.FulfillmentMaxAttempts < 1 {
		return Config{}, fmt.Errorf("FULFILLMENT_MAX_ATTEMPTS must be at least 1, got %d", cfg.FulfillmentMaxAttempts)
	}
	if _, err := cfg.IsolationLevel(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// DSN formats the postgres connection string understood by pgx.
func (c Config) DSN() string {
	u := url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(c.DBUser, c.DBPassword),
		Host:   c.DBHost + ":" + c.DBPort,
		Path:   c.DBName,
	}
	q := url.Values{}
	q.Set("sslmode", c.DBSslMode)
	u.RawQuery = q.Encode()
	return u.String()
}

func (c Config) IsolationLevel() (sql.IsolationLevel, error) {
	switch strings.ToLower(strings.TrimSpace(c.DBIsolation)) {
	case "", "serializable":
		return sql.LevelSerializable, nil
	case "repeatable_read":
		return sql.LevelRepeatableRead, nil
	case "read_committed":
		return sql.LevelReadCommitted, nil
	}
	return 0, fmt.Errorf("DB_ISOLATION: unsupported level %q", c.DBIsolation)
}
