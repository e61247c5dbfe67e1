package config

import (
	"fmt"
	"log"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

const (
	SourceMock   = "mock"
	SourceSQLite = "sqlite"
	SourceRemote = "remote"
)

type AppConfig struct {
	Port     string `env:"PORT"     envDefault:"8080"`
	Timezone string `env:"TZ"`
	DBPath   string `env:"DB_PATH"  envDefault:"farm.db"`

	// DataSource picks the record store: mock, sqlite or remote.
	DataSource     string        `env:"DATA_SOURCE"     envDefault:"mock"`
	BackendURL     string        `env:"BACKEND_URL"`
	BackendAPIKey  string        `env:"BACKEND_API_KEY"`
	// BackendUID is sent upstream when no request uid is on the context.
	BackendUID     string        `env:"BACKEND_UID"     envDefault:"farmdash"`
	BackendTimeout time.Duration `env:"BACKEND_TIMEOUT" envDefault:"15s"`
	MockDelay      time.Duration `env:"MOCK_DELAY"      envDefault:"300ms"`

	CORSOrigins    []string `env:"CORS_ORIGINS"     envSeparator:","`
	EnableDevLogin bool     `env:"ENABLE_DEV_LOGIN" envDefault:"true"`
}

// String hides the backend key when the config is logged.
func (c AppConfig) String() string {
	key := ""
	if c.BackendAPIKey != "" {
		key = "***"
	}
	return fmt.Sprintf("{Port:%s TZ:%s DBPath:%s DataSource:%s BackendURL:%s BackendAPIKey:%s BackendUID:%s BackendTimeout:%s MockDelay:%s CORSOrigins:%v EnableDevLogin:%t}",
		c.Port, c.Timezone, c.DBPath, c.DataSource, c.BackendURL, key, c.BackendUID, c.BackendTimeout, c.MockDelay, c.CORSOrigins, c.EnableDevLogin)
}

// Load reads .env when present, then the process environment.
func Load() (AppConfig, error) {
	if err := godotenv.Load(); err != nil {
		log.Printf("[cfg] No .env file found or error loading: %v", err)
	}
	return Parse()
}

// Parse reads the process environment only.
func Parse() (AppConfig, error) {
	var cfg AppConfig
	if err := env.Parse(&cfg); err != nil {
		return cfg, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	log.Printf("[cfg] %s", cfg)
	return cfg, nil
}

func (c AppConfig) Validate() error {
	switch c.DataSource {
	case SourceMock, SourceSQLite:
	case SourceRemote:
		if c.BackendURL == "" {
			return fmt.Errorf("DATA_SOURCE=remote requires BACKEND_URL")
		}
	default:
		return fmt.Errorf("unknown DATA_SOURCE %q (want mock, sqlite or remote)", c.DataSource)
	}
	if c.MockDelay < 0 {
		return fmt.Errorf("MOCK_DELAY cannot be negative")
	}
	return nil
}
