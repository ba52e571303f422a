package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	cerr "github.com/saeidalz13/battleship-board/internal/error"
)

const (
	StageProd = "prod"
	StageDev  = "dev"
)

const (
	defaultPort                   = 8000
	defaultLogLevel               = "info"
	defaultLogFormat              = "text"
	defaultSessionCleanupInterval = time.Minute * 20
)

type Config struct {
	Stage                  string
	Port                   int
	DatabaseUrl            string
	LogLevel               string
	LogFormat              string
	SessionCleanupInterval time.Duration
}

// Load reads the .env file outside of prod and then builds the
// config from the environment.
func Load(envFiles ...string) (Config, error) {
	if os.Getenv("STAGE") != StageProd {
		if len(envFiles) == 0 {
			envFiles = []string{".env"}
		}
		// a missing .env in dev is fine; real env vars still apply
		_ = godotenv.Load(envFiles...)
	}

	return FromEnv()
}

func FromEnv() (Config, error) {
	cfg := Config{
		Stage:                  os.Getenv("STAGE"),
		Port:                   defaultPort,
		DatabaseUrl:            os.Getenv("DATABASE_URL"),
		LogLevel:               defaultLogLevel,
		LogFormat:              defaultLogFormat,
		SessionCleanupInterval: defaultSessionCleanupInterval,
	}

	if cfg.Stage != StageDev && cfg.Stage != StageProd {
		return Config{}, cerr.ErrConfigValue("STAGE", cfg.Stage)
	}

	if portEnv := os.Getenv("PORT"); portEnv != "" {
		port, err := strconv.Atoi(portEnv)
		if err != nil || port <= 0 || port > 65535 {
			return Config{}, cerr.ErrConfigValue("PORT", portEnv)
		}
		cfg.Port = port
	}

	if lvl := os.Getenv("LOG_LEVEL"); lvl != "" {
		cfg.LogLevel = lvl
	}

	if format := os.Getenv("LOG_FORMAT"); format != "" {
		if format != "text" && format != "json" {
			return Config{}, cerr.ErrConfigValue("LOG_FORMAT", format)
		}
		cfg.LogFormat = format
	}

	if intervalEnv := os.Getenv("SESSION_CLEANUP_INTERVAL"); intervalEnv != "" {
		interval, err := time.ParseDuration(intervalEnv)
		if err != nil || interval <= 0 {
			return Config{}, cerr.ErrConfigValue("SESSION_CLEANUP_INTERVAL", intervalEnv)
		}
		cfg.SessionCleanupInterval = interval
	}

	return cfg, nil
}

func (c Config) AnalyticsEnabled() bool {
	return c.DatabaseUrl != ""
}
