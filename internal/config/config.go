package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
)

const (
	PreferenceStoreMemory   = "memory"
	PreferenceStoreRedis    = "redis"
	PreferenceStorePostgres = "postgres"
)

type Config struct {
	AppEnv         string
	Port           string
	AllowedOrigins []string
	LogLevel       string

	PreferenceStore string
	RedisURL        string
	DatabaseURL     string

	MeiliSearchHost string
	MeiliMasterKey  string

	RefreshDelay time.Duration
	MaxViews     int
}

func Load() (*Config, error) {
	// Don't fail if .env doesn't exist (might be prod env vars)
	_ = godotenv.Load()

	cfg := &Config{
		AppEnv:         getEnv("APP_ENV", "development"),
		Port:           getEnv("PORT", "8080"),
		AllowedOrigins: splitList(getEnv("ALLOWED_ORIGINS", "http://localhost:8081")),
		LogLevel:       getEnv("LOG_LEVEL", "info"),

		PreferenceStore: strings.ToLower(getEnv("PREFERENCE_STORE", PreferenceStoreMemory)),
		RedisURL:        os.Getenv("REDIS_URL"),
		DatabaseURL:     os.Getenv("DATABASE_URL"),

		MeiliSearchHost: os.Getenv("MEILISEARCH_HOST"),
		MeiliMasterKey:  os.Getenv("MEILI_MASTER_KEY"),
	}

	var err error
	cfg.RefreshDelay, err = time.ParseDuration(getEnv("REFRESH_DELAY", "1s"))
	if err != nil {
		return nil, errors.Wrap(err, "invalid REFRESH_DELAY")
	}
	if cfg.RefreshDelay < 0 {
		return nil, errors.New("invalid REFRESH_DELAY: must not be negative")
	}

	cfg.MaxViews, err = strconv.Atoi(getEnv("MAX_VIEWS", "1024"))
	if err != nil {
		return nil, errors.Wrap(err, "invalid MAX_VIEWS")
	}
	if cfg.MaxViews <= 0 {
		return nil, errors.New("invalid MAX_VIEWS: must be positive")
	}

	switch cfg.PreferenceStore {
	case PreferenceStoreMemory:
	case PreferenceStoreRedis:
		if cfg.RedisURL == "" {
			return nil, errors.New("REDIS_URL is required when PREFERENCE_STORE=redis")
		}
	case PreferenceStorePostgres:
		if cfg.DatabaseURL == "" {
			return nil, errors.New("DATABASE_URL is required when PREFERENCE_STORE=postgres")
		}
	default:
		return nil, errors.Errorf("invalid PREFERENCE_STORE %q", cfg.PreferenceStore)
	}

	return cfg, nil
}

func (c *Config) Addr() string {
	return ":" + c.Port
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
