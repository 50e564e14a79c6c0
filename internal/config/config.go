package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	DatabaseURL string
	DBDriver    string // pgx|postgres
	HTTPAddr    string
	LogLevel    string
	Env         string // dev|prod
	SentryDSN   string
	Release     string
	CORSOrigin  string

	BotToken string // пусто — бот не запускается

	RedisAddr string // пусто — кэш в памяти процесса
	CacheTTL  time.Duration

	SeedOnStart   bool
	LeaguesFile   string // пусто — встроенный leagues.yaml
	DataDir       string
	AdminUsername string
	AdminPassword string
}

// Load читает .env (если есть) и переменные окружения.
func Load() (*Config, error) {
	_ = godotenv.Load()

	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is required")
	}

	driver := strings.ToLower(getenv("DB_DRIVER", "pgx"))
	if driver != "pgx" && driver != "postgres" {
		return nil, fmt.Errorf("DB_DRIVER: unsupported driver %q", driver)
	}

	ttl, err := time.ParseDuration(getenv("CACHE_TTL", "10m"))
	if err != nil {
		return nil, fmt.Errorf("CACHE_TTL: %w", err)
	}

	seed, err := parseBool(os.Getenv("SEED_ON_START"))
	if err != nil {
		return nil, fmt.Errorf("SEED_ON_START: %w", err)
	}

	cfg := &Config{
		DatabaseURL:   dbURL,
		DBDriver:      driver,
		HTTPAddr:      getenv("HTTP_ADDR", ":8080"),
		LogLevel:      getenv("LOG_LEVEL", "info"),
		Env:           getenv("ENV", "dev"),
		SentryDSN:     os.Getenv("SENTRY_DSN"),
		Release:       getenv("RELEASE", "dev"),
		CORSOrigin:    getenv("CORS_ORIGIN", "*"),
		BotToken:      os.Getenv("BOT_TOKEN"),
		RedisAddr:     os.Getenv("REDIS_ADDR"),
		CacheTTL:      ttl,
		SeedOnStart:   seed,
		LeaguesFile:   os.Getenv("LEAGUES_FILE"),
		DataDir:       getenv("DATA_DIR", "data"),
		AdminUsername: getenv("ADMIN_USERNAME", "admin"),
		AdminPassword: getenv("ADMIN_PASSWORD", "admin123"),
	}
	return cfg, nil
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func parseBool(s string) (bool, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return false, nil
	}
	return strconv.ParseBool(s)
}
