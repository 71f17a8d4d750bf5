package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/yakhltv/yakhltv-api/internal/bracket"
)

type Config struct {
	Port          int
	DBPath        string
	AdminPassword string
	// bcrypt hash of the admin password; takes precedence over AdminPassword
	AdminPasswordHash string
	JWTSecret         string
	TokenTTL          time.Duration
	StaticDir         string
	CORSOrigins       []string
	StageOrder        bracket.StageOrder
	LogLevel          slog.Level
}

// Load reads the configuration from the environment, loading a .env file first when
// one exists.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		slog.Debug("No .env file found, using environment variables")
	}

	port, err := strconv.Atoi(getEnv("PORT", "3000"))
	if err != nil {
		return nil, fmt.Errorf("invalid PORT: %w", err)
	}
	if port <= 0 || port > 65535 {
		return nil, fmt.Errorf("PORT must be between 1 and 65535, got %d", port)
	}

	ttl, err := time.ParseDuration(getEnv("TOKEN_TTL", "12h"))
	if err != nil {
		return nil, fmt.Errorf("invalid TOKEN_TTL: %w", err)
	}
	if ttl <= 0 {
		return nil, fmt.Errorf("TOKEN_TTL must be positive, got %s", ttl)
	}

	stageOrder := bracket.DefaultStageOrder
	if raw := os.Getenv("STAGE_ORDER"); raw != "" {
		stageOrder, err = bracket.ParseStageOrder(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid STAGE_ORDER: %w", err)
		}
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(getEnv("LOG_LEVEL", "info"))); err != nil {
		return nil, fmt.Errorf("invalid LOG_LEVEL: %w", err)
	}

	return &Config{
		Port:              port,
		DBPath:            getEnv("DB_PATH", "data/db.sqlite"),
		AdminPassword:     getEnv("ADMIN_PASS", "111"),
		AdminPasswordHash: os.Getenv("ADMIN_PASS_HASH"),
		JWTSecret:         getEnv("JWT_SECRET", "dev_secret_change_me"),
		TokenTTL:          ttl,
		StaticDir:         getEnv("STATIC_DIR", "public"),
		CORSOrigins:       splitList(getEnv("CORS_ORIGINS", "*")),
		StageOrder:        stageOrder,
		LogLevel:          level,
	}, nil
}

func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
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
