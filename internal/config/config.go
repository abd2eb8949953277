package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
	_ "time/tzdata"

	"github.com/joho/godotenv"
)

type Config struct {
	Env              string
	Port             string
	DatabaseURL      string
	DBMaxOpenConns   int
	JWTSecret        string
	EncryptionSecret string
	AllowedOrigins   []string
	LogLevel         string
	LogFile          string
	DisplayLocation  *time.Location
}

func (c *Config) IsProduction() bool { return c.Env == "production" }

func getenv(key, fallback string) string {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	return v
}

// Load reads .env (if present) and then the process environment.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Env:              getenv("APP_ENV", "development"),
		Port:             getenv("PORT", "8080"),
		DatabaseURL:      os.Getenv("DATABASE_URL"),
		JWTSecret:        os.Getenv("JWT_SECRET"),
		EncryptionSecret: os.Getenv("ENCRYPTION_SECRET"),
		LogLevel:         getenv("LOG_LEVEL", "info"),
		LogFile:          os.Getenv("LOG_FILE"),
	}
	if cfg.JWTSecret == "" {
		return nil, errors.New("JWT_SECRET is required")
	}

	maxConns, err := strconv.Atoi(getenv("DB_MAX_OPEN_CONNS", "10"))
	if err != nil || maxConns < 1 {
		return nil, errors.New("DB_MAX_OPEN_CONNS must be a positive integer")
	}
	cfg.DBMaxOpenConns = maxConns

	for _, o := range strings.Split(getenv("ALLOWED_ORIGINS", "*"), ",") {
		if o = strings.TrimSpace(o); o != "" {
			cfg.AllowedOrigins = append(cfg.AllowedOrigins, o)
		}
	}

	loc, err := time.LoadLocation(getenv("DISPLAY_TZ", "UTC"))
	if err != nil {
		return nil, fmt.Errorf("DISPLAY_TZ: %w", err)
	}
	cfg.DisplayLocation = loc

	return cfg, nil
}
