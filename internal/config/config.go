package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	App      AppConfig
	Upstream UpstreamConfig
	Database DatabaseConfig
	Auth     AuthConfig
	Chat     ChatConfig
}

type AppConfig struct {
	AppName     string
	Environment string
	HTTPPort    string
}

// UpstreamConfig points at the marketplace backend this gateway fronts.
type UpstreamConfig struct {
	BaseURL string
	Timeout time.Duration
}

type DatabaseConfig struct {
	DBHost     string
	DBPort     string
	DBName     string
	DBUser     string
	DBPassword string
	DBSSLMode  string

	ConnectTimeout time.Duration
	PoolMaxConns   int32
	PoolMinConns   int32
}

type AuthConfig struct {
	JWTSecret      string
	TokenExpiresIn time.Duration
}

type ChatConfig struct {
	// ReplyDelay is the simulated assistant latency between a user
	// submission and the bot reply.
	ReplyDelay time.Duration
}

var errMissingRequiredEnv = errors.New("missing required environment variables")

func Load() (Config, error) {
	cfg := Config{}

	var missing []string
	req := func(key string) string {
		v := strings.TrimSpace(os.Getenv(key))
		if v == "" {
			missing = append(missing, key)
		}
		return v
	}
	opt := func(key string) string {
		return strings.TrimSpace(os.Getenv(key))
	}

	cfg.App = AppConfig{
		AppName:     req("APP_NAME"),
		Environment: req("APP_ENV"),
		HTTPPort:    req("HTTP_PORT"),
	}

	cfg.Upstream = UpstreamConfig{
		BaseURL: req("UPSTREAM_BASE_URL"),
		Timeout: optDuration("UPSTREAM_TIMEOUT_MS", 5000*time.Millisecond),
	}

	cfg.Database = DatabaseConfig{
		DBHost:     opt("DB_HOST"),
		DBPort:     opt("DB_PORT"),
		DBName:     opt("DB_NAME"),
		DBUser:     opt("DB_USER"),
		DBPassword: opt("DB_PASSWORD"),
		DBSSLMode:  opt("DB_SSL_MODE"),

		ConnectTimeout: optDuration("DB_CONNECT_TIMEOUT_MS", 5000*time.Millisecond),
		PoolMaxConns:   int32(optInt("DB_POOL_MAX_CONNS", 0)),
		PoolMinConns:   int32(optInt("DB_POOL_MIN_CONNS", 0)),
	}

	cfg.Auth = AuthConfig{
		JWTSecret:      req("JWT_SECRET"),
		TokenExpiresIn: optDuration("JWT_EXPIRES_IN_MS", 24*time.Hour),
	}

	cfg.Chat = ChatConfig{
		ReplyDelay: optDuration("CHAT_REPLY_DELAY_MS", 800*time.Millisecond),
	}

	if len(missing) > 0 {
		return Config{}, fmt.Errorf("%w: %s", errMissingRequiredEnv, strings.Join(missing, ", "))
	}

	return cfg, nil
}

func optInt(key string, defaultVal int) int {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return defaultVal
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return defaultVal
	}
	return v
}

func optDuration(key string, defaultVal time.Duration) time.Duration {
	v := optInt(key, 0)
	if v <= 0 {
		return defaultVal
	}
	return time.Duration(v) * time.Millisecond
}
