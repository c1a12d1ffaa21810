package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server    ServerConfig
	Postgres  PostgresConfig
	Redis     RedisConfig
	Auth      AuthConfig
	Cache     CacheConfig
	RateLimit RateLimitConfig
	LogLevel  slog.Level
}

type ServerConfig struct {
	Host         string
	Port         int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

type PostgresConfig struct {
	User     string
	Password string
	Name     string
	Host     string
	Port     int
	SSLMode  string
	MaxConns int32
}

func (p PostgresConfig) DSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		p.User, p.Password, p.Host, p.Port, p.Name, p.SSLMode)
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

type AuthConfig struct {
	JWTSecret string
}

// Cache TTLs. Reference collections change rarely and get a long window;
// flight entries go stale with every booking, so theirs stays short.
type CacheConfig struct {
	CollectionTTL   time.Duration
	FlightListTTL   time.Duration
	FlightDetailTTL time.Duration
	IdempotencyTTL  time.Duration
}

type RateLimitConfig struct {
	Limit  int
	Window time.Duration
}

// New reads the configuration from the environment, loading .env first when
// present. Postgres credentials and the JWT secret have no defaults.
func New() (*Config, error) {
	const op = "config.New"

	_ = godotenv.Load()

	serverPort, err := intEnv("SERVER_PORT", 8080)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	readTimeout, err := durationEnv("SERVER_READ_TIMEOUT", 5*time.Second)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	writeTimeout, err := durationEnv("SERVER_WRITE_TIMEOUT", 10*time.Second)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	idleTimeout, err := durationEnv("SERVER_IDLE_TIMEOUT", time.Minute)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	logLevel, err := levelEnv("LOG_LEVEL", slog.LevelInfo)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	postgresPort, err := intEnv("POSTGRES_PORT", 5432)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	postgresMaxConns, err := intEnv("POSTGRES_MAX_CONNS", 10)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	postgresUser := os.Getenv("POSTGRES_USER")
	if postgresUser == "" {
		return nil, fmt.Errorf("%s: missing POSTGRES_USER", op)
	}

	postgresPassword := os.Getenv("POSTGRES_PASSWORD")
	if postgresPassword == "" {
		return nil, fmt.Errorf("%s: missing POSTGRES_PASSWORD", op)
	}

	postgresDB := os.Getenv("POSTGRES_DB")
	if postgresDB == "" {
		return nil, fmt.Errorf("%s: missing POSTGRES_DB", op)
	}

	redisDB, err := intEnv("REDIS_DB", 0)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		return nil, fmt.Errorf("%s: missing JWT_SECRET", op)
	}

	collectionTTL, err := durationEnv("CACHE_COLLECTION_TTL", 5*time.Minute)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	flightListTTL, err := durationEnv("CACHE_FLIGHT_LIST_TTL", 30*time.Second)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	flightDetailTTL, err := durationEnv("CACHE_FLIGHT_DETAIL_TTL", 30*time.Second)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	idempotencyTTL, err := durationEnv("IDEMPOTENCY_TTL", 24*time.Hour)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	rateLimit, err := intEnv("RATE_LIMIT", 10)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	rateWindow, err := durationEnv("RATE_LIMIT_WINDOW", time.Minute)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &Config{
		Server: ServerConfig{
			Host:         stringEnv("SERVER_HOST", "localhost"),
			Port:         serverPort,
			ReadTimeout:  readTimeout,
			WriteTimeout: writeTimeout,
			IdleTimeout:  idleTimeout,
		},
		Postgres: PostgresConfig{
			User:     postgresUser,
			Password: postgresPassword,
			Name:     postgresDB,
			Host:     stringEnv("POSTGRES_HOST", "localhost"),
			Port:     postgresPort,
			SSLMode:  stringEnv("POSTGRES_SSLMODE", "disable"),
			MaxConns: int32(postgresMaxConns),
		},
		Redis: RedisConfig{
			Addr:     stringEnv("REDIS_ADDR", "localhost:6379"),
			Password: os.Getenv("REDIS_PASSWORD"),
			DB:       redisDB,
		},
		Auth: AuthConfig{
			JWTSecret: jwtSecret,
		},
		Cache: CacheConfig{
			CollectionTTL:   collectionTTL,
			FlightListTTL:   flightListTTL,
			FlightDetailTTL: flightDetailTTL,
			IdempotencyTTL:  idempotencyTTL,
		},
		RateLimit: RateLimitConfig{
			Limit:  rateLimit,
			Window: rateWindow,
		},
		LogLevel: logLevel,
	}, nil
}

func stringEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func intEnv(key string, fallback int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}

	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return n, nil
}

func durationEnv(key string, fallback time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}

	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return d, nil
}

func levelEnv(key string, fallback slog.Level) (slog.Level, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}

	switch strings.ToLower(v) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("invalid %s: unknown level %q", key, v)
	}
}
