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
	Database DatabaseConfig
	JWT      JWTConfig
	Redis    RedisConfig
	AIScorer AIScorerConfig
	Match    MatchConfig
}

type AppConfig struct {
	AppName     string
	Environment string
	HTTPPort    string
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

type JWTConfig struct {
	AccessSecret    string
	AccessExpiresIn time.Duration
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string

	MatchedJobsTTL time.Duration
}

// AIScorerConfig configures the optional external scoring provider. The
// provider is enabled iff BaseURL and APIKey are both set; a missing provider
// only downgrades score quality, never availability.
type AIScorerConfig struct {
	BaseURL string
	APIKey  string
	Model   string
	Timeout time.Duration
}

func (c AIScorerConfig) Enabled() bool {
	return strings.TrimSpace(c.BaseURL) != "" && strings.TrimSpace(c.APIKey) != ""
}

// MatchConfig carries the ranking cutoffs. The defaults (score floor 30,
// top 20) come from the product side and are tunable per deployment.
type MatchConfig struct {
	MinScore   int
	MaxResults int
}

const (
	defaultMatchMinScore   = 30
	defaultMatchMaxResults = 20

	defaultAIScorerModel   = "gpt-3.5-turbo"
	defaultAIScorerTimeout = 3 * time.Second

	defaultMatchedJobsTTL = time.Minute
)

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

	cfg.Database = DatabaseConfig{
		DBHost:     opt("DB_HOST"),
		DBPort:     opt("DB_PORT"),
		DBName:     opt("DB_NAME"),
		DBUser:     opt("DB_USER"),
		DBPassword: opt("DB_PASSWORD"),
		DBSSLMode:  opt("DB_SSL_MODE"),

		ConnectTimeout: optDuration("DB_CONNECT_TIMEOUT", 0),
		PoolMaxConns:   int32(optInt("DB_POOL_MAX_CONNS", 0)),
		PoolMinConns:   int32(optInt("DB_POOL_MIN_CONNS", 0)),
	}

	cfg.JWT = JWTConfig{
		AccessSecret:    req("JWT_ACCESS_SECRET"),
		AccessExpiresIn: optDuration("JWT_ACCESS_EXPIRES_IN", 15*time.Minute),
	}

	cfg.Redis = RedisConfig{
		Host:           opt("REDIS_HOST"),
		Port:           opt("REDIS_PORT"),
		Password:       opt("REDIS_PASSWORD"),
		MatchedJobsTTL: optDuration("MATCHED_JOBS_CACHE_TTL", defaultMatchedJobsTTL),
	}

	cfg.AIScorer = AIScorerConfig{
		BaseURL: opt("AI_SCORER_BASE_URL"),
		APIKey:  opt("AI_SCORER_API_KEY"),
		Model:   optDefault("AI_SCORER_MODEL", defaultAIScorerModel),
		Timeout: optDuration("AI_SCORER_TIMEOUT", defaultAIScorerTimeout),
	}

	cfg.Match = MatchConfig{
		MinScore:   optInt("MATCH_MIN_SCORE", defaultMatchMinScore),
		MaxResults: optInt("MATCH_MAX_RESULTS", defaultMatchMaxResults),
	}
	if cfg.Match.MinScore < 0 || cfg.Match.MinScore > 100 {
		cfg.Match.MinScore = defaultMatchMinScore
	}
	if cfg.Match.MaxResults <= 0 {
		cfg.Match.MaxResults = defaultMatchMaxResults
	}

	if len(missing) > 0 {
		return Config{}, fmt.Errorf("%w: %s", errMissingRequiredEnv, strings.Join(missing, ", "))
	}

	return cfg, nil
}

func optDefault(key, fallback string) string {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	return v
}

func optInt(key string, fallback int) int {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

func optDuration(key string, fallback time.Duration) time.Duration {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fallback
	}
	return d
}
