package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App         AppConfig
	Mongo       MongoConfig
	Redis       RedisConfig
	CORS        CORSConfig
	RateLimit   RateLimitConfig
	Idempotency IdempotencyConfig
	Metrics     MetricsConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	cfg.App.APIPrefix = normalizePrefix(cfg.App.APIPrefix)
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"GOLDENERA_APP_ENV" required:"true"`
	Port         string `envconfig:"GOLDENERA_APP_PORT" default:"8000"`
	APIPrefix    string `envconfig:"GOLDENERA_API_PREFIX" default:"/api"`
	LogLevel     string `envconfig:"GOLDENERA_LOG_LEVEL" default:"info"`
	LogFormat    string `envconfig:"GOLDENERA_LOG_FORMAT" default:"json"`
	LogWarnStack bool   `envconfig:"GOLDENERA_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type MongoConfig struct {
	URI                    string        `envconfig:"GOLDENERA_MONGO_URI" required:"true"`
	Database               string        `envconfig:"GOLDENERA_MONGO_DATABASE" required:"true"`
	ConnectTimeout         time.Duration `envconfig:"GOLDENERA_MONGO_CONNECT_TIMEOUT" default:"10s"`
	ServerSelectionTimeout time.Duration `envconfig:"GOLDENERA_MONGO_SERVER_SELECTION_TIMEOUT" default:"5s"`
	MaxPoolSize            uint64        `envconfig:"GOLDENERA_MONGO_MAX_POOL_SIZE" default:"50"`
	EnsureIndexes          bool          `envconfig:"GOLDENERA_MONGO_ENSURE_INDEXES" default:"true"`
}

// RedisConfig is optional. Leaving both URL and Address empty disables the
// Redis-backed rate limiting and idempotency features.
type RedisConfig struct {
	URL          string        `envconfig:"GOLDENERA_REDIS_URL"`
	Address      string        `envconfig:"GOLDENERA_REDIS_ADDR"`
	Password     string        `envconfig:"GOLDENERA_REDIS_PASSWORD"`
	DB           int           `envconfig:"GOLDENERA_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"GOLDENERA_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"GOLDENERA_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"GOLDENERA_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"GOLDENERA_REDIS_READ_TIMEOUT" default:"3s"`
	WriteTimeout time.Duration `envconfig:"GOLDENERA_REDIS_WRITE_TIMEOUT" default:"3s"`
}

func (r RedisConfig) Enabled() bool {
	return strings.TrimSpace(r.URL) != "" || strings.TrimSpace(r.Address) != ""
}

type CORSConfig struct {
	AllowedOrigins []string `envconfig:"GOLDENERA_CORS_ORIGINS" default:"*"`
}

type RateLimitConfig struct {
	LeadWindow     time.Duration `envconfig:"GOLDENERA_RATE_LIMIT_LEAD_WINDOW" default:"1m"`
	LeadIPLimit    int           `envconfig:"GOLDENERA_RATE_LIMIT_LEAD_IP_LIMIT" default:"10"`
	LeadEmailLimit int           `envconfig:"GOLDENERA_RATE_LIMIT_LEAD_EMAIL_LIMIT" default:"5"`
}

type IdempotencyConfig struct {
	OrderTTL time.Duration `envconfig:"GOLDENERA_IDEMPOTENCY_ORDER_TTL" default:"24h"`
}

type MetricsConfig struct {
	Enabled bool `envconfig:"GOLDENERA_METRICS_ENABLED" default:"true"`
}

func normalizePrefix(prefix string) string {
	trimmed := strings.TrimSpace(prefix)
	trimmed = strings.TrimRight(trimmed, "/")
	if trimmed == "" {
		return ""
	}
	if !strings.HasPrefix(trimmed, "/") {
		trimmed = "/" + trimmed
	}
	return trimmed
}
