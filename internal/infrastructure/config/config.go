package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

const (
	StoreMemory = "memory"
	StoreMongo  = "mongo"
	StoreRedis  = "redis"
)

// DevJWTSecret signs tokens when JWT_SECRET is unset. Development only.
const DevJWTSecret = "dev-only-insecure-secret"

type Config struct {
	Port      string        `env:"PORT,      default=3000"`
	Env       string        `env:"ENV,       default=development"`
	LogLevel  string        `env:"LOG_LEVEL, default=info"`
	JWTSecret string        `env:"JWT_SECRET"`
	TokenTTL  time.Duration `env:"TOKEN_TTL, default=2h"`
	StaticDir string        `env:"STATIC_DIR"`

	BcryptCost      int     `env:"BCRYPT_COST,      default=10"`
	LoginRateLimit  float64 `env:"LOGIN_RATE_LIMIT, default=5"`
	MutationWorkers int     `env:"MUTATION_WORKERS, default=4"`

	CourseStore   string `env:"COURSE_STORE,   default=memory"`
	ScheduleStore string `env:"SCHEDULE_STORE, default=memory"`

	Mongo MongoConfig
	Redis RedisConfig
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=course_catalog"`
}

type RedisConfig struct {
	Addr     string `env:"REDIS_ADDR, default=localhost:6379"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB,   default=0"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load(ctx context.Context) (*Config, error) {
	return load(ctx, envconfig.OsLookuper())
}

func load(ctx context.Context, lookuper envconfig.Lookuper) (*Config, error) {
	var cfg Config
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{
		Target:   &cfg,
		Lookuper: lookuper,
	}); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if cfg.JWTSecret == "" {
		cfg.JWTSecret = DevJWTSecret
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	switch c.CourseStore {
	case StoreMemory, StoreMongo:
	default:
		return fmt.Errorf("unsupported COURSE_STORE %q", c.CourseStore)
	}
	switch c.ScheduleStore {
	case StoreMemory, StoreRedis:
	default:
		return fmt.Errorf("unsupported SCHEDULE_STORE %q", c.ScheduleStore)
	}
	if c.TokenTTL <= 0 {
		return fmt.Errorf("TOKEN_TTL must be positive")
	}
	return nil
}

// UsesDevSecret reports whether tokens are signed with DevJWTSecret.
func (c *Config) UsesDevSecret() bool {
	return c.JWTSecret == DevJWTSecret
}
