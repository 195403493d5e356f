package config

import (
	"context"
	"time"

	"github.com/sethvargo/go-envconfig"
)

// Storage driver names accepted by STORAGE_DRIVER.
const (
	DriverMemory = "memory"
	DriverRedis  = "redis"
	DriverSQLite = "sqlite"
	DriverMongo  = "mongo"
)

type Config struct {
	Port      string `env:"PORT,      default=8080"`
	Env       string `env:"ENV,       default=development"`
	JWTSecret string `env:"JWT_SECRET, default=taskboard-dev-secret"`
	LogLevel  string `env:"LOG_LEVEL, default=info"`

	// StorageDriver selects the persistence backend: memory, redis, sqlite
	// or mongo.
	StorageDriver string `env:"STORAGE_DRIVER, default=memory"`

	// DemoData seeds the demo accounts on first run against an empty store.
	DemoData bool `env:"DEMO_DATA, default=true"`

	// TokenTTL bounds bearer token validity.
	TokenTTL time.Duration `env:"TOKEN_TTL, default=24h"`

	// ReminderInterval is the period of the due-soon check job; zero
	// disables it.
	ReminderInterval time.Duration `env:"REMINDER_INTERVAL, default=1h"`

	Redis  RedisConfig
	SQLite SQLiteConfig
	Mongo  MongoConfig
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

type SQLiteConfig struct {
	Path string `env:"SQLITE_PATH, default=data/taskboard.db"`
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=taskboard"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
