package config

import (
	"context"
	"time"

	"github.com/sethvargo/go-envconfig"
)

// Config is the full process configuration, read once at startup. Secret
// material (signing key, bootstrap password) has no shipped default and
// must be supplied through the environment.
type Config struct {
	Port     string `env:"PORT,      default=8080"`
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	JWTSecret      string        `env:"JWT_SECRET, required"`
	AccessTokenTTL time.Duration `env:"ACCESS_TOKEN_TTL, default=60m"`
	ResetTokenTTL  time.Duration `env:"RESET_TOKEN_TTL,  default=48h"`
	BcryptCost     int           `env:"BCRYPT_COST,      default=12"`

	OpenRegistration bool `env:"USERS_OPEN_REGISTRATION, default=true"`
	MailWorkers      int  `env:"MAIL_WORKERS,            default=4"`

	FirstSuperuser         string `env:"FIRST_SUPERUSER"`
	FirstSuperuserPassword string `env:"FIRST_SUPERUSER_PASSWORD"`

	Mongo MongoConfig
	Redis RedisConfig
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=user_service"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
