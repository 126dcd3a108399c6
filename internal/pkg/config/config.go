package config

import (
	"context"
	"fmt"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port            string `env:"PORT,              default=8080"`
	Env             string `env:"ENV,               default=development"`
	JWTSecret       string `env:"JWT_SECRET"`
	TokenTTLMinutes int    `env:"TOKEN_TTL_MINUTES, default=60"`
	LogLevel        string `env:"LOG_LEVEL,         default=info"`
	UploadDir       string `env:"UPLOAD_DIR,        default=./uploads"`

	Admin AdminConfig
	Mongo MongoConfig
	Redis RedisConfig
}

// AdminConfig seeds the bootstrap admin account. Seeding is skipped when the
// password is empty.
type AdminConfig struct {
	Name     string `env:"ADMIN_NAME,     default=admin"`
	Password string `env:"ADMIN_PASSWORD"`
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=mentor_connect"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}
