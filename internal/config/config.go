package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	LogLevel string `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	HTTPPort string `yaml:"http-port" env:"HTTP_PORT" env-default:"9090"`
	Redis    Redis  `yaml:"redis"`
	Engine   Engine `yaml:"engine"`
}

type Redis struct {
	Host       string        `yaml:"host" env:"REDIS_HOST" env-default:"localhost"`
	Port       string        `yaml:"port" env:"REDIS_PORT" env-default:"6379"`
	SessionTTL time.Duration `yaml:"session-ttl" env:"REDIS_SESSION_TTL" env-default:"24h"`
}

// Engine tunes the computer opponent.
type Engine struct {
	Opponent string `yaml:"opponent" env:"ENGINE_OPPONENT" env-default:"minimax"`
	// SearchOpening runs the full search on an empty board instead of picking a random cell.
	SearchOpening bool `yaml:"search-opening" env:"ENGINE_SEARCH_OPENING"`
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(err)
	}

	return config
}

func Load(path string) (*Config, error) {
	config := &Config{}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		return nil, fmt.Errorf("unable to load config file: %w", err)
	}

	return config, nil
}

func (that *Redis) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}
