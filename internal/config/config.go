package config

import (
	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

type Config struct {
	Port          string `yaml:"PORT"           env:"PORT"           env-default:"8080"`
	MongoURI      string `yaml:"MONGODB_URI"    env:"MONGODB_URI"    env-default:"mongodb://localhost:27017"`
	DatabaseName  string `yaml:"DATABASE_NAME"  env:"DATABASE_NAME"  env-default:"saasan_db"`
	RedisAddr     string `yaml:"REDIS_ADDR"     env:"REDIS_ADDR"     env-default:"localhost:6379"`
	RedisPassword string `yaml:"REDIS_PASSWORD" env:"REDIS_PASSWORD"`
	LogLevel      string `yaml:"LOG_LEVEL"      env:"LOG_LEVEL"      env-default:"info"`
}

// New loads configuration from the environment, reading a .env file first
// when one is present.
func New() (*Config, error) {
	// A missing .env file is fine; the environment wins either way.
	_ = godotenv.Load()

	var config Config
	if err := cleanenv.ReadEnv(&config); err != nil {
		return nil, err
	}
	return &config, nil
}
