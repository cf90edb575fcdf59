package config

import (
	"log"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

type Config struct {
	Env        string `yaml:"env" env:"ENV" env-default:"local"`
	HTTPServer `yaml:"http_server"`
	Storage    `yaml:"storage"`
}

type HTTPServer struct {
	Address         string        `yaml:"address" env:"HTTP_ADDRESS" env-default:"localhost:8080"`
	Timeout         time.Duration `yaml:"timeout" env-default:"4s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout" env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env-default:"15s"`
}

// Driver selects the persistence backend: jsonfile, redis or postgres.
type Storage struct {
	Driver      string `yaml:"driver" env:"STORAGE_DRIVER" env-default:"jsonfile"`
	Path        string `yaml:"path" env:"STORAGE_PATH" env-default:"./data"`
	RedisAddr   string `yaml:"redis_addr" env:"REDIS_ADDR" env-default:"localhost:6379"`
	PostgresDSN string `yaml:"postgres_dsn" env:"POSTGRES_DSN"`
}

func MustLoad() *Config {
	var cfg Config

	if err := godotenv.Load(".env"); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "./config/config.yaml"
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		log.Fatalf("Config file does not exist: %s", configPath)
	}

	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		log.Fatalf("Failed to read config file: %v", err)
	}

	return &cfg
}
