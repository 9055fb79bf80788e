package config

import (
	"log"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	Env        string     `yaml:"env" env:"ENV" env-default:"local"`
	Storage    Storage    `yaml:"storage"`
	Backend    Backend    `yaml:"backend"`
	HTTPServer HTTPServer `yaml:"http_server"`
}

type Storage struct {
	Path string `yaml:"path" env:"STORAGE_PATH" env-default:"./data/ramblinrecs.db"`
}

type Backend struct {
	BaseURL    string        `yaml:"base_url" env:"BACKEND_BASE_URL" env-required:"true"`
	Timeout    time.Duration `yaml:"timeout" env-default:"10s"`
	PageSize   int           `yaml:"page_size" env-default:"20"`
	FeedbackTo string        `yaml:"feedback_to" env-default:"hello@ramblinrecs.app"`
}

type HTTPServer struct {
	Address     string        `yaml:"address" env-default:"localhost:8080"`
	Timeout     time.Duration `yaml:"timeout" env-default:"4s"`
	IdleTimeout time.Duration `yaml:"idle_timeout" env-default:"60s"`
}

func MustLoad() *Config {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "./config/local.yaml"
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		log.Fatalf("config file does not exist: %s", configPath)
	}

	var cfg Config

	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		log.Fatalf("cannot read config: %s", err)
	}

	return &cfg
}
