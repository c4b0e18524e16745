package config

import (
	"log"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

type Config struct {
	Env        string     `yaml:"env" env:"APP_ENV" env-default:"production"`
	HTTPServer HTTPServer `yaml:"http_server"`
	Storage    Storage    `yaml:"storage"`
}

type HTTPServer struct {
	Address string `yaml:"address" env:"HTTP_ADDRESS" env-default:":8080"`
}

type Storage struct {
	// Endpoint is the full URL of the S3-compatible store, e.g.
	// "https://<account>.r2.cloudflarestorage.com" or "http://localhost:9000".
	Endpoint        string `yaml:"endpoint" env:"R2_ENDPOINT" env-required:"true"`
	AccessKeyID     string `yaml:"access_key_id" env:"R2_ACCESS_KEY_ID" env-required:"true"`
	SecretAccessKey string `yaml:"secret_access_key" env:"R2_SECRET_ACCESS_KEY" env-required:"true"`
	Bucket          string `yaml:"bucket" env:"R2_BUCKET_NAME" env-required:"true"`
	SignTTLSeconds  int    `yaml:"sign_ttl_seconds" env:"SIGN_TTL_SECONDS" env-default:"3600"`
	ListMaxKeys     int    `yaml:"list_max_keys" env:"LIST_MAX_KEYS" env-default:"1000"`
}

// SignTTL returns the presigned-URL lifetime as a duration.
func (s Storage) SignTTL() time.Duration {
	return time.Duration(s.SignTTLSeconds) * time.Second
}

// MustLoad reads configuration from the environment (after loading a .env file
// if one is present). When CONFIG_PATH points at a YAML file, values are read
// from it with the environment overriding. Exits on any missing required value.
func MustLoad() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, reading from environment")
	}

	var cfg Config

	configPath := os.Getenv("CONFIG_PATH")
	if configPath != "" {
		if _, err := os.Stat(configPath); os.IsNotExist(err) {
			log.Fatalf("config file does not exist at path: %s", configPath)
		}
		if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
			log.Fatalf("failed to read config: %s", err)
		}
		return &cfg
	}

	if err := cleanenv.ReadEnv(&cfg); err != nil {
		log.Fatalf("failed to read config from environment: %s", err)
	}

	return &cfg
}
