package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	Port        string
	DatabaseURL string
	JWTSecret   string
	RedisAddr   string
	RedisPass   string
	UseHTTPS    bool
	TLSCertFile string
	TLSKeyFile  string
	GinMode     string
}

// Load reads configuration from the environment, with a .env file if present.
func Load() *Config {
	_ = godotenv.Load()

	cfg := &Config{
		Port:        os.Getenv("PORT"),
		DatabaseURL: os.Getenv("DATABASE_URL"),
		JWTSecret:   os.Getenv("JWT_SECRET"),
		RedisAddr:   os.Getenv("REDIS_URL"),
		RedisPass:   os.Getenv("REDIS_PASSWORD"),
		UseHTTPS:    os.Getenv("USE_HTTPS") == "true",
		TLSCertFile: os.Getenv("TLS_CERT_FILE"),
		TLSKeyFile:  os.Getenv("TLS_KEY_FILE"),
		GinMode:     os.Getenv("GIN_MODE"),
	}
	if cfg.Port == "" {
		cfg.Port = "8080"
	}
	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = "host=localhost port=5432 user=postgres dbname=gamestore sslmode=disable"
	}
	if cfg.RedisAddr == "" {
		cfg.RedisAddr = "localhost:6379"
	}
	return cfg
}
