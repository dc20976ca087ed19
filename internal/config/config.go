package config

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	DBHost     string
	DBUser     string
	DBPassword string
	DBName     string
	DBPort     string
	AppPort    string
	AppEnv     string
	JWTSecret  string

	// ProfileRefreshInterval controls the cadence of the profile counter
	// refresher. Defaults to 5s when PROFILE_REFRESH_INTERVAL is unset.
	ProfileRefreshInterval time.Duration
}

const defaultRefreshInterval = 5 * time.Second

func LoadConfig() *Config {
	_ = godotenv.Load()

	cfg := &Config{
		DBHost:                 os.Getenv("DB_HOST"),
		DBUser:                 os.Getenv("DB_USER"),
		DBPassword:             os.Getenv("DB_PASSWORD"),
		DBName:                 os.Getenv("DB_NAME"),
		DBPort:                 os.Getenv("DB_PORT"),
		AppPort:                os.Getenv("APP_PORT"),
		AppEnv:                 os.Getenv("APP_ENV"),
		JWTSecret:              os.Getenv("JWT_SECRET"),
		ProfileRefreshInterval: defaultRefreshInterval,
	}

	if raw := os.Getenv("PROFILE_REFRESH_INTERVAL"); raw != "" {
		d, err := time.ParseDuration(raw)
		if err != nil {
			log.Fatalf("invalid PROFILE_REFRESH_INTERVAL: %v", err)
		}
		cfg.ProfileRefreshInterval = d
	}

	if cfg.DBHost == "" {
		log.Fatal("Environment variables not loaded properly")
	}

	return cfg
}
