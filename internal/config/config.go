package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

var validate = validator.New()

// AppConfig is the immutable process configuration, read once at startup and
// passed to each component at construction. No hot-reload.
type AppConfig struct {
	// InfluxDB v2 connection.
	InfluxURL    string `validate:"required,url"`
	InfluxToken  string `validate:"required"`
	InfluxOrg    string `validate:"required"`
	InfluxBucket string `validate:"required"`

	// OpenWeatherMap API key. Empty means synthetic-only mode.
	OpenWeatherAPIKey string

	// City to collect weather for.
	City string `validate:"required"`

	// PollInterval controls how often a fetch-then-write cycle runs.
	PollInterval time.Duration `validate:"gt=0"`

	// WarmupDelay is the unconditional wait before the first cycle,
	// giving the store time to become reachable.
	WarmupDelay time.Duration `validate:"gte=0"`

	// HTTPTimeout bounds the outbound weather provider call.
	HTTPTimeout time.Duration `validate:"gt=0"`

	Port string
}

// Load reads configuration from environment with sensible defaults.
func Load() (*AppConfig, error) {
	if err := godotenv.Load(); err != nil {
		log.Printf("INFO: No .env file found or error loading it: %v", err)
	}

	cfg := &AppConfig{
		InfluxURL:         getenvDefault("INFLUX_URL", "http://localhost:8086"),
		InfluxToken:       os.Getenv("INFLUX_TOKEN"),
		InfluxOrg:         os.Getenv("INFLUX_ORG"),
		InfluxBucket:      os.Getenv("INFLUX_BUCKET"),
		OpenWeatherAPIKey: os.Getenv("OPENWEATHER_API_KEY"),
		City:              getenvDefault("WEATHER_CITY", "Hanoi"),
		Port:              getenvDefault("PORT", "8080"),
	}

	// Poll interval: milliseconds, default 5 minutes.
	cfg.PollInterval = time.Duration(getenvInt("POLL_INTERVAL_MS", 300000)) * time.Millisecond

	// Warm-up delay before the first cycle, default 5 seconds.
	cfg.WarmupDelay = time.Duration(getenvInt("WARMUP_DELAY_MS", 5000)) * time.Millisecond

	timeoutStr := getenvDefault("HTTP_TIMEOUT", "10s")
	timeout, err := time.ParseDuration(timeoutStr)
	if err != nil {
		return nil, fmt.Errorf("invalid HTTP_TIMEOUT: %w", err)
	}
	cfg.HTTPTimeout = timeout

	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		n, err := strconv.Atoi(v)
		if err == nil {
			return n
		}
	}
	return def
}
