package config

import (
	"fmt"
	"log"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

type AppConfig struct {
	// OpenWeatherAPIKey authenticates outbound forecast calls. Secret: must
	// never be logged or echoed in responses.
	OpenWeatherAPIKey string `validate:"required"`

	// Location is the single place served by /weather, in the provider's
	// "zip,country" query form.
	Location string `validate:"required"`

	Port string `validate:"required,numeric"`

	// HTTPTimeout bounds the shared outbound HTTP client as a whole.
	HTTPTimeout time.Duration `validate:"gt=0"`

	// FetchTimeout bounds a single request's upstream fetch; a timeout is
	// indistinguishable from any other fetch failure.
	FetchTimeout time.Duration `validate:"gt=0"`

	AppEnv   string `validate:"oneof=dev prod"`
	LogLevel slog.Level
}

var validate = validator.New()

// Load reads configuration from environment with sensible defaults.
func Load() (*AppConfig, error) {
	if err := godotenv.Load(); err != nil {
		log.Printf("INFO: No .env file found or error loading it: %v", err)
	}

	cfg := &AppConfig{}

	cfg.OpenWeatherAPIKey = os.Getenv("OPENWEATHER_API_KEY")
	cfg.Location = getenvDefault("WEATHER_LOCATION", "94040,us")
	cfg.Port = getenvDefault("PORT", "8080")
	cfg.AppEnv = getenvDefault("APP_ENV", "dev")

	httpTimeout, err := getenvDuration("HTTP_TIMEOUT", "10s")
	if err != nil {
		return nil, err
	}
	cfg.HTTPTimeout = httpTimeout

	fetchTimeout, err := getenvDuration("FETCH_TIMEOUT", "15s")
	if err != nil {
		return nil, err
	}
	cfg.FetchTimeout = fetchTimeout

	level, err := parseLogLevel(getenvDefault("LOG_LEVEL", "info"))
	if err != nil {
		return nil, err
	}
	cfg.LogLevel = level

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

func getenvDuration(key, def string) (time.Duration, error) {
	s := getenvDefault(key, def)
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return d, nil
}

func parseLogLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("invalid LOG_LEVEL %q (allowed: debug, info, warn, error)", s)
	}
}
