package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"checkout/internal/pkg/errs"

	"github.com/joho/godotenv"
)

const (
	defaultHTTPPort             = "8080"
	defaultSessionTTL           = 30 * time.Minute
	defaultSessionSweepSchedule = "0 * * * * *"
	defaultSubmitRateLimit      = 5

	maxSessionTTL      = 24 * time.Hour
	maxSubmitRateLimit = 1000
)

type Config struct {
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	SessionTTL           time.Duration
	SessionSweepSchedule string
	SubmitRateLimit      int
}

// RecordingEnabled reports whether submission attempts go to postgres.
func (c Config) RecordingEnabled() bool {
	return c.DBHost != ""
}

// LoadConfig reads the process environment after merging an optional .env
// file from the working directory. Variables already set win over the file.
func LoadConfig() (Config, error) {
	if err := godotenv.Load(".env"); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}

	return ConfigFromLookup(os.LookupEnv)
}

// ConfigFromLookup builds a Config from lookup, applying defaults for unset
// keys.
func ConfigFromLookup(lookup func(string) (string, bool)) (Config, error) {
	get := func(key, fallback string) string {
		if v, ok := lookup(key); ok && v != "" {
			return v
		}
		return fallback
	}

	config := Config{
		HTTPPort:             get("HTTP_PORT", defaultHTTPPort),
		DBHost:               get("DB_HOST", ""),
		DBPort:               get("DB_PORT", "5432"),
		DBUser:               get("DB_USER", ""),
		DBPassword:           get("DB_PASSWORD", ""),
		DBName:               get("DB_NAME", ""),
		DBSslMode:            get("DB_SSLMODE", "disable"),
		SessionSweepSchedule: get("SESSION_SWEEP_SCHEDULE", defaultSessionSweepSchedule),
	}

	var errList []error

	ttl, err := time.ParseDuration(get("SESSION_TTL", defaultSessionTTL.String()))
	switch {
	case err != nil:
		errList = append(errList, errs.NewValueIsOutOfRangeErrorWithCause(
			"SESSION_TTL", get("SESSION_TTL", ""), time.Second, maxSessionTTL, err))
	case ttl < time.Second || ttl > maxSessionTTL:
		errList = append(errList, errs.NewValueIsOutOfRangeError("SESSION_TTL", ttl, time.Second, maxSessionTTL))
	default:
		config.SessionTTL = ttl
	}

	limit, err := strconv.Atoi(get("SUBMIT_RATE_LIMIT", strconv.Itoa(defaultSubmitRateLimit)))
	switch {
	case err != nil:
		errList = append(errList, errs.NewValueIsOutOfRangeErrorWithCause(
			"SUBMIT_RATE_LIMIT", get("SUBMIT_RATE_LIMIT", ""), 1, maxSubmitRateLimit, err))
	case limit < 1 || limit > maxSubmitRateLimit:
		errList = append(errList, errs.NewValueIsOutOfRangeError("SUBMIT_RATE_LIMIT", limit, 1, maxSubmitRateLimit))
	default:
		config.SubmitRateLimit = limit
	}

	port, err := strconv.Atoi(config.HTTPPort)
	if err != nil || port < 1 || port > 65535 {
		errList = append(errList, errs.NewValueIsOutOfRangeError("HTTP_PORT", config.HTTPPort, 1, 65535))
	}

	if len(errList) > 0 {
		return Config{}, errors.Join(errList...)
	}

	return config, nil
}
