// Package config loads runtime settings from the environment and an optional .env file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds settings shared by the CLI and the web server
type Config struct {
	OutputDir string // Where renders are written
	Workers   int    // Default render workers (1 = sequential, 0 = CPU count)
	ScenesDir string // Directory searched for JSON scene files
	Port      int    // Web server port

	S3Bucket    string
	S3Region    string
	S3Endpoint  string
	S3AccessKey string
	S3SecretKey string
	S3Prefix    string // Key prefix for uploaded renders
}

// Load reads envFile, if it exists, into the process environment and then
// builds a Config from environment variables. Variables already set in the
// environment take precedence over the file.
func Load(envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to load %s: %w", envFile, err)
		}
	}

	workers, err := getEnvInt("RAYCASTER_WORKERS", 1)
	if err != nil {
		return nil, err
	}
	if workers < 0 {
		return nil, fmt.Errorf("RAYCASTER_WORKERS must not be negative, got %d", workers)
	}

	port, err := getEnvInt("RAYCASTER_PORT", 8080)
	if err != nil {
		return nil, err
	}

	return &Config{
		OutputDir:   getEnv("RAYCASTER_OUTPUT_DIR", "output"),
		Workers:     workers,
		ScenesDir:   getEnv("RAYCASTER_SCENES_DIR", "scenes"),
		Port:        port,
		S3Bucket:    os.Getenv("S3_BUCKET"),
		S3Region:    getEnv("S3_REGION", "us-east-1"),
		S3Endpoint:  os.Getenv("S3_ENDPOINT"),
		S3AccessKey: os.Getenv("S3_ACCESS_KEY"),
		S3SecretKey: os.Getenv("S3_SECRET_KEY"),
		S3Prefix:    os.Getenv("S3_PREFIX"),
	}, nil
}

// S3Enabled reports whether renders can be uploaded
func (c *Config) S3Enabled() bool {
	return c.S3Bucket != ""
}

// Helper to get environment variables with a default value.
func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) (int, error) {
	value, ok := os.LookupEnv(key)
	if !ok || value == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, value, err)
	}
	return n, nil
}
