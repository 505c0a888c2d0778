package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config represents the full application configuration surface.
type Config struct {
	Server   ServerConfig
	Backend  BackendConfig
	MongoDB  MongoDBConfig
	Sheets   SheetsConfig
	Snapshot SnapshotConfig
}

// ServerConfig holds HTTP facade related options.
type ServerConfig struct {
	Port string
}

// BackendConfig points the API client at the inventory backend.
type BackendConfig struct {
	BaseURL string
	Timeout time.Duration
}

// MongoDBConfig holds settings for MongoDB. Optional: when the URI is
// empty, statistics snapshots and the persistent session are disabled.
type MongoDBConfig struct {
	URI    string
	DBName string
}

// SheetsConfig contains configuration required to export product
// reports to Google Sheets. Optional like MongoDB.
type SheetsConfig struct {
	CredentialsPath string
	SpreadsheetID   string
}

// SnapshotConfig holds scheduler-related settings.
type SnapshotConfig struct {
	CronSchedule string
}

// Load reads environment variables (optionally from the provided file)
// and materializes a Config instance.
func Load(envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			if !errors.Is(err, os.ErrNotExist) {
				return nil, fmt.Errorf("failed loading env file %s: %w", envFile, err)
			}
		}
	} else {
		// Missing .env files are acceptable when configuration comes
		// from the environment directly.
		_ = godotenv.Load()
	}

	timeoutSeconds, err := strconv.Atoi(getenvWithDefault("HTTP_TIMEOUT_SECONDS", "15"))
	if err != nil || timeoutSeconds <= 0 {
		return nil, fmt.Errorf("HTTP_TIMEOUT_SECONDS must be a positive integer")
	}

	cfg := &Config{
		Server: ServerConfig{
			Port: getenvWithDefault("APP_PORT", "8080"),
		},
		Backend: BackendConfig{
			BaseURL: os.Getenv("API_BASE_URL"),
			Timeout: time.Duration(timeoutSeconds) * time.Second,
		},
		MongoDB: MongoDBConfig{
			URI:    os.Getenv("MONGODB_URI"),
			DBName: getenvWithDefault("MONGODB_DB_NAME", "warehouse"),
		},
		Sheets: SheetsConfig{
			CredentialsPath: os.Getenv("GOOGLE_SHEETS_CREDENTIALS_PATH"),
			SpreadsheetID:   os.Getenv("GOOGLE_SHEET_REPORT_ID"),
		},
		Snapshot: SnapshotConfig{
			CronSchedule: getenvWithDefault("SNAPSHOT_CRON_SCHEDULE", "0 20 * * *"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate ensures that required configuration fields are populated.
func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}

	if c.Server.Port == "" {
		return errors.New("APP_PORT must be provided")
	}

	if c.Backend.BaseURL == "" {
		return errors.New("API_BASE_URL must be provided")
	}

	if c.Backend.Timeout <= 0 {
		return errors.New("HTTP_TIMEOUT_SECONDS must be positive")
	}

	if c.Sheets.CredentialsPath != "" && c.Sheets.SpreadsheetID == "" {
		return errors.New("GOOGLE_SHEET_REPORT_ID must be provided when sheets credentials are set")
	}

	if c.MongoDB.URI != "" && c.MongoDB.DBName == "" {
		return errors.New("MONGODB_DB_NAME must be provided when MONGODB_URI is set")
	}

	if c.Snapshot.CronSchedule == "" {
		return errors.New("SNAPSHOT_CRON_SCHEDULE must be provided")
	}

	return nil
}

func getenvWithDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
