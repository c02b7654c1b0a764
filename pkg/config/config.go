package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	Server  ServerConfig
	Dataset DatasetConfig
	Export  ExportConfig
	Image   ImageConfig
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Port            string
	Host            string
	Environment     string
	AllowedOrigins  []string
	ShutdownTimeout int
}

// DatasetConfig bounds the synthetic dataset generator and the session store
type DatasetConfig struct {
	MaxParticipants int
	PreviewRows     int
	SessionTTL      time.Duration
}

// ExportConfig holds the CSV snapshot settings
type ExportConfig struct {
	SnapshotPath string
	Filename     string
}

// ImageConfig bounds the image processing endpoint
type ImageConfig struct {
	MaxUploadBytes int64
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if exists (ignore error if file doesn't exist)
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found, using environment variables or defaults")
	}

	config := &Config{
		Server: ServerConfig{
			Port:            getEnv("PORT", "8080"),
			Host:            getEnv("HOST", "0.0.0.0"),
			Environment:     getEnv("ENVIRONMENT", "development"),
			AllowedOrigins:  []string{getEnv("ALLOWED_ORIGINS", "http://localhost:3000")},
			ShutdownTimeout: getEnvAsInt("SHUTDOWN_TIMEOUT", 10),
		},
		Dataset: DatasetConfig{
			MaxParticipants: getEnvAsInt("DATASET_MAX_PARTICIPANTS", 5000),
			PreviewRows:     getEnvAsInt("DATASET_PREVIEW_ROWS", 5),
			SessionTTL:      getEnvAsDuration("DATASET_SESSION_TTL", "2h"),
		},
		Export: ExportConfig{
			SnapshotPath: getEnv("EXPORT_SNAPSHOT_PATH", "."),
			Filename:     getEnv("EXPORT_FILENAME", "hackathon_data.csv"),
		},
		Image: ImageConfig{
			MaxUploadBytes: getEnvAsInt64("IMAGE_MAX_UPLOAD_BYTES", 10<<20),
		},
	}

	// Validate required fields
	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Dataset.MaxParticipants < 1 {
		return fmt.Errorf("DATASET_MAX_PARTICIPANTS must be at least 1")
	}
	if c.Dataset.PreviewRows < 0 {
		return fmt.Errorf("DATASET_PREVIEW_ROWS must not be negative")
	}
	if c.Image.MaxUploadBytes < 1 {
		return fmt.Errorf("IMAGE_MAX_UPLOAD_BYTES must be positive")
	}
	if c.Export.Filename == "" {
		return fmt.Errorf("EXPORT_FILENAME is required")
	}
	return nil
}

// Helper functions

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsInt64(key string, defaultValue int64) int64 {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseInt(valueStr, 10, 64); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue string) time.Duration {
	valueStr := getEnv(key, defaultValue)
	duration, err := time.ParseDuration(valueStr)
	if err != nil {
		duration, _ = time.ParseDuration(defaultValue)
	}
	return duration
}
