package common

import (
	"os"
	"strconv"
	"time"
)

// Config holds all application configuration
type Config struct {
	Database   DatabaseConfig
	Server     ServerConfig
	OCR        OCRConfig
	Classifier ClassifierConfig
	Storage    StorageConfig
}

// DatabaseConfig holds database-related configuration
type DatabaseConfig struct {
	DSN              string
	MaxConns         int32
	MinConns         int32
	MaxConnLifetime  time.Duration
	MaxConnIdleTime  time.Duration
	DialTimeout      time.Duration
	StatementTimeout time.Duration
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	GRPCAddr    string
	MaxUploadMB int64
}

// OCRConfig holds OCR-related configuration
type OCRConfig struct {
	Language    string
	TessdataDir string
	Pdftoppm    string
	DPI         int
	MaxPages    int
	MaxChars    int
}

// ClassifierConfig holds classification-related configuration
type ClassifierConfig struct {
	ModelPath           string
	ConfidenceThreshold float64
	// OtherFloorConfidence is reported when every rule score is zero.
	// Non-zero so it stays distinguishable from the insufficient-text floor.
	OtherFloorConfidence float64
	// RoutingThreshold is the automatic-filing cutoff. Results below it are
	// flagged for manual review in the pipeline logs.
	RoutingThreshold float64
}

// StorageConfig holds document archive configuration
type StorageConfig struct {
	ArchiveDir string
	WatchRoots []string
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	return &Config{
		Database: DatabaseConfig{
			DSN:              getEnv("DB_URL", ""),
			MaxConns:         getEnvAsInt32("DB_MAX_CONNS", 20),
			MinConns:         getEnvAsInt32("DB_MIN_CONNS", 5),
			MaxConnLifetime:  getEnvAsDuration("DB_MAX_CONN_LIFETIME", 30*time.Minute),
			MaxConnIdleTime:  getEnvAsDuration("DB_MAX_CONN_IDLE_TIME", 5*time.Minute),
			DialTimeout:      getEnvAsDuration("DB_DIAL_TIMEOUT", 3*time.Second),
			StatementTimeout: getEnvAsDuration("DB_STATEMENT_TIMEOUT", 0),
		},
		Server: ServerConfig{
			GRPCAddr:    getEnv("GRPC_ADDR", ":8080"),
			MaxUploadMB: int64(getEnvAsInt("MAX_UPLOAD_MB", 16)),
		},
		OCR: OCRConfig{
			Language:    getEnv("OCR_LANGUAGE", "eng"),
			TessdataDir: getEnv("TESSDATA_PREFIX", ""),
			Pdftoppm:    getEnv("PDFTOPPM_PATH", "pdftoppm"),
			DPI:         getEnvAsInt("OCR_DPI", 300),
			MaxPages:    getEnvAsInt("OCR_MAX_PAGES", 1),
			MaxChars:    getEnvAsInt("OCR_MAX_CHARS", 1500),
		},
		Classifier: ClassifierConfig{
			ModelPath:            getEnv("MODEL_PATH", "models/classifier_model.json"),
			ConfidenceThreshold:  getEnvAsFloat64("CONFIDENCE_THRESHOLD", 0.7),
			OtherFloorConfidence: getEnvAsFloat64("OTHER_FLOOR_CONFIDENCE", 0.5),
			RoutingThreshold:     getEnvAsFloat64("ROUTING_THRESHOLD", 0.2),
		},
		Storage: StorageConfig{
			ArchiveDir: getEnv("ARCHIVE_DIR", "./archive"),
			WatchRoots: splitList(getEnv("WATCH_ROOTS", "")),
		},
	}
}

// Helper functions for environment variable parsing
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsInt32(key string, defaultValue int32) int32 {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.ParseInt(value, 10, 32); err == nil {
			return int32(intVal)
		}
	}
	return defaultValue
}

func getEnvAsFloat64(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatVal, err := strconv.ParseFloat(value, 64); err == nil {
			return floatVal
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

func splitList(s string) []string {
	if s == "" {
		return nil
	}
	var out []string
	start := 0
	for i := 0; i <= len(s); i++ {
		if i == len(s) || s[i] == ',' {
			if part := s[start:i]; part != "" {
				out = append(out, part)
			}
			start = i + 1
		}
	}
	return out
}

// Validate validates the loaded configuration
func (c *Config) Validate() error {
	if c.Database.DSN == "" {
		return NewAppError("CONFIG_ERROR", "DB_URL is required", ErrInvalidInput)
	}
	if c.Server.GRPCAddr == "" {
		return NewAppError("CONFIG_ERROR", "GRPC_ADDR is required", ErrInvalidInput)
	}
	if c.OCR.MaxChars <= 0 {
		return NewAppError("CONFIG_ERROR", "OCR_MAX_CHARS must be positive", ErrInvalidInput)
	}
	return nil
}
