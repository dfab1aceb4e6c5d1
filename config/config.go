package config

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

const (
	defaultDatabasePath = "hackers.db"
	defaultPort         = 3000
	defaultGormLogLevel = "warn"
)

type Config struct {
	// database path
	DatabasePath string

	// http server settings (serve command only)
	Port               int
	CORSAllowedOrigins []string

	// silent, error, warn or info
	GormLogLevel string
}

func getEnvOrDefault(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvIntOrDefault(envVar string, defaultVal int) int {
	valStr := os.Getenv(envVar)
	if valStr == "" {
		return defaultVal
	}
	val, err := strconv.Atoi(valStr)
	if err != nil || val <= 0 {
		log.Printf("Warning: Invalid %s '%s'. Using default %d. Error: %v", envVar, valStr, defaultVal, err)
		return defaultVal
	}
	return val
}

func getEnvListOrDefault(envVar string, defaultVal []string) []string {
	valStr := os.Getenv(envVar)
	if valStr == "" {
		return defaultVal
	}
	var out []string
	for _, part := range strings.Split(valStr, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	if len(out) == 0 {
		return defaultVal
	}
	return out
}

func LoadConfig() (Config, error) {
	dbPath := getEnvOrDefault("DATABASE_PATH", defaultDatabasePath)
	if dbPath != ":memory:" {
		absDBPath, err := filepath.Abs(dbPath)
		if err != nil {
			return Config{}, fmt.Errorf("failed to get absolute path for database '%s': %w", dbPath, err)
		}
		dbPath = absDBPath
	}

	cfg := Config{
		DatabasePath:       dbPath,
		Port:               getEnvIntOrDefault("PORT", defaultPort),
		CORSAllowedOrigins: getEnvListOrDefault("CORS_ALLOWED_ORIGINS", []string{"*"}),
		GormLogLevel:       getEnvOrDefault("GORM_LOG_LEVEL", defaultGormLogLevel),
	}

	return cfg, nil
}
