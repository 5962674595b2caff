package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Database DatabaseConfig
	App      AppConfig
}

type DatabaseConfig struct {
	Path string
}

// AppConfig holds application configuration
type AppConfig struct {
	Port     int
	Env      string
	LogLevel string
}

func Load() (*Config, error) {
	// A missing .env is fine; everything has a fallback.
	_ = godotenv.Load()

	config := &Config{}

	appPort, err := strconv.Atoi(getEnv("APP_PORT", "3000"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	config.App = AppConfig{
		Port:     appPort,
		Env:      getEnv("APP_ENV", "development"),
		LogLevel: getEnv("LOG_LEVEL", "info"),
	}

	config.Database = DatabaseConfig{
		Path: resolveDatabasePath(),
	}

	return config, nil
}

// resolveDatabasePath picks the store file location: explicit DB_PATH
// override, else the persistent disk mounted at /data (managed hosts),
// else the system temp directory.
func resolveDatabasePath() string {
	if path := os.Getenv("DB_PATH"); path != "" {
		return path
	}
	if info, err := os.Stat("/data"); err == nil && info.IsDir() {
		return "/data/presenca.db"
	}
	return filepath.Join(os.TempDir(), "presenca.db")
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
