// Package config loads service configuration: built-in defaults, overlaid
// by an optional YAML file, overlaid by environment variables.
package config

import (
	"os"
	"strconv"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

const (
	BackendFile   = "file"
	BackendMemory = "memory"
	BackendSQLite = "sqlite"
)

type Config struct {
	Server  ServerConfig  `yaml:"server"`
	Storage StorageConfig `yaml:"storage"`
	Logging LoggingConfig `yaml:"logging"`
}

type ServerConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

type StorageConfig struct {
	// Backend selects the store implementation: file, memory, or sqlite.
	Backend string `yaml:"backend"`
	// File is the JSON store path for the file backend.
	File string `yaml:"file"`
	// SQLitePath is the database path for the sqlite backend.
	SQLitePath string `yaml:"sqlitePath"`
}

type LoggingConfig struct {
	Level string `yaml:"level"`
}

func defaults() *Config {
	return &Config{
		Server:  ServerConfig{Host: "", Port: 3000},
		Storage: StorageConfig{Backend: BackendFile, File: "tasks.json", SQLitePath: "tasks.db"},
		Logging: LoggingConfig{Level: "info"},
	}
}

// Load builds the effective configuration. configPath may be empty, in
// which case only defaults and environment variables apply.
func Load(configPath string) (*Config, error) {
	cfg := defaults()

	if configPath != "" {
		data, err := os.ReadFile(configPath)
		if err != nil {
			return nil, errors.Wrapf(err, "read config file %s", configPath)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, errors.Wrapf(err, "parse config file %s", configPath)
		}
	}

	cfg.Server.Host = getEnv("HOST", cfg.Server.Host)
	cfg.Server.Port = getEnvInt("PORT", cfg.Server.Port)
	cfg.Storage.Backend = getEnv("STORE_BACKEND", cfg.Storage.Backend)
	cfg.Storage.File = getEnv("TASKS_FILE", cfg.Storage.File)
	cfg.Storage.SQLitePath = getEnv("SQLITE_PATH", cfg.Storage.SQLitePath)
	cfg.Logging.Level = getEnv("LOG_LEVEL", cfg.Logging.Level)

	switch cfg.Storage.Backend {
	case BackendFile, BackendMemory, BackendSQLite:
	default:
		return nil, errors.Errorf("unknown storage backend %q", cfg.Storage.Backend)
	}
	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}
