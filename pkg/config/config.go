package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config represents the mocat configuration.
type Config struct {
	CatalogPath string  `yaml:"catalog_path"`
	Encoding    string  `yaml:"encoding"`
	Server      Server  `yaml:"server"`
	Logging     Logging `yaml:"logging"`
}

// Server contains HTTP server configuration.
type Server struct {
	Bind   string `yaml:"bind"`
	Port   int    `yaml:"port"`
	APIKey string `yaml:"api_key"`
}

// Logging contains logging configuration.
type Logging struct {
	Level string `yaml:"level"`
}

// DefaultConfig returns a default configuration.
func DefaultConfig() *Config {
	return &Config{
		CatalogPath: "",
		Encoding:    "",
		Server: Server{
			Bind: "127.0.0.1",
			Port: 8080,
		},
		Logging: Logging{
			Level: "info",
		},
	}
}

// LoadConfig loads configuration from the specified path.
func LoadConfig(configPath string) (*Config, error) {
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file does not exist: %s", configPath)
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return config, nil
}

// SaveConfig saves the configuration to the specified path.
func SaveConfig(config *Config, configPath string) error {
	configDir := filepath.Dir(configPath)
	if err := os.MkdirAll(configDir, 0750); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(configPath, data, 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// ApplyEnv loads a .env file when one is present and overrides config
// fields from MOCAT_* environment variables. Environment wins over the
// file-based configuration.
func (c *Config) ApplyEnv() {
	// A missing .env file is fine; plain environment variables still apply.
	_ = godotenv.Load()

	c.CatalogPath = getEnv("MOCAT_CATALOG", c.CatalogPath)
	c.Encoding = getEnv("MOCAT_ENCODING", c.Encoding)
	c.Server.Bind = getEnv("MOCAT_BIND", c.Server.Bind)
	c.Server.Port = getEnvInt("MOCAT_PORT", c.Server.Port)
	c.Server.APIKey = getEnv("MOCAT_API_KEY", c.Server.APIKey)
	c.Logging.Level = getEnv("MOCAT_LOG_LEVEL", c.Logging.Level)
}

// GetDefaultConfigPath returns the default configuration path for the
// current platform.
func GetDefaultConfigPath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "./mocat.yaml"
	}

	configDir := filepath.Join(homeDir, ".config", "mocat")
	return filepath.Join(configDir, "config.yaml")
}

// ConfigExists checks if a configuration file exists.
func ConfigExists(configPath string) bool {
	_, err := os.Stat(configPath)
	return !os.IsNotExist(err)
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}
