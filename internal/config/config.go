package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Config holds the application configuration
type Config struct {
	APIBaseURL            string `mapstructure:"api_base_url"`
	RequestTimeoutSeconds int    `mapstructure:"request_timeout_seconds"`
	DefaultPageSize       int    `mapstructure:"default_page_size"`
	DebounceMillis        int    `mapstructure:"debounce_ms"`
}

var AppConfig *Config

// Initialize loads or creates the configuration file
func Initialize() error {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("failed to get home directory: %w", err)
	}

	configDir := filepath.Join(homeDir, ".jobdeck")
	configFile := filepath.Join(configDir, "config.yaml")

	// Create config directory if it doesn't exist
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	// Create default config if it doesn't exist
	if _, err := os.Stat(configFile); os.IsNotExist(err) {
		if err := createDefaultConfig(configFile); err != nil {
			return err
		}
	}

	viper.SetConfigFile(configFile)
	viper.SetConfigType("yaml")

	// Set defaults
	viper.SetDefault("api_base_url", "http://localhost:8080")
	viper.SetDefault("request_timeout_seconds", 30)
	viper.SetDefault("default_page_size", 10)
	viper.SetDefault("debounce_ms", 300)

	// Read config
	if err := viper.ReadInConfig(); err != nil {
		return fmt.Errorf("failed to read config: %w", err)
	}

	// Unmarshal into struct
	AppConfig = &Config{}
	if err := viper.Unmarshal(AppConfig); err != nil {
		return fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return nil
}

// createDefaultConfig creates a default config file
func createDefaultConfig(path string) error {
	defaultConfig := `# Jobdeck Configuration
# Base URL of the job-board backend
api_base_url: http://localhost:8080

# HTTP request timeout in seconds (no retries are performed)
request_timeout_seconds: 30

# Default page size for job listings
default_page_size: 10

# Quiet period for interactive search input, in milliseconds
debounce_ms: 300
`
	return os.WriteFile(path, []byte(defaultConfig), 0600)
}

// Set updates a configuration value
func Set(key, value string) error {
	viper.Set(key, value)
	return viper.WriteConfig()
}

// Get retrieves a configuration value
func Get(key string) string {
	return viper.GetString(key)
}

// GetConfigPath returns the path to the config file
func GetConfigPath() string {
	homeDir, _ := os.UserHomeDir()
	return filepath.Join(homeDir, ".jobdeck", "config.yaml")
}

// StateDir returns the directory holding the session and local database.
func StateDir() string {
	homeDir, _ := os.UserHomeDir()
	return filepath.Join(homeDir, ".jobdeck")
}
