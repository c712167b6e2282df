package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	DefaultAPIBaseURL = "http://localhost:3000"
	DefaultTimeFormat = "2006-01-02 15:04"
	DefaultLogLevel   = "info"
)

// Config holds the unified application configuration
type Config struct {
	APIBaseURL string `yaml:"api_base_url" validate:"required,http_url"`
	TimeFormat string `yaml:"time_format" validate:"required"`
	LogDir     string `yaml:"log_dir"`
	LogLevel   string `yaml:"log_level" validate:"omitempty,oneof=trace debug info warn error disabled"`
}

// Settings represents the config file structure
type Settings struct {
	APIBaseURL string `yaml:"api_base_url,omitempty"`
	TimeFormat string `yaml:"time_format,omitempty"`
	LogDir     string `yaml:"log_dir,omitempty"`
	LogLevel   string `yaml:"log_level,omitempty"`
}

// CLIFlags holds parsed CLI flags
type CLIFlags struct {
	APIBaseURL string
}

var (
	globalConfig *Config
	validate     = validator.New()
)

// Load loads configuration with priority: CLI flags > env vars > .env file > config file > default
func Load(flags CLIFlags) (*Config, error) {
	cfg := &Config{
		APIBaseURL: DefaultAPIBaseURL,
		TimeFormat: DefaultTimeFormat,
		LogLevel:   DefaultLogLevel,
	}

	if defaultDir, err := GetDefaultDir(); err == nil {
		cfg.LogDir = defaultDir
	}

	// Config file provides base values
	configPath, err := getConfigPath()
	if err == nil {
		if fileConfig, err := loadConfigFile(configPath); err == nil {
			applySettings(cfg, fileConfig)
		}
	}

	// .env never overrides variables already present in the environment
	_ = godotenv.Load()

	if v := os.Getenv("NOTEDESK_API_BASE_URL"); v != "" {
		cfg.APIBaseURL = v
	}
	if v := os.Getenv("NOTEDESK_TIME_FORMAT"); v != "" {
		cfg.TimeFormat = v
	}
	if v := os.Getenv("NOTEDESK_LOG_DIR"); v != "" {
		cfg.LogDir = v
	}
	if v := os.Getenv("NOTEDESK_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}

	// CLI flags override everything
	if flags.APIBaseURL != "" {
		cfg.APIBaseURL = flags.APIBaseURL
	}

	cfg.APIBaseURL = strings.TrimRight(strings.TrimSpace(cfg.APIBaseURL), "/")
	cfg.LogDir = expandPath(cfg.LogDir)
	cfg.LogLevel = strings.ToLower(cfg.LogLevel)

	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	globalConfig = cfg
	return cfg, nil
}

// Get returns the loaded config
func Get() *Config {
	return globalConfig
}

// GetDefaultDir returns the default directory for the config file and logs
func GetDefaultDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".config", "notedesk"), nil
}

// getConfigPath returns the path to the configuration file
func getConfigPath() (string, error) {
	dir, err := GetDefaultDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}

// loadConfigFile loads configuration from the settings file
func loadConfigFile(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var settings Settings
	if err := yaml.Unmarshal(data, &settings); err != nil {
		return nil, err
	}

	return &settings, nil
}

func applySettings(cfg *Config, s *Settings) {
	if s.APIBaseURL != "" {
		cfg.APIBaseURL = s.APIBaseURL
	}
	if s.TimeFormat != "" {
		cfg.TimeFormat = s.TimeFormat
	}
	if s.LogDir != "" {
		cfg.LogDir = s.LogDir
	}
	if s.LogLevel != "" {
		cfg.LogLevel = s.LogLevel
	}
}

// EnsureConfigFile creates the config file with defaults if it doesn't exist
func EnsureConfigFile() error {
	configPath, err := getConfigPath()
	if err != nil {
		return err
	}
	return writeDefaultSettings(configPath)
}

func writeDefaultSettings(configPath string) error {
	if _, err := os.Stat(configPath); err == nil {
		return nil
	}

	if err := os.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
		return err
	}

	settings := Settings{
		APIBaseURL: DefaultAPIBaseURL,
		TimeFormat: DefaultTimeFormat,
		LogLevel:   DefaultLogLevel,
	}

	data, err := yaml.Marshal(settings)
	if err != nil {
		return err
	}

	return os.WriteFile(configPath, data, 0644)
}

func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(homeDir, path[2:])
	}
	return path
}
