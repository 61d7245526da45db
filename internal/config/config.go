package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config is the client configuration. The server base URL and the
// manager token can also arrive through the environment (optionally
// via a .env file), which overrides the yaml values.
type Config struct {
	BaseURL      string `yaml:"baseURL" validate:"required,url"`
	RestaurantID int64  `yaml:"restaurantID" validate:"required"`
	// Token is the manager JWT attached to privileged calls. Worker
	// lifecycle calls (check-in/out) do not need it.
	Token string `yaml:"token,omitempty"`
}

var validate *validator.Validate

func init() {
	validate = validator.New()
}

const configFileName = "shiftdesk_config.yaml"

// Load finds, parses and validates the configuration. The config file
// is searched in the current directory first, then the home
// directory; environment variables are applied on top.
func Load() (*Config, error) {
	path, err := findConfigFile()
	if err != nil {
		return nil, fmt.Errorf("failed to find config file: %w", err)
	}
	return LoadFromPath(path)
}

// LoadFromPath loads and validates the configuration from a specific path.
func LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	applyEnv(&cfg)

	if err := Validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the configuration struct.
func Validate(cfg *Config) error {
	if err := validate.Struct(cfg); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}
	return nil
}

// applyEnv overlays SHIFTDESK_* environment variables. A .env file in
// the working directory is read first if present; a missing file is
// not an error.
func applyEnv(cfg *Config) {
	_ = godotenv.Load()

	if v := os.Getenv("SHIFTDESK_BASE_URL"); v != "" {
		cfg.BaseURL = v
	}
	if v := os.Getenv("SHIFTDESK_TOKEN"); v != "" {
		cfg.Token = v
	}
}

// findConfigFile searches the current directory, then the home directory.
func findConfigFile() (string, error) {
	if _, err := os.Stat(configFileName); err == nil {
		return configFileName, nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	homePath := filepath.Join(homeDir, configFileName)
	if _, err := os.Stat(homePath); err == nil {
		return homePath, nil
	}

	return "", fmt.Errorf("config file not found in current directory or home directory")
}
