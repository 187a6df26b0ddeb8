package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/coursestaff/assignment-solver/pkg/core/solver"
)

// DatabaseURLEnvVar overrides databaseURL from the config file when set
const DatabaseURLEnvVar = "SOLVER_DATABASE_URL"

// Default values applied before validation
const (
	DefaultServerAddress = ":8080"
	DefaultLogLevel      = "info"
)

// WeightsConfig configures the weighted strategy's combined score
type WeightsConfig struct {
	Professor *int `yaml:"professor,omitempty" validate:"omitempty,min=0"`
	Staff     *int `yaml:"staff,omitempty" validate:"omitempty,min=0"`
}

// ServerConfig configures the HTTP trigger
type ServerConfig struct {
	Address string `yaml:"address" validate:"required"`
}

// Config represents the application configuration
type Config struct {
	DatabaseURL     string        `yaml:"databaseURL" validate:"required"`
	DefaultStrategy string        `yaml:"defaultStrategy" validate:"oneof=baseline weighted"`
	Weights         WeightsConfig `yaml:"weights,omitempty"`
	Server          ServerConfig  `yaml:"server,omitempty"`
	LogLevel        string        `yaml:"logLevel" validate:"oneof=debug info warn error"`
}

// SolverWeights returns the configured weights, falling back to the solver defaults
func (c *Config) SolverWeights() solver.Weights {
	weights := solver.DefaultWeights()
	if c.Weights.Professor != nil {
		weights.Professor = *c.Weights.Professor
	}
	if c.Weights.Staff != nil {
		weights.Staff = *c.Weights.Staff
	}
	return weights
}

var validate *validator.Validate

func init() {
	validate = validator.New()
}

// LoadWithEnv loads the configuration for an environment.
// For example, env="test" looks for "solver_config.test.yaml".
// A .env file in the working directory is loaded first so SOLVER_DATABASE_URL can be set there.
func LoadWithEnv(env string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env file: %w", err)
	}

	configPath, err := findConfigFile(configFileName(env))
	if err != nil {
		return nil, fmt.Errorf("failed to find config file: %w", err)
	}

	return LoadFromPath(configPath)
}

// LoadFromPath loads, defaults and validates the configuration from a specific path
func LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	applyDefaults(&cfg)

	if url := os.Getenv(DatabaseURLEnvVar); url != "" {
		cfg.DatabaseURL = url
	}

	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate validates the configuration struct
func Validate(cfg *Config) error {
	if err := validate.Struct(cfg); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}
	return nil
}

func applyDefaults(cfg *Config) {
	if cfg.DefaultStrategy == "" {
		cfg.DefaultStrategy = solver.StrategyWeighted
	}
	if cfg.Server.Address == "" {
		cfg.Server.Address = DefaultServerAddress
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = DefaultLogLevel
	}
}

func configFileName(env string) string {
	if env == "" {
		return "solver_config.yaml"
	}
	return fmt.Sprintf("solver_config.%s.yaml", env)
}

// findConfigFile searches for the config file in the current directory and home directory
func findConfigFile(fileName string) (string, error) {
	if _, err := os.Stat(fileName); err == nil {
		return fileName, nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	homeConfigPath := filepath.Join(homeDir, fileName)
	if _, err := os.Stat(homeConfigPath); err == nil {
		return homeConfigPath, nil
	}

	return "", fmt.Errorf("%s not found in current directory or home directory", fileName)
}
