package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/quantfold/gridsim/pkg/config"
)

// ConfigLoader handles loading and validation of run configurations.
type ConfigLoader struct{}

// NewConfigLoader creates a new config loader.
func NewConfigLoader() *ConfigLoader {
	return &ConfigLoader{}
}

// LoadConfig loads, defaults and validates a configuration file.
func (cl *ConfigLoader) LoadConfig(configFile string) (*config.Config, error) {
	if _, err := os.Stat(configFile); os.IsNotExist(err) {
		return nil, &ConfigError{
			Type:    ErrTypeFileNotFound,
			Message: fmt.Sprintf("configuration file not found: %s", configFile),
			Cause:   err,
		}
	}

	data, err := os.ReadFile(configFile)
	if err != nil {
		return nil, &ConfigError{
			Type:    ErrTypeFileRead,
			Message: fmt.Sprintf("failed to read config file: %s", configFile),
			Cause:   err,
		}
	}

	cfg := &config.Config{}
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, &ConfigError{
			Type:    ErrTypeJSONParse,
			Message: fmt.Sprintf("failed to parse config JSON: %s", configFile),
			Cause:   err,
		}
	}

	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, &ConfigError{
			Type:    ErrTypeValidation,
			Message: "configuration validation failed",
			Cause:   err,
		}
	}

	return cfg, nil
}

// ApplyOverrides applies command-line overrides to the configuration.
func (cl *ConfigLoader) ApplyOverrides(cfg *config.Config, flags *Flags) error {
	if *flags.DataRoot != "" {
		cfg.DataRoot = *flags.DataRoot
	}
	if *flags.Symbols != "" {
		var symbols []string
		for _, s := range strings.Split(*flags.Symbols, ",") {
			if s = strings.TrimSpace(s); s != "" {
				symbols = append(symbols, s)
			}
		}
		cfg.Symbols = symbols
	}
	if *flags.FromDate != "" {
		cfg.StartDate = *flags.FromDate
	}
	if *flags.ToDate != "" {
		cfg.EndDate = *flags.ToDate
	}

	if err := cfg.Validate(); err != nil {
		return &ConfigError{
			Type:    ErrTypeValidation,
			Message: "configuration invalid after overrides",
			Cause:   err,
		}
	}
	return nil
}

// ConfigError represents configuration-related errors.
type ConfigError struct {
	Type    ConfigErrorType
	Message string
	Cause   error
}

func (e *ConfigError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("config error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("config error: %s", e.Message)
}

func (e *ConfigError) Unwrap() error {
	return e.Cause
}

// ConfigErrorType represents the type of configuration error.
type ConfigErrorType int

const (
	ErrTypeFileNotFound ConfigErrorType = iota
	ErrTypeFileRead
	ErrTypeJSONParse
	ErrTypeValidation
)
