// Package config provides configuration management using the Singleton pattern.
// It loads configuration from environment variables and config.yaml using Viper.
package config

import (
	"fmt"
	"sync"

	"github.com/snaplate/snaplate/internal/domain"
)

// Configuration holds all application configuration values.
type Configuration struct {
	// Server configuration (cmd/server only).
	Server ServerConfig `json:"server" mapstructure:"server"`

	// Provider selects the active translation backend.
	Provider domain.Provider `json:"provider" mapstructure:"provider"`

	// TargetLanguage is the language translations are produced in.
	TargetLanguage domain.Language `json:"target_language" mapstructure:"target_language"`

	// DisplayMode controls whether results are also copied to the clipboard.
	DisplayMode domain.DisplayMode `json:"display_mode" mapstructure:"display_mode"`

	// Providers holds the per-provider credential and model selection.
	Providers map[string]ProviderConfig `json:"providers" mapstructure:"providers"`

	// Logging configuration.
	Logging LoggingConfig `json:"logging" mapstructure:"logging"`
}

// ProviderConfig is the per-provider option surface.
type ProviderConfig struct {
	// APIKey is the provider-scoped credential. Never logged.
	APIKey string `json:"api_key" mapstructure:"api_key"`

	// Model is the provider-specific model identifier.
	Model domain.ModelName `json:"model" mapstructure:"model"`
}

// ServerConfig holds server-specific configuration.
type ServerConfig struct {
	// Host is the server bind address.
	Host string `json:"host" mapstructure:"host"`

	// Port is the server port number.
	Port int `json:"port" mapstructure:"port"`

	// ReadTimeoutSeconds is the maximum duration for reading the entire request.
	ReadTimeoutSeconds int `json:"read_timeout_seconds" mapstructure:"read_timeout_seconds"`

	// WriteTimeoutSeconds is the maximum duration before timing out writes of the response.
	WriteTimeoutSeconds int `json:"write_timeout_seconds" mapstructure:"write_timeout_seconds"`

	// ShutdownTimeoutSeconds is the maximum duration to wait for active connections to finish.
	ShutdownTimeoutSeconds int `json:"shutdown_timeout_seconds" mapstructure:"shutdown_timeout_seconds"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	// Level is the minimum log level (debug, info, warn, error).
	Level string `json:"level" mapstructure:"level"`
}

var (
	configInstance *Configuration
	configOnce     sync.Once
	configErr      error
)

// GetConfig returns the singleton Configuration instance, loading it on
// first call from the default search paths.
func GetConfig() (*Configuration, error) {
	configOnce.Do(func() {
		configInstance, configErr = loadConfig("")
	})
	return configInstance, configErr
}

// GetConfigWithPath returns the singleton Configuration instance loaded
// from an explicit config file path.
func GetConfigWithPath(configPath string) (*Configuration, error) {
	configOnce.Do(func() {
		configInstance, configErr = loadConfig(configPath)
	})
	return configInstance, configErr
}

// MustGetConfig returns the singleton Configuration instance and panics if
// loading fails. Use only where the application cannot proceed without it.
func MustGetConfig() *Configuration {
	cfg, err := GetConfig()
	if err != nil {
		panic(fmt.Sprintf("failed to load configuration: %v", err))
	}
	return cfg
}

// ResetConfig resets the singleton instance. Testing only.
func ResetConfig() {
	configOnce = sync.Once{}
	configInstance = nil
	configErr = nil
}

// Validate checks the configuration against the closed enumerations and
// returns a ValidationError listing every violation.
func (c *Configuration) Validate() error {
	var validationErrors []string

	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		validationErrors = append(validationErrors, "server.port must be between 1 and 65535")
	}

	if !c.Provider.Valid() {
		validationErrors = append(validationErrors, fmt.Sprintf(
			"provider '%s' is invalid, must be one of: openai, anthropic, google", c.Provider))
	}

	if !domain.ValidLanguage(c.TargetLanguage) {
		validationErrors = append(validationErrors, fmt.Sprintf(
			"target_language '%s' is not one of the supported languages", c.TargetLanguage))
	}

	if !c.DisplayMode.Valid() {
		validationErrors = append(validationErrors, fmt.Sprintf(
			"display_mode '%s' is invalid, must be one of: display, display_and_copy", c.DisplayMode))
	}

	// Model selections must come from each provider's known set. An unset
	// model is fine; the default is filled in by the loader.
	for _, p := range domain.Providers() {
		pc, ok := c.Providers[string(p)]
		if !ok || pc.Model == "" {
			continue
		}
		if !domain.ValidModel(p, pc.Model) {
			validationErrors = append(validationErrors, fmt.Sprintf(
				"providers.%s.model '%s' is not a known %s model", p, pc.Model, p.Label()))
		}
	}

	if c.Logging.Level != "" && !isValidLogLevel(c.Logging.Level) {
		validationErrors = append(validationErrors, fmt.Sprintf(
			"logging.level '%s' is invalid, must be one of: debug, info, warn, error", c.Logging.Level))
	}

	if len(validationErrors) > 0 {
		return &ValidationError{Errors: validationErrors}
	}

	return nil
}

func isValidLogLevel(level string) bool {
	switch level {
	case "debug", "info", "warn", "error":
		return true
	default:
		return false
	}
}

// Credential returns the API key configured for p, or "" when unset.
func (c *Configuration) Credential(p domain.Provider) string {
	return c.Providers[string(p)].APIKey
}

// Model returns the model configured for p, falling back to the
// provider's default model.
func (c *Configuration) Model(p domain.Provider) domain.ModelName {
	if m := c.Providers[string(p)].Model; m != "" {
		return m
	}
	return domain.DefaultModel(p)
}

// Request assembles a translation request for the selected provider and
// the given source text.
func (c *Configuration) Request(text string) domain.Request {
	return domain.Request{
		Provider:       c.Provider,
		Credential:     c.Credential(c.Provider),
		Model:          c.Model(c.Provider),
		TargetLanguage: c.TargetLanguage,
		SourceText:     text,
	}
}
