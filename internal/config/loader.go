// Package config provides configuration management using the Singleton pattern.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/snaplate/snaplate/internal/domain"
	"github.com/spf13/viper"
)

const (
	defaultConfigName = "config"
	defaultConfigType = "yaml"
	envPrefix         = "SNAPLATE"
)

// credentialEnvVars are the dedicated per-provider API key variables.
// They take priority over anything in the config file so keys can stay
// out of files entirely.
var credentialEnvVars = map[domain.Provider]string{
	domain.ProviderOpenAI:    "SNAPLATE_OPENAI_API_KEY",
	domain.ProviderAnthropic: "SNAPLATE_ANTHROPIC_API_KEY",
	domain.ProviderGoogle:    "SNAPLATE_GOOGLE_API_KEY",
}

// loadConfig loads the configuration from environment variables and files.
// Priority order (highest to lowest):
// 1. SNAPLATE_<PROVIDER>_API_KEY env vars for credentials
// 2. Environment variables (prefixed with SNAPLATE_)
// 3. config.yaml, as a fallback for local development
// 4. Default values
func loadConfig(configPath string) (*Configuration, error) {
	v := viper.New()

	setDefaults(v)

	v.SetConfigName(defaultConfigName)
	v.SetConfigType(defaultConfigType)

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.AddConfigPath(".")
		v.AddConfigPath("./configs")
		v.AddConfigPath("/etc/snaplate")
		v.AddConfigPath("$HOME/.snaplate")
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, &ConfigError{
				Op:  "read",
				Err: fmt.Errorf("failed to read config file: %w", err),
			}
		}
		// Config file not found is fine; env vars cover everything.
	}

	var cfg Configuration
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, &ConfigError{
			Op:  "unmarshal",
			Err: fmt.Errorf("failed to unmarshal config: %w", err),
		}
	}

	loadCredentialsFromEnv(&cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// setDefaults sets default configuration values.
func setDefaults(v *viper.Viper) {
	// Server defaults
	v.SetDefault("server.host", "127.0.0.1")
	v.SetDefault("server.port", 8391)
	v.SetDefault("server.read_timeout_seconds", 30)
	v.SetDefault("server.write_timeout_seconds", 60)
	v.SetDefault("server.shutdown_timeout_seconds", 15)

	// Translation defaults
	v.SetDefault("provider", string(domain.ProviderOpenAI))
	v.SetDefault("target_language", "English")
	v.SetDefault("display_mode", string(domain.ModeDisplay))

	// Logging defaults
	v.SetDefault("logging.level", "info")
}

// loadCredentialsFromEnv overlays per-provider API keys from their
// dedicated environment variables and fills in default models for
// providers with no explicit selection.
func loadCredentialsFromEnv(cfg *Configuration) {
	if cfg.Providers == nil {
		cfg.Providers = make(map[string]ProviderConfig, len(credentialEnvVars))
	}

	for _, p := range domain.Providers() {
		pc := cfg.Providers[string(p)]

		if key := strings.TrimSpace(os.Getenv(credentialEnvVars[p])); key != "" {
			pc.APIKey = key
		}
		if pc.Model == "" {
			pc.Model = domain.DefaultModel(p)
		}

		cfg.Providers[string(p)] = pc
	}
}
