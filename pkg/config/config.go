// Package config holds the explicit configuration passed into the completion
// client at construction time. The credential is validated up front so a
// missing key fails at startup instead of surfacing as an authentication
// failure on the first call.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"jqlgen/pkg/completion/groq"
)

// EnvAPIKey is the environment variable holding the Groq bearer credential.
const EnvAPIKey = "GROQ_API_KEY" //nolint:gosec // env var name, not a secret

// ErrMissingAPIKey is returned by Validate when no credential is configured.
var ErrMissingAPIKey = errors.New("config: missing API key (set " + EnvAPIKey + ")")

// Config describes the completion endpoint and model settings.
type Config struct {
	APIKey      string  `yaml:"api_key"` //nolint:gosec // configuration field, not a hardcoded secret
	Model       string  `yaml:"model"`
	BaseURL     string  `yaml:"base_url"`
	MaxTokens   int     `yaml:"max_tokens"`
	Temperature float64 `yaml:"temperature"`
}

// Default returns the configuration the tool ships with: the Groq endpoint
// and the model the original filter creator used.
func Default() Config {
	return Config{
		Model:     "mixtral-8x7b-32768",
		BaseURL:   groq.DefaultBaseURL,
		MaxTokens: 1024,
	}
}

// FromEnv returns the default configuration with the credential read from
// the environment.
func FromEnv() Config {
	cfg := Default()
	cfg.APIKey = os.Getenv(EnvAPIKey)
	return cfg
}

// Load reads a YAML file and returns a Config layered over the defaults.
// Environment variables referenced as ${VAR} or $VAR in the YAML are
// expanded before parsing, so API keys can be kept in environment variables
// (e.g. loaded from a .env file) rather than committed in the config.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is caller-provided configuration, not user input
	if err != nil {
		return Config{}, fmt.Errorf("config: load: %w", err)
	}

	expanded := os.ExpandEnv(string(data))

	cfg := Default()
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse: %w", err)
	}

	return cfg, nil
}

// Validate checks that the configuration is usable.
func (c Config) Validate() error {
	if c.APIKey == "" {
		return ErrMissingAPIKey
	}
	if c.Model == "" {
		return errors.New("config: missing model")
	}
	if c.BaseURL == "" {
		return errors.New("config: missing base URL")
	}
	return nil
}
