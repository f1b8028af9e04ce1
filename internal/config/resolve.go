package config

import (
	"errors"
	"fmt"
	"os"
)

// EnvAPIKey is the environment variable that overrides the configured
// Financial Datasets API key.
const EnvAPIKey = "FINANCIAL_DATASETS_API_KEY"

// ErrMissingAPIKey indicates that neither the environment nor the config
// file provides an API key.
var ErrMissingAPIKey = errors.New("no API key configured")

// Resolve applies environment overrides and validates the result. It must
// succeed before any server component is constructed; a missing API key is
// a startup failure, never a per-request one.
func (c *Config) Resolve() error {
	if key := os.Getenv(EnvAPIKey); key != "" {
		c.API.APIKey = key
	}
	if c.API.APIKey == "" {
		return fmt.Errorf("%w: set %s or add api.apiKey to %s", ErrMissingAPIKey, EnvAPIKey, ConfigPath())
	}
	if c.API.TimeoutSeconds <= 0 {
		c.API.TimeoutSeconds = defaultAPIConfig().TimeoutSeconds
	}
	return nil
}
