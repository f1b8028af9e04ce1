// Package config defines the configuration schema for findata-mcp.
//
// Settings live in ~/.findata-mcp/config.json with camelCase keys; the
// FINANCIAL_DATASETS_API_KEY environment variable overrides the file.
package config

import "time"

// APIConfig holds credentials and connection settings for the Financial
// Datasets API.
type APIConfig struct {
	APIKey         string `json:"apiKey"`
	BaseURL        string `json:"baseUrl,omitempty"`
	TimeoutSeconds int    `json:"timeoutSeconds"`
}

func defaultAPIConfig() APIConfig {
	return APIConfig{TimeoutSeconds: 30}
}

// ServerConfig holds transport settings for the MCP server.
type ServerConfig struct {
	// HTTPAddr enables the HTTP transport when non-empty, e.g. ":8080".
	HTTPAddr string `json:"httpAddr,omitempty"`
}

// DocsConfig points at the Mintlify documentation tree for the docs commands.
type DocsConfig struct {
	Dir string `json:"dir,omitempty"`
}

// Config is the root configuration object, loaded from
// ~/.findata-mcp/config.json.
type Config struct {
	API    APIConfig    `json:"api"`
	Server ServerConfig `json:"server"`
	Docs   DocsConfig   `json:"docs"`
}

// DefaultConfig returns a Config populated with all default values.
func DefaultConfig() Config {
	return Config{API: defaultAPIConfig()}
}

// Timeout returns the configured API timeout as a duration.
func (c *Config) Timeout() time.Duration {
	if c.API.TimeoutSeconds <= 0 {
		return 30 * time.Second
	}
	return time.Duration(c.API.TimeoutSeconds) * time.Second
}
