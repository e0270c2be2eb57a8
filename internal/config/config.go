// Package config provides configuration loading and validation for the service.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config represents the service configuration that can be loaded from a JSON
// file. All fields are optional; missing values use defaults or environment
// variables.
type Config struct {
	// Server
	Port int `json:"port,omitempty"` // HTTP listen port

	// Collaborators
	DatabaseURL      string `json:"database_url,omitempty"`       // PostgreSQL connection URL (candidate store)
	VectorServiceURL string `json:"vector_service_url,omitempty"` // Embedding-store base URL
	APIKey           string `json:"api_key,omitempty"`            // Gemini API key (retention scoring)

	// Matching
	TaxonomyPath string `json:"taxonomy_path,omitempty"` // Optional JSON taxonomy replacing the built-in table

	// Ranking
	Concurrency      int `json:"concurrency,omitempty"`        // Per-request candidate worker bound
	RetentionTimeout int `json:"retention_timeout,omitempty"`  // Seconds per retention call
	RetentionCallCap int `json:"retention_call_cap,omitempty"` // Retention collaborator calls per request

	// Rate limiting
	SearchRateLimit int `json:"search_rate_limit,omitempty"` // Search requests per client per minute

	// Logging
	JSONLogs bool `json:"json_logs,omitempty"`
	Debug    bool `json:"debug,omitempty"`
}

// Defaults returns the default configuration values.
func Defaults() Config {
	return Config{
		Port:             8080,
		Concurrency:      8,
		RetentionTimeout: 20,
		RetentionCallCap: 100,
		SearchRateLimit:  30,
	}
}

// Load loads configuration from a JSON file (when path is non-empty), applies
// environment overrides, and fills remaining gaps with defaults.
func Load(path string) (*Config, error) {
	cfg := Config{}

	if path != "" {
		if !filepath.IsAbs(path) {
			cwd, err := os.Getwd()
			if err != nil {
				return nil, fmt.Errorf("failed to get current directory: %w", err)
			}
			path = filepath.Join(cwd, path)
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
		if err := json.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config JSON: %w", err)
		}
	}

	cfg.applyEnv()
	cfg.applyDefaults(Defaults())

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// applyEnv overrides secrets and endpoints from the environment. Environment
// wins over the config file so deployments can rotate credentials without
// editing files.
func (c *Config) applyEnv() {
	if v := os.Getenv("DATABASE_URL"); v != "" {
		c.DatabaseURL = v
	}
	if v := os.Getenv("VECTOR_SERVICE_URL"); v != "" {
		c.VectorServiceURL = v
	}
	if v := os.Getenv("GEMINI_API_KEY"); v != "" {
		c.APIKey = v
	}
}

// applyDefaults fills zero-valued fields from defaults.
func (c *Config) applyDefaults(defaults Config) {
	if c.Port == 0 {
		c.Port = defaults.Port
	}
	if c.Concurrency == 0 {
		c.Concurrency = defaults.Concurrency
	}
	if c.RetentionTimeout == 0 {
		c.RetentionTimeout = defaults.RetentionTimeout
	}
	if c.RetentionCallCap == 0 {
		c.RetentionCallCap = defaults.RetentionCallCap
	}
	if c.SearchRateLimit == 0 {
		c.SearchRateLimit = defaults.SearchRateLimit
	}
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' must be between 0 and 65535")
	}
	if c.Concurrency < 0 {
		return fmt.Errorf("config error: 'concurrency' must be non-negative")
	}
	if c.RetentionTimeout < 0 {
		return fmt.Errorf("config error: 'retention_timeout' must be non-negative")
	}
	if c.RetentionCallCap < 0 {
		return fmt.Errorf("config error: 'retention_call_cap' must be non-negative")
	}
	if c.SearchRateLimit < 0 {
		return fmt.Errorf("config error: 'search_rate_limit' must be non-negative")
	}
	if c.TaxonomyPath != "" {
		if _, err := os.Stat(c.TaxonomyPath); os.IsNotExist(err) {
			return fmt.Errorf("config error: taxonomy file not found: %s", c.TaxonomyPath)
		}
	}
	return nil
}
