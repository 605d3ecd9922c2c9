// Package config provides configuration loading and validation for the CLI
// and server.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config represents configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	// Inputs
	Resume    string `json:"resume,omitempty"`     // Path to resume/goals text file
	ResumeURL string `json:"resume_url,omitempty"` // URL to fetch resume or job posting from
	Stream    string `json:"stream,omitempty"`     // Stream id to analyze against (empty = detect)

	// Behavior
	APIKey       string `json:"api_key,omitempty"`       // Gemini API key for roadmap narration
	UseBrowser   bool   `json:"use_browser,omitempty"`   // Use headless browser for SPA pages
	Verbose      bool   `json:"verbose,omitempty"`       // Print detailed debug information
	RoleLeniency int    `json:"role_leniency,omitempty"` // Tolerance band for role recommendations (0 = default)

	// Server
	Addr        string `json:"addr,omitempty"`         // HTTP listen address
	DatabaseURL string `json:"database_url,omitempty"` // PostgreSQL connection URL
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
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

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Validate checks that the configuration has valid values.
// Note: This doesn't check for required fields since those are handled
// by CLI flag validation after merging.
func (c *Config) Validate() error {
	if c.Resume != "" && c.ResumeURL != "" {
		return fmt.Errorf("config error: 'resume' and 'resume_url' are mutually exclusive")
	}

	if c.RoleLeniency < 0 || c.RoleLeniency > 100 {
		return fmt.Errorf("config error: 'role_leniency' must be between 0 and 100")
	}

	if c.Resume != "" {
		if _, err := os.Stat(c.Resume); os.IsNotExist(err) {
			return fmt.Errorf("config error: resume file not found: %s", c.Resume)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
// This is used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	// String fields: use default if empty
	if result.Resume == "" {
		result.Resume = defaults.Resume
	}
	if result.ResumeURL == "" {
		result.ResumeURL = defaults.ResumeURL
	}
	if result.Stream == "" {
		result.Stream = defaults.Stream
	}
	if result.APIKey == "" {
		result.APIKey = defaults.APIKey
	}
	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}

	// Int fields: use default if zero (zero leniency falls through to the
	// analyzer's own default)
	if result.RoleLeniency == 0 {
		result.RoleLeniency = defaults.RoleLeniency
	}

	if result.Addr == "" {
		if defaults.Addr != "" {
			result.Addr = defaults.Addr
		} else {
			result.Addr = ":8080"
		}
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}
