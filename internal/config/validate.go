package config

import (
	"fmt"
	"net/url"

	"machinedex/internal/types"
)

// Validate checks the configuration for invalid values. It covers only
// settings every command depends on; credential checks live in the
// Require helpers so that offline commands work without them.
func Validate(cfg *Config) error {
	if cfg.Scrape.RequestTimeout <= 0 {
		return fmt.Errorf("scrape.request_timeout must be > 0")
	}
	if cfg.Scrape.RenderTimeout <= 0 {
		return fmt.Errorf("scrape.render_timeout must be > 0")
	}
	if cfg.Scrape.PolitenessDelay < 0 {
		return fmt.Errorf("scrape.politeness_delay must be >= 0")
	}
	if cfg.Scrape.MaxBodySize <= 0 {
		return fmt.Errorf("scrape.max_body_size must be > 0")
	}
	if cfg.Scrape.Workers < 1 {
		return fmt.Errorf("scrape.workers must be >= 1, got %d", cfg.Scrape.Workers)
	}

	if cfg.Paths.ScrapedDir == "" {
		return fmt.Errorf("paths.scraped_dir must not be empty")
	}
	if cfg.Paths.MergedFile == "" {
		return fmt.Errorf("paths.merged_file must not be empty")
	}

	validLogLevels := map[string]bool{
		"debug": true, "info": true, "warn": true, "error": true,
	}
	if !validLogLevels[cfg.Logging.Level] {
		return fmt.Errorf("logging.level must be debug/info/warn/error, got %q", cfg.Logging.Level)
	}
	if cfg.Logging.Format != "text" && cfg.Logging.Format != "json" {
		return fmt.Errorf("logging.format must be 'text' or 'json', got %q", cfg.Logging.Format)
	}

	return nil
}

// RequireBackend fails fast when the backend credentials are missing.
// Called before any network I/O by the upload commands.
func RequireBackend(cfg *Config) error {
	if cfg.Backend.URL == "" || cfg.Backend.ServiceRoleKey == "" {
		return fmt.Errorf("%w: backend.url and backend.service_role_key must be set", types.ErrMissingCreds)
	}
	if _, err := url.Parse(cfg.Backend.URL); err != nil {
		return fmt.Errorf("invalid backend.url %q: %w", cfg.Backend.URL, err)
	}
	return nil
}

// RequireDatabase fails fast when the table-store connection string is
// missing.
func RequireDatabase(cfg *Config) error {
	if cfg.Backend.DatabaseURL == "" {
		return fmt.Errorf("%w: backend.database_url must be set", types.ErrMissingCreds)
	}
	return nil
}

// RequireGemini fails fast when the AI service key is missing.
func RequireGemini(cfg *Config) error {
	if cfg.Gemini.APIKey == "" {
		return fmt.Errorf("%w: gemini.api_key must be set", types.ErrMissingCreds)
	}
	return nil
}

// ValidateURL checks if a URL string is a valid scrape target.
func ValidateURL(rawURL string) error {
	u, err := url.Parse(rawURL)
	if err != nil {
		return fmt.Errorf("invalid URL: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("URL scheme must be http or https, got %q", u.Scheme)
	}
	if u.Host == "" {
		return fmt.Errorf("URL must have a host")
	}
	return nil
}
