package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Load reads configuration from file and environment.
// Priority (highest to lowest): env vars > config file > defaults.
func Load(configPath string) (*Config, error) {
	cfg := DefaultConfig()

	v := viper.New()
	v.SetConfigType("yaml")

	setDefaults(v, cfg)

	v.SetEnvPrefix("MACHINEDEX")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("machinedex")
		v.AddConfigPath(".")
		v.AddConfigPath("./configs")
		home, err := os.UserHomeDir()
		if err == nil {
			v.AddConfigPath(filepath.Join(home, ".machinedex"))
		}
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok && configPath != "" {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		// Config file not found is okay if not explicitly specified
	}

	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return cfg, nil
}

// setDefaults registers default values in viper.
func setDefaults(v *viper.Viper, cfg *Config) {
	v.SetDefault("scrape.request_timeout", cfg.Scrape.RequestTimeout)
	v.SetDefault("scrape.render_timeout", cfg.Scrape.RenderTimeout)
	v.SetDefault("scrape.politeness_delay", cfg.Scrape.PolitenessDelay)
	v.SetDefault("scrape.user_agent", cfg.Scrape.UserAgent)
	v.SetDefault("scrape.max_body_size", cfg.Scrape.MaxBodySize)
	v.SetDefault("scrape.headless", cfg.Scrape.Headless)
	v.SetDefault("scrape.stealth", cfg.Scrape.Stealth)
	v.SetDefault("scrape.workers", cfg.Scrape.Workers)

	v.SetDefault("paths.scraped_dir", cfg.Paths.ScrapedDir)
	v.SetDefault("paths.merged_file", cfg.Paths.MergedFile)
	v.SetDefault("paths.translated_file", cfg.Paths.TranslatedFile)
	v.SetDefault("paths.brands_file", cfg.Paths.BrandsFile)
	v.SetDefault("paths.logos_dir", cfg.Paths.LogosDir)
	v.SetDefault("paths.image_fallback_dir", cfg.Paths.ImageFallbackDir)

	v.SetDefault("backend.url", cfg.Backend.URL)
	v.SetDefault("backend.service_role_key", cfg.Backend.ServiceRoleKey)
	v.SetDefault("backend.database_url", cfg.Backend.DatabaseURL)
	v.SetDefault("backend.machine_bucket", cfg.Backend.MachineBucket)
	v.SetDefault("backend.brand_bucket", cfg.Backend.BrandBucket)
	v.SetDefault("backend.schema", cfg.Backend.Schema)

	v.SetDefault("gemini.api_key", cfg.Gemini.APIKey)
	v.SetDefault("gemini.model", cfg.Gemini.Model)
	v.SetDefault("gemini.endpoint", cfg.Gemini.Endpoint)
	v.SetDefault("gemini.context_ttl", cfg.Gemini.ContextTTL)
	v.SetDefault("gemini.call_delay", cfg.Gemini.CallDelay)

	v.SetDefault("logging.level", cfg.Logging.Level)
	v.SetDefault("logging.format", cfg.Logging.Format)
	v.SetDefault("logging.output", cfg.Logging.Output)
	v.SetDefault("logging.max_size_mb", cfg.Logging.MaxSizeMB)
	v.SetDefault("logging.max_backups", cfg.Logging.MaxBackups)
}
