package config

import (
	"time"
)

// Version is set at build time via ldflags.
var Version = "dev"

// Config is the root configuration for machinedex.
type Config struct {
	Scrape  ScrapeConfig  `mapstructure:"scrape"  yaml:"scrape"`
	Paths   PathsConfig   `mapstructure:"paths"   yaml:"paths"`
	Backend BackendConfig `mapstructure:"backend" yaml:"backend"`
	Gemini  GeminiConfig  `mapstructure:"gemini"  yaml:"gemini"`
	Logging LoggingConfig `mapstructure:"logging" yaml:"logging"`
}

// ScrapeConfig controls the fetchers and the scrape orchestrator.
type ScrapeConfig struct {
	RequestTimeout  time.Duration `mapstructure:"request_timeout"  yaml:"request_timeout"`
	RenderTimeout   time.Duration `mapstructure:"render_timeout"   yaml:"render_timeout"`
	PolitenessDelay time.Duration `mapstructure:"politeness_delay" yaml:"politeness_delay"`
	UserAgent       string        `mapstructure:"user_agent"       yaml:"user_agent"`
	MaxBodySize     int64         `mapstructure:"max_body_size"    yaml:"max_body_size"`
	Headless        bool          `mapstructure:"headless"         yaml:"headless"`
	Stealth         bool          `mapstructure:"stealth"          yaml:"stealth"`

	// Workers bounds parallelism across jobs. 1 means the sequential
	// baseline; sites within one job are always fetched in order.
	Workers int `mapstructure:"workers" yaml:"workers"`
}

// PathsConfig controls where local artifacts are written.
type PathsConfig struct {
	// ScrapedDir receives one timestamped batch file per job.
	ScrapedDir string `mapstructure:"scraped_dir" yaml:"scraped_dir"`

	// MergedFile is the rectangular merged dataset, overwritten per run.
	MergedFile string `mapstructure:"merged_file" yaml:"merged_file"`

	// TranslatedFile receives AI translation results (partial results
	// are flushed here on interrupt).
	TranslatedFile string `mapstructure:"translated_file" yaml:"translated_file"`

	// BrandsFile is the brand rows uploaded by upload-brand.
	BrandsFile string `mapstructure:"brands_file" yaml:"brands_file"`

	// LogosDir holds local brand logo files for upload.
	LogosDir string `mapstructure:"logos_dir" yaml:"logos_dir"`

	// ImageFallbackDir holds pre-downloaded machine images for vendors
	// that block automated downloads.
	ImageFallbackDir string `mapstructure:"image_fallback_dir" yaml:"image_fallback_dir"`
}

// BackendConfig holds the cloud backend endpoints and credentials.
type BackendConfig struct {
	URL            string `mapstructure:"url"              yaml:"url"`
	ServiceRoleKey string `mapstructure:"service_role_key" yaml:"service_role_key"`

	// DatabaseURL is the direct Postgres connection string used for
	// table upserts.
	DatabaseURL string `mapstructure:"database_url" yaml:"database_url"`

	MachineBucket string `mapstructure:"machine_bucket" yaml:"machine_bucket"`
	BrandBucket   string `mapstructure:"brand_bucket"   yaml:"brand_bucket"`
	Schema        string `mapstructure:"schema"         yaml:"schema"`
}

// GeminiConfig controls the AI generation service client.
type GeminiConfig struct {
	APIKey     string        `mapstructure:"api_key"     yaml:"api_key"`
	Model      string        `mapstructure:"model"       yaml:"model"`
	Endpoint   string        `mapstructure:"endpoint"    yaml:"endpoint"`
	ContextTTL time.Duration `mapstructure:"context_ttl" yaml:"context_ttl"`

	// Delay between generation calls, to stay inside rate limits.
	CallDelay time.Duration `mapstructure:"call_delay" yaml:"call_delay"`
}

// LoggingConfig controls logging behavior.
type LoggingConfig struct {
	Level  string `mapstructure:"level"  yaml:"level"`
	Format string `mapstructure:"format" yaml:"format"`
	Output string `mapstructure:"output" yaml:"output"` // stderr, stdout, or a file path

	// Rotation settings apply when Output is a file path.
	MaxSizeMB  int `mapstructure:"max_size_mb" yaml:"max_size_mb"`
	MaxBackups int `mapstructure:"max_backups" yaml:"max_backups"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Scrape: ScrapeConfig{
			RequestTimeout:  10 * time.Second,
			RenderTimeout:   30 * time.Second,
			PolitenessDelay: 1 * time.Second,
			UserAgent: "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) " +
				"AppleWebKit/537.36 (KHTML, like Gecko) " +
				"Chrome/120.0.0.0 Safari/537.36",
			MaxBodySize: 10 * 1024 * 1024,
			Headless:    true,
			Stealth:     true,
			Workers:     1,
		},
		Paths: PathsConfig{
			ScrapedDir:       "./scraped_data",
			MergedFile:       "./init_data/machines.json",
			TranslatedFile:   "./init_data/machine_names_kor.json",
			BrandsFile:       "./init_data/brand.json",
			LogosDir:         "./logos",
			ImageFallbackDir: "./data/images",
		},
		Backend: BackendConfig{
			MachineBucket: "machine_images",
			BrandBucket:   "brand_images",
			Schema:        "catalog",
		},
		Gemini: GeminiConfig{
			Model:      "gemini-2.5-flash",
			Endpoint:   "https://generativelanguage.googleapis.com/v1beta",
			ContextTTL: time.Hour,
			CallDelay:  time.Second,
		},
		Logging: LoggingConfig{
			Level:      "info",
			Format:     "text",
			Output:     "stderr",
			MaxSizeMB:  50,
			MaxBackups: 3,
		},
	}
}
