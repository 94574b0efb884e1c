package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// DefaultBaseURL is the wallpaper gallery scraped when no override is given
const DefaultBaseURL = "https://wallpaperswide.com"

// Config holds all configuration options for the wallpaper scraper
type Config struct {
	// Target site
	Site SiteConfig `yaml:"site" json:"site"`

	// Output settings
	Output OutputConfig `yaml:"output" json:"output"`

	// Pagination pacing
	Crawl CrawlConfig `yaml:"crawl" json:"crawl"`

	// HTTP transport settings
	HTTP HTTPConfig `yaml:"http" json:"http"`

	// Logging configuration
	Logging LoggingConfig `yaml:"logging" json:"logging"`
}

// SiteConfig describes the gallery being scraped
type SiteConfig struct {
	BaseURL   string `yaml:"base_url" json:"base_url"`
	UserAgent string `yaml:"user_agent" json:"user_agent"`
}

// OutputConfig holds output directory configuration
type OutputConfig struct {
	Directory string `yaml:"directory" json:"directory"`
}

// CrawlConfig controls how listing pages are walked
type CrawlConfig struct {
	PageDelay time.Duration `yaml:"page_delay" json:"page_delay"`
}

// HTTPConfig holds transport configuration. A zero timeout means none.
type HTTPConfig struct {
	Timeout time.Duration `yaml:"timeout" json:"timeout"`
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level string `yaml:"level" json:"level"`
	File  string `yaml:"file" json:"file"`
}

// DefaultConfig returns a Config instance with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Site: SiteConfig{
			BaseURL: DefaultBaseURL,
		},
		Output: OutputConfig{
			Directory: "downloads",
		},
		Crawl: CrawlConfig{
			PageDelay: 2 * time.Second,
		},
		HTTP: HTTPConfig{
			Timeout: 0,
		},
		Logging: LoggingConfig{
			Level: "warn",
			File:  "",
		},
	}
}

// LoadFromEnv loads configuration from environment variables
func (c *Config) LoadFromEnv() error {
	if baseURL := os.Getenv("WALLGRAB_BASE_URL"); baseURL != "" {
		c.Site.BaseURL = baseURL
	}
	if userAgent := os.Getenv("WALLGRAB_USER_AGENT"); userAgent != "" {
		c.Site.UserAgent = userAgent
	}

	if outputDir := os.Getenv("WALLGRAB_OUTPUT_DIR"); outputDir != "" {
		c.Output.Directory = outputDir
	}

	if delay := os.Getenv("WALLGRAB_PAGE_DELAY"); delay != "" {
		d, err := time.ParseDuration(delay)
		if err != nil {
			return fmt.Errorf("invalid WALLGRAB_PAGE_DELAY: %w", err)
		}
		c.Crawl.PageDelay = d
	}

	if timeout := os.Getenv("WALLGRAB_HTTP_TIMEOUT"); timeout != "" {
		d, err := time.ParseDuration(timeout)
		if err != nil {
			return fmt.Errorf("invalid WALLGRAB_HTTP_TIMEOUT: %w", err)
		}
		c.HTTP.Timeout = d
	}

	if logLevel := os.Getenv("WALLGRAB_LOG_LEVEL"); logLevel != "" {
		c.Logging.Level = logLevel
	}
	if logFile := os.Getenv("WALLGRAB_LOG_FILE"); logFile != "" {
		c.Logging.File = logFile
	}

	return nil
}

// LoadFromFile loads configuration from a YAML file
func (c *Config) LoadFromFile(path string) error {
	// If path is empty, try default locations
	if path == "" {
		path = c.findConfigFile()
		if path == "" {
			return nil // No config file found, not an error
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("failed to parse config file: %w", err)
	}

	return nil
}

// findConfigFile searches for config file in standard locations
func (c *Config) findConfigFile() string {
	home := os.Getenv("HOME")
	locations := []string{
		".wallgrab.yaml",
		".wallgrab.yml",
	}
	if home != "" {
		locations = append(locations,
			filepath.Join(home, ".config", "wallgrab", "config.yaml"),
			filepath.Join(home, ".config", "wallgrab", "config.yml"),
			filepath.Join(home, ".wallgrab.yaml"),
			filepath.Join(home, ".wallgrab.yml"),
		)
	}

	for _, loc := range locations {
		if _, err := os.Stat(loc); err == nil {
			return loc
		}
	}

	return ""
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	var errs []error

	if c.Site.BaseURL == "" {
		errs = append(errs, errors.New("site base URL is required"))
	} else if u, err := url.Parse(c.Site.BaseURL); err != nil || u.Scheme == "" || u.Host == "" {
		errs = append(errs, fmt.Errorf("site base URL %q must be an absolute URL", c.Site.BaseURL))
	}

	if c.Output.Directory == "" {
		errs = append(errs, errors.New("output directory is required"))
	}

	if c.Crawl.PageDelay < 0 {
		errs = append(errs, errors.New("page delay cannot be negative"))
	}
	if c.HTTP.Timeout < 0 {
		errs = append(errs, errors.New("http timeout cannot be negative"))
	}

	validLogLevels := map[string]bool{
		"debug": true, "info": true, "warn": true, "warning": true, "error": true, "disabled": true,
	}
	if !validLogLevels[strings.ToLower(c.Logging.Level)] {
		errs = append(errs, fmt.Errorf("invalid log level %q", c.Logging.Level))
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}

	return nil
}

// Save saves the configuration to a file
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// BaseURL returns the site origin without a trailing slash
func (c *Config) BaseURL() string {
	return strings.TrimRight(c.Site.BaseURL, "/")
}

// MergeCommandLineFlags merges command line flags into the configuration
func (c *Config) MergeCommandLineFlags(flags map[string]interface{}) {
	if baseURL, ok := flags["base-url"].(string); ok && baseURL != "" {
		c.Site.BaseURL = baseURL
	}
	if outputDir, ok := flags["output"].(string); ok && outputDir != "" {
		c.Output.Directory = outputDir
	}
	if delay, ok := flags["page-delay"].(time.Duration); ok && delay >= 0 {
		c.Crawl.PageDelay = delay
	}
	if logLevel, ok := flags["log-level"].(string); ok && logLevel != "" {
		c.Logging.Level = logLevel
	}
}

// Load loads configuration from all sources with proper precedence
// Precedence order: Command line flags > Environment variables > .env file > Config file > Defaults
func Load(configPath string, flags map[string]interface{}) (*Config, error) {
	// .env files are optional
	_ = godotenv.Load(".env")
	if home := os.Getenv("HOME"); home != "" {
		_ = godotenv.Load(filepath.Join(home, ".wallgrab.env"))
	}

	config := DefaultConfig()

	if err := config.LoadFromFile(configPath); err != nil {
		return nil, fmt.Errorf("failed to load config file: %w", err)
	}

	if err := config.LoadFromEnv(); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	config.MergeCommandLineFlags(flags)

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}
