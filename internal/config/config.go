package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"
)

// FileName is the per-site configuration file looked up in the working directory
const FileName = ".docsearch.toml"

// ErrInvalid is returned when a configuration value is out of range
var ErrInvalid = errors.New("invalid configuration")

// Source kinds
const (
	SourceFetch = "fetch"
	SourceScan  = "scan"
)

// Config represents the application configuration
type Config struct {
	Version int          `toml:"version"`
	Site    SiteConfig   `toml:"site"`
	Source  SourceConfig `toml:"source"`
	Search  SearchConfig `toml:"search"`
	UI      UISettings   `toml:"ui"`
}

// SiteConfig describes where the documentation site lives
type SiteConfig struct {
	Title         string `toml:"title"`
	BaseURL       string `toml:"base_url"`       // origin used for fetching and for opening results
	RootPath      string `toml:"root_path"`      // site-rooted prefix, e.g. /Salesforce-RAG
	ContentPrefix string `toml:"content_prefix"` // internal content prefix, e.g. /rag/
	Dir           string `toml:"dir"`            // local build output, optional
}

// ContentBase returns the path relative URLs are resolved against
func (s SiteConfig) ContentBase() string {
	return strings.TrimSuffix(s.RootPath, "/") + "/" + strings.Trim(s.ContentPrefix, "/") + "/"
}

// SourceConfig selects and configures the index source
type SourceConfig struct {
	Kind         string   `toml:"kind"`
	IndexPath    string   `toml:"index_path"`
	LandingPath  string   `toml:"landing_path"`
	LinkPattern  string   `toml:"link_pattern"`
	Exclude      []string `toml:"exclude"`
	CardSelector string   `toml:"card_selector"`
}

// SearchConfig holds the matcher and controller constants
type SearchConfig struct {
	MinQueryLength   int    `toml:"min_query_length"`
	MaxResults       int    `toml:"max_results"`
	DebounceMs       int    `toml:"debounce_ms"`
	DescriptionLimit int    `toml:"description_limit"`
	ShortcutKey      string `toml:"shortcut_key"`
	CacheSize        int    `toml:"cache_size"`
}

// Debounce returns the input debounce delay
func (s SearchConfig) Debounce() time.Duration {
	return time.Duration(s.DebounceMs) * time.Millisecond
}

// UISettings represents UI-related configuration
type UISettings struct {
	Mouse   bool   `toml:"mouse"`
	LogFile string `toml:"log_file"`
}

// ConfigService handles configuration management
type ConfigService interface {
	Load() (*Config, error)
	LoadFromPath(path string) (*Config, error)
	SaveToPath(config *Config, path string) error
}

type configService struct {
	filePath string
}

// NewConfigService creates a config service bound to the default file in dir
func NewConfigService(dir string) ConfigService {
	return &configService{
		filePath: filepath.Join(dir, FileName),
	}
}

// Load loads the configuration file, returning defaults when it does not exist
func (cs *configService) Load() (*Config, error) {
	if _, err := os.Stat(cs.filePath); os.IsNotExist(err) {
		return DefaultConfig(), nil
	}
	return cs.LoadFromPath(cs.filePath)
}

// LoadFromPath loads configuration from a specific path.
// Values missing from the file keep their defaults.
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// SaveToPath saves configuration to a specific path
func (cs *configService) SaveToPath(config *Config, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := toml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Validate checks value ranges
func (c *Config) Validate() error {
	switch c.Source.Kind {
	case SourceFetch, SourceScan:
	default:
		return fmt.Errorf("%w: source.kind %q (want %q or %q)", ErrInvalid, c.Source.Kind, SourceFetch, SourceScan)
	}
	if c.Search.MinQueryLength < 1 {
		return fmt.Errorf("%w: search.min_query_length must be at least 1", ErrInvalid)
	}
	if c.Search.MaxResults < 1 {
		return fmt.Errorf("%w: search.max_results must be at least 1", ErrInvalid)
	}
	if c.Search.DebounceMs < 0 {
		return fmt.Errorf("%w: search.debounce_ms must not be negative", ErrInvalid)
	}
	if c.Search.DescriptionLimit < 1 {
		return fmt.Errorf("%w: search.description_limit must be at least 1", ErrInvalid)
	}
	if len([]rune(c.Search.ShortcutKey)) != 1 {
		return fmt.Errorf("%w: search.shortcut_key must be a single character", ErrInvalid)
	}
	if !strings.HasPrefix(c.Site.RootPath, "/") {
		return fmt.Errorf("%w: site.root_path must start with /", ErrInvalid)
	}
	return nil
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Version: 1,
		Site: SiteConfig{
			Title:         "Salesforce RAG Knowledge Library",
			BaseURL:       "http://localhost:4000",
			RootPath:      "/Salesforce-RAG",
			ContentPrefix: "/rag/",
		},
		Source: SourceConfig{
			Kind:         SourceFetch,
			IndexPath:    "/Salesforce-RAG/rag/rag-library.json",
			LandingPath:  "/Salesforce-RAG/index.html",
			LinkPattern:  "/rag/",
			Exclude:      []string{"/index.html", "/rag/", "/README.html"},
			CardSelector: ".card",
		},
		Search: SearchConfig{
			MinQueryLength:   2,
			MaxResults:       20,
			DebounceMs:       300,
			DescriptionLimit: 150,
			ShortcutKey:      "k",
			CacheSize:        128,
		},
		UI: UISettings{
			Mouse:   true,
			LogFile: "docsearch.log",
		},
	}
}
