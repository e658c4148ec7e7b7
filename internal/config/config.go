package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"hnsearch/internal/eventbus"
)

// DefaultSearchTerm seeds the search input when no term was ever persisted.
const DefaultSearchTerm = "go"

// MaxRecentSearches bounds the persisted search history.
const MaxRecentSearches = 5

// Config represents the application configuration
type Config struct {
	Version    int        `toml:"version"`
	SearchTerm string     `toml:"search_term"`
	Endpoint   string     `toml:"endpoint,omitempty"`
	Recent     []string   `toml:"recent_searches"`
	UISettings UISettings `toml:"ui"`
}

// UISettings represents UI-related configuration
type UISettings struct {
	HitsPerPage int  `toml:"hits_per_page"`
	ShowPoints  bool `toml:"show_points"`
}

// Store handles configuration persistence. A missing or unwritable backing
// file is non-fatal everywhere: the application continues with in-memory
// values only.
type Store interface {
	Load() (*Config, error)
	Save(config *Config) error
	LoadFromPath(path string) (*Config, error)
	SaveToPath(config *Config, path string) error
	Path() string
}

// store is the concrete implementation
type store struct {
	bus      eventbus.EventBus
	filePath string
}

// NewStore creates a config store rooted in the user config directory.
func NewStore() Store {
	configDir, err := os.UserConfigDir()
	if err != nil {
		configDir, err = os.UserHomeDir()
		if err != nil {
			configDir = "."
		}
		configDir = filepath.Join(configDir, ".config")
	}

	appDir := filepath.Join(configDir, "hnsearch")
	_ = os.MkdirAll(appDir, 0755)

	return &store{
		filePath: filepath.Join(appDir, "config.toml"),
	}
}

// NewStoreWithBus creates a config store with event bus support
func NewStoreWithBus(bus eventbus.EventBus) Store {
	s := NewStore().(*store)
	s.bus = bus
	return s
}

// Path returns the backing file path.
func (s *store) Path() string {
	return s.filePath
}

// Load loads the configuration from file. A missing file yields the default
// configuration, not an error.
func (s *store) Load() (*Config, error) {
	if _, err := os.Stat(s.filePath); os.IsNotExist(err) {
		cfg := DefaultConfig()

		if s.bus != nil {
			s.bus.Publish(eventbus.ConfigLoadedEvent{SearchTerm: cfg.SearchTerm})
		}

		return cfg, nil
	}

	cfg, err := s.LoadFromPath(s.filePath)
	if err != nil {
		return nil, err
	}

	if s.bus != nil {
		s.bus.Publish(eventbus.ConfigLoadedEvent{SearchTerm: cfg.SearchTerm})
	}

	return cfg, nil
}

// Save saves the configuration to file
func (s *store) Save(config *Config) error {
	if err := s.SaveToPath(config, s.filePath); err != nil {
		return err
	}

	if s.bus != nil {
		s.bus.Publish(eventbus.ConfigSavedEvent{})
	}

	return nil
}

// LoadFromPath loads configuration from a specific path
func (s *store) LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	applyDefaults(&cfg)

	return &cfg, nil
}

// SaveToPath saves configuration to a specific path
func (s *store) SaveToPath(config *Config, path string) error {
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

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Version:    1,
		SearchTerm: DefaultSearchTerm,
		Recent:     []string{},
		UISettings: UISettings{
			HitsPerPage: 20,
			ShowPoints:  true,
		},
	}
}

// applyDefaults fills zero values left by older or hand-edited config files.
func applyDefaults(cfg *Config) {
	if cfg.SearchTerm == "" {
		cfg.SearchTerm = DefaultSearchTerm
	}
	if cfg.Recent == nil {
		cfg.Recent = []string{}
	}
	if cfg.UISettings.HitsPerPage <= 0 {
		cfg.UISettings.HitsPerPage = 20
	}
}
