package app

import (
	"fmt"
	"os"
	"time"

	"github.com/corey/kwscan/internal/adapters/discover"
	"github.com/corey/kwscan/internal/adapters/logger"
	"github.com/corey/kwscan/internal/domain/chunk"
	"gopkg.in/yaml.v3"
)

// DefaultKeywords are searched when neither the config file nor flags name any.
var DefaultKeywords = []string{"book", "summer", "life", "large", "level", "fact"}

// Config represents kwscan configuration options.
type Config struct {
	// Root is the corpus directory
	Root string `yaml:"root"`

	// Extension filters corpus files by filename suffix
	Extension string `yaml:"extension"`

	// Recursive descends into subdirectories of Root
	Recursive bool `yaml:"recursive"`

	// ExcludeDirs are directory names skipped in a recursive walk
	ExcludeDirs []string `yaml:"exclude_dirs"`

	// Keywords are the patterns searched for
	Keywords []string `yaml:"keywords"`

	// Workers is the number of parallel workers (0 = number of CPUs)
	Workers int `yaml:"workers"`

	// BufferSize is the chunk read size in bytes
	BufferSize int `yaml:"buffer_size"`

	// LogLevel sets the logging verbosity (debug, info, warn, error)
	LogLevel string `yaml:"log_level"`

	// DBPath overrides the run database location
	DBPath string `yaml:"db_path"`

	// Save persists every run to the run database
	Save bool `yaml:"save"`

	// WatchDebounce is how long watch mode waits after the last change before rerunning
	WatchDebounce time.Duration `yaml:"-"`
}

// DefaultConfig returns a Config with sensible default values
func DefaultConfig() *Config {
	return &Config{
		Root:          ".",
		Extension:     discover.DefaultExtension,
		Keywords:      append([]string(nil), DefaultKeywords...),
		Workers:       0,
		BufferSize:    chunk.DefaultBufferSize,
		LogLevel:      "info",
		WatchDebounce: 250 * time.Millisecond,
	}
}

// LoadConfig loads configuration from the specified file path.
// If the file doesn't exist, returns default configuration without error.
// If the file exists but is malformed, returns an error.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Durations are written as strings ("250ms") in the file.
	type yamlConfig struct {
		Config        `yaml:",inline"`
		WatchDebounce string `yaml:"watch_debounce"`
	}

	raw := yamlConfig{Config: *cfg}
	raw.Keywords = nil
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	merged := raw.Config
	if merged.Keywords == nil {
		merged.Keywords = cfg.Keywords
	}
	if raw.WatchDebounce != "" {
		d, err := time.ParseDuration(raw.WatchDebounce)
		if err != nil {
			return nil, fmt.Errorf("invalid watch_debounce format %q: %w", raw.WatchDebounce, err)
		}
		merged.WatchDebounce = d
	}
	return &merged, nil
}

// Overrides carries CLI flag values. Nil fields were not set on the command line.
type Overrides struct {
	Root       *string
	Extension  *string
	Recursive  *bool
	Keywords   []string
	Workers    *int
	BufferSize *int
	LogLevel   *string
	DBPath     *string
	Save       *bool
}

// MergeWithFlags applies explicitly set CLI flags over the configuration.
func (c *Config) MergeWithFlags(o Overrides) {
	if o.Root != nil {
		c.Root = *o.Root
	}
	if o.Extension != nil {
		c.Extension = *o.Extension
	}
	if o.Recursive != nil {
		c.Recursive = *o.Recursive
	}
	if o.Keywords != nil {
		c.Keywords = o.Keywords
	}
	if o.Workers != nil {
		c.Workers = *o.Workers
	}
	if o.BufferSize != nil {
		c.BufferSize = *o.BufferSize
	}
	if o.LogLevel != nil {
		c.LogLevel = *o.LogLevel
	}
	if o.DBPath != nil {
		c.DBPath = *o.DBPath
	}
	if o.Save != nil {
		c.Save = *o.Save
	}
}

// Validate validates the configuration values
func (c *Config) Validate() error {
	if c.Workers < 0 {
		return fmt.Errorf("workers must be >= 0, got %d", c.Workers)
	}
	if c.BufferSize <= 0 {
		return fmt.Errorf("buffer_size must be > 0, got %d", c.BufferSize)
	}
	if !logger.IsValidLevel(c.LogLevel) {
		return fmt.Errorf("invalid log_level %q, must be one of: debug, info, warn, error", c.LogLevel)
	}
	if len(c.Keywords) == 0 {
		return fmt.Errorf("at least one keyword is required")
	}
	if c.WatchDebounce < 0 {
		return fmt.Errorf("watch_debounce must be >= 0, got %v", c.WatchDebounce)
	}
	return nil
}
