package config

import (
	"encoding/json"
	"fmt"
)

// Config represents the main Engram configuration
type Config struct {
	// Storage
	Storage StorageConfig `json:"storage" mapstructure:"storage"`

	// Memory collection
	Memory MemoryConfig `json:"memory" mapstructure:"memory"`

	// Context identity stamped onto saved records
	Context ContextConfig `json:"context" mapstructure:"context"`

	// Janitor
	Janitor JanitorConfig `json:"janitor" mapstructure:"janitor"`

	// Watcher
	Watcher WatcherConfig `json:"watcher" mapstructure:"watcher"`

	// Logging
	Logging LoggingConfig `json:"logging" mapstructure:"logging"`

	// Data directory
	DataDir string `json:"data_dir" mapstructure:"data_dir"`
}

// StorageConfig selects and configures the blob backend
type StorageConfig struct {
	Backend string `json:"backend" mapstructure:"backend"` // file, sqlite
	Path    string `json:"path" mapstructure:"path"`
}

// MemoryConfig holds collection limits and keys
type MemoryConfig struct {
	BlobKey    string `json:"blob_key" mapstructure:"blob_key"`
	MaxRecords int    `json:"max_records" mapstructure:"max_records"`
	QueryLimit int    `json:"query_limit" mapstructure:"query_limit"`
}

// ContextConfig holds the source identity for new records
type ContextConfig struct {
	Source string `json:"source" mapstructure:"source"`
	URL    string `json:"url" mapstructure:"url"`
}

// JanitorConfig holds the maintenance schedule
type JanitorConfig struct {
	Enabled  bool   `json:"enabled" mapstructure:"enabled"`
	Schedule string `json:"schedule" mapstructure:"schedule"` // five-field cron
}

// WatcherConfig controls reloading when the blob changes on disk
type WatcherConfig struct {
	Enabled bool `json:"enabled" mapstructure:"enabled"`
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level     string `json:"level" mapstructure:"level"`
	File      string `json:"file" mapstructure:"file"`
	Redaction bool   `json:"redaction" mapstructure:"redaction"`
}

// DefaultConfig returns a config with default values
func DefaultConfig() *Config {
	return &Config{
		Storage: StorageConfig{
			Backend: "file",
		},
		Memory: MemoryConfig{
			BlobKey:    "engram_data",
			MaxRecords: 1000,
			QueryLimit: 5,
		},
		Context: ContextConfig{
			Source: "cli",
			URL:    "engram://local",
		},
		Janitor: JanitorConfig{
			Enabled:  true,
			Schedule: "0 3 * * *",
		},
		Watcher: WatcherConfig{
			Enabled: true,
		},
		Logging: LoggingConfig{
			Level:     "info",
			Redaction: true,
		},
		DataDir: "",
	}
}

// String returns a JSON representation of the config
func (c *Config) String() string {
	data, _ := json.MarshalIndent(c, "", "  ")
	return string(data)
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	v := NewValidator()

	if err := v.ValidateBackend(c.Storage.Backend); err != nil {
		return err
	}
	if c.Memory.MaxRecords <= 0 {
		return fmt.Errorf("memory max_records must be positive, got %d", c.Memory.MaxRecords)
	}
	if c.Memory.QueryLimit <= 0 {
		return fmt.Errorf("memory query_limit must be positive, got %d", c.Memory.QueryLimit)
	}
	if c.Memory.BlobKey == "" {
		return fmt.Errorf("memory blob_key is required")
	}
	if c.Context.Source == "" {
		return fmt.Errorf("context source is required")
	}
	if c.Janitor.Enabled {
		if err := v.ValidateSchedule(c.Janitor.Schedule); err != nil {
			return err
		}
	}
	if err := v.ValidateLogLevel(c.Logging.Level); err != nil {
		return err
	}
	return nil
}
