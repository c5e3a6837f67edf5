package store

import (
	"fmt"
)

// Config defines where generated schedules are kept.
type Config struct {
	// Backend selects the store type: "jsonl", "sqlite" or "none".
	Backend string `json:"backend"`
	// Path is the file location of the store.
	Path string `json:"path"`
	// MaxSizeMB triggers rotation of the jsonl file when it exceeds this size in megabytes.
	MaxSizeMB int `json:"max_size_mb"`
	// MaxBackups limits the number of rotated files to keep.
	MaxBackups int `json:"max_backups"`
	// MaxAgeDays removes rotated files older than this number of days.
	MaxAgeDays int `json:"max_age_days"`
}

// SetDefaults applies sane defaults.
func (c *Config) SetDefaults() {
	if c.Backend == "" {
		c.Backend = "jsonl"
	}
	if c.Path == "" {
		switch c.Backend {
		case "sqlite":
			c.Path = "schedules.db"
		default:
			c.Path = "schedules.jsonl"
		}
	}
}

// Validate checks mandatory fields.
func (c Config) Validate() error {
	if c.Backend != "jsonl" && c.Backend != "sqlite" && c.Backend != "none" {
		return fmt.Errorf("unknown backend %s", c.Backend)
	}
	if c.Path == "" && c.Backend != "none" {
		return fmt.Errorf("path is required")
	}
	return nil
}
