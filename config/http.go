package config

import "time"

// HTTPConfig holds settings for the schedule API server.
type HTTPConfig struct {
	Address                string `json:"address"`
	ShutdownTimeoutSeconds int    `json:"shutdown_timeout_seconds"`
}

func (c HTTPConfig) Addr() string {
	if c.Address == "" {
		return ":8080"
	}
	return c.Address
}

func (c HTTPConfig) ShutdownTimeout() time.Duration {
	if c.ShutdownTimeoutSeconds <= 0 {
		return 5 * time.Second
	}
	return time.Duration(c.ShutdownTimeoutSeconds) * time.Second
}
