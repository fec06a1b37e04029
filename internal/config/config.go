package config

import "time"

// Config holds client configuration values.
type Config struct {
	// ServerURL is the websocket endpoint of the chat server.
	ServerURL string `mapstructure:"server_url" yaml:"server_url"`
	// APIBaseURL is the HTTP base used for the roster pull.
	APIBaseURL string `mapstructure:"api_base_url" yaml:"api_base_url"`
	// ReconnectDelay is how long to wait after logout before reconnecting.
	ReconnectDelay time.Duration `mapstructure:"reconnect_delay" yaml:"reconnect_delay"`
	// NotifyDuration is how long a transient notification stays visible.
	NotifyDuration time.Duration `mapstructure:"notify_duration" yaml:"notify_duration"`
	// ArchivePath is the sqlite file for the local message archive.
	// Empty disables archiving.
	ArchivePath string `mapstructure:"archive_path" yaml:"archive_path"`
	LogLevel    string `mapstructure:"log_level" yaml:"log_level"`
}

// Default returns configuration with reasonable starter defaults. The
// reconnect delay and notification duration mirror the reference client's
// fixed 1s and 3s timings.
func Default() Config {
	return Config{
		ServerURL:      "ws://localhost:5000/ws",
		APIBaseURL:     "http://localhost:5000",
		ReconnectDelay: time.Second,
		NotifyDuration: 3 * time.Second,
		ArchivePath:    "",
		LogLevel:       "info",
	}
}

// UpdateFrom overwrites non-zero values from other config into receiver.
func (c *Config) UpdateFrom(other Config) {
	if other.ServerURL != "" {
		c.ServerURL = other.ServerURL
	}
	if other.APIBaseURL != "" {
		c.APIBaseURL = other.APIBaseURL
	}
	if other.ReconnectDelay != 0 {
		c.ReconnectDelay = other.ReconnectDelay
	}
	if other.NotifyDuration != 0 {
		c.NotifyDuration = other.NotifyDuration
	}
	if other.ArchivePath != "" {
		c.ArchivePath = other.ArchivePath
	}
	if other.LogLevel != "" {
		c.LogLevel = other.LogLevel
	}
}
