// Package config loads tracker settings from an optional YAML file.
// Priority: defaults < file < command-line flags.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Log     LogConfig     `yaml:"log"`
	Monitor MonitorConfig `yaml:"monitor"`
	Server  ServerConfig  `yaml:"server"`
}

type LogConfig struct {
	// Path of the append-only CSV event log.
	Path string `yaml:"path"`
}

type MonitorConfig struct {
	PollIntervalSeconds  int    `yaml:"poll_interval_seconds"`
	IdleThresholdSeconds int    `yaml:"idle_threshold_seconds"`
	BrowserApp           string `yaml:"browser_app"`
}

type ServerConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

func Default() *Config {
	return &Config{
		Log: LogConfig{
			Path: "activity_log.csv",
		},
		Monitor: MonitorConfig{
			PollIntervalSeconds:  5,
			IdleThresholdSeconds: 60,
			BrowserApp:           "Google Chrome",
		},
		Server: ServerConfig{
			Host: "127.0.0.1",
			Port: 5000,
		},
	}
}

// Load reads path over the defaults. A missing file is not an error;
// a malformed one is.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}

func (c *MonitorConfig) PollInterval() time.Duration {
	return time.Duration(c.PollIntervalSeconds) * time.Second
}

func (c *MonitorConfig) IdleThreshold() time.Duration {
	return time.Duration(c.IdleThresholdSeconds) * time.Second
}
