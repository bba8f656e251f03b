package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoad_NoPathReturnsDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Log.Path != "activity_log.csv" {
		t.Errorf("log path = %q", cfg.Log.Path)
	}
	if cfg.Monitor.PollInterval() != 5*time.Second {
		t.Errorf("poll interval = %v", cfg.Monitor.PollInterval())
	}
	if cfg.Monitor.IdleThreshold() != 60*time.Second {
		t.Errorf("idle threshold = %v", cfg.Monitor.IdleThreshold())
	}
	if cfg.Monitor.BrowserApp != "Google Chrome" {
		t.Errorf("browser app = %q", cfg.Monitor.BrowserApp)
	}
	if cfg.Server.Host != "127.0.0.1" || cfg.Server.Port != 5000 {
		t.Errorf("server = %s:%d", cfg.Server.Host, cfg.Server.Port)
	}
}

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Server.Port != 5000 {
		t.Fatalf("port = %d, want default 5000", cfg.Server.Port)
	}
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
log:
  path: /var/log/activity.csv
monitor:
  idle_threshold_seconds: 120
  browser_app: Safari
server:
  port: 8080
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Log.Path != "/var/log/activity.csv" {
		t.Errorf("log path = %q", cfg.Log.Path)
	}
	if cfg.Monitor.IdleThreshold() != 2*time.Minute {
		t.Errorf("idle threshold = %v", cfg.Monitor.IdleThreshold())
	}
	if cfg.Monitor.BrowserApp != "Safari" {
		t.Errorf("browser app = %q", cfg.Monitor.BrowserApp)
	}
	// Keys the file omits keep their defaults.
	if cfg.Monitor.PollInterval() != 5*time.Second {
		t.Errorf("poll interval = %v", cfg.Monitor.PollInterval())
	}
	if cfg.Server.Host != "127.0.0.1" || cfg.Server.Port != 8080 {
		t.Errorf("server = %s:%d", cfg.Server.Host, cfg.Server.Port)
	}
}

func TestLoad_MalformedFileFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("{not yaml: ["), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	if _, err := Load(path); err == nil {
		t.Fatal("expected parse error, got nil")
	}
}
