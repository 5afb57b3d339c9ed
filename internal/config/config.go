// Package config loads the TOML configuration.
package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

type Config struct {
	PortalURL string `koanf:"portal_url"` // portal page opened on startup
	StreamURL string `koanf:"stream_url"` // default stream for the watch screen
	Icons     string `koanf:"icons"`      // "nerd", "unicode", or "none"

	Player   PlayerConfig   `koanf:"player"`
	Browser  BrowserConfig  `koanf:"browser"`
	Display  DisplayConfig  `koanf:"display"`
	Reminder ReminderConfig `koanf:"reminder"`
	Log      LogConfig      `koanf:"log"`
}

// PlayerConfig holds media player settings.
type PlayerConfig struct {
	MpvBinary string `koanf:"mpv_binary"` // defaults to "mpv" on PATH
}

// BrowserConfig holds embedded browser settings.
type BrowserConfig struct {
	ChromeBinary string `koanf:"chrome_binary"` // empty = chromedp default lookup
}

// DisplayConfig holds orientation lock settings.
type DisplayConfig struct {
	XrandrOutput string `koanf:"xrandr_output"` // X output to rotate; empty disables locking
}

// ReminderConfig holds "continue watching" reminder settings.
type ReminderConfig struct {
	DelaySeconds int `koanf:"delay_seconds"` // 1-10, default 5
}

// LogConfig holds file logging settings.
type LogConfig struct {
	Level    string `koanf:"level"` // logrus level name, default "info"
	JSON     bool   `koanf:"json"`
	Disabled bool   `koanf:"disabled"`
}

func Load() (*Config, error) {
	k := koanf.New(".")

	// Try config files in order of priority (last wins)
	for _, path := range getConfigPaths() {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
				return nil, err
			}
		}
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, err
	}

	cfg.PortalURL = strings.TrimSpace(cfg.PortalURL)
	cfg.StreamURL = strings.TrimSpace(cfg.StreamURL)

	return cfg, nil
}

func getConfigPaths() []string {
	paths := []string{}

	// 1. ~/.config/marquee/config.toml
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", "marquee", "config.toml"))
	}

	// 2. ./config.toml (pwd, highest priority)
	paths = append(paths, "config.toml")

	return paths
}

// ReminderDelay returns the reminder delay with defaults and bounds
// applied.
func (c *Config) ReminderDelay() time.Duration {
	secs := c.Reminder.DelaySeconds
	if secs < 1 || secs > 10 {
		secs = 5
	}
	return time.Duration(secs) * time.Second
}

// MpvBinary returns the configured mpv binary or the PATH default.
func (c *Config) MpvBinary() string {
	if c.Player.MpvBinary == "" {
		return "mpv"
	}
	return c.Player.MpvBinary
}

// HasDisplayOutput returns true when orientation locking is configured.
func (c *Config) HasDisplayOutput() bool {
	return c.Display.XrandrOutput != ""
}
