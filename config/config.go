package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

// Config holds the agent's settings. The compiled-in defaults match the
// stock behavior (top-left corner, Win+Tab, Ctrl+Alt+C to exit); an
// optional config.toml overrides them.
type Config struct {
	Corner  CornerConfig  `toml:"corner"`
	Trigger TriggerConfig `toml:"trigger"`
	Exit    ExitConfig    `toml:"exit"`
	// Delay is the poll interval in milliseconds.
	Delay int `toml:"delay"`
}

// CornerConfig anchors the hot corner at (x, y) with a square threshold
// of size pixels.
type CornerConfig struct {
	X    int32 `toml:"x"`
	Y    int32 `toml:"y"`
	Size int32 `toml:"size"`
}

// TriggerConfig names the keys of the chord sent when the corner fires,
// in press order.
type TriggerConfig struct {
	Keys []string `toml:"keys"`
}

// ExitConfig holds the combo string of the global exit hotkey.
type ExitConfig struct {
	Combo string `toml:"combo"`
}

func defaultConfig() *Config {
	return &Config{
		Corner:  CornerConfig{X: 0, Y: 0, Size: 20},
		Trigger: TriggerConfig{Keys: []string{"win", "tab"}},
		Exit:    ExitConfig{Combo: "ctrl+alt+c"},
		Delay:   100,
	}
}

// ConfigDir returns the per-user directory holding config.toml and the
// activation database, creating it if needed.
func ConfigDir() (string, error) {
	appData := os.Getenv("APPDATA")
	if appData == "" {
		appData = filepath.Join(os.Getenv("USERPROFILE"), "AppData", "Roaming")
	}

	dir := filepath.Join(appData, "hotcorner")
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create config directory: %w", err)
	}

	return dir, nil
}

// Load returns the defaults overlaid with config.toml when one exists.
// The file is never created or written; a missing file just means stock
// settings.
func Load() (*Config, error) {
	dir, err := ConfigDir()
	if err != nil {
		return nil, err
	}
	return loadFile(filepath.Join(dir, "config.toml"))
}

func loadFile(path string) (*Config, error) {
	cfg := defaultConfig()

	if _, err := os.Stat(path); err == nil {
		if _, err := toml.DecodeFile(path, cfg); err != nil {
			return nil, fmt.Errorf("failed to decode config: %w", err)
		}
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) validate() error {
	if c.Corner.Size <= 0 {
		return fmt.Errorf("corner size must be positive, got %d", c.Corner.Size)
	}
	if c.Delay <= 0 {
		return fmt.Errorf("delay must be positive, got %d", c.Delay)
	}
	if len(c.Trigger.Keys) == 0 {
		return fmt.Errorf("trigger key sequence is empty")
	}
	if _, err := ParseHotkey(c.Exit.Combo); err != nil {
		return err
	}
	return nil
}

// PollInterval returns the tick period of the control loop.
func (c *Config) PollInterval() time.Duration {
	return time.Duration(c.Delay) * time.Millisecond
}

// KeyCombo represents a parsed keyboard combination
type KeyCombo struct {
	Ctrl  bool
	Shift bool
	Alt   bool
	Win   bool
	Key   string
}

// ParseHotkey parses a combo string like "ctrl+alt+c". At least one
// modifier and a base key are required; OS-level hotkey registration
// cannot express a modifier-only combination.
func ParseHotkey(combo string) (KeyCombo, error) {
	var kc KeyCombo
	parts := strings.Split(strings.ToLower(combo), "+")

	for i, part := range parts {
		part = strings.TrimSpace(part)

		isModifier := true
		switch part {
		case "ctrl", "control":
			kc.Ctrl = true
		case "shift":
			kc.Shift = true
		case "alt":
			kc.Alt = true
		case "win", "windows":
			kc.Win = true
		default:
			isModifier = false
		}

		// If it's not a modifier and it's the last part, it's the key
		if !isModifier {
			if i != len(parts)-1 {
				return kc, fmt.Errorf("unknown modifier: %s", part)
			}
			kc.Key = part
		}
	}

	if !kc.Ctrl && !kc.Shift && !kc.Alt && !kc.Win {
		return kc, fmt.Errorf("no modifiers specified in combo %q", combo)
	}
	if kc.Key == "" {
		return kc, fmt.Errorf("no base key specified in combo %q", combo)
	}

	return kc, nil
}
