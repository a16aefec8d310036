package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/adrg/xdg"
	toml "github.com/pelletier/go-toml/v2"
)

// Config captures the settings Nexus reads at startup.
type Config struct {
	Workspace    string
	UserInitials string
	InsightDelay time.Duration
	LogFile      string
}

const (
	appDir              = "nexus"
	defaultWorkspace    = "Nexus BI"
	defaultUserInitials = "JD"
	defaultInsightDelay = 1500 * time.Millisecond
)

// DefaultPath returns $XDG_CONFIG_HOME/nexus/config.toml.
func DefaultPath() string {
	return filepath.Join(xdg.ConfigHome, appDir, "config.toml")
}

// DefaultLogFile returns $XDG_STATE_HOME/nexus/nexus.log.
func DefaultLogFile() string {
	return filepath.Join(xdg.StateHome, appDir, "nexus.log")
}

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		Workspace:    defaultWorkspace,
		UserInitials: defaultUserInitials,
		InsightDelay: defaultInsightDelay,
		LogFile:      DefaultLogFile(),
	}
}

// Load locates and parses the config file, falling back to defaults when missing.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Default()

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw struct {
		Workspace    string `toml:"workspace"`
		UserInitials string `toml:"user_initials"`
		InsightDelay string `toml:"insight_delay"`
		LogFile      string `toml:"log_file"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if v := strings.TrimSpace(raw.Workspace); v != "" {
		cfg.Workspace = v
	}
	if v := strings.TrimSpace(raw.UserInitials); v != "" {
		cfg.UserInitials = strings.ToUpper(v)
	}
	if v := strings.TrimSpace(raw.InsightDelay); v != "" {
		delay, err := time.ParseDuration(v)
		if err != nil {
			return Config{}, fmt.Errorf("parse config: insight_delay: %w", err)
		}
		if delay < 0 {
			return Config{}, fmt.Errorf("parse config: insight_delay %q is negative", v)
		}
		cfg.InsightDelay = delay
	}
	if v := strings.TrimSpace(raw.LogFile); v != "" {
		logFile, err := expandPath(v)
		if err != nil {
			return Config{}, fmt.Errorf("parse config: log_file: %w", err)
		}
		cfg.LogFile = logFile
	}

	return cfg, nil
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return DefaultPath(), nil
	}
	return expandPath(path)
}

// ExpandPath resolves a leading ~ and returns an absolute path.
func ExpandPath(path string) (string, error) {
	return expandPath(path)
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
