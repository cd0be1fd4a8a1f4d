package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds user preferences. Precedence: flags > environment (including .env) > config file.
type Config struct {
	// Theme selects the TUI palette (auto|light|dark).
	Theme string `json:"theme,omitempty"`
	// MarkdownStyle overrides the preview style (light|dark); empty follows Theme.
	MarkdownStyle string `json:"markdownStyle,omitempty"`
	// Name is used as the resume owner name for new sessions.
	Name string `json:"name,omitempty"`

	LogLevel  string `json:"logLevel,omitempty"`
	LogFile   string `json:"logFile,omitempty"`
	LogFormat string `json:"logFormat,omitempty"`
}

var envKeys = map[string]string{
	"theme":         "RESUME_TUI_THEME",
	"markdownStyle": "RESUME_TUI_MD_STYLE",
	"name":          "RESUME_NAME",
	"logLevel":      "RESUME_LOG_LEVEL",
	"logFile":       "RESUME_LOG_FILE",
	"logFormat":     "RESUME_LOG_FORMAT",
}

// Keys lists the settable configuration keys.
func Keys() []string {
	keys := make([]string, 0, len(envKeys))
	for k := range envKeys {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func Dir() (string, error) {
	// Test/advanced override (keeps unit tests from touching ~/.resume).
	if v := strings.TrimSpace(os.Getenv("RESUME_CONFIG_DIR")); v != "" {
		return v, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".resume"), nil
}

func Path() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// LoadFile reads the config file only. A missing file yields an empty config.
func LoadFile() (*Config, error) {
	path, err := Path()
	if err != nil {
		return nil, err
	}
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, err
	}
	var cfg Config
	if err := json.Unmarshal(b, &cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return &cfg, nil
}

// Load reads .env (when present), the config file, then applies environment overrides.
func Load() (*Config, error) {
	// .env is optional; existing environment variables win over it.
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	cfg, err := LoadFile()
	if err != nil {
		return nil, err
	}
	for _, key := range Keys() {
		env := envKeys[key]
		if v := strings.TrimSpace(os.Getenv(env)); v != "" {
			if err := cfg.Set(key, v); err != nil {
				return nil, fmt.Errorf("%s: %w", env, err)
			}
		}
	}
	if cfg.Theme == "" {
		cfg.Theme = "auto"
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
	if cfg.LogFormat == "" {
		cfg.LogFormat = "text"
	}
	return cfg, nil
}

// Set assigns a value by key name.
func (c *Config) Set(key, value string) error {
	value = strings.TrimSpace(value)
	switch key {
	case "theme":
		switch strings.ToLower(value) {
		case "auto", "light", "dark":
			c.Theme = strings.ToLower(value)
		default:
			return fmt.Errorf("invalid theme: %q (expected auto|light|dark)", value)
		}
	case "markdownStyle":
		switch strings.ToLower(value) {
		case "", "light", "dark":
			c.MarkdownStyle = strings.ToLower(value)
		default:
			return fmt.Errorf("invalid markdown style: %q (expected light|dark)", value)
		}
	case "name":
		c.Name = value
	case "logLevel":
		c.LogLevel = strings.ToLower(value)
	case "logFile":
		c.LogFile = value
	case "logFormat":
		switch strings.ToLower(value) {
		case "text", "json":
			c.LogFormat = strings.ToLower(value)
		default:
			return fmt.Errorf("invalid log format: %q (expected text|json)", value)
		}
	default:
		return fmt.Errorf("unknown config key: %q (expected one of %s)", key, strings.Join(Keys(), ", "))
	}
	return nil
}

func atomicWriteFile(dir, tmpPattern, path string, b []byte, perm os.FileMode) error {
	f, err := os.CreateTemp(dir, tmpPattern)
	if err != nil {
		return err
	}
	tmp := f.Name()
	defer func() { _ = os.Remove(tmp) }()
	if _, err := f.Write(b); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	_ = os.Chmod(tmp, perm)
	return os.Rename(tmp, path)
}

// Save writes the config file atomically.
func Save(cfg *Config) error {
	path, err := Path()
	if err != nil {
		return err
	}
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	b, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}
	return atomicWriteFile(dir, "config.json.*.tmp", path, b, 0o600)
}
