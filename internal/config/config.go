// Package config loads environment configuration for padlink.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

const (
	defaultListenAddr     = "127.0.0.1:8790"
	defaultDataDir        = "./data"
	defaultBindingsFile   = "bindings.yaml"
	defaultTargetProcess  = "WoW-64"
	defaultPollIntervalMs = 1000
	defaultUsePostMessage = false
	defaultPasswordMode   = true
)

// Config holds runtime configuration values.
type Config struct {
	ListenAddr     string
	UIPassword     string
	PasswordMode   bool
	DataDir        string
	BindingsPath   string
	TargetProcess  string
	PollIntervalMs int
	UsePostMessage bool
}

// PollInterval returns the locator scan interval.
func (c Config) PollInterval() time.Duration {
	return time.Duration(c.PollIntervalMs) * time.Millisecond
}

// Load reads configuration from ./data/.env and environment variables.
func Load() (Config, error) {
	if err := loadEnvFile(filepath.Join(defaultDataDir, ".env")); err != nil {
		return Config{}, err
	}
	return fromEnv()
}

// fromEnv builds a Config from the process environment.
func fromEnv() (Config, error) {
	cfg := Config{
		ListenAddr:     defaultListenAddr,
		DataDir:        defaultDataDir,
		TargetProcess:  defaultTargetProcess,
		PollIntervalMs: defaultPollIntervalMs,
		UsePostMessage: defaultUsePostMessage,
		PasswordMode:   defaultPasswordMode,
	}

	cfg.ListenAddr = envString("LISTEN_ADDR", cfg.ListenAddr)
	cfg.DataDir = envString("DATA_DIR", cfg.DataDir)
	cfg.BindingsPath = envString("BINDINGS_PATH", filepath.Join(cfg.DataDir, defaultBindingsFile))
	cfg.TargetProcess = envString("TARGET_PROCESS", cfg.TargetProcess)
	cfg.UsePostMessage = envBool("USE_POST_MESSAGE", cfg.UsePostMessage)
	cfg.PasswordMode = envBool("PASSWORD_MODE", cfg.PasswordMode)
	cfg.UIPassword = strings.TrimSpace(os.Getenv("UI_PASSWORD"))

	interval, err := envInt("POLL_INTERVAL_MS", cfg.PollIntervalMs)
	if err != nil {
		return Config{}, err
	}
	if interval <= 0 {
		return Config{}, fmt.Errorf("POLL_INTERVAL_MS must be > 0")
	}
	cfg.PollIntervalMs = interval

	if cfg.PasswordMode && cfg.UIPassword == "" {
		return Config{}, errors.New("UI_PASSWORD is required")
	}

	return cfg, nil
}

// envString returns an env override when present, otherwise a default.
func envString(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

// envInt returns an int env override when present, otherwise a default.
func envInt(key string, def int) (int, error) {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer: %w", key, err)
	}
	return value, nil
}

// envBool returns a bool env override when present, otherwise a default.
func envBool(key string, def bool) bool {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	switch strings.ToLower(raw) {
	case "1", "true", "yes", "y", "on":
		return true
	case "0", "false", "no", "n", "off":
		return false
	default:
		return def
	}
}

// loadEnvFile loads KEY=VALUE pairs from a .env file without overriding the environment.
func loadEnvFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return err
	}

	for _, line := range strings.Split(string(data), "\n") {
		key, value, ok := parseEnvLine(line)
		if !ok {
			continue
		}
		if _, exists := os.LookupEnv(key); !exists {
			if err := os.Setenv(key, value); err != nil {
				return err
			}
		}
	}

	return nil
}

// parseEnvLine parses a single .env line into key/value.
func parseEnvLine(line string) (string, string, bool) {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return "", "", false
	}
	line = strings.TrimSpace(strings.TrimPrefix(line, "export "))
	key, value, found := strings.Cut(line, "=")
	if !found {
		return "", "", false
	}
	key = strings.TrimSpace(key)
	if key == "" {
		return "", "", false
	}
	return key, strings.Trim(strings.TrimSpace(value), `"'`), true
}
