package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"time"
)

// Config represents the codereview configuration.
type Config struct {
	Provider           string        `json:"provider"`
	Model              string        `json:"model"`
	Format             string        `json:"format"`
	ToolTimeoutSeconds int           `json:"toolTimeoutSeconds"`
	MaxPromptChars     int           `json:"maxPromptChars"`
	MaxNewTokens       int           `json:"maxNewTokens"`
	Temperature        float64       `json:"temperature"`
	ListenAddr         string        `json:"listenAddr"`
	Privacy            PrivacyConfig `json:"privacy"`
}

// PrivacyConfig controls redaction of the snippet before it reaches the
// model. Off by default: the prompt embeds the code verbatim.
type PrivacyConfig struct {
	RedactSecrets bool `json:"redactSecrets"`
}

// ToolTimeout returns the analyzer subprocess timeout as a duration.
func (c Config) ToolTimeout() time.Duration {
	return time.Duration(c.ToolTimeoutSeconds) * time.Second
}

// Default returns a Config with all defaults applied.
func Default() Config {
	return Config{
		Provider:           "hf",
		Model:              "Salesforce/codet5-base",
		Format:             "text",
		ToolTimeoutSeconds: 30,
		MaxPromptChars:     1000,
		MaxNewTokens:       512,
		Temperature:        0.7,
		ListenAddr:         "127.0.0.1:8490",
	}
}

// ConfigDir returns the platform-appropriate config directory for codereview.
func ConfigDir() (string, error) {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "codereview"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	switch runtime.GOOS {
	case "darwin":
		return filepath.Join(home, "Library", "Application Support", "codereview"), nil
	case "windows":
		if appData := os.Getenv("APPDATA"); appData != "" {
			return filepath.Join(appData, "codereview"), nil
		}
		return filepath.Join(home, "AppData", "Roaming", "codereview"), nil
	default:
		return filepath.Join(home, ".config", "codereview"), nil
	}
}

// ConfigPath returns the full path to the config file.
func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// LoadFile loads config from the config file. Returns zero Config and nil error if file doesn't exist.
func LoadFile() (Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return Config{}, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Config{}, nil
		}
		return Config{}, fmt.Errorf("reading config file: %w", err)
	}
	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config file: %w", err)
	}
	return cfg, nil
}

// Save writes the config to the config file.
func Save(cfg Config) error {
	path, err := ConfigPath()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// Load builds the effective config by merging: defaults <- file <- env <- overrides.
// The overrides map comes from CLI flags (only non-zero values should be set).
func Load(overrides map[string]string) (Config, error) {
	cfg := Default()

	fileCfg, err := LoadFile()
	if err != nil {
		return Config{}, err
	}
	mergeFile(&cfg, fileCfg)
	mergeEnv(&cfg)
	mergeOverrides(&cfg, overrides)

	return cfg, nil
}

func mergeFile(dst *Config, src Config) {
	if src.Provider != "" {
		dst.Provider = src.Provider
	}
	if src.Model != "" {
		dst.Model = src.Model
	}
	if src.Format != "" {
		dst.Format = src.Format
	}
	if src.ToolTimeoutSeconds > 0 {
		dst.ToolTimeoutSeconds = src.ToolTimeoutSeconds
	}
	if src.MaxPromptChars > 0 {
		dst.MaxPromptChars = src.MaxPromptChars
	}
	if src.MaxNewTokens > 0 {
		dst.MaxNewTokens = src.MaxNewTokens
	}
	if src.Temperature > 0 {
		dst.Temperature = src.Temperature
	}
	if src.ListenAddr != "" {
		dst.ListenAddr = src.ListenAddr
	}
	// JSON cannot distinguish unset from false, so an explicit true wins.
	dst.Privacy.RedactSecrets = src.Privacy.RedactSecrets || dst.Privacy.RedactSecrets
}

func mergeEnv(cfg *Config) {
	if v := os.Getenv("CODEREVIEW_PROVIDER"); v != "" {
		cfg.Provider = v
	}
	if v := os.Getenv("CODEREVIEW_MODEL"); v != "" {
		cfg.Model = v
	}
	if v := os.Getenv("CODEREVIEW_FORMAT"); v != "" {
		cfg.Format = v
	}
	if v := os.Getenv("CODEREVIEW_TOOL_TIMEOUT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.ToolTimeoutSeconds = n
		}
	}
	if v := os.Getenv("CODEREVIEW_LISTEN_ADDR"); v != "" {
		cfg.ListenAddr = v
	}
}

func mergeOverrides(cfg *Config, overrides map[string]string) {
	if overrides == nil {
		return
	}
	if v, ok := overrides["provider"]; ok && v != "" {
		cfg.Provider = v
	}
	if v, ok := overrides["model"]; ok && v != "" {
		cfg.Model = v
	}
	if v, ok := overrides["format"]; ok && v != "" {
		cfg.Format = v
	}
	if v, ok := overrides["toolTimeoutSeconds"]; ok && v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.ToolTimeoutSeconds = n
		}
	}
	if v, ok := overrides["listenAddr"]; ok && v != "" {
		cfg.ListenAddr = v
	}
	if v, ok := overrides["redactSecrets"]; ok && v == "true" {
		cfg.Privacy.RedactSecrets = true
	}
}

// SetField sets a single config field by key name. Returns error if key is unknown.
func SetField(cfg *Config, key, value string) error {
	switch key {
	case "provider":
		cfg.Provider = value
	case "model":
		cfg.Model = value
	case "format":
		cfg.Format = value
	case "toolTimeoutSeconds":
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("toolTimeoutSeconds must be an integer: %w", err)
		}
		cfg.ToolTimeoutSeconds = n
	case "maxPromptChars":
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("maxPromptChars must be an integer: %w", err)
		}
		cfg.MaxPromptChars = n
	case "maxNewTokens":
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("maxNewTokens must be an integer: %w", err)
		}
		cfg.MaxNewTokens = n
	case "temperature":
		f, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return fmt.Errorf("temperature must be a number: %w", err)
		}
		cfg.Temperature = f
	case "listenAddr":
		cfg.ListenAddr = value
	case "redactSecrets":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("redactSecrets must be a boolean: %w", err)
		}
		cfg.Privacy.RedactSecrets = b
	default:
		return fmt.Errorf("unknown config key: %s", key)
	}
	return nil
}
