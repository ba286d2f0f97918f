package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

type Config struct {
	// CacheRoot overrides where the Hugging Face hub cache lives.
	CacheRoot   string      `yaml:"cache_root"`
	HuggingFace HuggingFace `yaml:"huggingface"`
}

type HuggingFace struct {
	Token string `yaml:"token"`
}

const (
	configDir  = ".mlxhub"
	configFile = "config.yaml"
)

func GetHomeDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return home
}

func ConfigPath() string {
	return filepath.Join(GetHomeDir(), configDir, configFile)
}

// CacheRoot resolves the hub cache directory. Precedence follows the
// huggingface_hub conventions: explicit config, HF_HUB_CACHE, HF_HOME, then
// ~/.cache/huggingface/hub.
func CacheRoot(cfg *Config) string {
	if cfg != nil && cfg.CacheRoot != "" {
		return cfg.CacheRoot
	}
	if v := os.Getenv("HF_HUB_CACHE"); v != "" {
		return v
	}
	if v := os.Getenv("HF_HOME"); v != "" {
		return filepath.Join(v, "hub")
	}
	return filepath.Join(GetHomeDir(), ".cache", "huggingface", "hub")
}

func DefaultConfig() *Config {
	return &Config{}
}

func Load() (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(ConfigPath())
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return cfg, nil
}

func Save(cfg *Config) error {
	path := ConfigPath()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

func EnsureDirectories() error {
	if err := os.MkdirAll(filepath.Dir(ConfigPath()), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	return nil
}
