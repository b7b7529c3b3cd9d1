package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config defines client configuration.
type Config struct {
	API    APIConfig    `yaml:"api"`
	GitHub GitHubConfig `yaml:"github"`
	DB     DBConfig     `yaml:"db"`
	Log    LogConfig    `yaml:"log"`
}

type APIConfig struct {
	BaseURL string `yaml:"base_url"`
}

type GitHubConfig struct {
	Org      string        `yaml:"org"`
	CacheTTL time.Duration `yaml:"cache_ttl"`
	// Exclude lists repository names dropped from the public catalog.
	Exclude []string `yaml:"exclude"`
	// OverridesPath points at the authored projects.json override map.
	OverridesPath string `yaml:"overrides_path"`
}

type DBConfig struct {
	Path string `yaml:"path"`
}

type LogConfig struct {
	Level string `yaml:"level"`
}

// Load reads configuration from an optional YAML file and environment variables.
func Load() (Config, error) {
	cfg := Config{
		API: APIConfig{
			BaseURL: "http://localhost:8080",
		},
		GitHub: GitHubConfig{
			Org:      "subculture-collective",
			CacheTTL: time.Hour,
			Exclude:  []string{".github"},
		},
		DB: DBConfig{
			Path: "subcvlt.db",
		},
		Log: LogConfig{
			Level: "info",
		},
	}

	if path := os.Getenv("SUBCVLT_CONFIG_PATH"); path != "" {
		if err := loadFromFile(path, &cfg); err != nil {
			return Config{}, err
		}
	}

	if url := os.Getenv("SUBCVLT_API_URL"); url != "" {
		cfg.API.BaseURL = url
	}
	if org := os.Getenv("SUBCVLT_GITHUB_ORG"); org != "" {
		cfg.GitHub.Org = org
	}
	if ttlStr := os.Getenv("SUBCVLT_CACHE_TTL"); ttlStr != "" {
		ttl, err := time.ParseDuration(ttlStr)
		if err != nil {
			return Config{}, fmt.Errorf("invalid SUBCVLT_CACHE_TTL: %w", err)
		}
		cfg.GitHub.CacheTTL = ttl
	}
	if overrides := os.Getenv("SUBCVLT_OVERRIDES_PATH"); overrides != "" {
		cfg.GitHub.OverridesPath = overrides
	}
	if dbPath := os.Getenv("SUBCVLT_DB_PATH"); dbPath != "" {
		cfg.DB.Path = dbPath
	}
	if level := os.Getenv("SUBCVLT_LOG_LEVEL"); level != "" {
		cfg.Log.Level = level
	}

	return cfg, nil
}

func loadFromFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}
	return nil
}
