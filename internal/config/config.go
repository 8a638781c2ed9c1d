package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/pelletier/go-toml/v2"
)

type ServerConfig struct {
	Port string `toml:"port"`
}

type StoreConfig struct {
	Path string `toml:"path"`
}

// EnrichConfig points the backend at the query-understanding service.
type EnrichConfig struct {
	BaseURL        string `toml:"base_url"`
	TimeoutSeconds int    `toml:"timeout_seconds"`
	NoLLM          bool   `toml:"no_llm"`
	Top            int    `toml:"top"`
}

// FeedConfig describes where raw events come from and how often to refresh.
type FeedConfig struct {
	File           string `toml:"file"`
	URL            string `toml:"url"`
	RefreshSeconds int    `toml:"refresh_seconds"`
}

type LLMConfig struct {
	Provider string `toml:"provider"`
	Model    string `toml:"model"`
	APIKey   string `toml:"api_key"`
	BaseURL  string `toml:"base_url"`
}

type Config struct {
	Server ServerConfig `toml:"server"`
	Store  StoreConfig  `toml:"store"`
	Enrich EnrichConfig `toml:"enrich"`
	Feed   FeedConfig   `toml:"feed"`
	LLM    LLMConfig    `toml:"llm"`
}

func Default() *Config {
	return &Config{
		Server: ServerConfig{Port: "8080"},
		Store:  StoreConfig{Path: "gather.db"},
		Enrich: EnrichConfig{
			BaseURL:        "http://localhost:8090",
			TimeoutSeconds: 15,
			Top:            100,
		},
		Feed: FeedConfig{
			File:           "scraped/events.json",
			RefreshSeconds: 3600,
		},
		LLM: LLMConfig{
			Provider: "gemini",
			Model:    "gemma-3-27b-it",
		},
	}
}

// Load reads a TOML config file over the defaults. A missing file is not an
// error: env vars and defaults carry a bare deployment.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config file '%s': %w", path, err)
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse TOML: %w", err)
	}
	return cfg, nil
}

// ApplyEnv overrides file values with environment variables when present.
func (c *Config) ApplyEnv() {
	if v := os.Getenv("PORT"); v != "" {
		c.Server.Port = v
	}
	if v := os.Getenv("DB_PATH"); v != "" {
		c.Store.Path = v
	}
	if v := os.Getenv("ENRICH_URL"); v != "" {
		c.Enrich.BaseURL = v
	}
	if v := os.Getenv("ENRICH_TIMEOUT_SECONDS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.Enrich.TimeoutSeconds = n
		}
	}
	if v := os.Getenv("NO_LLM"); v != "" {
		c.Enrich.NoLLM = v == "true" || v == "1"
	}
	if v := os.Getenv("EVENTS_FILE"); v != "" {
		c.Feed.File = v
	}
	if v := os.Getenv("EVENTS_API_URL"); v != "" {
		c.Feed.URL = v
	}
	if v := os.Getenv("REFRESH_SECONDS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.Feed.RefreshSeconds = n
		}
	}
	if v := os.Getenv("LLM_PROVIDER"); v != "" {
		c.LLM.Provider = v
	}
	if v := os.Getenv("LLM_MODEL"); v != "" {
		c.LLM.Model = v
	}
	if v := os.Getenv("LLM_API_KEY"); v != "" {
		c.LLM.APIKey = v
	}
	if v := os.Getenv("GEMINI_API_KEY"); v != "" && c.LLM.APIKey == "" {
		c.LLM.APIKey = v
	}
	if v := os.Getenv("LLM_BASE_URL"); v != "" {
		c.LLM.BaseURL = v
	}
}
