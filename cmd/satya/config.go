// cmd/satya/config.go
package main

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v2"
)

// Config holds application configuration
type Config struct {
	ListenAddr      string `yaml:"listen_addr"`
	DatabasePath    string `yaml:"database_path"`
	LogPath         string `yaml:"log_path"`
	LogLevel        string `yaml:"log_level"`
	UserAgentString string `yaml:"user_agent_string"`

	FetchTimeoutSeconds   int     `yaml:"fetch_timeout_seconds"`
	AnalyzeTimeoutSeconds int     `yaml:"analyze_timeout_seconds"`
	OutboundRatePerSec    float64 `yaml:"outbound_rate_per_sec"`

	OpenAIAPIKey string `yaml:"openai_api_key"`
	OpenAIModel  string `yaml:"openai_model"`

	ClassifierURL    string `yaml:"classifier_url"`
	ClassifierAPIKey string `yaml:"classifier_api_key"`

	HistoryRetentionDays int `yaml:"history_retention_days"`
}

// LoadConfig reads the YAML config file (if present) and applies
// environment overrides and defaults
func LoadConfig(path string) (*Config, error) {
	cfg := &Config{}

	if data, err := os.ReadFile(path); err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, NewConfigError(ErrConfigLoad, fmt.Sprintf("invalid config file %s", path), err)
		}
	} else if !os.IsNotExist(err) {
		return nil, NewConfigError(ErrConfigLoad, fmt.Sprintf("failed to read config file %s", path), err)
	}

	// Environment overrides
	cfg.ListenAddr = GetEnvString("SATYA_LISTEN_ADDR", cfg.ListenAddr)
	cfg.DatabasePath = GetEnvString("SATYA_DATABASE_PATH", cfg.DatabasePath)
	cfg.LogPath = GetEnvString("SATYA_LOG_PATH", cfg.LogPath)
	cfg.LogLevel = GetEnvString("SATYA_LOG_LEVEL", cfg.LogLevel)
	cfg.UserAgentString = GetEnvString("SATYA_USER_AGENT", cfg.UserAgentString)
	cfg.FetchTimeoutSeconds = GetEnvInt("SATYA_FETCH_TIMEOUT_SECONDS", cfg.FetchTimeoutSeconds)
	cfg.AnalyzeTimeoutSeconds = GetEnvInt("SATYA_ANALYZE_TIMEOUT_SECONDS", cfg.AnalyzeTimeoutSeconds)
	cfg.OutboundRatePerSec = GetEnvFloat("SATYA_OUTBOUND_RATE_PER_SEC", cfg.OutboundRatePerSec)
	cfg.OpenAIAPIKey = GetEnvString("OPENAI_API_KEY", cfg.OpenAIAPIKey)
	cfg.OpenAIModel = GetEnvString("SATYA_OPENAI_MODEL", cfg.OpenAIModel)
	cfg.ClassifierURL = GetEnvString("SATYA_CLASSIFIER_URL", cfg.ClassifierURL)
	cfg.ClassifierAPIKey = GetEnvString("SATYA_CLASSIFIER_API_KEY", cfg.ClassifierAPIKey)
	cfg.HistoryRetentionDays = GetEnvInt("SATYA_HISTORY_RETENTION_DAYS", cfg.HistoryRetentionDays)

	cfg.applyDefaults()

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyDefaults() {
	if c.ListenAddr == "" {
		c.ListenAddr = ":5000"
	}
	if c.DatabasePath == "" {
		c.DatabasePath = "data/satya.db"
	}
	if c.LogPath == "" {
		c.LogPath = "logs/satya.log"
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
	if c.UserAgentString == "" {
		c.UserAgentString = "satya-bot/1.0 (+https://github.com/satyalabs/satya)"
	}
	if c.FetchTimeoutSeconds <= 0 {
		c.FetchTimeoutSeconds = 10
	}
	if c.AnalyzeTimeoutSeconds <= 0 {
		c.AnalyzeTimeoutSeconds = 30
	}
	if c.OutboundRatePerSec <= 0 {
		c.OutboundRatePerSec = 10
	}
	if c.OpenAIModel == "" {
		c.OpenAIModel = "gpt-3.5-turbo"
	}
	if c.HistoryRetentionDays <= 0 {
		c.HistoryRetentionDays = 90
	}
}

func (c *Config) validate() error {
	if c.FetchTimeoutSeconds > c.AnalyzeTimeoutSeconds {
		return NewConfigError(ErrConfigValidation,
			fmt.Sprintf("fetch timeout (%ds) exceeds analyze timeout (%ds)",
				c.FetchTimeoutSeconds, c.AnalyzeTimeoutSeconds), nil)
	}
	return nil
}

// FetchTimeout returns the per-provider fetch timeout
func (c *Config) FetchTimeout() time.Duration {
	return time.Duration(c.FetchTimeoutSeconds) * time.Second
}

// AnalyzeTimeout returns the whole-request analyze timeout
func (c *Config) AnalyzeTimeout() time.Duration {
	return time.Duration(c.AnalyzeTimeoutSeconds) * time.Second
}
