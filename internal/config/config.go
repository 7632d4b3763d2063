// Package config loads application settings from defaults, an optional
// .env file, and SOUSCHEF_* environment variables.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config is the full application configuration.
type Config struct {
	LLM      LLMConfig    `mapstructure:"llm"`
	Scrape   ScrapeConfig `mapstructure:"scrape"`
	LogLevel string       `mapstructure:"log_level"`
	LogFile  string       `mapstructure:"log_file"`
}

// LLMConfig configures the chat-completions client.
type LLMConfig struct {
	BaseURL     string        `mapstructure:"base_url"`
	APIKey      string        `mapstructure:"api_key"`
	Model       string        `mapstructure:"model"`
	MaxTokens   int           `mapstructure:"max_tokens"`
	Temperature float64       `mapstructure:"temperature"`
	Timeout     time.Duration `mapstructure:"timeout"`
}

// ScrapeConfig configures the page fetcher.
type ScrapeConfig struct {
	UserAgent string        `mapstructure:"user_agent"`
	Timeout   time.Duration `mapstructure:"timeout"`
}

// Load reads configuration. A missing .env file is fine; environment
// variables always win.
func Load() (*Config, error) {
	// Best effort: the .env file is a development convenience.
	_ = godotenv.Load()

	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix("SOUSCHEF")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.BindEnv("llm.base_url", "SOUSCHEF_LLM_BASE_URL")
	v.BindEnv("llm.api_key", "SOUSCHEF_LLM_API_KEY", "OPENAI_API_KEY")
	v.BindEnv("llm.model", "SOUSCHEF_LLM_MODEL")
	v.BindEnv("llm.max_tokens", "SOUSCHEF_LLM_MAX_TOKENS")
	v.BindEnv("log_level", "SOUSCHEF_LOG_LEVEL")
	v.BindEnv("log_file", "SOUSCHEF_LOG_FILE")

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config: unmarshal: %w", err)
	}
	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("llm.base_url", "https://api.openai.com/v1")
	v.SetDefault("llm.model", "gpt-4o-mini")
	v.SetDefault("llm.max_tokens", 2000)
	v.SetDefault("llm.temperature", 0.2)
	v.SetDefault("llm.timeout", "60s")

	v.SetDefault("scrape.user_agent", "")
	v.SetDefault("scrape.timeout", "20s")

	v.SetDefault("log_level", "info")
	v.SetDefault("log_file", ".souschef/souschef.log")
}

func validate(cfg *Config) error {
	if cfg.LLM.MaxTokens <= 0 {
		return fmt.Errorf("llm.max_tokens must be positive")
	}
	if cfg.LLM.Timeout <= 0 {
		return fmt.Errorf("llm.timeout must be positive")
	}
	if cfg.Scrape.Timeout <= 0 {
		return fmt.Errorf("scrape.timeout must be positive")
	}
	return nil
}
