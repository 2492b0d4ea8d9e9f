package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"

	"github.com/Veraticus/kharcha/internal/common"
	"github.com/Veraticus/kharcha/internal/llm"
)

// SetDefaults registers default values for every configuration key.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("database.path", DefaultDatabasePath)
	v.SetDefault("llm.enabled", true)
	v.SetDefault("llm.provider", llm.ProviderGemini)
	v.SetDefault("llm.max_retries", 3)
	v.SetDefault("llm.retry_delay", "2s")
	v.SetDefault("llm.timeout", "30s")
	v.SetDefault("llm.cache_ttl", "1h")
	v.SetDefault("llm.rate_limit", 60)
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
}

// LoadLLMConfig loads the fallback configuration from Viper and environment
// variables. It follows this precedence:
// 1. Viper configuration (from config file or KHARCHA_ env vars)
// 2. Provider environment variables (GEMINI_API_KEY, OPENAI_API_KEY, OPENAI_BASE_URL)
// 3. Default values
//
// It returns common.ErrMissingConfig when no API key is available.
func LoadLLMConfig(v *viper.Viper) (llm.Config, error) {
	cfg := llm.Config{
		Provider:   strings.ToLower(v.GetString("llm.provider")),
		APIKey:     v.GetString("llm.api_key"),
		Model:      v.GetString("llm.model"),
		BaseURL:    v.GetString("llm.base_url"),
		MaxRetries: v.GetInt("llm.max_retries"),
		RetryDelay: v.GetDuration("llm.retry_delay"),
		CacheTTL:   v.GetDuration("llm.cache_ttl"),
		RateLimit:  v.GetInt("llm.rate_limit"),

		Temperature: v.GetFloat64("llm.temperature"),
		MaxTokens:   v.GetInt("llm.max_tokens"),
	}
	if cfg.Provider == "" {
		cfg.Provider = llm.ProviderGemini
	}

	switch cfg.Provider {
	case llm.ProviderGemini:
		if cfg.APIKey == "" {
			cfg.APIKey = os.Getenv("GEMINI_API_KEY")
		}
	case llm.ProviderOpenAI:
		if cfg.APIKey == "" {
			cfg.APIKey = os.Getenv("OPENAI_API_KEY")
		}
		if cfg.BaseURL == "" {
			cfg.BaseURL = os.Getenv("OPENAI_BASE_URL")
		}
	default:
		return cfg, fmt.Errorf("%w: unsupported llm.provider %q", common.ErrInvalidConfig, cfg.Provider)
	}

	if cfg.APIKey == "" {
		return cfg, fmt.Errorf("%w: no API key for provider %s", common.ErrMissingConfig, cfg.Provider)
	}
	return cfg, nil
}
