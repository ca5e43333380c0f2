// file: internals/llm/config.go
package llm

import (
	"time"

	"jinaq_backend/internals/configs"
)

// Config konfigurasi provider LLM.
type Config struct {
	APIKey    string
	Model     string // default: gpt-4o-mini
	BaseURL   string // opsional, untuk API kompatibel
	MaxTokens int
	Timeout   time.Duration
}

// ConfigFromEnv baca konfigurasi dari configs (hasil LoadEnv).
func ConfigFromEnv() Config {
	return Config{
		APIKey:    configs.OpenAIAPIKey,
		Model:     configs.OpenAIModel,
		BaseURL:   configs.OpenAIBaseURL,
		MaxTokens: configs.LLMMaxTokens,
		Timeout:   time.Duration(configs.LLMTimeoutSec) * time.Second,
	}
}

// NewProvider bangun provider OpenAI + decorator retry/timeout.
func NewProvider(cfg Config) (Provider, error) {
	base, err := NewOpenAIProvider(cfg)
	if err != nil {
		return nil, err
	}
	return WithRetry(base, cfg.Timeout, 2*time.Second), nil
}
