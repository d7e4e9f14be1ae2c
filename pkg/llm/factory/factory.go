package factory

import (
	"fmt"
	"time"

	"structai-be/internal/config"
	"structai-be/pkg/llm"
	"structai-be/pkg/llm/gemini"
	"structai-be/pkg/llm/ollama"
)

// NewLLMProvider builds the configured backend wrapped with the bounded
// retry policy.
func NewLLMProvider(cfg config.AIConfig) (llm.LLMProvider, error) {
	timeout := time.Duration(cfg.TimeoutSeconds) * time.Second

	var provider llm.LLMProvider
	switch cfg.Provider {
	case "ollama":
		baseURL := cfg.OllamaBaseURL
		if baseURL == "" {
			baseURL = "http://localhost:11434" // Default
		}
		provider = ollama.NewOllamaProvider(baseURL, cfg.Model, timeout)
	case "gemini":
		if cfg.GeminiAPIKey == "" {
			return nil, fmt.Errorf("gemini provider requires GOOGLE_GEMINI_API_KEY")
		}
		provider = gemini.NewGeminiProvider(cfg.GeminiAPIKey, cfg.Model, timeout)
	default:
		return nil, fmt.Errorf("unsupported LLM provider: %s", cfg.Provider)
	}

	return llm.WithRetry(provider, cfg.MaxAttempts, 2*time.Second), nil
}
