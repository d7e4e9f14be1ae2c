package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Corpus   CorpusConfig
	Resolver ResolverConfig
	Ai       AIConfig
	Suggest  SuggestConfig
}

type AppConfig struct {
	Port               string
	Environment        string
	LogFilePath        string
	CorsAllowedOrigins string
	SuggestionTopic    string
}

type DatabaseConfig struct {
	Connection string
}

type CorpusConfig struct {
	DocsDir      string
	ExcerptRunes int
}

type ResolverConfig struct {
	CachePrefixLen  int
	CorpusPrefixLen int
}

type AIConfig struct {
	Provider       string // "ollama" or "gemini"
	Model          string
	OllamaBaseURL  string
	GeminiAPIKey   string
	Temperature    float64
	MaxTokens      int
	TimeoutSeconds int
	MaxAttempts    int
}

type SuggestConfig struct {
	FilePath string
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, usage system environment")
	}

	return &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", "3000"),
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "app.log"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173"),
			SuggestionTopic:    getEnv("SUGGESTION_TOPIC_NAME", "SUGGESTION_SUBMITTED"),
		},
		Database: DatabaseConfig{
			Connection: getEnv("DB_CONNECTION_STRING", ""),
		},
		Corpus: CorpusConfig{
			DocsDir:      getEnv("DOCS_DIR", "./docs"),
			ExcerptRunes: getEnvAsInt("CORPUS_EXCERPT_RUNES", 700),
		},
		Resolver: ResolverConfig{
			CachePrefixLen:  getEnvAsInt("CACHE_PREFIX_LEN", 20),
			CorpusPrefixLen: getEnvAsInt("CORPUS_PREFIX_LEN", 30),
		},
		Ai: AIConfig{
			Provider:       getEnv("LLM_PROVIDER", "ollama"),
			Model:          getEnv("LLM_MODEL", "llama3"),
			OllamaBaseURL:  getEnv("OLLAMA_BASE_URL", "http://localhost:11434"),
			GeminiAPIKey:   getEnv("GOOGLE_GEMINI_API_KEY", ""),
			Temperature:    getEnvAsFloat("LLM_TEMPERATURE", 0.2),
			MaxTokens:      getEnvAsInt("LLM_MAX_TOKENS", 512),
			TimeoutSeconds: getEnvAsInt("LLM_TIMEOUT_SECONDS", 60),
			MaxAttempts:    getEnvAsInt("LLM_MAX_ATTEMPTS", 2),
		},
		Suggest: SuggestConfig{
			FilePath: getEnv("SUGGESTIONS_FILE", "suggestions.xlsx"),
		},
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	strValue := getEnv(key, "")
	if value, err := strconv.Atoi(strValue); err == nil {
		return value
	}
	return fallback
}

func getEnvAsFloat(key string, fallback float64) float64 {
	strValue := getEnv(key, "")
	if value, err := strconv.ParseFloat(strValue, 64); err == nil {
		return value
	}
	return fallback
}
