// Package config loads configuration from the environment and sets up logging.
package config

import (
	"log/slog"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Provider identifies a language-model backend.
type Provider string

// Supported LLM providers.
const (
	ProviderGoogleAI  Provider = "googleai"
	ProviderOpenAI    Provider = "openai"
	ProviderAnthropic Provider = "anthropic"
	ProviderOllama    Provider = "ollama"
	ProviderBedrock   Provider = "bedrock"
)

// APIKeyPlaceholder is the value shipped in .env.example; treating it as
// unset gives a clear configuration error instead of a confusing 401.
const APIKeyPlaceholder = "your_google_api_key_here"

// Config holds all configuration values.
type Config struct {
	// Database
	DBPath string

	// LLM
	LLMProvider     Provider
	LLMModel        string
	GoogleAPIKey    string
	OpenAIAPIKey    string
	AnthropicAPIKey string
	OllamaHost      string
	PreferIPv4      bool

	// Logging
	LogFile  string
	LogLevel slog.Level
}

// Load reads configuration from a .env file (if present) and the
// environment. Credential validity is checked at first LLM use, not here.
func Load() Config {
	// Missing .env is fine; the environment may already be populated.
	_ = godotenv.Load()

	return Config{
		DBPath: getEnv("INTELLISQL_DB_PATH", "company.db"),

		LLMProvider:     Provider(getEnv("INTELLISQL_LLM_PROVIDER", string(ProviderGoogleAI))),
		LLMModel:        getEnv("INTELLISQL_LLM_MODEL", "gemini-2.5-flash"),
		GoogleAPIKey:    os.Getenv("GOOGLE_API_KEY"),
		OpenAIAPIKey:    os.Getenv("OPENAI_API_KEY"),
		AnthropicAPIKey: os.Getenv("ANTHROPIC_API_KEY"),
		OllamaHost:      getEnv("OLLAMA_HOST", "http://localhost:11434"),
		PreferIPv4:      getEnv("INTELLISQL_PREFER_IPV4", "true") == "true",

		LogFile:  getEnv("INTELLISQL_LOG_FILE", "intellisql.log"),
		LogLevel: parseLogLevel(getEnv("INTELLISQL_LOG_LEVEL", "INFO")),
	}
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func parseLogLevel(s string) slog.Level {
	switch strings.ToUpper(s) {
	case "DEBUG":
		return slog.LevelDebug
	case "INFO":
		return slog.LevelInfo
	case "WARN", "WARNING":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
