package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	Server    ServerConfig
	Catalog   CatalogConfig
	Scoring   ScoringConfig
	Assistant AssistantConfig
	OpenAI    OpenAIConfig
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Port           int
	Host           string
	GinMode        string
	AllowedOrigins string
}

// CatalogConfig holds synthetic catalog configuration
type CatalogConfig struct {
	HousesPerDistrict int
	Seed              int64
}

// ScoringConfig holds the location-ranking weights
type ScoringConfig struct {
	WeightPrice          float64
	WeightTransportation float64
	WeightSharedLiving   float64
}

// AssistantConfig holds conversation settings
type AssistantConfig struct {
	HistoryLimit    int
	DefaultLanguage string
}

// OpenAIConfig holds OpenAI-compatible API configuration
type OpenAIConfig struct {
	APIKey      string
	APIBase     string
	ChatModel   string
	Temperature float64
	TopP        float64
	MaxTokens   int
	Timeout     int // seconds
	Enabled     bool
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	// Try to load .env file (optional)
	_ = godotenv.Load()

	cfg := &Config{
		Server: ServerConfig{
			Port:           getEnvAsInt("SERVER_PORT", 8080),
			Host:           getEnv("SERVER_HOST", "0.0.0.0"),
			GinMode:        getEnv("GIN_MODE", "release"),
			AllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "*"),
		},
		Catalog: CatalogConfig{
			HousesPerDistrict: getEnvAsInt("CATALOG_HOUSES_PER_DISTRICT", 40),
			Seed:              int64(getEnvAsInt("CATALOG_SEED", 0)),
		},
		Scoring: ScoringConfig{
			WeightPrice:          getEnvAsFloat("SCORE_WEIGHT_PRICE", 0.5),
			WeightTransportation: getEnvAsFloat("SCORE_WEIGHT_TRANSPORTATION", 0.3),
			WeightSharedLiving:   getEnvAsFloat("SCORE_WEIGHT_SHARED_LIVING", 0.2),
		},
		Assistant: AssistantConfig{
			HistoryLimit:    getEnvAsInt("ASSISTANT_HISTORY_LIMIT", 18),
			DefaultLanguage: getEnv("ASSISTANT_DEFAULT_LANGUAGE", "English"),
		},
		OpenAI: OpenAIConfig{
			APIKey:      getEnv("OPENAI_API_KEY", ""),
			APIBase:     getEnv("OPENAI_API_BASE", "https://api.openai.com/v1"),
			ChatModel:   getEnv("OPENAI_CHAT_MODEL", "gpt-4o"),
			Temperature: getEnvAsFloat("OPENAI_CHAT_TEMPERATURE", 0.2),
			TopP:        getEnvAsFloat("OPENAI_CHAT_TOP_P", 0.7),
			MaxTokens:   getEnvAsInt("OPENAI_CHAT_MAX_TOKENS", 2048),
			Timeout:     getEnvAsInt("OPENAI_TIMEOUT", 30),
			Enabled:     getEnv("OPENAI_API_KEY", "") != "",
		},
	}

	return cfg, nil
}

// Helper functions

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid integer value for %s, using default %d", key, defaultValue)
		return defaultValue
	}
	return value
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseFloat(valueStr, 64)
	if err != nil {
		log.Printf("Warning: Invalid float value for %s, using default %f", key, defaultValue)
		return defaultValue
	}
	return value
}
