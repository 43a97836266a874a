package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kapu/pitch-ai-go/internal/constants"
	"github.com/kapu/pitch-ai-go/internal/service/ai"
	"github.com/kapu/pitch-ai-go/pkg/errors"
)

type Config struct {
	Provider       string
	Gemini         GeminiConfig
	OpenAI         OpenAIConfig
	Server         ServerConfig
	CircuitBreaker CircuitBreakerConfig
	Logging        LoggingConfig
}

type GeminiConfig struct {
	APIKey     string
	TextModel  string
	ImageModel string
}

type OpenAIConfig struct {
	APIKey     string
	TextModel  string
	ImageModel string
}

type ServerConfig struct {
	Addr string
}

type CircuitBreakerConfig struct {
	Enabled          bool
	FailureThreshold int
	ResetTimeout     time.Duration
}

type LoggingConfig struct {
	Level  string
	File   string
	Format string
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Provider: strings.ToLower(getEnv("AI_PROVIDER", ai.ProviderGemini)),
		Gemini: GeminiConfig{
			APIKey:     getEnv("GEMINI_API_KEY", getEnv("API_KEY", "")),
			TextModel:  getEnv("GEMINI_TEXT_MODEL", constants.ModelDefaults.GeminiText),
			ImageModel: getEnv("GEMINI_IMAGE_MODEL", constants.ModelDefaults.GeminiImage),
		},
		OpenAI: OpenAIConfig{
			APIKey:     getEnv("OPENAI_API_KEY", ""),
			TextModel:  getEnv("OPENAI_TEXT_MODEL", constants.ModelDefaults.OpenAIText),
			ImageModel: getEnv("OPENAI_IMAGE_MODEL", constants.ModelDefaults.OpenAIImage),
		},
		Server: ServerConfig{
			Addr: getEnv("SERVER_ADDR", constants.ServerConfig.Addr),
		},
		CircuitBreaker: CircuitBreakerConfig{
			Enabled:          getEnvBool("CIRCUIT_BREAKER_ENABLED", false),
			FailureThreshold: getEnvInt("CIRCUIT_BREAKER_THRESHOLD", constants.CircuitBreakerConfig.FailureThreshold),
			ResetTimeout: time.Duration(getEnvInt("CIRCUIT_BREAKER_RESET_SECONDS",
				int(constants.CircuitBreakerConfig.ResetTimeout/time.Second))) * time.Second,
		},
		Logging: LoggingConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			File:   getEnv("LOG_FILE", ""),
			Format: getEnv("LOG_FORMAT", "console"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	switch c.Provider {
	case ai.ProviderGemini:
		if c.Gemini.APIKey == "" {
			return errors.NewCredentialError(ai.ProviderGemini, "GEMINI_API_KEY")
		}
	case ai.ProviderOpenAI:
		if c.OpenAI.APIKey == "" {
			return errors.NewCredentialError(ai.ProviderOpenAI, "OPENAI_API_KEY")
		}
	default:
		return fmt.Errorf("AI_PROVIDER must be %q or %q, got %q", ai.ProviderGemini, ai.ProviderOpenAI, c.Provider)
	}
	if c.Server.Addr == "" {
		return fmt.Errorf("SERVER_ADDR is required")
	}
	if c.CircuitBreaker.Enabled && c.CircuitBreaker.FailureThreshold <= 0 {
		return fmt.Errorf("CIRCUIT_BREAKER_THRESHOLD must be positive")
	}
	return nil
}

// Models returns the text and image model identifiers for the selected provider.
func (c *Config) Models() (text, image string) {
	if c.Provider == ai.ProviderOpenAI {
		return c.OpenAI.TextModel, c.OpenAI.ImageModel
	}
	return c.Gemini.TextModel, c.Gemini.ImageModel
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}
