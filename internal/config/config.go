package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server   ServerConfig
	Gemini   GeminiConfig
	Analyzer AnalyzerConfig
	Storage  StorageConfig
	OCR      OCRConfig
}

type ServerConfig struct {
	Port string
	Env  string
}

type GeminiConfig struct {
	APIKey string
}

type AnalyzerConfig struct {
	// Models is the ordered priority list of candidate model identifiers.
	// The analyzer advances to the next entry on 404, timeout, or exhausted
	// rate-limit retries.
	Models            []string
	Temperature       float32
	MaxOutputTokens   int32
	PermissiveSafety  bool
	RetryMaxAttempts  int
	RetryInitialDelay time.Duration
	RequestTimeout    time.Duration
}

type StorageConfig struct {
	MaxFileSize int64
}

type OCRConfig struct {
	Enabled bool
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found. Using default values.")
	}

	return &Config{
		Server: ServerConfig{
			Port: getEnv("PORT", "3000"),
			Env:  getEnv("ENV", "development"),
		},
		Gemini: GeminiConfig{
			APIKey: getEnv("GEMINI_API_KEY", ""),
		},
		Analyzer: AnalyzerConfig{
			Models:            getEnvAsSlice("GEMINI_MODELS", []string{"gemini-2.5-flash", "gemini-2.5-flash-lite"}),
			Temperature:       getEnvAsFloat32("ANALYZER_TEMPERATURE", 0.3),
			MaxOutputTokens:   int32(getEnvAsInt("ANALYZER_MAX_OUTPUT_TOKENS", 8192)),
			PermissiveSafety:  getEnvAsBool("ANALYZER_PERMISSIVE_SAFETY", false),
			RetryMaxAttempts:  getEnvAsInt("RETRY_MAX_ATTEMPTS", 2),
			RetryInitialDelay: getEnvAsDuration("RETRY_INITIAL_DELAY", "2s"),
			RequestTimeout:    getEnvAsDuration("REQUEST_TIMEOUT", "60s"),
		},
		Storage: StorageConfig{
			MaxFileSize: getEnvAsInt64("MAX_FILE_SIZE", 10485760),
		},
		OCR: OCRConfig{
			Enabled: getEnvAsBool("OCR_ENABLED", true),
		},
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsInt64(key string, defaultValue int64) int64 {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseInt(valueStr, 10, 64); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsFloat32(key string, defaultValue float32) float32 {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseFloat(valueStr, 32); err == nil {
		return float32(value)
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseBool(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue string) time.Duration {
	valueStr := getEnv(key, defaultValue)
	if duration, err := time.ParseDuration(valueStr); err == nil {
		return duration
	}
	duration, _ := time.ParseDuration(defaultValue)
	return duration
}

func getEnvAsSlice(key string, defaultValue []string) []string {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}

	var values []string
	for _, part := range strings.Split(valueStr, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			values = append(values, part)
		}
	}

	if len(values) == 0 {
		return defaultValue
	}
	return values
}
