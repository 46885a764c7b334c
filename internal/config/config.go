package config

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	// Server
	Port string
	Env  string

	// Gemini AI
	GeminiAPIKey string
	GeminiModel  string
	PromptMode   string

	// HTTP
	CORSOrigin    string
	ChatRateLimit int

	// Redis (optional, shared rate limit counters)
	RedisURL string
}

// Load reads the environment (and .env when present) and panics when a
// required variable is missing.
func Load() *Config {
	cfg, err := Read()
	if err != nil {
		panic(err.Error())
	}
	return cfg
}

// Read is Load without the panic, for entry points that must report the
// failure per request instead of crashing the process.
func Read() (*Config, error) {
	// Load .env file if it exists
	godotenv.Load()

	apiKey, err := requireEnv("GEMINI_API_KEY")
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Port:          getEnvOrDefault("PORT", "3000"),
		Env:           getEnvOrDefault("ENV", "development"),
		GeminiAPIKey:  apiKey,
		GeminiModel:   getEnvOrDefault("GEMINI_MODEL", "gemini-2.0-flash"),
		PromptMode:    getEnvOrDefault("PROMPT_MODE", "session"),
		CORSOrigin:    getEnvOrDefault("CORS_ORIGIN", "*"),
		ChatRateLimit: getEnvAsIntOrDefault("CHAT_RATE_LIMIT", 30),
		RedisURL:      getEnvOrDefault("REDIS_URL", ""),
	}

	if cfg.ChatRateLimit <= 0 {
		log.Printf("CHAT_RATE_LIMIT=%d is not positive, using 30", cfg.ChatRateLimit)
		cfg.ChatRateLimit = 30
	}

	return cfg, nil
}

func requireEnv(key string) (string, error) {
	val := os.Getenv(key)
	if val == "" {
		return "", fmt.Errorf("required environment variable %s is not set", key)
	}
	return val, nil
}

func getEnvOrDefault(key, defaultVal string) string {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	return val
}

func getEnvAsIntOrDefault(key string, defaultVal int) int {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	n, err := strconv.Atoi(val)
	if err != nil {
		return defaultVal
	}
	return n
}
