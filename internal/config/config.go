// File: internal/config/config.go
package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerPort      string
	JWTSecretKey    string
	AnthropicAPIKey string
	// AIBaseURL points at an OpenAI-compatible endpoint. Defaults to
	// Anthropic's compatibility surface.
	AIBaseURL       string
	DBPath          string
	MaxHistoryTurns int
	Environment     string
}

// Load reads configuration from environment variables or .env file.
func Load() *Config {
	env := os.Getenv("ENV")
	if strings.ToLower(env) != "production" {
		if err := godotenv.Load(); err != nil {
			log.Println("No .env file found; continuing with environment variables")
		}
	}

	cfg := &Config{
		ServerPort:      getEnv("SERVER_PORT", "8080"),
		JWTSecretKey:    getEnv("JWT_SECRET_KEY", ""),
		AnthropicAPIKey: getEnv("ANTHROPIC_API_KEY", ""),
		AIBaseURL:       getEnv("AI_BASE_URL", "https://api.anthropic.com/v1"),
		DBPath:          getEnv("DB_PATH", "trainhub.db"),
		MaxHistoryTurns: getEnvAsInt("MAX_HISTORY_TURNS", 30),
		Environment:     env,
	}

	// Validation for production environments. ANTHROPIC_API_KEY is not
	// required: users may bring their own key via settings.
	if strings.ToLower(env) == "production" {
		missing := []string{}
		if cfg.JWTSecretKey == "" {
			missing = append(missing, "JWT_SECRET_KEY")
		}
		if len(missing) > 0 {
			log.Fatalf("Missing required production environment variables: %v", missing)
		}
	}

	return cfg
}

// getEnv returns the value of an environment variable or a default.
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt gets an env var as an integer, with a fallback.
func getEnvAsInt(key string, defaultValue int) int {
	strValue := getEnv(key, "")
	if strValue == "" {
		return defaultValue
	}
	intValue, err := strconv.Atoi(strValue)
	if err != nil {
		log.Printf("Warning: could not parse env var %s as integer. Using default value.", key)
		return defaultValue
	}
	return intValue
}
