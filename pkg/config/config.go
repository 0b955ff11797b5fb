package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Port              string
	Env               string
	DatabaseURL       string
	JWTSecret         string
	JWTIssuer         string
	JWTTTLMinutes     int
	GeminiAPIKey      string
	GeminiModel       string
	LLMTimeoutSeconds int
	UploadDir         string
}

// Load reads environment variables, optionally from a .env file if present.
func Load() Config {
	// Try to load .env if it exists; ignore error if file not found
	_ = godotenv.Load()

	cfg := Config{
		Port:              getEnv("PORT", "8080"),
		Env:               getEnv("APP_ENV", "development"),
		DatabaseURL:       os.Getenv("DATABASE_URL"),
		JWTSecret:         getEnv("JWT_SECRET", "dev-secret-change"),
		JWTIssuer:         getEnv("JWT_ISSUER", "resumerank"),
		JWTTTLMinutes:     getEnvInt("JWT_TTL_MINUTES", 60*24*3),
		GeminiAPIKey:      os.Getenv("GEMINI_API_KEY"),
		GeminiModel:       getEnv("GEMINI_MODEL", "gemini-2.0-flash"),
		LLMTimeoutSeconds: getEnvInt("LLM_TIMEOUT_SECONDS", 60),
		UploadDir:         getEnv("UPLOAD_DIR", "uploads"),
	}
	return cfg
}

// IsProduction reports whether detailed error bodies must be suppressed.
func (c Config) IsProduction() bool {
	return c.Env == "production"
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}
