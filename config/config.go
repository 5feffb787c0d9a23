// Package config assembles the settings an embedding application needs to
// wire the chat core: Supabase project, Redis, the generation backend, and
// the temp-chat driver. Values come from FRIDAY_* environment variables, with
// an optional .env file loaded first.
package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all tunable settings.
type Config struct {
	SupabaseURL    string
	SupabaseAPIKey string

	OpenAIAPIKey  string
	OpenAIBaseURL string
	OpenAIModel   string

	// TempChatDriver is "file", "memory" or "redis".
	TempChatDriver string
	TempChatPath   string

	RedisAddr     string
	RedisPassword string
	RedisTTL      time.Duration
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getDurationEnv(key string, def time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return def
	}
	return d
}

// Load reads the environment (and a .env file when present) and builds the
// config. A missing .env file is not an error.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		SupabaseURL:    getEnv("FRIDAY_SUPABASE_URL", ""),
		SupabaseAPIKey: getEnv("FRIDAY_SUPABASE_API_KEY", ""),

		OpenAIAPIKey:  getEnv("FRIDAY_OPENAI_API_KEY", ""),
		OpenAIBaseURL: getEnv("FRIDAY_OPENAI_BASE_URL", ""),
		OpenAIModel:   getEnv("FRIDAY_OPENAI_MODEL", ""),

		TempChatDriver: getEnv("FRIDAY_TEMPCHAT_DRIVER", "file"),
		TempChatPath:   getEnv("FRIDAY_TEMPCHAT_PATH", defaultTempChatPath()),

		RedisAddr:     getEnv("FRIDAY_REDIS_ADDR", ""),
		RedisPassword: getEnv("FRIDAY_REDIS_PASSWORD", ""),
		RedisTTL:      getDurationEnv("FRIDAY_REDIS_TTL", 24*time.Hour),
	}
}

func defaultTempChatPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "tempchat.json"
	}
	return dir + "/friday/tempchat.json"
}
