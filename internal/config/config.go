package config

import "os"

type Config struct {
	DBHost          string
	DBPort          string
	DBUser          string
	DBPassword      string
	DBName          string
	StoreBackend    string
	PollInterval    string
	FlushWindow     string
	WorkshopID      string
	AdminPassphrase string
	JWTSecret       string
	ServerPort      string
	AIAPIKey        string
	AIAPIURL        string
	AIModel         string
}

func Load() *Config {
	return &Config{
		DBHost:          getEnv("DB_HOST", "localhost"),
		DBPort:          getEnv("DB_PORT", "5432"),
		DBUser:          getEnv("DB_USER", "postgres"),
		DBPassword:      getEnv("DB_PASSWORD", "postgres"),
		DBName:          getEnv("DB_NAME", "flowup"),
		StoreBackend:    getEnv("STORE_BACKEND", "postgres"),
		PollInterval:    getEnv("POLL_INTERVAL", "2"),
		FlushWindow:     getEnv("FLUSH_WINDOW_MS", "1000"),
		WorkshopID:      getEnv("WORKSHOP_ID", "default"),
		AdminPassphrase: getEnv("ADMIN_PASSPHRASE", "workshop-admin"),
		JWTSecret:       getEnv("JWT_SECRET", "super-secret-key-change-me"),
		ServerPort:      getEnv("SERVER_PORT", "8080"),
		AIAPIKey:        getEnv("AI_API_KEY", ""),
		AIAPIURL:        getEnv("AI_API_URL", "https://api.openai.com/v1"),
		AIModel:         getEnv("AI_MODEL", "gpt-4o-mini"),
	}
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}
