package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	ServerPort      string
	DatabaseType    string // "sqlite" (default), "postgres" or "mysql"
	DatabasePath    string // for sqlite
	DatabaseURL     string // for postgres/mysql
	MigrationsPath  string
	SessionDuration time.Duration
	UploadMaxSize   int64

	// Single-user login credential. AppPasswordHash (bcrypt) wins over
	// AppPassword when both are set.
	AppUsername     string
	AppPassword     string
	AppPasswordHash string

	// Generative AI
	GeminiAPIKey string
	GeminiModel  string

	// Dictation audio cache
	AudioPath string

	// Streak reminder email (disabled when SESFromEmail is empty)
	AWSRegion         string
	SESFromEmail      string
	SESFromName       string
	ReminderToEmail   string
	ReminderAfterHour int
}

// Load reads configuration from environment variables with sensible defaults
func Load() *Config {
	// Best effort: a missing .env file is fine in production
	if err := godotenv.Load(); err == nil {
		log.Println("Loaded configuration from .env")
	}

	return &Config{
		ServerPort:      getEnv("PORT", "8080"),
		DatabaseType:    getEnv("DB_TYPE", "sqlite"),
		DatabasePath:    getEnv("DB_PATH", "./practicego.db"),
		DatabaseURL:     getEnv("DB_URL", ""),
		MigrationsPath:  getEnv("MIGRATIONS_PATH", "./migrations"),
		SessionDuration: 24 * time.Hour,
		UploadMaxSize:   5 * 1024 * 1024, // 5MB

		AppUsername:     getEnv("APP_USERNAME", "admin"),
		AppPassword:     getEnv("APP_PASSWORD", ""),
		AppPasswordHash: getEnv("APP_PASSWORD_HASH", ""),

		GeminiAPIKey: getEnv("GEMINI_API_KEY", ""),
		GeminiModel:  getEnv("GEMINI_MODEL", "gemini-2.5-flash"),

		AudioPath: getEnv("AUDIO_PATH", "./static/audio"),

		AWSRegion:         getEnv("AWS_REGION", "eu-west-1"),
		SESFromEmail:      getEnv("SES_FROM_EMAIL", ""),
		SESFromName:       getEnv("SES_FROM_NAME", "PracticeGo"),
		ReminderToEmail:   getEnv("REMINDER_TO_EMAIL", ""),
		ReminderAfterHour: getEnvInt("REMINDER_AFTER_HOUR", 18),
	}
}

// getEnv reads an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvInt reads an integer environment variable or returns a default value
func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		log.Printf("Warning: invalid value for %s: %q, using %d", key, value, defaultValue)
		return defaultValue
	}
	return n
}
