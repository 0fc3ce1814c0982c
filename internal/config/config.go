package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds all application configuration
type Config struct {
	Env        string
	Port       string
	JWTSecret  string
	UploadsDir string
	SeedFile   string
	TrustProxy bool // honor X-Forwarded-For when behind a reverse proxy
	Database   DatabaseConfig
	AI         AIConfig
	HRIS       HRISConfig
	Bootstrap  BootstrapAdmin
}

// DatabaseConfig holds database configuration
type DatabaseConfig struct {
	Host     string
	Port     string
	Username string
	Password string
	Database string
}

// AIConfig holds question-generation provider configuration
type AIConfig struct {
	GeminiAPIKey string
	Model        string
	TimeoutSecs  int
}

// HRISConfig holds settings for the optional job-posting import
// from an external HR system over XML-RPC.
type HRISConfig struct {
	URL          string
	Database     string
	Username     string
	Password     string
	SyncInterval int // minutes; <=0 disables the background loop
}

// BootstrapAdmin seeds the first console account when the table is empty.
type BootstrapAdmin struct {
	Email    string
	Password string
	Name     string
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists
	_ = godotenv.Load()

	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}

	return &Config{
		Env:        getEnv("APP_ENV", "development"),
		Port:       getEnv("PORT", "5000"),
		JWTSecret:  jwtSecret,
		UploadsDir: getEnv("UPLOADS_DIR", "./uploads"),
		SeedFile:   getEnv("JOB_SEED_FILE", "./seeds/jobs.yaml"),
		TrustProxy: getEnvBool("TRUST_PROXY", false),
		Database: DatabaseConfig{
			Host:     getEnv("PG_HOST", "localhost"),
			Port:     getEnv("PG_PORT", "5432"),
			Username: getEnv("PG_USERNAME", "postgres"),
			Password: os.Getenv("PG_PASSWORD"),
			Database: getEnv("PG_DATABASE", "wisecrew"),
		},
		AI: AIConfig{
			GeminiAPIKey: os.Getenv("GEMINI_API_KEY"),
			Model:        getEnv("GEMINI_MODEL", "gemini-2.5-flash"),
			TimeoutSecs:  getEnvInt("AI_TIMEOUT_SECS", 20),
		},
		HRIS: HRISConfig{
			URL:          os.Getenv("HRIS_URL"),
			Database:     os.Getenv("HRIS_DATABASE"),
			Username:     os.Getenv("HRIS_USERNAME"),
			Password:     os.Getenv("HRIS_PASSWORD"),
			SyncInterval: getEnvInt("HRIS_SYNC_INTERVAL", 0),
		},
		Bootstrap: BootstrapAdmin{
			Email:    os.Getenv("ADMIN_EMAIL"),
			Password: os.Getenv("ADMIN_PASSWORD"),
			Name:     getEnv("ADMIN_NAME", "Admin"),
		},
	}, nil
}

// getEnv gets environment variable with default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvBool gets a boolean environment variable with default value
func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}

// getEnvInt gets an integer environment variable with default value
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return defaultValue
}
