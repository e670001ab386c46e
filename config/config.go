package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application. It is loaded once at
// process start; handlers never read environment variables directly.
type Config struct {
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	Port       string
	Env        string

	RedisURL string

	// Settlement simulation knobs. When TestMode is true the simulator
	// uses the fixed delay and outcome below instead of random draws.
	TestMode            bool
	TestProcessingDelay time.Duration
	TestPaymentSuccess  bool

	// Rate limit for the public checkout endpoints.
	PublicRateLimit  int
	PublicRateWindow time.Duration
}

// App is the process-wide configuration, set by LoadConfig.
var App *Config

// LoadConfig loads configuration from the environment. A missing .env file
// is not an error; deployed environments inject variables directly.
func LoadConfig() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "gateway_user"),
		DBPassword: getEnv("DB_PASSWORD", "gateway_pass"),
		DBName:     getEnv("DB_NAME", "payment_gateway"),
		Port:       getEnv("PORT", "8080"),
		Env:        getEnv("ENV", "development"),

		RedisURL: os.Getenv("REDIS_URL"),

		TestMode:            getEnvBool("TEST_MODE", false),
		TestProcessingDelay: time.Duration(getEnvInt("TEST_PROCESSING_DELAY", 1000)) * time.Millisecond,
		TestPaymentSuccess:  getEnvBool("TEST_PAYMENT_SUCCESS", true),

		PublicRateLimit:  getEnvInt("PUBLIC_RATE_LIMIT", 30),
		PublicRateWindow: time.Duration(getEnvInt("PUBLIC_RATE_WINDOW", 60)) * time.Second,
	}

	App = cfg
	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return b
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}
