package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

// Config holds the runtime settings read from the environment.
type Config struct {
	// Address the HTTP service listens on, e.g. "0.0.0.0:8080"
	ListenAddr string
	// Gin mode: debug, release or test
	GinMode string
	// Rotating application log file
	LogFile string
}

var (
	// C is the globally accessible configuration, set by Init
	C *Config
)

// Init loads .env (if present) and populates the global configuration
// from environment variables with defaults.
func Init() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found – relying on env vars")
	}

	C = &Config{
		ListenAddr: getEnv("LISTEN_ADDR", "0.0.0.0:8080"),
		GinMode:    getEnv("GIN_MODE", "release"),
		LogFile:    getEnv("LOG_FILE", "./logs/app.log"),
	}
	return C
}

// getEnv reads an environment variable or returns the provided default
func getEnv(key, defaultValue string) string {
	if v, exists := os.LookupEnv(key); exists {
		return v
	}
	return defaultValue
}
