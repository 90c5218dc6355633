// Package config handles configuration loading from environment variables.
package config

import (
	"net"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// AppInfo describes the running service.
type AppInfo struct {
	Name        string
	Version     string
	Description string
}

// Config holds all application configuration.
type Config struct {
	// ListenAddr is the address:port the server listens on.
	ListenAddr string

	// LogDir is where the rotating log files live. Unused when Serverless is set.
	LogDir string

	// LogLevel is a zerolog level name ("debug", "info", ...).
	LogLevel string

	// LogMaxSizeMB is the size in megabytes at which a log file is rotated.
	LogMaxSizeMB int

	// LogMaxBackups is the number of rotated files kept per log.
	LogMaxBackups int

	// Serverless is set when running on Vercel or AWS Lambda.
	Serverless bool

	// EnablePprof mounts the net/http/pprof handlers under /debug/pprof/.
	EnablePprof bool

	App AppInfo
}

// Load reads configuration from environment variables with sensible defaults.
// Values from a .env file in the working directory are loaded first, without
// overriding variables already present in the environment.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		ListenAddr:    getEnv("LISTEN_ADDR", net.JoinHostPort(getEnv("HOST", "0.0.0.0"), getEnv("PORT", "8000"))),
		LogDir:        getEnv("LOG_DIR", "logs"),
		LogLevel:      getEnv("LOG_LEVEL", "info"),
		LogMaxSizeMB:  getEnvInt("LOG_MAX_SIZE_MB", 10),
		LogMaxBackups: getEnvInt("LOG_MAX_BACKUPS", 5),
		Serverless:    IsServerless(),
		EnablePprof:   getEnvBool("ENABLE_PPROF", false),
		App: AppInfo{
			Name:        "AI Backend",
			Version:     "1.0.0",
			Description: "A simple Go backend service",
		},
	}
}

// IsServerless reports whether the process runs on an ephemeral host,
// where local storage may be read-only or discarded between invocations.
func IsServerless() bool {
	if os.Getenv("VERCEL") == "1" {
		return true
	}
	_, ok := os.LookupEnv("AWS_LAMBDA_FUNCTION_NAME")
	return ok
}

// getEnv retrieves an environment variable or returns a default value.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	n, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return n
}

func getEnvBool(key string, defaultValue bool) bool {
	b, err := strconv.ParseBool(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return b
}
