// Package config provides configuration management for the batch service.
package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds the complete application configuration.
type Config struct {
	Server     ServerConfig
	Database   DatabaseConfig
	Throughput ThroughputConfig
	Dispatcher DispatcherConfig
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Port           string
	RateLimit      int
	RateWindow     time.Duration
	RequestTimeout time.Duration
	CORSOrigins    []string
}

// DatabaseConfig holds MongoDB configuration.
type DatabaseConfig struct {
	URI          string
	DatabaseName string
	Enabled      bool
	// CircuitBreaker configuration for system settings reads
	CircuitBreakerFailureThreshold int
	CircuitBreakerSuccessThreshold int
	CircuitBreakerTimeout          time.Duration
}

// ThroughputConfig holds the fallback processing throughput served while the
// system-settings circuit breaker is open.
type ThroughputConfig struct {
	PacksPerHour  float64
	HoursPerDay   float64
	SaturdayHours float64
	SundayHours   float64
}

// DispatcherConfig holds inventory reconciliation dispatcher configuration.
// Dispatch is disabled when APIBaseURL is empty.
type DispatcherConfig struct {
	APIBaseURL  string
	BufferSize  int
	NumWorkers  int
	TaskTimeout time.Duration
	TimeZone    string
}

// Load creates a Config from environment variables.
func Load() Config {
	return Config{
		Server: ServerConfig{
			Port:           getEnv("PORT", "8080"),
			RateLimit:      getEnvInt("RATE_LIMIT", 100),
			RateWindow:     getEnvDuration("RATE_WINDOW", time.Minute),
			RequestTimeout: getEnvDuration("REQUEST_TIMEOUT", 30*time.Second),
			CORSOrigins:    parseCORSOrigins(os.Getenv("CORS_ORIGINS")),
		},
		Database: DatabaseConfig{
			URI:                            getEnv("MONGODB_URI", "mongodb://localhost:27017"),
			DatabaseName:                   getEnv("MONGODB_DATABASE", "batch_service"),
			Enabled:                        getEnvBool("MONGODB_ENABLED", true),
			CircuitBreakerFailureThreshold: getEnvInt("CIRCUIT_BREAKER_FAILURE_THRESHOLD", 5),
			CircuitBreakerSuccessThreshold: getEnvInt("CIRCUIT_BREAKER_SUCCESS_THRESHOLD", 2),
			CircuitBreakerTimeout:          getEnvDuration("CIRCUIT_BREAKER_TIMEOUT", 30*time.Second),
		},
		Throughput: ThroughputConfig{
			PacksPerHour:  getEnvFloat("THROUGHPUT_PACKS_PER_HOUR", 50),
			HoursPerDay:   getEnvFloat("THROUGHPUT_HOURS_PER_DAY", 10),
			SaturdayHours: getEnvFloat("THROUGHPUT_SATURDAY_HOURS", 5),
			SundayHours:   getEnvFloat("THROUGHPUT_SUNDAY_HOURS", 0),
		},
		Dispatcher: DispatcherConfig{
			APIBaseURL:  getEnv("INVENTORY_API_URL", ""),
			BufferSize:  getEnvInt("INVENTORY_BUFFER_SIZE", 256),
			NumWorkers:  getEnvInt("INVENTORY_WORKERS", 2),
			TaskTimeout: getEnvDuration("INVENTORY_TASK_TIMEOUT", 30*time.Second),
			TimeZone:    getEnv("INVENTORY_TIME_ZONE", "UTC"),
		},
	}
}

func getEnv(key, defaultValue string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return defaultValue
}

func parseCORSOrigins(s string) []string {
	// Default origins for local development
	defaults := []string{
		"http://localhost:3000",
		"http://127.0.0.1:3000",
	}
	if s == "" {
		return defaults
	}
	parts := strings.Split(s, ",")
	result := make([]string, 0, len(parts)+len(defaults))
	result = append(result, defaults...)
	for _, p := range parts {
		if origin := strings.TrimSpace(p); origin != "" {
			result = append(result, origin)
		}
	}
	return result
}
