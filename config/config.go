// config.go - Handles configuration for the project

package config // Declares the package name

import ( // Import required packages
	"fmt"     // Error formatting
	"os"      // For reading environment variables
	"strconv" // Numeric settings
	"strings" // Comma separated lists
	"time"    // Token lifetime

	"github.com/joho/godotenv" // Local config file loader
)

const productionEnv = "production"

type Config struct { // Config struct holds all configuration values
	Env           string        // Deployment environment (production reads env only)
	Port          string        // HTTP listen port
	DBDriver      string        // Database dialect: sqlite or mysql
	DatabaseURL   string        // Connection string (file path for sqlite, DSN for mysql)
	JWTSecret     string        // Secret key for token signing
	TokenTTL      time.Duration // Lifetime of issued tokens
	MQTTBroker    string        // Address of the MQTT broker, empty disables notifications
	MQTTClientID  string        // Client id presented to the broker
	CORSOrigins   []string      // Allowed CORS origins
	AuthRateLimit float64       // Requests per second per client on register/login, 0 disables
	AuthRateBurst int           // Burst size for the auth limiter
	LogLevel      string        // zerolog level name
}

// IsProduction reports whether the process runs with APP_ENV=production.
func (c *Config) IsProduction() bool {
	return c.Env == productionEnv
}

// Load resolves the configuration once at startup. Outside production a local
// config file (CONFIG_FILE, default .env) is read first; real environment
// variables always take precedence over it.
func Load() (*Config, error) {
	env := getEnv("APP_ENV", "development")
	if env != productionEnv {
		file := getEnv("CONFIG_FILE", ".env")
		if err := godotenv.Load(file); err != nil && !os.IsNotExist(err) {
			return nil, fmt.Errorf("load config file %s: %w", file, err)
		}
	}

	cfg := &Config{
		Env:          env,
		Port:         getEnv("PORT", "5000"),
		DBDriver:     getEnv("DB_DRIVER", "sqlite"),
		DatabaseURL:  getEnv("DATABASE_URL", "data.db"),
		JWTSecret:    os.Getenv("JWT_SECRET"),
		MQTTBroker:   os.Getenv("MQTT_BROKER"),
		MQTTClientID: getEnv("MQTT_CLIENT_ID", "campus-backend"),
		CORSOrigins:  splitList(getEnv("CORS_ORIGINS", "*")),
		LogLevel:     getEnv("LOG_LEVEL", "info"),
	}

	if cfg.JWTSecret == "" {
		if cfg.IsProduction() {
			return nil, fmt.Errorf("JWT_SECRET is required in production")
		}
		cfg.JWTSecret = "supersecret" // Local fallback only
	}

	var err error
	if cfg.TokenTTL, err = time.ParseDuration(getEnv("TOKEN_TTL", "24h")); err != nil {
		return nil, fmt.Errorf("invalid TOKEN_TTL: %w", err)
	}
	if cfg.AuthRateLimit, err = strconv.ParseFloat(getEnv("AUTH_RATE_LIMIT", "1"), 64); err != nil {
		return nil, fmt.Errorf("invalid AUTH_RATE_LIMIT: %w", err)
	}
	if cfg.AuthRateBurst, err = strconv.Atoi(getEnv("AUTH_RATE_BURST", "5")); err != nil {
		return nil, fmt.Errorf("invalid AUTH_RATE_BURST: %w", err)
	}

	switch cfg.DBDriver {
	case "sqlite", "mysql":
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", cfg.DBDriver)
	}

	return cfg, nil
}

func getEnv(key, fallback string) string { // Helper to get env var or fallback
	if value := os.Getenv(key); value != "" { // If env var is set, use it
		return value
	}
	return fallback // Otherwise, use fallback value
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
