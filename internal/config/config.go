package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	// Server configuration
	Server ServerConfig

	// Database configuration
	Database DatabaseConfig

	// JWT configuration
	JWT JWTConfig

	// Google OAuth configuration
	GoogleOAuth GoogleOAuthConfig

	// CORS configuration
	CORS CORSConfig

	// Itinerary generator configuration
	Generator GeneratorConfig

	// Planning session configuration
	Session SessionConfig

	// Saved itinerary storage configuration
	Storage StorageConfig

	// Export configuration
	Export ExportConfig
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	Port            string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	IdleTimeout     time.Duration
	ShutdownTimeout time.Duration
}

// DatabaseConfig holds database-related configuration
type DatabaseConfig struct {
	Host         string
	Port         string
	User         string
	Password     string
	Name         string
	SSLMode      string
	MaxConns     int32
	MinConns     int32
	MaxLifetime  time.Duration
	ConnTimeout  time.Duration
	QueryTimeout time.Duration
}

// JWTConfig holds JWT-related configuration
type JWTConfig struct {
	Secret         string
	AccessTokenTTL time.Duration
}

// GoogleOAuthConfig holds Google OAuth configuration
type GoogleOAuthConfig struct {
	ClientID     string
	ClientSecret string
	RedirectURL  string
	// FrontendCallbackURL receives the token after a successful Google login
	FrontendCallbackURL string
}

// CORSConfig holds CORS configuration
type CORSConfig struct {
	AllowedOrigins   []string
	AllowedMethods   []string
	AllowedHeaders   []string
	AllowCredentials bool
}

// GeneratorConfig selects and configures the hosted model
type GeneratorConfig struct {
	Provider    string // gemini or openai
	APIKey      string
	Model       string
	Temperature float64
	Timeout     time.Duration
	// Extended asks for weather and hotel suggestions along with the itinerary.
	// On by default; GENERATOR_EXTENDED=false requests the itinerary alone.
	Extended bool
}

// SessionConfig holds planning session configuration
type SessionConfig struct {
	TTL               time.Duration
	CleanupInterval   time.Duration
	RegenerationLimit int
}

// StorageConfig selects the saved itinerary backend
type StorageConfig struct {
	Driver        string // postgres, mongo or memory
	MongoURI      string
	MongoDatabase string
}

// ExportConfig holds calendar export configuration
type ExportConfig struct {
	Timezone string
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file
	if err := godotenv.Load("../.env"); err != nil {
		// Try loading from current directory if not found in parent
		if err := godotenv.Load(".env"); err != nil {
			log.Printf("Warning: .env file not found: %v", err)
		}
	}

	config := &Config{
		Server: ServerConfig{
			Port:            getEnv("SERVER_PORT", "8080"),
			ReadTimeout:     getDurationEnv("SERVER_READ_TIMEOUT", 5*time.Second),
			WriteTimeout:    getDurationEnv("SERVER_WRITE_TIMEOUT", 10*time.Second),
			IdleTimeout:     getDurationEnv("SERVER_IDLE_TIMEOUT", 120*time.Second),
			ShutdownTimeout: getDurationEnv("SERVER_SHUTDOWN_TIMEOUT", 5*time.Second),
		},
		Database: DatabaseConfig{
			Host:         getEnv("DB_HOST", "localhost"),
			Port:         getEnv("DB_PORT", "5432"),
			User:         getEnv("DB_USER", "postgres"),
			Password:     getEnv("DB_PASSWORD", ""),
			Name:         getEnv("DB_NAME", "postgres"),
			SSLMode:      getEnv("DB_SSLMODE", "disable"),
			MaxConns:     getInt32Env("DB_MAX_CONNS", 5),
			MinConns:     getInt32Env("DB_MIN_CONNS", 0),
			MaxLifetime:  getDurationEnv("DB_MAX_LIFETIME", time.Hour),
			ConnTimeout:  getDurationEnv("DB_CONN_TIMEOUT", 10*time.Second),
			QueryTimeout: getDurationEnv("DB_QUERY_TIMEOUT", 30*time.Second),
		},
		JWT: JWTConfig{
			Secret:         getEnv("JWT_SECRET", "your-secret-key-change-in-production"),
			AccessTokenTTL: getDurationEnv("JWT_ACCESS_TTL", 7*24*time.Hour), // 7 days
		},
		GoogleOAuth: GoogleOAuthConfig{
			ClientID:     getEnv("GOOGLE_CLIENT_ID", ""),
			ClientSecret: getEnv("GOOGLE_CLIENT_SECRET", ""),
			RedirectURL:  getEnv("GOOGLE_REDIRECT_URL", "http://localhost:8080/api/auth/google/callback"),

			FrontendCallbackURL: getEnv("GOOGLE_FRONTEND_CALLBACK_URL", "http://localhost:3000/auth/callback"),
		},
		CORS: CORSConfig{
			AllowedOrigins:   getStringSliceEnv("CORS_ALLOWED_ORIGINS", []string{"*"}),
			AllowedMethods:   getStringSliceEnv("CORS_ALLOWED_METHODS", []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}),
			AllowedHeaders:   getStringSliceEnv("CORS_ALLOWED_HEADERS", []string{"*"}),
			AllowCredentials: getBoolEnv("CORS_ALLOW_CREDENTIALS", true),
		},
		Generator: GeneratorConfig{
			Provider:    strings.ToLower(getEnv("GENERATOR_PROVIDER", "gemini")),
			APIKey:      getEnv("GEMINI_API_KEY", getEnv("OPENAI_API_KEY", "")),
			Model:       getEnv("GENERATOR_MODEL", ""),
			Temperature: getFloatEnv("GENERATOR_TEMPERATURE", 0.7),
			Timeout:     getDurationEnv("GENERATOR_TIMEOUT", 60*time.Second),
			Extended:    getBoolEnv("GENERATOR_EXTENDED", true),
		},
		Session: SessionConfig{
			TTL:               getDurationEnv("SESSION_TTL", 6*time.Hour),
			CleanupInterval:   getDurationEnv("SESSION_CLEANUP_INTERVAL", 10*time.Minute),
			RegenerationLimit: getIntEnv("SESSION_REGENERATION_LIMIT", 3),
		},
		Storage: StorageConfig{
			Driver:        strings.ToLower(getEnv("ITINERARY_STORE", "postgres")),
			MongoURI:      getEnv("MONGO_URI", "mongodb://localhost:27017"),
			MongoDatabase: getEnv("MONGO_DATABASE", "pathfinder"),
		},
		Export: ExportConfig{
			Timezone: getEnv("EXPORT_TIMEZONE", "Asia/Jakarta"),
		},
	}

	if config.Generator.Provider == "openai" {
		config.Generator.APIKey = getEnv("OPENAI_API_KEY", "")
	}
	if config.Generator.Model == "" {
		config.Generator.Model = defaultModels[config.Generator.Provider]
	}

	// Validate required configuration
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	// Users live in Postgres unless everything runs in memory
	if c.Storage.Driver != "memory" && c.Database.Password == "" {
		return fmt.Errorf("DB_PASSWORD is required")
	}

	if _, ok := defaultModels[c.Generator.Provider]; !ok {
		return fmt.Errorf("GENERATOR_PROVIDER must be gemini or openai, got %q", c.Generator.Provider)
	}
	switch c.Storage.Driver {
	case "postgres", "mongo", "memory":
	default:
		return fmt.Errorf("ITINERARY_STORE must be postgres, mongo or memory, got %q", c.Storage.Driver)
	}
	if c.Session.RegenerationLimit < 0 {
		return fmt.Errorf("SESSION_REGENERATION_LIMIT cannot be negative")
	}

	// A missing key is not fatal: generation endpoints answer with a configuration error
	if !c.IsGeneratorConfigured() {
		log.Printf("Warning: %s API key missing or still a placeholder. Itinerary generation will fail until it is set.", c.Generator.Provider)
	} else {
		log.Printf("Generator configuration loaded: PROVIDER=%s, MODEL=%s, EXTENDED=%t", c.Generator.Provider, c.Generator.Model, c.Generator.Extended)
	}

	// Check required Google OAuth configuration
	if c.GoogleOAuth.ClientID == "" || c.GoogleOAuth.ClientSecret == "" {
		log.Println("Warning: Google OAuth credentials not configured. Google login will not work.")
	}

	return nil
}

// GetDSN returns the database connection string
func (c *Config) GetDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&connect_timeout=%d",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.Name,
		c.Database.SSLMode,
		int(c.Database.ConnTimeout.Seconds()),
	)
}

// IsGeneratorConfigured reports whether the generator API key looks usable
func (c *Config) IsGeneratorConfigured() bool {
	return !IsPlaceholderKey(c.Generator.APIKey)
}

var defaultModels = map[string]string{
	"gemini": "gemini-2.5-flash",
	"openai": "gpt-4o-mini",
}

var placeholderKeys = []string{"your_api_key_here", "your-api-key", "your_api_key", "changeme", "xxx"}

// IsPlaceholderKey reports whether key is empty or an obvious template value
func IsPlaceholderKey(key string) bool {
	k := strings.ToLower(strings.TrimSpace(key))
	if k == "" || strings.HasPrefix(k, "your_") || strings.HasPrefix(k, "<") {
		return true
	}
	for _, p := range placeholderKeys {
		if k == p {
			return true
		}
	}
	return false
}

// IsGoogleOAuthConfigured checks if Google OAuth is properly configured
func (c *Config) IsGoogleOAuthConfigured() bool {
	return c.GoogleOAuth.ClientID != "" && c.GoogleOAuth.ClientSecret != ""
}

// Helper functions for environment variable parsing

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getInt32Env(key string, defaultValue int32) int32 {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.ParseInt(value, 10, 32); err == nil {
			return int32(intValue)
		}
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getFloatEnv(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
	}
	return defaultValue
}

func getBoolEnv(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

func getStringSliceEnv(key string, defaultValue []string) []string {
	if value := os.Getenv(key); value != "" {
		parts := []string{}
		for _, part := range strings.Split(value, ",") {
			if part = strings.TrimSpace(part); part != "" {
				parts = append(parts, part)
			}
		}
		if len(parts) > 0 {
			return parts
		}
	}
	return defaultValue
}
