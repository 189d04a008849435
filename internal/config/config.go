// internal/config/config.go
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Environment string
	Server      ServerConfig
	Database    DatabaseConfig
	JWT         JWTConfig
	Geo         GeoConfig
	Admin       AdminConfig
}

type ServerConfig struct {
	Port         string
	Host         string
	ReadTimeout  int
	WriteTimeout int
	IdleTimeout  int
}

type DatabaseConfig struct {
	Host         string
	Port         string
	User         string
	Password     string
	Database     string
	SSLMode      string
	MaxOpenConns int
	MaxIdleConns int
	MaxLifetime  int
	LogLevel     string
}

type JWTConfig struct {
	SecretKey string
	TokenTTL  int // in hours
}

// GeoConfig points at the IP geolocation service used by the
// storefront analytics tracker.
type GeoConfig struct {
	BaseURL        string
	TimeoutSeconds int
}

// AdminConfig seeds the initial admin account when the users table has
// no admin yet.
type AdminConfig struct {
	Name     string
	Company  string
	Email    string
	Password string
}

func Load() (*Config, error) {
	// Load .env file if it exists
	godotenv.Load()

	config := &Config{
		Environment: getEnv("ENVIRONMENT", "development"),
		Server: ServerConfig{
			Port:         getEnv("SERVER_PORT", "5000"),
			Host:         getEnv("SERVER_HOST", "localhost"),
			ReadTimeout:  getEnvAsInt("SERVER_READ_TIMEOUT", 15),
			WriteTimeout: getEnvAsInt("SERVER_WRITE_TIMEOUT", 15),
			IdleTimeout:  getEnvAsInt("SERVER_IDLE_TIMEOUT", 60),
		},
		Database: DatabaseConfig{
			Host:         getEnv("DB_HOST", "localhost"),
			Port:         getEnv("DB_PORT", "5432"),
			User:         getEnv("DB_USER", "postgres"),
			Password:     getEnv("DB_PASSWORD", ""),
			Database:     getEnv("DB_NAME", "flipbase"),
			SSLMode:      getEnv("DB_SSL_MODE", "disable"),
			MaxOpenConns: getEnvAsInt("DB_MAX_OPEN_CONNS", 25),
			MaxIdleConns: getEnvAsInt("DB_MAX_IDLE_CONNS", 25),
			MaxLifetime:  getEnvAsInt("DB_MAX_LIFETIME", 300),
			LogLevel:     getEnv("DB_LOG_LEVEL", "silent"),
		},
		JWT: JWTConfig{
			SecretKey: getEnv("JWT_SECRET", ""),
			TokenTTL:  getEnvAsInt("JWT_TOKEN_TTL", 5), // 5 hours
		},
		Geo: GeoConfig{
			BaseURL:        getEnv("GEO_API_URL", "http://ip-api.com/json"),
			TimeoutSeconds: getEnvAsInt("GEO_TIMEOUT", 5),
		},
		Admin: AdminConfig{
			Name:     getEnv("ADMIN_NAME", "Administrator"),
			Company:  getEnv("ADMIN_COMPANY", "flipbase"),
			Email:    getEnv("ADMIN_EMAIL", "admin@flipbase.dk"),
			Password: getEnv("ADMIN_PASSWORD", ""),
		},
	}

	return config, config.Validate()
}

func (c *Config) Validate() error {
	// Token issuance fails closed: refuse to start without a secret
	// instead of discovering it per request.
	if c.JWT.SecretKey == "" {
		return fmt.Errorf("JWT_SECRET is not defined")
	}

	if c.Database.Password == "" && c.Environment == "production" {
		return fmt.Errorf("database password is required in production")
	}

	return nil
}

// DSN renders the keyword/value connection string for the Postgres
// driver.
func (d *DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.Database, d.SSLMode,
	)
}

// Helper functions
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}
