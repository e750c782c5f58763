package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	Server     ServerConfig
	Search     SearchConfig
	Normalizer NormalizerConfig
	Auth       AuthConfig
	Store      StoreConfig
	Database   DatabaseConfig
	MinIO      MinIOConfig
}

type ServerConfig struct {
	Port         string
	Environment  string
	Version      string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	AllowOrigins string
}

type DatabaseConfig struct {
	Host            string
	Port            string
	User            string
	Password        string
	DBName          string
	SSLMode         string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	QueryTimeout    time.Duration
}

// SearchConfig describes the third-party movie search API.
type SearchConfig struct {
	BaseURL     string
	APIKey      string
	APIKeyParam string
	ResultType  string
	BannerTerm  string
	// HTTPTimeout of zero leaves outbound calls bounded only by the request context.
	HTTPTimeout time.Duration
}

type NormalizerConfig struct {
	PolicyFile string
	Seed       int64
}

type AuthConfig struct {
	JWTSecret   string
	JWTIssuer   string
	JWTDuration time.Duration
}

type StoreConfig struct {
	Driver string
	Path   string
}

type MinIOConfig struct {
	Endpoint        string
	AccessKeyID     string
	SecretAccessKey string
	BucketName      string
	Region          string
	UseSSL          bool
}

const defaultJWTSecret = "default_secret_key_change_in_production"

func Load() *Config {
	return &Config{
		Server: ServerConfig{
			Port:         getEnvOrDefault("PORT", "5000"),
			Environment:  getEnvOrDefault("GO_ENV", "development"),
			Version:      getEnvOrDefault("APP_VERSION", "1.0.0"),
			ReadTimeout:  getDurationOrDefault("SERVER_READ_TIMEOUT", 30*time.Second),
			WriteTimeout: getDurationOrDefault("SERVER_WRITE_TIMEOUT", 30*time.Second),
			AllowOrigins: getEnvOrDefault("CORS_ALLOW_ORIGINS", "http://localhost:3000, http://localhost:5173, http://127.0.0.1:3000, http://127.0.0.1:5173"),
		},
		Search: SearchConfig{
			BaseURL:     getEnvOrDefault("SEARCH_BASE_URL", "https://www.omdbapi.com"),
			APIKey:      os.Getenv("SEARCH_API_KEY"),
			APIKeyParam: getEnvOrDefault("SEARCH_API_KEY_PARAM", "apikey"),
			ResultType:  getEnvOrDefault("SEARCH_RESULT_TYPE", "movie"),
			BannerTerm:  getEnvOrDefault("SEARCH_BANNER_TERM", "avengers"),
			HTTPTimeout: getDurationOrDefault("SEARCH_HTTP_TIMEOUT", 0),
		},
		Normalizer: NormalizerConfig{
			PolicyFile: os.Getenv("NORMALIZER_POLICY_FILE"),
			Seed:       int64(getIntOrDefault("NORMALIZER_SEED", 0)),
		},
		Auth: AuthConfig{
			JWTSecret:   getEnvOrDefault("JWT_SECRET", defaultJWTSecret),
			JWTIssuer:   getEnvOrDefault("JWT_ISSUER", "netflix-backend"),
			JWTDuration: getDurationOrDefault("JWT_TTL", 24*time.Hour),
		},
		Store: StoreConfig{
			Driver: strings.ToLower(getEnvOrDefault("STORE_DRIVER", "memory")),
			Path:   getEnvOrDefault("STORE_PATH", "data"),
		},
		Database: DatabaseConfig{
			Host:            getEnvOrDefault("DB_HOST", "localhost"),
			Port:            getEnvOrDefault("DB_PORT", "5432"),
			User:            getEnvOrDefault("DB_USER", "postgres"),
			Password:        getEnvOrDefault("DB_PASSWORD", "postgres"),
			DBName:          getEnvOrDefault("DB_NAME", "netflix_db"),
			SSLMode:         getEnvOrDefault("DB_SSLMODE", "disable"),
			MaxOpenConns:    getIntOrDefault("DB_MAX_OPEN_CONNS", 25),
			MaxIdleConns:    getIntOrDefault("DB_MAX_IDLE_CONNS", 5),
			ConnMaxLifetime: getDurationOrDefault("DB_CONN_MAX_LIFETIME", 5*time.Minute),
			QueryTimeout:    getDurationOrDefault("DB_QUERY_TIMEOUT", 10*time.Second),
		},
		MinIO: MinIOConfig{
			Endpoint:        getEnvOrDefault("AWS_ENDPOINT", "localhost:9000"),
			AccessKeyID:     getEnvOrDefault("AWS_ACCESS_KEY_ID", ""),
			SecretAccessKey: getEnvOrDefault("AWS_SECRET_ACCESS_KEY", ""),
			BucketName:      getEnvOrDefault("AWS_BUCKET", "netflix-state"),
			Region:          getEnvOrDefault("AWS_DEFAULT_REGION", "us-east-1"),
			UseSSL:          getBoolOrDefault("AWS_USE_SSL", false),
		},
	}
}

// DSN returns the PostgreSQL connection string
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s TimeZone=UTC connect_timeout=10",
		d.Host,
		d.Port,
		d.User,
		d.Password,
		d.DBName,
		d.SSLMode,
	)
}

// IsDevelopment reports whether the server runs with a development profile.
func (c *Config) IsDevelopment() bool {
	env := strings.ToLower(c.Server.Environment)
	return env == "dev" || env == "development"
}

func (c *Config) Validate() error {
	if c.Search.APIKey == "" {
		return fmt.Errorf("SEARCH_API_KEY is not set, catalog requests will be served from the fallback catalog")
	}
	if c.Auth.JWTSecret == defaultJWTSecret {
		return fmt.Errorf("JWT_SECRET not found, using default")
	}
	switch c.Store.Driver {
	case "memory", "badger", "sqlite":
	case "postgres":
		if c.Database.Host == "" {
			return fmt.Errorf("DB_HOST is required for the postgres store")
		}
	case "minio":
		if c.MinIO.AccessKeyID == "" {
			return fmt.Errorf("AWS_ACCESS_KEY_ID is required for MinIO")
		}
		if c.MinIO.SecretAccessKey == "" {
			return fmt.Errorf("AWS_SECRET_ACCESS_KEY is required for MinIO")
		}
		if c.MinIO.Endpoint == "" {
			return fmt.Errorf("AWS_ENDPOINT is required for MinIO")
		}
	default:
		return fmt.Errorf("unknown STORE_DRIVER %q", c.Store.Driver)
	}
	return nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

func getBoolOrDefault(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}
