package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// DatabaseConfig holds relational store connection settings.
// Driver selects the backend: "postgres" (default) or "sqlite".
type DatabaseConfig struct {
	Driver             string
	Host               string
	Port               string
	User               string
	Password           string
	Name               string
	SSLMode            string
	SQLitePath         string
	MaxOpenConns       int
	MaxIdleConns       int
	ConnMaxLifetimeSec int
}

// MinIOConfig holds object storage settings for MinIO.
type MinIOConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	Region    string
	UseSSL    bool
}

// StorageConfig selects where uploaded files live: "minio" (default) or "local".
type StorageConfig struct {
	Driver   string
	LocalDir string
	MinIO    MinIOConfig
}

// LLMConfig holds settings for the concept/flashcard generation backend.
type LLMConfig struct {
	Provider       string
	APIKey         string
	Model          string
	BaseURL        string
	TimeoutSec     int
	MaxSampleChars int
	MaxTokens      int
}

// AuthConfig holds bearer token settings.
type AuthConfig struct {
	JWTSecret   string
	TokenTTLMin int
	UsersFile   string
}

// AppConfig is the centralized configuration struct for the application.
// It is populated from environment variables. Sensitive values are not hardcoded.
type AppConfig struct {
	AppHost        string
	Port           string
	Timezone       string
	UploadMaxBytes int
	CORSOrigins    string
	Database       DatabaseConfig
	Storage        StorageConfig
	LLM            LLMConfig
	Auth           AuthConfig
}

// Load reads configuration from environment variables.
// A .env file can be auto-loaded by importing: _ "github.com/joho/godotenv/autoload"
// This function does not require a .env file; real environment variables take precedence.
func Load() *AppConfig {
	return &AppConfig{
		AppHost:        getEnv("APP_HOST", "localhost:8080"),
		Port:           getEnv("PORT", "8080"),
		Timezone:       getEnv("APP_TIMEZONE", "UTC"),
		UploadMaxBytes: getEnvInt("UPLOAD_MAX_BYTES", 50*1024*1024),
		CORSOrigins:    getEnv("CORS_ALLOW_ORIGINS", "*"),
		Database: DatabaseConfig{
			Driver:             strings.ToLower(getEnv("DB_DRIVER", "postgres")),
			Host:               getEnv("DB_HOST", ""),
			Port:               getEnv("DB_PORT", "5432"),
			User:               getEnv("DB_USER", ""),
			Password:           getEnv("DB_PASSWORD", ""),
			Name:               getEnv("DB_NAME", ""),
			SSLMode:            getEnv("DB_SSLMODE", "disable"),
			SQLitePath:         getEnv("DB_SQLITE_PATH", "document_tutor.db"),
			MaxOpenConns:       getEnvInt("DB_MAX_OPEN_CONNS", 10),
			MaxIdleConns:       getEnvInt("DB_MAX_IDLE_CONNS", 5),
			ConnMaxLifetimeSec: getEnvInt("DB_CONN_MAX_LIFETIME_SEC", 300),
		},
		Storage: StorageConfig{
			Driver:   strings.ToLower(getEnv("STORAGE_DRIVER", "minio")),
			LocalDir: getEnv("STORAGE_LOCAL_DIR", "uploads"),
			MinIO: MinIOConfig{
				Endpoint:  getEnv("MINIO_ENDPOINT", ""),
				AccessKey: getEnv("MINIO_ACCESS_KEY", ""),
				SecretKey: getEnv("MINIO_SECRET_KEY", ""),
				Bucket:    getEnv("MINIO_BUCKET", ""),
				Region:    getEnv("MINIO_REGION", ""),
				UseSSL:    getEnvBool("MINIO_USE_SSL", false),
			},
		},
		LLM: LLMConfig{
			Provider:       strings.ToLower(getEnv("LLM_PROVIDER", "openai")),
			APIKey:         getEnv("LLM_API_KEY", ""),
			Model:          getEnv("LLM_MODEL", "gpt-4o-mini"),
			BaseURL:        getEnv("LLM_BASE_URL", ""),
			TimeoutSec:     getEnvInt("LLM_TIMEOUT_SEC", 60),
			MaxSampleChars: getEnvInt("LLM_MAX_SAMPLE_CHARS", 3000),
			MaxTokens:      getEnvInt("LLM_MAX_TOKENS", 2048),
		},
		Auth: AuthConfig{
			JWTSecret:   getEnv("JWT_SECRET", ""),
			TokenTTLMin: getEnvInt("AUTH_TOKEN_TTL_MIN", 30),
			UsersFile:   getEnv("AUTH_USERS_FILE", ""),
		},
	}
}

// Location resolves the configured timezone, falling back to UTC.
func (c *AppConfig) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		i, err := strconv.Atoi(v)
		if err == nil {
			return i
		}
	}
	return def
}
