package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/docker/go-units"
)

// Catalog sources understood by CATALOG_SOURCE.
const (
	CatalogMemory   = "memory"
	CatalogPostgres = "postgres"
)

// DatabaseConfig holds PostgreSQL database connection settings.
type DatabaseConfig struct {
	Host               string
	Port               string
	User               string
	Password           string
	Name               string
	SSLMode            string
	MaxOpenConns       int
	MaxIdleConns       int
	ConnMaxLifetimeSec int
	AutoMigrate        bool
}

// MinIOConfig holds object storage settings for MinIO.
// An empty Endpoint disables object storage; locators are then used as-is.
type MinIOConfig struct {
	Endpoint         string
	AccessKey        string
	SecretKey        string
	Bucket           string
	UseSSL           bool
	PresignExpirySec int
}

// Enabled reports whether object storage has been configured.
func (c MinIOConfig) Enabled() bool {
	return c.Endpoint != ""
}

// PreviewConfig controls preview sessions and the page-count renderer.
type PreviewConfig struct {
	LoadTimeoutSec     int
	RenderMaxSize      string
	RenderHTTPTimeout  int
	renderMaxSizeBytes int64
}

// RenderMaxBytes returns RenderMaxSize in bytes.
func (c PreviewConfig) RenderMaxBytes() int64 {
	return c.renderMaxSizeBytes
}

// AppConfig is the centralized configuration struct for the application.
// It is populated from environment variables. Sensitive values are not hardcoded.
type AppConfig struct {
	AppHost       string
	Port          string
	Timezone      string
	CatalogSource string
	Database      DatabaseConfig
	MinIO         MinIOConfig
	Preview       PreviewConfig
}

// Location resolves Timezone, falling back to UTC when it is unknown.
func (c *AppConfig) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// Load reads configuration from environment variables.
// A .env file can be auto-loaded by importing: _ "github.com/joho/godotenv/autoload"
// This function does not require a .env file; real environment variables take precedence.
func Load() *AppConfig {
	preview := PreviewConfig{
		LoadTimeoutSec:    getEnvInt("PREVIEW_LOAD_TIMEOUT_SEC", 30),
		RenderMaxSize:     getEnv("RENDER_MAX_SIZE", "50MB"),
		RenderHTTPTimeout: getEnvInt("RENDER_HTTP_TIMEOUT_SEC", 15),
	}
	size, err := units.FromHumanSize(preview.RenderMaxSize)
	if err != nil || size <= 0 {
		preview.RenderMaxSize = "50MB"
		size = 50 * units.MB
	}
	preview.renderMaxSizeBytes = size

	return &AppConfig{
		AppHost:       getEnv("APP_HOST", "localhost:8080"),
		Port:          getEnv("PORT", "8080"), // default only for non-sensitive value
		Timezone:      getEnv("APP_TIMEZONE", "UTC"),
		CatalogSource: catalogSource(getEnv("CATALOG_SOURCE", CatalogMemory)),
		Database: DatabaseConfig{
			Host:               getEnv("DB_HOST", ""),
			Port:               getEnv("DB_PORT", "5432"),
			User:               getEnv("DB_USER", ""),
			Password:           getEnv("DB_PASSWORD", ""),
			Name:               getEnv("DB_NAME", ""),
			SSLMode:            getEnv("DB_SSLMODE", "disable"),
			MaxOpenConns:       getEnvInt("DB_MAX_OPEN_CONNS", 10),
			MaxIdleConns:       getEnvInt("DB_MAX_IDLE_CONNS", 5),
			ConnMaxLifetimeSec: getEnvInt("DB_CONN_MAX_LIFETIME_SEC", 300),
			AutoMigrate:        getEnvBool("DB_AUTO_MIGRATE", true),
		},
		MinIO: MinIOConfig{
			Endpoint:         getEnv("MINIO_ENDPOINT", ""),
			AccessKey:        getEnv("MINIO_ACCESS_KEY", ""),
			SecretKey:        getEnv("MINIO_SECRET_KEY", ""),
			Bucket:           getEnv("MINIO_BUCKET", ""),
			UseSSL:           getEnvBool("MINIO_USE_SSL", false),
			PresignExpirySec: getEnvInt("PRESIGN_EXPIRY_SEC", 900),
		},
		Preview: preview,
	}
}

func catalogSource(v string) string {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case CatalogPostgres:
		return CatalogPostgres
	default:
		return CatalogMemory
	}
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
