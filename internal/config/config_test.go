package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad(t *testing.T) {
	t.Setenv("DB_HOST", "test-host")
	t.Setenv("DB_MAX_OPEN_CONNS", "20")
	t.Setenv("MINIO_USE_SSL", "true")
	t.Setenv("CATALOG_SOURCE", " Postgres ")
	t.Setenv("RENDER_MAX_SIZE", "10MB")

	cfg := Load()

	assert.Equal(t, "test-host", cfg.Database.Host)
	assert.Equal(t, 20, cfg.Database.MaxOpenConns)
	assert.True(t, cfg.MinIO.UseSSL)
	assert.Equal(t, CatalogPostgres, cfg.CatalogSource)
	assert.Equal(t, int64(10*1000*1000), cfg.Preview.RenderMaxBytes())
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("CATALOG_SOURCE", "")
	t.Setenv("RENDER_MAX_SIZE", "not-a-size")
	t.Setenv("MINIO_ENDPOINT", "")

	cfg := Load()

	assert.Equal(t, CatalogMemory, cfg.CatalogSource)
	assert.Equal(t, "50MB", cfg.Preview.RenderMaxSize)
	assert.Equal(t, int64(50*1000*1000), cfg.Preview.RenderMaxBytes())
	assert.Equal(t, 30, cfg.Preview.LoadTimeoutSec)
	assert.Equal(t, 900, cfg.MinIO.PresignExpirySec)
	assert.False(t, cfg.MinIO.Enabled())
}

func TestLocation(t *testing.T) {
	cfg := &AppConfig{Timezone: "UTC"}
	assert.Equal(t, "UTC", cfg.Location().String())

	cfg.Timezone = "Nowhere/Invalid"
	assert.Equal(t, time.UTC, cfg.Location())
}

func TestCatalogSource(t *testing.T) {
	assert.Equal(t, CatalogPostgres, catalogSource("postgres"))
	assert.Equal(t, CatalogMemory, catalogSource("memory"))
	assert.Equal(t, CatalogMemory, catalogSource("redis"))
}

func TestGetEnv(t *testing.T) {
	key := "TEST_ENV_VAR"
	os.Setenv(key, "value")
	defer os.Unsetenv(key)

	assert.Equal(t, "value", getEnv(key, "default"))
	assert.Equal(t, "default", getEnv("NON_EXISTENT", "default"))
}

func TestGetEnvBool(t *testing.T) {
	key := "TEST_BOOL_VAR"

	os.Setenv(key, "true")
	assert.True(t, getEnvBool(key, false))

	os.Setenv(key, "false")
	assert.False(t, getEnvBool(key, true))

	os.Setenv(key, "invalid")
	assert.True(t, getEnvBool(key, true))

	os.Unsetenv(key)
	assert.True(t, getEnvBool(key, true))
}

func TestGetEnvInt(t *testing.T) {
	key := "TEST_INT_VAR"

	os.Setenv(key, "123")
	assert.Equal(t, 123, getEnvInt(key, 0))

	os.Setenv(key, "invalid")
	assert.Equal(t, 10, getEnvInt(key, 10))

	os.Unsetenv(key)
	assert.Equal(t, 10, getEnvInt(key, 10))
}
