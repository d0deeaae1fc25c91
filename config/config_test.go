package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "mongodb://localhost:27017", cfg.MongoURI)
	assert.Equal(t, "muebleria", cfg.MongoDBName)
	assert.Equal(t, "sesiones", cfg.SessionCollection)
	assert.Equal(t, 8*time.Hour, cfg.SessionExpiration)
	assert.Equal(t, "./Qr", cfg.QRDir)
	assert.Equal(t, "./Images", cfg.ImagesDir)
	assert.False(t, cfg.AdminUniqueCredentials)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("APP_PORT", "9090")
	t.Setenv("MONGODB_DBNAME", "muebleria_pruebas")
	t.Setenv("SESSION_EXPIRATION", "2h")
	t.Setenv("ADMIN_UNIQUE_CREDENTIALS", "true")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "production", cfg.Environment)
	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "muebleria_pruebas", cfg.MongoDBName)
	assert.Equal(t, 2*time.Hour, cfg.SessionExpiration)
	assert.True(t, cfg.AdminUniqueCredentials)
}
