package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cadastre-search-api/internal/config"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "disable", cfg.Database.SSLMode)
	assert.Equal(t, 50, cfg.Search.DefaultPageSize)
	assert.Equal(t, 100, cfg.Search.MaxPageSize)
	assert.Equal(t, 30*time.Second, cfg.Search.QueryTimeout)
	assert.Equal(t, 300*time.Second, cfg.Database.ConnMaxLifetime)
}

func TestLoad_EnvFileAndOverrides(t *testing.T) {
	envFile := filepath.Join(t.TempDir(), ".env")
	content := "DB_NAME=cadastre_file\nAPI_PORT=9000\nLOG_LEVEL=DEBUG\n"
	require.NoError(t, os.WriteFile(envFile, []byte(content), 0o600))

	// окружение важнее файла
	t.Setenv("API_PORT", "9100")
	t.Setenv("PAGE_MAX_SIZE", "500")

	cfg, err := config.Load(envFile)
	require.NoError(t, err)
	t.Cleanup(func() {
		os.Unsetenv("DB_NAME")
		os.Unsetenv("LOG_LEVEL")
	})

	assert.Equal(t, "cadastre_file", cfg.Database.DBName)
	assert.Equal(t, 9100, cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, 500, cfg.Search.MaxPageSize)
	assert.Equal(t, "0.0.0.0:9100", cfg.GetServerAddr())
}

func TestLoad_InvalidPaging(t *testing.T) {
	t.Setenv("PAGE_DEFAULT_SIZE", "200")
	t.Setenv("PAGE_MAX_SIZE", "100")

	_, err := config.Load(filepath.Join(t.TempDir(), "missing.env"))
	assert.Error(t, err)
}
