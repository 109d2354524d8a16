package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
	return dir
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := load(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, DriverMongo, cfg.Database.Driver)
	assert.Equal(t, "mongodb://localhost:27017", cfg.Database.URI)
	assert.Equal(t, "books", cfg.Database.Collection)
	assert.Equal(t, 3, cfg.Activity.MaxEntries)
	assert.Equal(t, 10*time.Second, cfg.Server.ShutdownTimeout)
	assert.False(t, cfg.MQ.Enabled)
}

func TestLoad_FileAndEnv(t *testing.T) {
	dir := writeConfig(t, "config.yaml", `
server:
  port: 9090
database:
  driver: memory
  name: library
log:
  format: json
`)

	t.Run("读取配置文件", func(t *testing.T) {
		cfg, err := load(dir)
		require.NoError(t, err)
		assert.Equal(t, 9090, cfg.Server.Port)
		assert.Equal(t, DriverMemory, cfg.Database.Driver)
		assert.Equal(t, "library", cfg.Database.Name)
		assert.Equal(t, "json", cfg.Log.Format)
	})

	t.Run("环境变量覆盖配置文件", func(t *testing.T) {
		t.Setenv("BOOKSHELF_SERVER_PORT", "7070")
		t.Setenv("BOOKSHELF_DATABASE_NAME", "override")

		cfg, err := load(dir)
		require.NoError(t, err)
		assert.Equal(t, 7070, cfg.Server.Port)
		assert.Equal(t, "override", cfg.Database.Name)
	})

	t.Run("兼容DB_URI和DB_NAME", func(t *testing.T) {
		t.Setenv("DB_URI", "mongodb://db:27017")
		t.Setenv("DB_NAME", "legacy")

		cfg, err := load(dir)
		require.NoError(t, err)
		assert.Equal(t, "mongodb://db:27017", cfg.Database.URI)
		assert.Equal(t, "legacy", cfg.Database.Name)
	})
}

func TestLoad_EnvSpecificFile(t *testing.T) {
	dir := writeConfig(t, "config.prod.yaml", "server:\n  port: 8443\n")
	t.Setenv("BOOKSHELF_ENV", "prod")

	cfg, err := load(dir)
	require.NoError(t, err)
	assert.Equal(t, 8443, cfg.Server.Port)
}

func TestValidate(t *testing.T) {
	base := func() *Config {
		cfg, err := load(t.TempDir())
		require.NoError(t, err)
		return cfg
	}

	t.Run("端口越界", func(t *testing.T) {
		cfg := base()
		cfg.Server.Port = 70000
		assert.Error(t, validate(cfg))
	})

	t.Run("未知驱动", func(t *testing.T) {
		cfg := base()
		cfg.Database.Driver = "postgres"
		assert.Error(t, validate(cfg))
	})

	t.Run("内存驱动不需要URI", func(t *testing.T) {
		cfg := base()
		cfg.Database.Driver = DriverMemory
		cfg.Database.URI = ""
		assert.NoError(t, validate(cfg))
	})

	t.Run("活动记录条数必须为正", func(t *testing.T) {
		cfg := base()
		cfg.Activity.MaxEntries = 0
		assert.Error(t, validate(cfg))
	})
}
