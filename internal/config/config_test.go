package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"PORT", "HJ_ENV", "DSN", "HJ_ADMIN_PASSWORD", "INSTAGRAM_ACCESS_TOKEN"} {
		t.Setenv(key, "")
	}

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yml"))
	require.NoError(t, err)

	assert.Equal(t, defaultPort, cfg.Port)
	assert.Equal(t, DefaultAdminPassword, cfg.AdminPassword)
	assert.Equal(t, "https://graph.instagram.com", cfg.Instagram.APIBase)
	assert.Equal(t, 30, cfg.Instagram.CacheTTLMin)
	assert.True(t, cfg.IsDev())
	assert.Contains(t, cfg.DSN, "hj_studio")
}

func TestLoad_YAMLFile(t *testing.T) {
	for _, key := range []string{"PORT", "HJ_ENV", "DSN", "HJ_ADMIN_PASSWORD"} {
		t.Setenv(key, "")
	}

	path := filepath.Join(t.TempDir(), "config.yml")
	raw := `
port: 8080
env: production
admin_password: different
database:
  host: db.internal
  name: hj_site
instagram:
  sync_interval_minutes: 5
`
	require.NoError(t, os.WriteFile(path, []byte(raw), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Port)
	assert.False(t, cfg.IsDev())
	assert.Equal(t, "different", cfg.AdminPassword)
	assert.Equal(t, 5, cfg.Instagram.SyncMin)
	assert.Contains(t, cfg.DSN, "db.internal")
	assert.Contains(t, cfg.DSN, "hj_site")
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("PORT", "9001")
	t.Setenv("HJ_ADMIN_PASSWORD", "from-env")
	t.Setenv("INSTAGRAM_ACCESS_TOKEN", "token-123")
	t.Setenv("DSN", "user:pass@tcp(x:3306)/envdb")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yml"))
	require.NoError(t, err)

	assert.Equal(t, 9001, cfg.Port)
	assert.Equal(t, "from-env", cfg.AdminPassword)
	assert.Equal(t, "token-123", cfg.Instagram.AccessToken)
	assert.Equal(t, "user:pass@tcp(x:3306)/envdb", cfg.DSN)
}

func TestLoad_MalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte("port: [not a port"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}
