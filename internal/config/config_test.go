package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTrustedProxies(t *testing.T) {
	assert.Nil(t, parseTrustedProxies(""))
	assert.Nil(t, parseTrustedProxies(" , ,"))
	assert.Equal(t, []string{"10.0.0.1", "192.168.0.0/16"}, parseTrustedProxies(" 10.0.0.1 ,192.168.0.0/16,"))
}

func TestLoadConfig_FromEnvWhenFileMissing(t *testing.T) {
	t.Setenv("APP_PORT", "9090")
	t.Setenv("JWT_SECRET", "secret")
	t.Setenv("JWT_TTL", "2h")
	t.Setenv("TIMEZONE", "UTC")

	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.AppPort)
	assert.Equal(t, "secret", cfg.JWTSecret)
	assert.Equal(t, 2*time.Hour, cfg.JWTTTL)
	assert.Equal(t, "3306", cfg.DbPort)
	assert.Equal(t, 10, cfg.BcryptCost)
	require.NoError(t, cfg.Validate())
}

func TestLoadConfig_FromYAMLFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := "app_port: \"7070\"\njwt_secret: from-file\ntimezone: Asia/Dhaka\ntrusted_proxies: \"127.0.0.1, 10.0.0.0/8\"\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "7070", cfg.AppPort)
	assert.Equal(t, "from-file", cfg.JWTSecret)
	assert.Equal(t, []string{"127.0.0.1", "10.0.0.0/8"}, cfg.Proxies())
	assert.Equal(t, 720*time.Hour, cfg.JWTTTL)

	loc, err := cfg.Location()
	require.NoError(t, err)
	assert.Equal(t, "Asia/Dhaka", loc.String())
}

func TestValidate(t *testing.T) {
	cfg := &Config{Timezone: "UTC"}
	assert.ErrorIs(t, cfg.Validate(), ErrMissingJWTSecret)

	cfg = &Config{JWTSecret: "s", Timezone: "Not/AZone"}
	assert.Error(t, cfg.Validate())
}
