package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadServerConfigDefaults(t *testing.T) {
	cfg, err := LoadServerConfig()
	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.ListenAddr)
	assert.Equal(t, "en-US", cfg.DefaultLocale)
	assert.NotEmpty(t, cfg.AllowedOrigins)
}

func TestLoadServerConfigFromEnv(t *testing.T) {
	t.Setenv("CC_LISTEN_ADDR", "127.0.0.1:9000")
	t.Setenv("CC_ALLOWED_ORIGINS", "https://a.example,https://b.example")
	t.Setenv("CC_DEFAULT_LOCALE", "de-DE")

	cfg, err := LoadServerConfig()
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:9000", cfg.ListenAddr)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.AllowedOrigins)
	assert.Equal(t, "de-DE", cfg.DefaultLocale)
}
