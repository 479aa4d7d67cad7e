package server_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"calcpad/internal/server"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := server.LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 5*time.Second, cfg.ShutdownTimeout)
	assert.EqualValues(t, 4096, cfg.MaxBodyBytes)
}

func TestLoadConfig_FromEnv(t *testing.T) {
	t.Setenv("CALCPAD_ADDR", "127.0.0.1:9000")
	t.Setenv("CALCPAD_LOG_LEVEL", "debug")
	t.Setenv("CALCPAD_SHUTDOWN_TIMEOUT", "250ms")
	t.Setenv("CALCPAD_MAX_BODY_BYTES", "128")

	cfg, err := server.LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, server.Config{
		Addr:            "127.0.0.1:9000",
		LogLevel:        "debug",
		ShutdownTimeout: 250 * time.Millisecond,
		MaxBodyBytes:    128,
	}, cfg)
}

func TestLoadConfig_Invalid(t *testing.T) {
	t.Setenv("CALCPAD_SHUTDOWN_TIMEOUT", "soon")
	_, err := server.LoadConfig()
	assert.Error(t, err)
}

func TestLoadConfig_NonPositiveBodyLimit(t *testing.T) {
	t.Setenv("CALCPAD_MAX_BODY_BYTES", "0")
	_, err := server.LoadConfig()
	assert.Error(t, err)
}
