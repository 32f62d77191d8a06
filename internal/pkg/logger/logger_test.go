package logger

import (
	"bytes"
	"encoding/json"
	"os"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigureWritesJSON(t *testing.T) {
	var buf bytes.Buffer
	Configure(Config{Level: InfoLevel, Output: &buf})
	t.Cleanup(func() { Configure(Config{Level: InfoLevel, Pretty: true, Output: os.Stdout}) })

	Debug().Msg("hidden")
	Info().Str("email", "a@b.c").Msg("Login attempt")

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "Login attempt", entry["message"])
	assert.Equal(t, "a@b.c", entry["email"])
	assert.Equal(t, "placement", entry["service"])
}

func TestConfigFrom(t *testing.T) {
	cfg := ConfigFrom(" DEBUG ", "text")
	assert.Equal(t, DebugLevel, cfg.Level)
	assert.True(t, cfg.Pretty)

	cfg = ConfigFrom("warn", "json")
	assert.False(t, cfg.Pretty)
}

func TestUnknownLevelFallsBackToInfo(t *testing.T) {
	assert.Equal(t, zerolog.InfoLevel, LogLevel("verbose").zerologLevel())
	assert.Equal(t, zerolog.InfoLevel, LogLevel("").zerologLevel())
	assert.Equal(t, zerolog.WarnLevel, WarnLevel.zerologLevel())
}
