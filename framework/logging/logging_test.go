package logging

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		raw  string
		want zerolog.Level
		ok   bool
	}{
		{"", zerolog.InfoLevel, false},
		{"debug", zerolog.DebugLevel, true},
		{" WARNING ", zerolog.WarnLevel, true},
		{"off", zerolog.Disabled, true},
		{"loud", zerolog.InfoLevel, false},
	}
	for _, tt := range tests {
		got, ok := ParseLevel(tt.raw)
		assert.Equal(t, tt.want, got, tt.raw)
		assert.Equal(t, tt.ok, ok, tt.raw)
	}
}

func TestDefaultConfig_EnvOverrides(t *testing.T) {
	t.Setenv(EnvLogLevel, "error")
	t.Setenv(EnvLogNoColor, "true")

	cfg := DefaultConfig(ProfileRuntime)
	assert.Equal(t, zerolog.ErrorLevel, cfg.Level)
	assert.True(t, cfg.NoColor)
	assert.True(t, cfg.Timestamp)
}

func TestDefaultConfig_TestProfile(t *testing.T) {
	t.Setenv(EnvLogLevel, "")

	cfg := DefaultConfig(ProfileTest)
	assert.Equal(t, zerolog.DebugLevel, cfg.Level)
	assert.False(t, cfg.Timestamp)
}

func TestNew_WritesAppField(t *testing.T) {
	var buf bytes.Buffer
	log := New("beans", Config{Level: zerolog.InfoLevel, NoColor: true, Out: &buf})

	log.Debug().Msg("hidden")
	log.Info().Str("type", "*demo.ServiceA").Msg("wired")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "wired")
	assert.Contains(t, out, "app=beans")
	assert.Contains(t, out, "type=*demo.ServiceA")
}
