package app

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/adanyl0v/go-team-tasks/internal/config"
)

func TestLoggerSettings(t *testing.T) {
	tests := []struct {
		name   string
		env    string
		log    config.LogConfig
		level  zerolog.Level
		format string
	}{
		{"local", config.EnvLocal, config.LogConfig{}, zerolog.TraceLevel, config.LogFormatConsole},
		{"dev", config.EnvDev, config.LogConfig{}, zerolog.DebugLevel, config.LogFormatJSON},
		{"prod", config.EnvProd, config.LogConfig{}, zerolog.InfoLevel, config.LogFormatJSON},
		{"prod with overrides", config.EnvProd, config.LogConfig{Level: "warn", Format: config.LogFormatConsole},
			zerolog.WarnLevel, config.LogFormatConsole},
		{"local as json", config.EnvLocal, config.LogConfig{Format: config.LogFormatJSON},
			zerolog.TraceLevel, config.LogFormatJSON},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			level, format, err := loggerSettings(tt.env, tt.log)
			require.NoError(t, err)
			require.Equal(t, tt.level, level)
			require.Equal(t, tt.format, format)
		})
	}

	_, _, err := loggerSettings("staging", config.LogConfig{})
	require.Error(t, err)

	_, _, err = loggerSettings(config.EnvProd, config.LogConfig{Level: "loud"})
	require.Error(t, err)
}

func TestNewLogWriter(t *testing.T) {
	var buf bytes.Buffer
	require.Same(t, &buf, newLogWriter(config.LogFormatJSON, &buf))

	_, ok := newLogWriter(config.LogFormatConsole, &buf).(zerolog.ConsoleWriter)
	require.True(t, ok)
}
