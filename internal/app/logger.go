package app

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"

	"github.com/adanyl0v/go-team-tasks/internal/config"
)

var globalLogger zerolog.Logger

func InitDefaultLogger() {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	zerolog.TimestampFieldName = "timestamp"

	globalLogger = zerolog.New(os.Stdout).
		With().
		Timestamp().
		Caller().
		Int("pid", os.Getpid()).
		Logger()

	globalLogger.Info().Msg("initialized default logger")
}

func MustInitApplicationLogger() {
	cfg := config.Global()

	level, format, err := loggerSettings(cfg.Env, cfg.Log)
	if err != nil {
		globalLogger.Error().
			Err(err).
			Str("env", cfg.Env).
			Msg("invalid logger settings")
		panic(err)
	}

	zerolog.SetGlobalLevel(level)
	globalLogger = globalLogger.Output(newLogWriter(format, os.Stdout))
	globalLogger.Info().
		Str("level", level.String()).
		Str("format", format).
		Msg("initialized application logger")
}

// loggerSettings derives the level and format from ENV, then applies
// LOG_LEVEL and LOG_FORMAT on top.
func loggerSettings(env string, logCfg config.LogConfig) (zerolog.Level, string, error) {
	var (
		level  zerolog.Level
		format = config.LogFormatJSON
	)
	switch env {
	case config.EnvDev:
		level = zerolog.DebugLevel
	case config.EnvProd:
		level = zerolog.InfoLevel
	case config.EnvLocal:
		level = zerolog.TraceLevel
		format = config.LogFormatConsole
	default:
		return zerolog.NoLevel, "", fmt.Errorf("unknown env: %s", env)
	}

	if logCfg.Level != "" {
		parsed, err := zerolog.ParseLevel(logCfg.Level)
		if err != nil {
			return zerolog.NoLevel, "", fmt.Errorf("invalid log level: %w", err)
		}
		level = parsed
	}
	if logCfg.Format != "" {
		format = logCfg.Format
	}
	return level, format, nil
}

func newLogWriter(format string, out io.Writer) io.Writer {
	if format != config.LogFormatConsole {
		return out
	}
	consoleWriter := zerolog.NewConsoleWriter()
	consoleWriter.TimeFormat = time.DateTime
	consoleWriter.Out = out
	return consoleWriter
}

// componentLogger tags every entry with the component that wrote it.
func componentLogger(component string) zerolog.Logger {
	return globalLogger.With().
		Str("component", component).
		Logger()
}
