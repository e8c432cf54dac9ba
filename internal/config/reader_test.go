package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("ENV", EnvLocal)
	t.Setenv("STORAGE_DRIVER", StorageDriverMemory)
	t.Setenv("JWT_SIGNING_KEY", "secret")
}

func TestEnvReader_Defaults(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := NewEnvReader().Read()
	require.NoError(t, err)

	require.Equal(t, EnvLocal, cfg.Env)
	require.Equal(t, "8080", cfg.HTTP.Port)
	require.Equal(t, 5*time.Second, cfg.HTTP.ShutdownTimeout)
	require.Equal(t, "team-tasks", cfg.JWT.Issuer)
	require.False(t, cfg.Twilio.Enabled())
}

func TestEnvReader_MissingSigningKey(t *testing.T) {
	t.Setenv("ENV", EnvLocal)
	t.Setenv("STORAGE_DRIVER", StorageDriverMemory)
	t.Setenv("JWT_SIGNING_KEY", "")

	_, err := NewEnvReader().Read()
	require.Error(t, err)
}

func TestConfig_Validate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Env:           EnvProd,
			StorageDriver: StorageDriverMemory,
			JWT:           JWTConfig{SigningKey: "secret"},
		}
	}

	cfg := valid()
	require.NoError(t, cfg.Validate())

	cfg = valid()
	cfg.Env = "staging"
	require.Error(t, cfg.Validate())

	cfg = valid()
	cfg.StorageDriver = StorageDriverPostgres
	require.Error(t, cfg.Validate())
	cfg.Postgres = PostgresConfig{Host: "db", Username: "u", Database: "tasks"}
	require.NoError(t, cfg.Validate())

	cfg = valid()
	cfg.Twilio.AccountSID = "AC1"
	require.Error(t, cfg.Validate())

	cfg = valid()
	cfg.Log = LogConfig{Level: "loud"}
	require.Error(t, cfg.Validate())
	cfg.Log = LogConfig{Level: "warn", Format: "xml"}
	require.Error(t, cfg.Validate())
	cfg.Log = LogConfig{Level: "warn", Format: LogFormatConsole}
	require.NoError(t, cfg.Validate())

	cfg = valid()
	cfg.Admin.PhoneNumber = "0900000000"
	require.Error(t, cfg.Validate())
	cfg.Admin.Password = "secret"
	require.NoError(t, cfg.Validate())
}

func TestPostgresConfig_URL(t *testing.T) {
	cfg := PostgresConfig{
		Host:     "db",
		Port:     5432,
		Username: "tasks",
		Password: "p@ss/word",
		Database: "team_tasks",
		SSLMode:  "disable",
	}
	require.Equal(t, "postgres://tasks:p%40ss%2Fword@db:5432/team_tasks?sslmode=disable", cfg.URL())
}
