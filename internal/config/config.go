package config

import (
	"net"
	"net/url"
	"strconv"
	"time"
)

const (
	EnvDev   = "dev"
	EnvProd  = "prod"
	EnvLocal = "local"
)

const (
	LogFormatJSON    = "json"
	LogFormatConsole = "console"
)

const (
	StorageDriverPostgres = "postgres"
	StorageDriverMemory   = "memory"
)

var globalConfig *Config

func Global() *Config {
	return globalConfig
}

func SetGlobal(cfg *Config) {
	globalConfig = cfg
}

type Config struct {
	Env           string `env:"ENV" env-required:"true"`
	StorageDriver string `env:"STORAGE_DRIVER" env-default:"postgres"`
	Log           LogConfig
	HTTP          HTTPConfig
	Postgres      PostgresConfig
	JWT           JWTConfig
	Twilio        TwilioConfig
	Reminder      ReminderConfig
	Admin         AdminConfig
}

// LogConfig overrides the level and format implied by ENV when set.
type LogConfig struct {
	Level  string `env:"LOG_LEVEL"`
	Format string `env:"LOG_FORMAT"`
}

type HTTPConfig struct {
	Host            string        `env:"HTTP_HOST" env-default:"0.0.0.0"`
	Port            string        `env:"HTTP_PORT" env-default:"8080"`
	ShutdownTimeout time.Duration `env:"HTTP_SHUTDOWN_TIMEOUT" env-default:"5s"`
}

type PostgresConfig struct {
	Host           string        `env:"POSTGRES_HOST"`
	Port           int           `env:"POSTGRES_PORT" env-default:"5432"`
	Username       string        `env:"POSTGRES_USERNAME"`
	Password       string        `env:"POSTGRES_PASSWORD"`
	Database       string        `env:"POSTGRES_DATABASE"`
	SSLMode        string        `env:"POSTGRES_SSL_MODE" env-default:"disable"`
	ConnectTimeout time.Duration `env:"POSTGRES_CONNECT_TIMEOUT" env-default:"10s"`
	PingTimeout    time.Duration `env:"POSTGRES_PING_TIMEOUT" env-default:"10s"`
}

// URL renders the pgx connection string. Credentials are escaped.
func (c PostgresConfig) URL() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.Username, c.Password),
		Host:     net.JoinHostPort(c.Host, strconv.Itoa(c.Port)),
		Path:     "/" + c.Database,
		RawQuery: url.Values{"sslmode": {c.SSLMode}}.Encode(),
	}
	return u.String()
}

type JWTConfig struct {
	Issuer     string `env:"JWT_ISSUER" env-default:"team-tasks"`
	SigningKey string `env:"JWT_SIGNING_KEY" env-required:"true"`
}

// TwilioConfig is optional. Without an account SID reminders are only logged.
type TwilioConfig struct {
	AccountSID string `env:"TWILIO_ACCOUNT_SID"`
	AuthToken  string `env:"TWILIO_AUTH_TOKEN"`
	FromNumber string `env:"TWILIO_PHONE_NUMBER"`
}

func (c TwilioConfig) Enabled() bool {
	return c.AccountSID != ""
}

type ReminderConfig struct {
	// SweepToken guards the sweep endpoint when set.
	SweepToken string `env:"REMINDER_SWEEP_TOKEN"`
}

// AdminConfig describes the admin account created at startup if missing.
type AdminConfig struct {
	Name        string `env:"ADMIN_NAME" env-default:"Admin"`
	PhoneNumber string `env:"ADMIN_PHONE_NUMBER"`
	Password    string `env:"ADMIN_PASSWORD"`
}
