package config

import (
	"errors"
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/rs/zerolog"
)

type Reader interface {
	Read() (*Config, error)
}

type EnvReader struct{}

func NewEnvReader() EnvReader {
	return EnvReader{}
}

func (EnvReader) Read() (*Config, error) {
	cfg := new(Config)
	err := cleanenv.ReadEnv(cfg)
	if err != nil {
		return nil, err
	}

	err = cfg.Validate()
	if err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	switch c.Env {
	case EnvDev, EnvProd, EnvLocal:
	default:
		return fmt.Errorf("unknown env: %s", c.Env)
	}

	switch c.Log.Format {
	case "", LogFormatJSON, LogFormatConsole:
	default:
		return fmt.Errorf("unknown log format: %s", c.Log.Format)
	}
	if c.Log.Level != "" {
		_, err := zerolog.ParseLevel(c.Log.Level)
		if err != nil {
			return fmt.Errorf("invalid log level: %w", err)
		}
	}

	switch c.StorageDriver {
	case StorageDriverPostgres:
		if c.Postgres.Host == "" || c.Postgres.Username == "" || c.Postgres.Database == "" {
			return errors.New("postgres host, username and database are required")
		}
	case StorageDriverMemory:
	default:
		return fmt.Errorf("unknown storage driver: %s", c.StorageDriver)
	}

	if c.JWT.SigningKey == "" {
		return errors.New("jwt signing key is required")
	}
	if c.Twilio.Enabled() && (c.Twilio.AuthToken == "" || c.Twilio.FromNumber == "") {
		return errors.New("twilio auth token and phone number are required with an account sid")
	}
	if (c.Admin.PhoneNumber == "") != (c.Admin.Password == "") {
		return errors.New("admin phone number and password must be set together")
	}
	return nil
}
