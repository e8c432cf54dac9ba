package app

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/adanyl0v/go-team-tasks/internal/config"
	"github.com/adanyl0v/go-team-tasks/internal/repository/postgres"
)

var globalPostgresPool *pgxpool.Pool

// mustConnectPostgres opens the pool and applies the schema before any
// repository is built on top of it.
func mustConnectPostgres() {
	cfg := config.Global().Postgres

	poolCfg, err := pgxpool.ParseConfig(cfg.URL())
	if err != nil {
		globalLogger.Error().
			Err(err).
			Msg("failed to parse postgres config")
		panic(err)
	}
	poolCfg.ConnConfig.ConnectTimeout = cfg.ConnectTimeout

	pool, err := pgxpool.NewWithConfig(context.Background(), poolCfg)
	if err != nil {
		globalLogger.Error().
			Err(err).
			Msg("failed to connect to postgres")
		panic(err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.PingTimeout)
	defer cancel()

	err = pool.Ping(ctx)
	if err != nil {
		pool.Close()
		globalLogger.Error().
			Err(err).
			Str("host", cfg.Host).
			Msg("failed to ping postgres")
		panic(err)
	}

	err = postgres.Migrate(ctx, pool)
	if err != nil {
		pool.Close()
		globalLogger.Error().
			Err(err).
			Str("database", cfg.Database).
			Msg("failed to apply schema")
		panic(err)
	}

	globalPostgresPool = pool
	globalLogger.Info().
		Str("host", cfg.Host).
		Int("port", cfg.Port).
		Str("database", cfg.Database).
		Int32("max_conns", poolCfg.MaxConns).
		Msg("connected to postgres")
}

func disconnectPostgres() {
	globalPostgresPool.Close()
	globalPostgresPool = nil
	globalLogger.Info().Msg("disconnected from postgres")
}
