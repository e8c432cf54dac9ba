package app

import (
	"fmt"

	"github.com/adanyl0v/go-team-tasks/internal/config"
	"github.com/adanyl0v/go-team-tasks/internal/repository"
	"github.com/adanyl0v/go-team-tasks/internal/repository/memory"
	"github.com/adanyl0v/go-team-tasks/internal/repository/postgres"
)

var (
	globalUserRepository repository.UserRepository
	globalTaskRepository repository.TaskRepository
)

func MustInitStorage() {
	driver := config.Global().StorageDriver
	switch driver {
	case config.StorageDriverPostgres:
		mustConnectPostgres()
		globalUserRepository = postgres.NewUserRepository(globalPostgresPool)
		globalTaskRepository = postgres.NewTaskRepository(globalPostgresPool)
	case config.StorageDriverMemory:
		store := memory.New()
		globalUserRepository = store
		globalTaskRepository = store
		globalLogger.Warn().Msg("using in-memory storage, data is lost on exit")
	default:
		globalLogger.Error().
			Str("driver", driver).
			Msg("unknown storage driver")
		panic(fmt.Errorf("unknown storage driver: %s", driver))
	}
	globalLogger.Info().
		Str("driver", driver).
		Msg("initialized storage")
}

func CloseStorage() {
	if globalPostgresPool != nil {
		disconnectPostgres()
	}
}
