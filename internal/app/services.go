package app

import (
	"context"

	"github.com/adanyl0v/go-team-tasks/internal/config"
	"github.com/adanyl0v/go-team-tasks/internal/services"
)

var (
	globalAuthService     services.AuthService
	globalUserService     services.UserService
	globalTaskService     services.TaskService
	globalReminderService services.ReminderService
)

func MustInitServices() {
	jwtCfg := config.Global().JWT

	globalAuthService = services.NewAuthService(
		componentLogger("auth"),
		globalUserRepository,
		jwtCfg.Issuer,
		[]byte(jwtCfg.SigningKey),
	)
	globalUserService = services.NewUserService(
		componentLogger("users"),
		globalUserRepository,
	)
	globalTaskService = services.NewTaskService(
		componentLogger("tasks"),
		globalUserRepository,
		globalTaskRepository,
	)
	globalReminderService = services.NewReminderService(
		componentLogger("reminders"),
		globalUserRepository,
		globalTaskRepository,
		newDispatcher(),
	)
	globalLogger.Info().Msg("initialized services")
}

// MustSeedAdmin creates the configured admin account if it is missing.
func MustSeedAdmin() {
	cfg := config.Global().Admin
	if cfg.PhoneNumber == "" {
		globalLogger.Debug().Msg("no admin account configured")
		return
	}

	admin, created, err := globalUserService.EnsureAdmin(context.Background(), services.CreateMemberParams{
		Name:        cfg.Name,
		PhoneNumber: cfg.PhoneNumber,
		Password:    cfg.Password,
	})
	if err != nil {
		globalLogger.Error().
			Err(err).
			Msg("failed to seed admin")
		panic(err)
	}
	globalLogger.Info().
		Str("user_id", admin.ID).
		Bool("created", created).
		Msg("seeded admin")
}

// MustSweepReminders runs a single reminder sweep.
func MustSweepReminders() {
	result, err := globalReminderService.Sweep(context.Background())
	if err != nil {
		globalLogger.Error().
			Err(err).
			Msg("failed to sweep reminders")
		panic(err)
	}
	globalLogger.Info().
		Int("sent", len(result.Sent)).
		Int("failed", len(result.Failed)).
		Strs("failed_task_ids", result.Failed).
		Msg("swept reminders")
}
