package app

import (
	"github.com/adanyl0v/go-team-tasks/internal/config"
	"github.com/adanyl0v/go-team-tasks/internal/notify"
)

func newDispatcher() notify.Dispatcher {
	cfg := config.Global().Twilio
	logger := componentLogger("notify")
	if !cfg.Enabled() {
		globalLogger.Warn().Msg("twilio is not configured, reminders will only be logged")
		return notify.NewLogDispatcher(logger)
	}

	globalLogger.Info().
		Str("from", cfg.FromNumber).
		Msg("using twilio dispatcher")
	return notify.NewTwilioDispatcher(logger, cfg.AccountSID, cfg.AuthToken, cfg.FromNumber)
}
