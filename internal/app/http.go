package app

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/adanyl0v/go-team-tasks/internal/config"
	"github.com/adanyl0v/go-team-tasks/internal/delivery/http/v1"
	"github.com/adanyl0v/go-team-tasks/internal/translator"
)

func MustListenAndServeHTTP() {
	cfg := config.Global()
	if cfg.Env != config.EnvLocal {
		gin.SetMode(gin.ReleaseMode)
	}

	httpCfg := cfg.HTTP

	tr, err := translator.New()
	if err != nil {
		globalLogger.Error().
			Err(err).
			Msg("failed to load translations")
		panic(err)
	}

	v1Handler := v1.New(
		componentLogger("http"),
		tr,
		globalAuthService,
		globalUserService,
		globalTaskService,
		globalReminderService,
		cfg.Reminder.SweepToken,
	)

	router := gin.New()
	router.Use(v1Handler.HandleRequestLogMiddleware)
	router.Use(gin.Recovery())
	router.GET("/healthz", v1Handler.HandleHealth)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	v1.RegisterRoutes(router, v1Handler)

	server := &http.Server{
		Addr:    net.JoinHostPort(httpCfg.Host, httpCfg.Port),
		Handler: router,
	}

	go func() {
		globalLogger.Info().
			Str("host", httpCfg.Host).
			Str("port", httpCfg.Port).
			Msg("setting up http server")
		err := server.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			globalLogger.Error().
				Err(err).
				Msg("failed to listen and serve http")
			panic(err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	globalLogger.Info().
		Msg("shutting down http server")

	ctx, cancel := context.WithTimeout(context.Background(), httpCfg.ShutdownTimeout)
	defer cancel()

	err = server.Shutdown(ctx)
	if err != nil {
		globalLogger.Error().
			Err(err).
			Msg("failed to shutdown http server")
		panic(err)
	}
	globalLogger.Info().Msg("shut down http server")
}
