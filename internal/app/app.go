package app

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"

	"github.com/novelnest/userservice/internal/config"
	"github.com/novelnest/userservice/internal/metrics"
	"github.com/novelnest/userservice/internal/server/http/handlers"
	"github.com/novelnest/userservice/internal/worker"
)

// Module wires application services, runtime components, and lifecycle hooks.
var Module = fx.Options(
	fx.Provide(
		NewUserFacade,
		func(f *UserFacade) handlers.UserFacade { return f },
		func(f *UserFacade) worker.LedgerFacade { return f },
		newHTTPServer,
		newLedgerConsumer,
	),
	fx.Invoke(registerLifecycle),
)

type serverParams struct {
	fx.In

	Config *config.Config
	Router *gin.Engine
}

func newHTTPServer(p serverParams) *http.Server {
	return &http.Server{
		Addr:    p.Config.RunAddress,
		Handler: p.Router,
	}
}

type consumerParams struct {
	fx.In

	Source  worker.Source
	Facade  worker.LedgerFacade
	Config  *config.Config
	Logger  *slog.Logger
	Metrics *metrics.Metrics
}

func newLedgerConsumer(p consumerParams) *worker.LedgerConsumer {
	return worker.NewLedgerConsumer(
		p.Source,
		p.Facade,
		p.Config.ReconnectDelay,
		p.Config.LedgerMaxAttempts,
		p.Logger,
		p.Metrics,
	)
}

type lifecycleParams struct {
	fx.In

	Lifecycle  fx.Lifecycle
	Shutdowner fx.Shutdowner
	Logger     *slog.Logger
	Server     *http.Server
	Consumer   *worker.LedgerConsumer
	Config     *config.Config
	Ctx        context.Context
}

func registerLifecycle(p lifecycleParams) {
	p.Lifecycle.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			p.Logger.Info("starting user service", slog.String("addr", p.Server.Addr))
			// The OnStart context ends with the start phase; the consumer
			// lives on the application context.
			p.Consumer.Start(p.Ctx)
			go func() {
				if err := p.Server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					p.Logger.Error("http server terminated", slog.String("error", err.Error()))
					_ = p.Shutdowner.Shutdown()
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			p.Consumer.Stop()

			shutdownCtx := ctx
			cancel := func() {}
			if _, ok := ctx.Deadline(); !ok {
				shutdownCtx, cancel = context.WithTimeout(ctx, p.Config.ShutdownTimeout)
			}
			defer cancel()

			if err := p.Server.Shutdown(shutdownCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			p.Logger.Info("user service stopped")
			return nil
		},
	})
}
