package rabbitmq

import (
	"context"
	"log/slog"

	"go.uber.org/fx"

	"github.com/novelnest/userservice/internal/config"
	"github.com/novelnest/userservice/internal/worker"
)

// Module exposes the queue source to the fx graph.
var Module = fx.Options(
	fx.Provide(newSource),
	fx.Provide(func(s *Source) worker.Source { return s }),
	fx.Invoke(registerLifecycle),
)

type sourceParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

func newSource(p sourceParams) *Source {
	return New(p.Config.AMQPURL, p.Config.QueueName, p.Logger)
}

func registerLifecycle(lc fx.Lifecycle, source *Source) {
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return source.Close()
		},
	})
}
