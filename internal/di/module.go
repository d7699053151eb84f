package di

import (
	"go.uber.org/fx"

	"github.com/novelnest/userservice/internal/adapter/identity"
	"github.com/novelnest/userservice/internal/adapter/rabbitmq"
	"github.com/novelnest/userservice/internal/app"
	"github.com/novelnest/userservice/internal/config"
	"github.com/novelnest/userservice/internal/logger"
	"github.com/novelnest/userservice/internal/metrics"
	"github.com/novelnest/userservice/internal/pkg/token"
	"github.com/novelnest/userservice/internal/server/http/router"
	"github.com/novelnest/userservice/internal/storage/postgres"
	"github.com/novelnest/userservice/internal/usecase"
)

func Module(opts ...fx.Option) fx.Option {
	modules := []fx.Option{
		config.Module,
		logger.Module,
		metrics.Module,
		token.Module,
		postgres.Module,
		identity.Module,
		rabbitmq.Module,
		usecase.Module,
		router.Module,
		app.Module,
	}
	modules = append(modules, opts...)
	return fx.Options(modules...)
}
