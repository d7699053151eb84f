package token

import (
	"github.com/novelnest/userservice/internal/config"
	"go.uber.org/fx"
)

// Module provides the token strategy via fx.
var Module = fx.Provide(newTokenStrategy)

type strategyParams struct {
	fx.In

	Config *config.Config
}

func newTokenStrategy(p strategyParams) (Strategy, error) {
	return NewJWTStrategy(p.Config.JWTSecret, Options{})
}
