package identity

import (
	"log/slog"

	"go.uber.org/fx"

	"github.com/novelnest/userservice/internal/config"
)

// Module exposes the identity provider client to the fx graph.
var Module = fx.Provide(newProvider)

type providerParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

func newProvider(p providerParams) (Provider, error) {
	return NewHTTPClient(p.Config.IdentityProviderURL, p.Logger)
}
