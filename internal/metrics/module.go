package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/fx"
)

// Module provides the metrics registry and collectors via fx.
var Module = fx.Options(
	fx.Provide(newRegistry),
	fx.Provide(New),
	fx.Provide(func(r *prometheus.Registry) prometheus.Registerer { return r }),
	fx.Provide(func(r *prometheus.Registry) prometheus.Gatherer { return r }),
)

func newRegistry() *prometheus.Registry {
	return prometheus.NewRegistry()
}
