package bootstrap

import (
	"renobooking/internal/pkg/config"

	"go.uber.org/fx"
)

// ConfigModule loads the environment-backed configuration once for the graph.
var ConfigModule = fx.Module("config",
	fx.Provide(config.LoadConfig),
)
