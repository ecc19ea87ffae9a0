package bootstrap

import (
	"renobooking/cmd/bootstrap/components"

	"go.uber.org/fx"
)

// Module assembles the full application graph: config, storage, auth
// plumbing, then the repository/usecase/handler layers.
var Module = fx.Options(
	ConfigModule,
	DBModule,
	JWTModule,
	components.RepositoryModule,
	components.UseCaseModule,
	components.HandlerModule,
)
