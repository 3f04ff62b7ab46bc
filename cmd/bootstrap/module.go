package bootstrap

import (
	"petagenda/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	DBModule,
	SchedulerModule,
	components.RepositoryModule,
	components.UseCaseModule,
	components.HandlerModule,
)
