package bootstrap

import (
	"petagenda/internal/pkg/config"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
		func(cfg config.Config) config.SchedulerConfig { return cfg.Scheduler },
		func(cfg config.Config) config.TariffConfig { return cfg.Tariff },
	),
)
