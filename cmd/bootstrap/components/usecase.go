package components

import (
	"petagenda/internal/pkg/clock"
	"petagenda/internal/usecase/commands"
	"petagenda/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseCommandsModule,
	usecaseQueriesModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewSubscriptionCommands,
		commands.NewAppointmentCommands,
		commands.NewBoardingCommands,
		commands.NewAppointmentGenerator,
		commands.NewMonthlyResetScheduler,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewSubscriptionQueries,
		queries.NewAppointmentQueries,
		queries.NewBoardingQueries,
		queries.NewResetMarkerQueries,
	),
)
