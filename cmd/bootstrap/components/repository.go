package components

import (
	"petagenda/internal/infra/readstore"
	repo_impl "petagenda/internal/infra/repository"
	"petagenda/internal/usecase/commands"
	"petagenda/internal/usecase/queries"

	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		// Write side
		fx.Annotate(
			repo_impl.NewSubscriptionRepository,
			fx.As(new(commands.SubscriptionRepository)),
		),
		fx.Annotate(
			repo_impl.NewAppointmentRepository,
			fx.As(new(commands.AppointmentRepository)),
		),
		fx.Annotate(
			repo_impl.NewBoardingRepository,
			fx.As(new(commands.BoardingRepository)),
		),
		fx.Annotate(
			repo_impl.NewResetMarkerRepository,
			fx.As(new(commands.ResetMarkerRepository)),
		),
		// Read side
		fx.Annotate(
			readstore.NewSubscriptionReadStore,
			fx.As(new(queries.SubscriptionReadStore)),
		),
		fx.Annotate(
			readstore.NewAppointmentReadStore,
			fx.As(new(queries.AppointmentReadStore)),
		),
		fx.Annotate(
			readstore.NewBoardingReadStore,
			fx.As(new(queries.BoardingReadStore)),
		),
		fx.Annotate(
			readstore.NewResetMarkerReadStore,
			fx.As(new(queries.ResetMarkerReadStore)),
		),
	),
)
