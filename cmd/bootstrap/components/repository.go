package components

import (
	"bookwise/internal/infra/readstore"
	"bookwise/internal/infra/repository"
	"bookwise/internal/usecase/commands"
	"bookwise/internal/usecase/queries"

	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		fx.Annotate(
			repository.NewBookingRepository,
			fx.As(new(commands.BookingRepository)),
		),
		fx.Annotate(
			repository.NewEventTypeRepository,
			fx.As(new(commands.EventTypeRepository)),
		),
		fx.Annotate(
			repository.NewScheduleRepository,
			fx.As(new(commands.ScheduleRepository)),
		),
		fx.Annotate(
			repository.NewNotificationRepository,
			fx.As(new(commands.NotificationRepository)),
		),
		// Read-side stores for queries
		fx.Annotate(
			readstore.NewBookingReadStore,
			fx.As(new(queries.BookingReadStore)),
			fx.As(new(queries.ActiveBookingReadStore)),
		),
		fx.Annotate(
			readstore.NewEventTypeReadStore,
			fx.As(new(queries.EventTypeReadStore)),
		),
		fx.Annotate(
			readstore.NewScheduleReadStore,
			fx.As(new(queries.ScheduleReadStore)),
		),
	),
)
