package components

import (
	"bookwise/internal/pkg/clock"
	"bookwise/internal/pkg/config"
	"bookwise/internal/usecase/commands"
	"bookwise/internal/usecase/queries"
	"bookwise/internal/usecase/shared"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	shared.NewHostLocks,
	func(cfg config.Config) config.SchedulingConfig {
		return cfg.Scheduling
	},
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewBookingCommands,
		commands.NewEventTypeCommands,
		commands.NewScheduleCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewBookingQueries,
		queries.NewEventTypeQueries,
		queries.NewSlotQueries,
	),
)
