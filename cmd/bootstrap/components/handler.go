package components

import (
	"bookwise/internal/handler"
	"bookwise/internal/handler/api"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewBookingHandler,
		api.NewEventTypeHandler,
		api.NewScheduleHandler,
		api.NewSlotHandler,
	),
	fx.Invoke(handler.NewRouter),
)
