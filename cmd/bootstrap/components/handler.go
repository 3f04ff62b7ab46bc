package components

import (
	"petagenda/internal/handler"
	"petagenda/internal/handler/api"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewSubscriptionHandler,
		api.NewAppointmentHandler,
		api.NewDaycareHandler,
		api.NewHotelHandler,
		api.NewAdminHandler,
	),
	fx.Invoke(handler.NewRouter),
)
