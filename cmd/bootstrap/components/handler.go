package components

import (
	"salon-queue/internal/handler"
	"salon-queue/internal/handler/api"
	"salon-queue/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewBookingHandler,
		api.NewReservationHandler,
		api.NewLocationHandler,
		api.NewProviderHandler,
		middleware.NewAuthMiddleware,
		func(
			booking *api.BookingHandler,
			reservation *api.ReservationHandler,
			location *api.LocationHandler,
			provider *api.ProviderHandler,
		) handler.Handlers {
			return handler.Handlers{
				Booking:     booking,
				Reservation: reservation,
				Location:    location,
				Provider:    provider,
			}
		},
	),
	fx.Invoke(
		middleware.RegisterValidators,
		handler.NewRouter,
	),
)
