package components

import (
	"meeting-room-reservation/internal/handler"
	"meeting-room-reservation/internal/handler/api"
	"meeting-room-reservation/internal/handler/dto/request"
	"meeting-room-reservation/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewReservationHandler,
		api.NewRoomHandler,
		api.NewMeHandler,
		middleware.NewAuthMiddleware,
		func(r *api.ReservationHandler, room *api.RoomHandler, me *api.MeHandler) handler.Handlers {
			return handler.Handlers{Reservation: r, Room: room, Me: me}
		},
	),
	fx.Invoke(
		request.RegisterValidations,
		handler.NewRouter,
	),
)
