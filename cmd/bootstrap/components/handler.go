package components

import (
	"car-rental-api/internal/handler"
	"car-rental-api/internal/handler/api"
	"car-rental-api/internal/handler/middleware"
	"car-rental-api/internal/pkg/config"
	"car-rental-api/internal/pkg/jwt"
	"car-rental-api/internal/usecase/commands"
	"car-rental-api/internal/usecase/queries"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		NewAuthHandler,
		api.NewGarageHandler,
		api.NewCarHandler,
		api.NewReservationHandler,
		api.NewReviewHandler,
		api.NewMaintenanceHandler,
		middleware.NewAuthMiddleware,
		NewHandlers,
	),
	fx.Invoke(handler.NewRouter),
)

func NewAuthHandler(
	authCommands commands.AuthCommands,
	userQueries queries.UserQueries,
	jwtService *jwt.Service,
	cfg config.Config,
) *api.AuthHandler {
	return api.NewAuthHandler(authCommands, userQueries, jwtService, cfg.Cookie)
}

func NewHandlers(
	auth *api.AuthHandler,
	garage *api.GarageHandler,
	car *api.CarHandler,
	reservation *api.ReservationHandler,
	review *api.ReviewHandler,
	maintenance *api.MaintenanceHandler,
) handler.Handlers {
	return handler.Handlers{
		Auth:        auth,
		Garage:      garage,
		Car:         car,
		Reservation: reservation,
		Review:      review,
		Maintenance: maintenance,
	}
}
