package components

import (
	"shareit/internal/handler"
	"shareit/internal/handler/api"
	"shareit/internal/handler/middleware"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewBookingHandler,
		api.NewUserHandler,
		api.NewItemHandler,
		api.NewItemRequestHandler,
		func(pool *pgxpool.Pool) *api.HealthHandler {
			return api.NewHealthHandler(pool)
		},
		middleware.NewActorMiddleware,
		NewHandlers,
	),
	fx.Invoke(handler.NewRouter),
)

func NewHandlers(
	auth *api.AuthHandler,
	bookings *api.BookingHandler,
	users *api.UserHandler,
	items *api.ItemHandler,
	itemRequests *api.ItemRequestHandler,
	health *api.HealthHandler,
) handler.Handlers {
	return handler.Handlers{
		Auth:         auth,
		Bookings:     bookings,
		Users:        users,
		Items:        items,
		ItemRequests: itemRequests,
		Health:       health,
	}
}
