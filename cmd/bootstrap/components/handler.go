package components

import (
	"barberbook/internal/handler"
	"barberbook/internal/handler/api"
	"barberbook/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewPublicHandler,
		api.NewCustomerAuthHandler,
		api.NewOwnerAuthHandler,
		api.NewBookingHandler,
		api.NewAdminHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
