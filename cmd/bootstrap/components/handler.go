package components

import (
	"renobooking/internal/handler"
	"renobooking/internal/handler/api"
	"renobooking/internal/handler/middleware"
	"renobooking/internal/pkg/config"
	"renobooking/internal/pkg/jwt"
	"renobooking/internal/usecase"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		NewAuthHandler,
		api.NewAvailabilityHandler,
		api.NewBookingHandler,
		api.NewScheduleAdminHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)

func NewAuthHandler(authUseCase usecase.AuthUseCase, cfg config.Config, jwtService *jwt.Service) *api.AuthHandler {
	return api.NewAuthHandler(authUseCase, cfg.Cookie, jwtService.TokenDuration())
}
