package components

import (
	"shop-winback/internal/handler"
	"shop-winback/internal/handler/api"
	"shop-winback/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewCampaignHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
