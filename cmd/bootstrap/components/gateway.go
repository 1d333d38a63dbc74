package components

import (
	"log/slog"

	"shop-winback/internal/infra/evolution"
	"shop-winback/internal/infra/shopify"
	"shop-winback/internal/pkg/config"
	"shop-winback/internal/usecase/commands"

	"go.uber.org/fx"
)

var GatewayModule = fx.Module("gateway",
	fx.Provide(
		func(cfg config.Config, logger *slog.Logger) *shopify.Client {
			return shopify.NewClient(cfg.Shop, logger)
		},
		fx.Annotate(
			shopify.NewOrderClient,
			fx.As(new(commands.OrderSource)),
		),
		fx.Annotate(
			shopify.NewCouponClient,
			fx.As(new(commands.CouponSink)),
		),
		fx.Annotate(
			func(cfg config.Config, logger *slog.Logger) *evolution.Client {
				return evolution.NewClient(cfg.Messaging, logger)
			},
			fx.As(new(commands.MessageSink)),
		),
	),
)
