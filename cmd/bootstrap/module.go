package bootstrap

import (
	"shop-winback/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	JWTModule,
	TelemetryModule,
	components.GatewayModule,
	components.UseCaseModule,
	components.HandlerModule,
)
