package bootstrap

import (
	"shop-winback/internal/pkg/config"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
		func(cfg config.Config) config.CampaignConfig { return cfg.Campaign },
	),
)
