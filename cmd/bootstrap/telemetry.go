package bootstrap

import (
	"context"
	"log/slog"

	"shop-winback/internal/pkg/config"
	"shop-winback/internal/pkg/telemetry"
	"shop-winback/internal/usecase/commands"

	"go.uber.org/fx"
)

var TelemetryModule = fx.Module("telemetry",
	fx.Provide(
		NewTelemetryProvider,
		fx.Annotate(
			NewCampaignMetrics,
			fx.As(new(commands.CampaignMetrics)),
		),
	),
)

func NewTelemetryProvider(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (*telemetry.Provider, error) {
	provider, err := telemetry.NewProvider(context.Background(), cfg.Telemetry, logger)
	if err != nil {
		return nil, err
	}
	lc.Append(fx.Hook{
		OnStop: provider.Shutdown,
	})
	return provider, nil
}

func NewCampaignMetrics(provider *telemetry.Provider) (*telemetry.CampaignMetrics, error) {
	return telemetry.NewCampaignMetrics(provider.Meter())
}
