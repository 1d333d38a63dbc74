// Package telemetry wires OpenTelemetry metrics for the campaign.
package telemetry

import (
	"context"
	"log/slog"

	"shop-winback/internal/pkg/config"
	"shop-winback/internal/pkg/errs"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetricgrpc"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
)

const instrumentationName = "shop-winback/campaign"

// Provider owns the meter provider. When telemetry is disabled it hands out a no-op meter.
type Provider struct {
	meterProvider *sdkmetric.MeterProvider
	meter         metric.Meter
	logger        *slog.Logger
}

func NewProvider(ctx context.Context, cfg config.TelemetryConfig, logger *slog.Logger) (*Provider, error) {
	p := &Provider{logger: logger.With(slog.String("component", "telemetry"))}

	if !cfg.Enabled {
		p.meter = noop.NewMeterProvider().Meter(instrumentationName)
		p.logger.InfoContext(ctx, "telemetry disabled")
		return p, nil
	}

	res, err := resource.Merge(
		resource.Default(),
		resource.NewSchemaless(
			semconv.ServiceName(cfg.ServiceName),
			semconv.DeploymentEnvironment(cfg.Environment),
			attribute.String("winback.component", "campaign"),
		),
	)
	if err != nil {
		return nil, errs.Wrap(err, "failed to create telemetry resource")
	}

	opts := []otlpmetricgrpc.Option{otlpmetricgrpc.WithEndpoint(cfg.OTLPEndpoint)}
	if cfg.Insecure {
		opts = append(opts, otlpmetricgrpc.WithInsecure())
	}
	exporter, err := otlpmetricgrpc.New(ctx, opts...)
	if err != nil {
		return nil, errs.Wrap(err, "failed to create metric exporter")
	}

	p.meterProvider = sdkmetric.NewMeterProvider(
		sdkmetric.WithResource(res),
		sdkmetric.WithReader(sdkmetric.NewPeriodicReader(exporter,
			sdkmetric.WithInterval(cfg.ExportInterval),
		)),
	)
	otel.SetMeterProvider(p.meterProvider)
	p.meter = p.meterProvider.Meter(instrumentationName)

	p.logger.InfoContext(ctx, "telemetry initialized",
		slog.String("service", cfg.ServiceName),
		slog.String("environment", cfg.Environment),
		slog.String("endpoint", cfg.OTLPEndpoint),
		slog.Bool("insecure", cfg.Insecure),
	)
	return p, nil
}

func (p *Provider) Meter() metric.Meter {
	return p.meter
}

// Shutdown flushes pending metrics. Export errors are logged, not returned.
func (p *Provider) Shutdown(ctx context.Context) error {
	if p.meterProvider == nil {
		return nil
	}
	if err := p.meterProvider.Shutdown(ctx); err != nil {
		p.logger.ErrorContext(ctx, "failed to shutdown meter provider", slog.String("error", err.Error()))
	}
	return nil
}
