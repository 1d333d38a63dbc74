package telemetry

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const (
	outcomeOK    = "ok"
	outcomeError = "error"
)

// CampaignMetrics records run outcomes on an OpenTelemetry meter.
type CampaignMetrics struct {
	windowsFetched     metric.Int64Counter
	ordersFetched      metric.Int64Counter
	customersExtracted metric.Int64Counter
	customersProcessed metric.Int64Counter
	couponsCreated     metric.Int64Counter
	couponsFailed      metric.Int64Counter
	messagesSent       metric.Int64Counter
	messagesFailed     metric.Int64Counter
	runDuration        metric.Float64Histogram
}

func NewCampaignMetrics(meter metric.Meter) (*CampaignMetrics, error) {
	m := &CampaignMetrics{}
	var err error

	counters := []struct {
		target *metric.Int64Counter
		name   string
		desc   string
		unit   string
	}{
		{&m.windowsFetched, "winback.windows.fetched", "Lookback windows fetched from the shop", "{window}"},
		{&m.ordersFetched, "winback.orders.fetched", "Order records returned by the shop, malformed ones included", "{order}"},
		{&m.customersExtracted, "winback.customers.extracted", "Distinct customers extracted from window orders", "{customer}"},
		{&m.customersProcessed, "winback.customers.processed", "Customers that went through coupon and message", "{customer}"},
		{&m.couponsCreated, "winback.coupons.created", "Coupons created on the shop", "{coupon}"},
		{&m.couponsFailed, "winback.coupons.failed", "Coupon creations that failed", "{coupon}"},
		{&m.messagesSent, "winback.messages.sent", "WhatsApp messages accepted by the gateway", "{message}"},
		{&m.messagesFailed, "winback.messages.failed", "WhatsApp messages that failed", "{message}"},
	}
	for _, c := range counters {
		*c.target, err = meter.Int64Counter(c.name, metric.WithDescription(c.desc), metric.WithUnit(c.unit))
		if err != nil {
			return nil, err
		}
	}

	m.runDuration, err = meter.Float64Histogram("winback.run.duration",
		metric.WithDescription("Campaign run duration in seconds"),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(1, 10, 60, 300, 900, 1800, 3600, 7200, 14400),
	)
	if err != nil {
		return nil, err
	}

	return m, nil
}

func (m *CampaignMetrics) RecordWindow(ctx context.Context, days, orders, customers int, err error) {
	m.windowsFetched.Add(ctx, 1, metric.WithAttributes(
		attribute.Int("window.days", days),
		attribute.String("outcome", outcome(err)),
	))
	attrs := metric.WithAttributes(attribute.Int("window.days", days))
	m.ordersFetched.Add(ctx, int64(orders), attrs)
	m.customersExtracted.Add(ctx, int64(customers), attrs)
}

func (m *CampaignMetrics) RecordCoupon(ctx context.Context, days int, err error) {
	attrs := metric.WithAttributes(attribute.Int("window.days", days))
	if err != nil {
		m.couponsFailed.Add(ctx, 1, attrs)
		return
	}
	m.couponsCreated.Add(ctx, 1, attrs)
}

func (m *CampaignMetrics) RecordDispatch(ctx context.Context, days int, err error) {
	attrs := metric.WithAttributes(attribute.Int("window.days", days))
	m.customersProcessed.Add(ctx, 1, attrs)
	if err != nil {
		m.messagesFailed.Add(ctx, 1, attrs)
		return
	}
	m.messagesSent.Add(ctx, 1, attrs)
}

func (m *CampaignMetrics) RecordRun(ctx context.Context, trigger string, elapsed time.Duration, err error) {
	m.runDuration.Record(ctx, elapsed.Seconds(), metric.WithAttributes(
		attribute.String("trigger", trigger),
		attribute.String("outcome", outcome(err)),
	))
}

func outcome(err error) string {
	if err != nil {
		return outcomeError
	}
	return outcomeOK
}
