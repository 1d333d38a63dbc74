package commands

import (
	"context"
	"encoding/json"
	"log/slog"

	"shop-winback/internal/domain/campaign"
	"shop-winback/internal/domain/customer"
)

// CustomerExtractor reduces a window's orders to one profile per identity.
type CustomerExtractor struct {
	normalizer customer.PhoneNormalizer
	logger     *slog.Logger
}

func NewCustomerExtractor(normalizer customer.PhoneNormalizer, logger *slog.Logger) *CustomerExtractor {
	return &CustomerExtractor{
		normalizer: normalizer,
		logger:     logger,
	}
}

// Extract keeps the first order seen for each identity; later orders for the same
// identity never overwrite it. Profiles come back in order of first appearance.
// Malformed records are logged and skipped.
func (e *CustomerExtractor) Extract(ctx context.Context, window campaign.Window, orders []json.RawMessage) []*customer.Profile {
	seen := make(map[customer.Identity]struct{}, len(orders))
	profiles := make([]*customer.Profile, 0, len(orders))

	for i, raw := range orders {
		order, err := customer.ParseOrder(raw)
		if err != nil {
			e.logger.WarnContext(ctx, "skipping malformed order record",
				slog.Int("window_days", window.Days),
				slog.Int("index", i),
				slog.String("error", err.Error()),
			)
			continue
		}

		if _, ok := seen[order.Identity]; ok {
			continue
		}
		seen[order.Identity] = struct{}{}
		profiles = append(profiles, customer.NewProfileFromOrder(order, e.normalizer))
	}

	return profiles
}
