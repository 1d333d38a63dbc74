// Package shopify talks to the Shopify Admin REST API.
package shopify

import (
	"log/slog"

	"shop-winback/internal/infra"
	"shop-winback/internal/pkg/config"
)

const accessTokenHeader = "X-Shopify-Access-Token"

// Client is shared by the order and coupon adapters so they draw from one rate limit.
type Client struct {
	api       *infra.JSONClient
	baseURL   string
	pageLimit int
	logger    *slog.Logger
}

func NewClient(cfg config.ShopConfig, logger *slog.Logger, opts ...infra.JSONClientOption) *Client {
	logger = logger.With(slog.String("gateway", "shopify"))
	opts = append([]infra.JSONClientOption{
		infra.WithHeader(accessTokenHeader, cfg.AccessToken),
		infra.WithRateLimit(cfg.RatePerSec, cfg.RateBurst),
	}, opts...)

	pageLimit := cfg.PageLimit
	if pageLimit <= 0 || pageLimit > 250 {
		pageLimit = 250
	}

	return &Client{
		api:       infra.NewJSONClient(cfg.Timeout, logger, opts...),
		baseURL:   cfg.AdminAPIURL(),
		pageLimit: pageLimit,
		logger:    logger,
	}
}
