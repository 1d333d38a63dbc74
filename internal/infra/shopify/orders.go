package shopify

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"shop-winback/internal/domain/campaign"
	"shop-winback/internal/pkg/errs"

	"github.com/tomnomnom/linkheader"
)

type ordersPage struct {
	Orders *[]json.RawMessage `json:"orders"`
}

type OrderClient struct {
	client *Client
}

func NewOrderClient(client *Client) *OrderClient {
	return &OrderClient{client: client}
}

// FetchOrders returns every order created on the window day, across all statuses,
// following rel="next" links until the last page. When a page fails, the orders
// already collected are returned along with the error.
func (o *OrderClient) FetchOrders(ctx context.Context, window campaign.Window) ([]json.RawMessage, error) {
	logger := o.client.logger.With(slog.Int("window_days", window.Days), slog.String("window_date", window.DateString()))

	var orders []json.RawMessage
	next := o.firstPageURL(window)
	pages := 0

	for next != "" {
		var page ordersPage
		header, err := o.client.api.Do(ctx, http.MethodGet, next, nil, &page)
		if err != nil {
			return orders, errs.Mark(errs.Wrapf(err, "fetch orders page %d", pages+1), errs.ErrOrderFetchFailed)
		}
		pages++

		if page.Orders == nil {
			logger.WarnContext(ctx, "orders page without orders key", slog.Int("page", pages))
		} else {
			orders = append(orders, *page.Orders...)
		}

		following := nextPageURL(header)
		if following == next {
			break
		}
		next = following
	}

	logger.InfoContext(ctx, "fetched orders for window", slog.Int("orders", len(orders)), slog.Int("pages", pages))
	return orders, nil
}

func (o *OrderClient) firstPageURL(window campaign.Window) string {
	q := url.Values{}
	q.Set("created_at_min", window.Start().UTC().Format(time.RFC3339))
	q.Set("created_at_max", window.End().UTC().Format(time.RFC3339))
	q.Set("status", "any")
	q.Set("limit", strconv.Itoa(o.client.pageLimit))
	return o.client.baseURL + "/orders.json?" + q.Encode()
}

func nextPageURL(header http.Header) string {
	links := linkheader.Parse(header.Get("Link")).FilterByRel("next")
	if len(links) == 0 {
		return ""
	}
	return links[0].URL
}
