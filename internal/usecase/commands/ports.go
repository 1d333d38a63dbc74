package commands

import (
	"context"
	"encoding/json"
	"time"

	"shop-winback/internal/domain/campaign"
	"shop-winback/internal/domain/coupon"
)

//go:generate mockgen -source=ports.go -destination=../../../tests/mock/commands/ports_mock.go -package=commandsmock

// OrderSource returns the raw orders created on the window day. On a transport
// failure it returns the orders collected so far together with the error.
type OrderSource interface {
	FetchOrders(ctx context.Context, window campaign.Window) ([]json.RawMessage, error)
}

// CouponSink creates a coupon on the shop as one all-or-nothing operation and
// returns the identifier of the discount rule backing it.
type CouponSink interface {
	CreateCoupon(ctx context.Context, c *coupon.Coupon) (int64, error)
}

// MessageSink delivers one rendered message to one number.
type MessageSink interface {
	SendText(ctx context.Context, number, text string) error
}

// WaitPolicy paces consecutive outbound messages. It returns the time actually waited.
type WaitPolicy interface {
	Wait(ctx context.Context) (time.Duration, error)
}

type CampaignMetrics interface {
	RecordWindow(ctx context.Context, days, orders, customers int, err error)
	RecordCoupon(ctx context.Context, days int, err error)
	RecordDispatch(ctx context.Context, days int, err error)
	RecordRun(ctx context.Context, trigger string, elapsed time.Duration, err error)
}
