package commands

import (
	"context"
	"log/slog"

	"shop-winback/internal/domain/campaign"
	"shop-winback/internal/domain/coupon"
	"shop-winback/internal/domain/customer"
	"shop-winback/internal/pkg/clock"
	"shop-winback/internal/pkg/config"
	"shop-winback/internal/pkg/errs"
	"shop-winback/internal/usecase/readmodel"

	"github.com/google/uuid"
)

var (
	ErrCouponCreationFailed = errs.ErrCouponCreationFailed
	ErrDispatchFailed       = errs.ErrDispatchFailed
)

type CampaignCommands interface {
	Run(ctx context.Context, runID uuid.UUID, trigger string) (*readmodel.CampaignRunRM, error)
}

// windowCustomers is the extraction result for one window, consumed right away by the send loop.
type windowCustomers struct {
	window   campaign.Window
	profiles []*customer.Profile
}

type campaignUseCaseImpl struct {
	source     OrderSource
	coupons    CouponSink
	messages   MessageSink
	waiter     WaitPolicy
	extractor  *CustomerExtractor
	composer   *campaign.Composer
	metrics    CampaignMetrics
	clock      clock.Clock
	logger     *slog.Logger
	windowDays []int
}

func NewCampaignUseCase(
	source OrderSource,
	coupons CouponSink,
	messages MessageSink,
	waiter WaitPolicy,
	extractor *CustomerExtractor,
	composer *campaign.Composer,
	metrics CampaignMetrics,
	clock clock.Clock,
	logger *slog.Logger,
	cfg config.CampaignConfig,
) CampaignCommands {
	windowDays := cfg.WindowDays
	if len(windowDays) == 0 {
		windowDays = campaign.DefaultWindowDays
	}
	return &campaignUseCaseImpl{
		source:     source,
		coupons:    coupons,
		messages:   messages,
		waiter:     waiter,
		extractor:  extractor,
		composer:   composer,
		metrics:    metrics,
		clock:      clock,
		logger:     logger,
		windowDays: windowDays,
	}
}

// Run executes one campaign pass: every window is fetched and extracted first, then
// each customer gets a coupon and a message, paced by the wait policy. Failures of a
// single window, coupon or message are logged and never abort the run; only context
// cancellation does.
func (u *campaignUseCaseImpl) Run(ctx context.Context, runID uuid.UUID, trigger string) (*readmodel.CampaignRunRM, error) {
	report := &readmodel.CampaignRunRM{
		ID:        runID,
		Trigger:   trigger,
		Status:    readmodel.RunStatusRunning,
		StartedAt: u.clock.Now(),
	}
	logger := u.logger.With(slog.String("run_id", runID.String()))
	logger.InfoContext(ctx, "starting win-back campaign run", slog.String("trigger", trigger))

	windows := campaign.ComputeWindows(u.clock.Now(), u.windowDays)
	batches := u.collectCustomers(ctx, logger, windows, report)

	total := 0
	for _, b := range batches {
		total += len(b.profiles)
	}
	if total == 0 {
		logger.WarnContext(ctx, "no customers found in any window")
	}

	processed := 0
	for _, b := range batches {
		logger.InfoContext(ctx, "processing window customers",
			slog.Int("window_days", b.window.Days),
			slog.String("window_date", b.window.DateString()),
			slog.Int("customers", len(b.profiles)),
		)

		for _, profile := range b.profiles {
			if err := ctx.Err(); err != nil {
				return u.finish(report, err), errs.Wrap(err, "campaign run interrupted")
			}

			u.processCustomer(ctx, logger, b.window, profile, report)
			processed++

			if processed == total {
				break
			}
			waited, err := u.waiter.Wait(ctx)
			if err != nil {
				return u.finish(report, err), errs.Wrap(err, "pacing wait interrupted")
			}
			logger.InfoContext(ctx, "waiting before next message", slog.Duration("wait", waited))
		}
	}

	logger.InfoContext(ctx, "win-back campaign run finished",
		slog.Int("customers", processed),
		slog.Int("coupons_created", report.CouponsCreated),
		slog.Int("coupons_failed", report.CouponsFailed),
		slog.Int("messages_sent", report.MessagesSent),
		slog.Int("messages_failed", report.MessagesFailed),
	)
	return u.finish(report, nil), nil
}

func (u *campaignUseCaseImpl) collectCustomers(
	ctx context.Context,
	logger *slog.Logger,
	windows []campaign.Window,
	report *readmodel.CampaignRunRM,
) []windowCustomers {
	batches := make([]windowCustomers, 0, len(windows))

	for _, w := range windows {
		windowRM := readmodel.CampaignWindowRM{Days: w.Days, Date: w.DateString()}

		orders, err := u.source.FetchOrders(ctx, w)
		if err != nil {
			msg := err.Error()
			windowRM.FetchError = &msg
			logger.ErrorContext(ctx, "failed to fetch orders for window",
				slog.Int("window_days", w.Days),
				slog.String("window_date", w.DateString()),
				slog.Int("orders_collected", len(orders)),
				slog.String("error", msg),
			)
		}
		windowRM.Orders = len(orders)

		if len(orders) == 0 {
			logger.InfoContext(ctx, "no orders found for window",
				slog.Int("window_days", w.Days),
				slog.String("window_date", w.DateString()),
			)
			report.Windows = append(report.Windows, windowRM)
			u.metrics.RecordWindow(ctx, w.Days, 0, 0, err)
			continue
		}

		profiles := u.extractor.Extract(ctx, w, orders)
		windowRM.Customers = len(profiles)
		report.Windows = append(report.Windows, windowRM)
		u.metrics.RecordWindow(ctx, w.Days, len(orders), len(profiles), err)

		if len(profiles) > 0 {
			batches = append(batches, windowCustomers{window: w, profiles: profiles})
		}
	}

	return batches
}

// processCustomer creates the coupon and sends the message. A failed coupon does not
// stop the message: the customer is still contacted with a code that may not exist
// on the shop.
func (u *campaignUseCaseImpl) processCustomer(
	ctx context.Context,
	logger *slog.Logger,
	window campaign.Window,
	profile *customer.Profile,
	report *readmodel.CampaignRunRM,
) {
	code, percentOff := coupon.Derive(profile.Name(), profile.Phone(), window.Days)
	logger = logger.With(
		slog.Int("window_days", window.Days),
		slog.String("email", profile.Email()),
		slog.String("coupon_code", code.String()),
	)

	now := u.clock.Now()
	validTo := now.Add(coupon.DefaultValidity)
	couponCreated := false
	issued, err := coupon.Issue(code, percentOff, profile.Name(), now)
	if err == nil {
		validTo = issued.ValidTo()
		var ruleID int64
		ruleID, err = u.coupons.CreateCoupon(ctx, issued)
		if err == nil {
			couponCreated = true
			logger.InfoContext(ctx, "coupon created on shop", slog.Int64("price_rule_id", ruleID))
		}
	}
	if err != nil {
		err = errs.Mark(err, ErrCouponCreationFailed)
		report.CouponsFailed++
		logger.ErrorContext(ctx, "coupon creation failed, message will still be sent", slog.String("error", err.Error()))
	} else {
		report.CouponsCreated++
	}
	u.metrics.RecordCoupon(ctx, window.Days, err)

	message := u.composer.Compose(profile.FirstName(), code, percentOff, window.Days, validTo)

	logger.InfoContext(ctx, "win-back customer",
		slog.String("last_order_date", profile.LastOrderDate()),
		slog.String("name", profile.Name()),
		slog.String("phone", profile.Phone()),
		slog.Int("discount_percent", percentOff),
		slog.String("valid_until", u.composer.Deadline(validTo)),
		slog.Bool("coupon_created", couponCreated),
	)
	logger.DebugContext(ctx, "rendered message", slog.String("message", message))

	err = u.messages.SendText(ctx, profile.Phone(), message)
	if err != nil {
		err = errs.Mark(err, ErrDispatchFailed)
		report.MessagesFailed++
		logger.WarnContext(ctx, "failed to send whatsapp message", slog.String("error", err.Error()))
	} else {
		report.MessagesSent++
		logger.InfoContext(ctx, "whatsapp message sent", slog.String("phone", profile.Phone()))
	}
	u.metrics.RecordDispatch(ctx, window.Days, err)
}

func (u *campaignUseCaseImpl) finish(report *readmodel.CampaignRunRM, err error) *readmodel.CampaignRunRM {
	finishedAt := u.clock.Now()
	report.FinishedAt = &finishedAt
	if err != nil {
		msg := err.Error()
		report.Error = &msg
		report.Status = readmodel.RunStatusFailed
		return report
	}
	report.Status = readmodel.RunStatusSucceeded
	return report
}
