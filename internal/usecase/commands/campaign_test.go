//go:build unit

package commands_test

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"
	"time"

	"shop-winback/internal/domain/campaign"
	"shop-winback/internal/domain/coupon"
	"shop-winback/internal/domain/customer"
	"shop-winback/internal/pkg/clock"
	"shop-winback/internal/pkg/config"
	"shop-winback/internal/usecase/commands"
	"shop-winback/internal/usecase/readmodel"
	"shop-winback/tests/common/builder"
	commandsmock "shop-winback/tests/mock/commands"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type CampaignUseCaseTestSuite struct {
	suite.Suite
	mockCtrl     *gomock.Controller
	mockSource   *commandsmock.MockOrderSource
	mockCoupons  *commandsmock.MockCouponSink
	mockMessages *commandsmock.MockMessageSink
	mockWaiter   *commandsmock.MockWaitPolicy
	mockMetrics  *commandsmock.MockCampaignMetrics
	clock        *clock.MockClock
	ctx          context.Context
}

var campaignNow = time.Date(2026, 10, 16, 11, 0, 0, 0, time.UTC)

func (s *CampaignUseCaseTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockSource = commandsmock.NewMockOrderSource(s.mockCtrl)
	s.mockCoupons = commandsmock.NewMockCouponSink(s.mockCtrl)
	s.mockMessages = commandsmock.NewMockMessageSink(s.mockCtrl)
	s.mockWaiter = commandsmock.NewMockWaitPolicy(s.mockCtrl)
	s.mockMetrics = commandsmock.NewMockCampaignMetrics(s.mockCtrl)
	s.clock = clock.NewMockClock(campaignNow)
	s.ctx = context.Background()

	s.mockMetrics.EXPECT().RecordWindow(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()
	s.mockMetrics.EXPECT().RecordCoupon(gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()
	s.mockMetrics.EXPECT().RecordDispatch(gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()
}

func (s *CampaignUseCaseTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestCampaignUseCaseSuite(t *testing.T) {
	suite.Run(t, new(CampaignUseCaseTestSuite))
}

func (s *CampaignUseCaseTestSuite) newUseCase(windowDays ...int) commands.CampaignCommands {
	logger := slog.New(slog.DiscardHandler)
	composer := campaign.NewComposer(time.FixedZone("BRT", -3*60*60), "Fiber", "5199692122")
	return commands.NewCampaignUseCase(
		s.mockSource,
		s.mockCoupons,
		s.mockMessages,
		s.mockWaiter,
		commands.NewCustomerExtractor(customer.NewPhoneNormalizer("55"), logger),
		composer,
		s.mockMetrics,
		s.clock,
		logger,
		config.CampaignConfig{WindowDays: windowDays},
	)
}

// ordersByDays serves a fixed order list per window size.
func ordersByDays(byDays map[int][]json.RawMessage, errByDays map[int]error) func(context.Context, campaign.Window) ([]json.RawMessage, error) {
	return func(_ context.Context, w campaign.Window) ([]json.RawMessage, error) {
		return byDays[w.Days], errByDays[w.Days]
	}
}

func (s *CampaignUseCaseTestSuite) TestRun_SingleCustomerEndToEnd() {
	orders := []json.RawMessage{
		builder.MalformedOrder(),
		builder.NewOrderBuilder().BuildRaw(),
	}
	s.mockSource.EXPECT().FetchOrders(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, w campaign.Window) ([]json.RawMessage, error) {
			s.Equal(30, w.Days)
			s.Equal("2026-09-16", w.DateString())
			return orders, nil
		})

	s.mockCoupons.EXPECT().CreateCoupon(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, c *coupon.Coupon) (int64, error) {
			s.Equal(coupon.Code("JOO65432OFF10"), c.Code())
			s.Equal(10, c.Discount().PercentOff())
			s.Equal(campaignNow, c.ValidFrom())
			s.Equal(campaignNow.Add(24*time.Hour), c.ValidTo())
			return 0, errors.New("shop returned 422")
		})

	var sentTo, sentText string
	s.mockMessages.EXPECT().SendText(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, number, text string) error {
			sentTo, sentText = number, text
			return nil
		})
	s.mockWaiter.EXPECT().Wait(gomock.Any()).Times(0)

	runID := uuid.New()
	report, err := s.newUseCase(30).Run(s.ctx, runID, readmodel.TriggerManual)

	s.Require().NoError(err)
	s.Equal("5551998765432", sentTo)
	s.Contains(sentText, "Olá, João!")
	s.Contains(sentText, "*JOO65432OFF10*")
	s.Contains(sentText, "*10% de desconto*")
	s.Contains(sentText, "*30 dias*")
	s.Contains(sentText, "*17/10/2026 às 08:00*")

	s.Equal(runID, report.ID)
	s.Equal(readmodel.RunStatusSucceeded, report.Status)
	s.Equal(0, report.CouponsCreated)
	s.Equal(1, report.CouponsFailed)
	s.Equal(1, report.MessagesSent)
	s.Equal(0, report.MessagesFailed)
	s.Require().Len(report.Windows, 1)
	s.Equal(readmodel.CampaignWindowRM{Days: 30, Date: "2026-09-16", Orders: 2, Customers: 1}, report.Windows[0])
	s.NotNil(report.FinishedAt)
	s.Nil(report.Error)
}

func (s *CampaignUseCaseTestSuite) TestRun_MessageDeadlineMatchesIssuedCoupon() {
	s.mockSource.EXPECT().FetchOrders(gomock.Any(), gomock.Any()).
		Return([]json.RawMessage{builder.NewOrderBuilder().BuildRaw()}, nil)

	var issuedValidTo time.Time
	s.mockCoupons.EXPECT().CreateCoupon(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, c *coupon.Coupon) (int64, error) {
			issuedValidTo = c.ValidTo()
			// slow shop response
			s.clock.Add(90 * time.Minute)
			return 77, nil
		})

	var sentText string
	s.mockMessages.EXPECT().SendText(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _, text string) error {
			sentText = text
			return nil
		})

	report, err := s.newUseCase(30).Run(s.ctx, uuid.New(), readmodel.TriggerSchedule)

	s.Require().NoError(err)
	s.Equal(1, report.CouponsCreated)
	s.Equal(campaignNow.Add(24*time.Hour), issuedValidTo)
	s.Contains(sentText, "*17/10/2026 às 08:00*")
	s.NotContains(sentText, "09:30")
}

func (s *CampaignUseCaseTestSuite) TestRun_WaitsBetweenButNotAfterLastMessage() {
	s.mockSource.EXPECT().FetchOrders(gomock.Any(), gomock.Any()).Times(2).
		DoAndReturn(ordersByDays(map[int][]json.RawMessage{
			30: {
				builder.NewOrderBuilder().WithEmail("a@x.com").BuildRaw(),
				builder.NewOrderBuilder().WithEmail("b@x.com").BuildRaw(),
			},
			60: {
				builder.NewOrderBuilder().WithEmail("c@x.com").BuildRaw(),
			},
		}, nil))
	s.mockCoupons.EXPECT().CreateCoupon(gomock.Any(), gomock.Any()).Times(3).Return(int64(1), nil)

	var events []string
	s.mockMessages.EXPECT().SendText(gomock.Any(), gomock.Any(), gomock.Any()).Times(3).
		DoAndReturn(func(context.Context, string, string) error {
			events = append(events, "send")
			return nil
		})
	s.mockWaiter.EXPECT().Wait(gomock.Any()).Times(2).
		DoAndReturn(func(context.Context) (time.Duration, error) {
			events = append(events, "wait")
			return 150 * time.Second, nil
		})

	report, err := s.newUseCase(60, 30).Run(s.ctx, uuid.New(), readmodel.TriggerSchedule)

	s.Require().NoError(err)
	s.Equal([]string{"send", "wait", "send", "wait", "send"}, events)
	s.Equal(3, report.CouponsCreated)
	s.Equal(3, report.MessagesSent)
}

func (s *CampaignUseCaseTestSuite) TestRun_WindowFetchFailureIsIsolated() {
	s.mockSource.EXPECT().FetchOrders(gomock.Any(), gomock.Any()).Times(3).
		DoAndReturn(ordersByDays(
			map[int][]json.RawMessage{
				60: {builder.NewOrderBuilder().WithEmail("partial@x.com").BuildRaw()},
				90: {builder.NewOrderBuilder().WithEmail("ok@x.com").BuildRaw()},
			},
			map[int]error{
				30: errors.New("connection refused"),
				60: errors.New("timeout on page 2"),
			},
		))
	s.mockCoupons.EXPECT().CreateCoupon(gomock.Any(), gomock.Any()).Times(2).Return(int64(1), nil)
	s.mockMessages.EXPECT().SendText(gomock.Any(), gomock.Any(), gomock.Any()).Times(2).Return(nil)
	s.mockWaiter.EXPECT().Wait(gomock.Any()).Times(1).Return(time.Duration(0), nil)

	report, err := s.newUseCase(30, 60, 90).Run(s.ctx, uuid.New(), readmodel.TriggerManual)

	s.Require().NoError(err)
	s.Equal(readmodel.RunStatusSucceeded, report.Status)
	s.Require().Len(report.Windows, 3)
	s.Require().NotNil(report.Windows[0].FetchError)
	s.Contains(*report.Windows[0].FetchError, "connection refused")
	s.Equal(0, report.Windows[0].Customers)
	s.Require().NotNil(report.Windows[1].FetchError)
	s.Equal(1, report.Windows[1].Customers)
	s.Nil(report.Windows[2].FetchError)
	s.Equal(2, report.MessagesSent)
}

func (s *CampaignUseCaseTestSuite) TestRun_DispatchFailureDoesNotStopRun() {
	s.mockSource.EXPECT().FetchOrders(gomock.Any(), gomock.Any()).
		Return([]json.RawMessage{
			builder.NewOrderBuilder().WithEmail("a@x.com").WithoutShipping().BuildRaw(),
			builder.NewOrderBuilder().WithEmail("b@x.com").BuildRaw(),
		}, nil)
	s.mockCoupons.EXPECT().CreateCoupon(gomock.Any(), gomock.Any()).Times(2).Return(int64(1), nil)
	gomock.InOrder(
		s.mockMessages.EXPECT().SendText(gomock.Any(), "", gomock.Any()).Return(errors.New("no usable recipient number")),
		s.mockMessages.EXPECT().SendText(gomock.Any(), "5551998765432", gomock.Any()).Return(nil),
	)
	s.mockWaiter.EXPECT().Wait(gomock.Any()).Times(1).Return(time.Duration(0), nil)

	report, err := s.newUseCase(30).Run(s.ctx, uuid.New(), readmodel.TriggerManual)

	s.Require().NoError(err)
	s.Equal(1, report.MessagesFailed)
	s.Equal(1, report.MessagesSent)
	s.Equal(2, report.CouponsCreated)
}

func (s *CampaignUseCaseTestSuite) TestRun_NoOrdersAnywhere() {
	s.mockSource.EXPECT().FetchOrders(gomock.Any(), gomock.Any()).Times(5).Return(nil, nil)

	report, err := s.newUseCase().Run(s.ctx, uuid.New(), readmodel.TriggerSchedule)

	s.Require().NoError(err)
	s.Equal(readmodel.RunStatusSucceeded, report.Status)
	s.Len(report.Windows, 5)
	s.Zero(report.MessagesSent)
}

func (s *CampaignUseCaseTestSuite) TestRun_CancelledDuringPacing() {
	s.mockSource.EXPECT().FetchOrders(gomock.Any(), gomock.Any()).
		Return([]json.RawMessage{
			builder.NewOrderBuilder().WithEmail("a@x.com").BuildRaw(),
			builder.NewOrderBuilder().WithEmail("b@x.com").BuildRaw(),
		}, nil)
	s.mockCoupons.EXPECT().CreateCoupon(gomock.Any(), gomock.Any()).Times(1).Return(int64(1), nil)
	s.mockMessages.EXPECT().SendText(gomock.Any(), gomock.Any(), gomock.Any()).Times(1).Return(nil)
	s.mockWaiter.EXPECT().Wait(gomock.Any()).Return(time.Duration(0), context.Canceled)

	report, err := s.newUseCase(30).Run(s.ctx, uuid.New(), readmodel.TriggerManual)

	s.Require().ErrorIs(err, context.Canceled)
	s.Equal(readmodel.RunStatusFailed, report.Status)
	s.Require().NotNil(report.Error)
	s.Equal(1, report.MessagesSent)
}
