//go:build e2e

package campaign_test

import (
	"encoding/json"
	"net/http"
	"strings"
	"testing"
	"time"

	resdto "shop-winback/internal/handler/dto/response"
	"shop-winback/internal/usecase/readmodel"
	"shop-winback/tests/common/builder"
	"shop-winback/tests/common/httptest"
	"shop-winback/tests/e2e"

	"github.com/stretchr/testify/suite"
)

const (
	runsURL    = "/api/campaign/runs"
	lastRunURL = "/api/campaign/runs/last"
)

type campaignSuite struct {
	e2e.SharedSuite
}

func TestCampaignSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(campaignSuite))
}

// startAndWait triggers a run through the API and polls until it is no longer running.
func (s *campaignSuite) startAndWait() resdto.CampaignRunResponse {
	w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, runsURL, nil, s.AuthToken)
	var started resdto.CampaignRunStartedResponse
	httptest.AssertSuccessResponse(s.T(), w, http.StatusAccepted, &started)

	var last resdto.CampaignRunResponse
	s.Require().Eventually(func() bool {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, lastRunURL, nil, s.AuthToken)
		if w.Code != http.StatusOK {
			return false
		}
		last = resdto.CampaignRunResponse{}
		if err := json.Unmarshal(w.Body.Bytes(), &last); err != nil {
			return false
		}
		return last.ID == started.RunID && last.Status != readmodel.RunStatusRunning
	}, 5*time.Second, 20*time.Millisecond)
	return last
}

func (s *campaignSuite) TestFullRun() {
	// 30-day window: three pages, one malformed record, one repeat customer
	s.Shop.SetOrders("2026-09-16",
		builder.NewOrderBuilder().WithEmail("joao@x.com").WithName("João Silva").WithPhone("(51) 99876-5432").BuildRaw(),
		builder.MalformedOrder(),
		builder.NewOrderBuilder().WithEmail("ana@x.com").WithName("Ana Souza").WithPhone("51 98888-1111").BuildRaw(),
		builder.NewOrderBuilder().WithEmail("joao@x.com").WithName("João Later").BuildRaw(),
		builder.NewOrderBuilder().WithoutEmail().WithName("Sem Email").WithPhone("51 97777-2222").BuildRaw(),
	)
	// 365-day window
	s.Shop.SetOrders("2025-10-16",
		builder.NewOrderBuilder().WithEmail("old@x.com").WithName("Maria").WithPhone("51 96666-3333").
			WithCreatedAt(time.Date(2025, 10, 16, 9, 15, 0, 0, time.UTC)).BuildRaw(),
	)

	last := s.startAndWait()

	s.Equal(readmodel.RunStatusSucceeded, last.Status)
	s.Equal(readmodel.TriggerManual, last.Trigger)
	s.Equal("e2e-operator", last.TriggeredBy)
	s.Equal(4, last.CouponsCreated)
	s.Equal(4, last.MessagesSent)
	s.Require().Len(last.Windows, 5)
	s.Equal(5, last.Windows[0].Orders)
	s.Equal(3, last.Windows[0].Customers)

	s.ElementsMatch([]string{"JOO65432OFF10", "ANA81111OFF10", "SEM72222OFF10", "MAR63333OFF20"}, s.Shop.Codes())

	messages := s.WhatsApp.Messages()
	s.Require().Len(messages, 4)
	s.Equal("5551998765432", messages[0].Number)
	s.Contains(messages[0].Text, "Olá, João!")
	s.Contains(messages[0].Text, "*JOO65432OFF10*")
	s.Contains(messages[0].Text, "*17/10/2026 às 08:00*")
	s.True(strings.Contains(messages[3].Text, "*365 dias*"))
}

func (s *campaignSuite) TestWindowFailureIsIsolated() {
	s.Shop.SetOrders("2026-09-16",
		builder.NewOrderBuilder().WithEmail("a@x.com").WithPhone("51 90000-0001").BuildRaw(),
		builder.NewOrderBuilder().WithEmail("b@x.com").WithPhone("51 90000-0002").BuildRaw(),
		builder.NewOrderBuilder().WithEmail("c@x.com").WithPhone("51 90000-0003").BuildRaw(),
	)
	s.Shop.FailFromPage("2026-09-16", 2)
	s.Shop.SetOrders("2026-07-18",
		builder.NewOrderBuilder().WithEmail("d@x.com").WithPhone("51 90000-0004").BuildRaw(),
	)

	last := s.startAndWait()

	s.Equal(readmodel.RunStatusSucceeded, last.Status)
	s.NotEmpty(last.Windows[0].FetchError)
	s.Equal(2, last.Windows[0].Customers)
	s.Equal(3, last.MessagesSent)
}

func (s *campaignSuite) TestCustomerWithoutPhoneIsCountedAsFailedDispatch() {
	s.Shop.SetOrders("2026-09-16",
		builder.NewOrderBuilder().WithEmail("nophone@x.com").WithoutShipping().BuildRaw(),
	)

	last := s.startAndWait()

	s.Equal(1, last.CouponsCreated)
	s.Equal(1, last.MessagesFailed)
	s.Empty(s.WhatsApp.Messages())
}
