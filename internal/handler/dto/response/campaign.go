package response

import (
	"shop-winback/internal/usecase/readmodel"
)

type CampaignRunStartedResponse struct {
	RunID  string `json:"run_id"`
	Status string `json:"status"`
}

type CampaignWindowResponse struct {
	Days       int    `json:"days"`
	Date       string `json:"date"`
	Orders     int    `json:"orders"`
	Customers  int    `json:"customers"`
	FetchError string `json:"fetch_error,omitempty"`
}

type CampaignRunResponse struct {
	ID             string                    `json:"id"`
	Trigger        string                    `json:"trigger"`
	TriggeredBy    string                    `json:"triggered_by,omitempty"`
	Status         string                    `json:"status"`
	StartedAt      int64                     `json:"started_at"`
	FinishedAt     *int64                    `json:"finished_at,omitempty"`
	Windows        []*CampaignWindowResponse `json:"windows"`
	CouponsCreated int                       `json:"coupons_created"`
	CouponsFailed  int                       `json:"coupons_failed"`
	MessagesSent   int                       `json:"messages_sent"`
	MessagesFailed int                       `json:"messages_failed"`
	Error          string                    `json:"error,omitempty"`
}

func FromCampaignRun(rm *readmodel.CampaignRunRM) *CampaignRunResponse {
	res := &CampaignRunResponse{
		ID:             rm.ID.String(),
		Trigger:        rm.Trigger,
		TriggeredBy:    rm.TriggeredBy,
		Status:         rm.Status,
		StartedAt:      rm.StartedAt.Unix(),
		Windows:        make([]*CampaignWindowResponse, len(rm.Windows)),
		CouponsCreated: rm.CouponsCreated,
		CouponsFailed:  rm.CouponsFailed,
		MessagesSent:   rm.MessagesSent,
		MessagesFailed: rm.MessagesFailed,
	}
	if rm.FinishedAt != nil {
		finished := rm.FinishedAt.Unix()
		res.FinishedAt = &finished
	}
	if rm.Error != nil {
		res.Error = *rm.Error
	}
	for i, w := range rm.Windows {
		res.Windows[i] = &CampaignWindowResponse{
			Days:      w.Days,
			Date:      w.Date,
			Orders:    w.Orders,
			Customers: w.Customers,
		}
		if w.FetchError != nil {
			res.Windows[i].FetchError = *w.FetchError
		}
	}
	return res
}
