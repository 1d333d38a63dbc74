package readmodel

import (
	"time"

	"github.com/google/uuid"
)

const (
	RunStatusRunning   = "running"
	RunStatusSucceeded = "succeeded"
	RunStatusFailed    = "failed"

	TriggerSchedule = "schedule"
	TriggerManual   = "manual"
)

type CampaignRunRM struct {
	ID             uuid.UUID          `json:"id"`
	Trigger        string             `json:"trigger"`
	TriggeredBy    string             `json:"triggered_by,omitempty"`
	Status         string             `json:"status"`
	StartedAt      time.Time          `json:"started_at"`
	FinishedAt     *time.Time         `json:"finished_at,omitempty"`
	Windows        []CampaignWindowRM `json:"windows"`
	CouponsCreated int                `json:"coupons_created"`
	CouponsFailed  int                `json:"coupons_failed"`
	MessagesSent   int                `json:"messages_sent"`
	MessagesFailed int                `json:"messages_failed"`
	Error          *string            `json:"error,omitempty"`
}

type CampaignWindowRM struct {
	Days       int     `json:"days"`
	Date       string  `json:"date"`
	Orders     int     `json:"orders"`
	Customers  int     `json:"customers"`
	FetchError *string `json:"fetch_error,omitempty"`
}

// Clone returns a copy safe to hand out while the original keeps changing.
func (r *CampaignRunRM) Clone() *CampaignRunRM {
	if r == nil {
		return nil
	}
	out := *r
	out.Windows = append([]CampaignWindowRM(nil), r.Windows...)
	return &out
}
