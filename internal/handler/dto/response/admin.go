package response

import (
	"time"

	"petagenda/internal/usecase/commands"
	"petagenda/internal/usecase/queries"

	"github.com/jinzhu/copier"
)

type ResetReportResponse struct {
	PeriodKey     string   `json:"periodKey"`
	Skipped       bool     `json:"skipped"`
	SkipReason    string   `json:"skipReason,omitempty"`
	Subscriptions int      `json:"subscriptionsSwept"`
	Daycare       int      `json:"daycareSwept"`
	Hotel         int      `json:"hotelSwept"`
	Errors        []string `json:"errors,omitempty"`
}

type ResetMarkerResponse struct {
	PeriodKey          string     `json:"periodKey"`
	Status             string     `json:"status"`
	ClaimedAt          time.Time  `json:"claimedAt"`
	CompletedAt        *time.Time `json:"completedAt,omitempty"`
	SubscriptionsSwept int        `json:"subscriptionsSwept"`
	DaycareSwept       int        `json:"daycareSwept"`
	HotelSwept         int        `json:"hotelSwept"`
	Errors             []string   `json:"errors,omitempty"`
}

func FromResetReport(report *commands.ResetReport) *ResetReportResponse {
	return &ResetReportResponse{
		PeriodKey:     report.PeriodKey,
		Skipped:       report.Skipped,
		SkipReason:    report.SkipReason,
		Subscriptions: report.Counts.Subscriptions,
		Daycare:       report.Counts.Daycare,
		Hotel:         report.Counts.Hotel,
		Errors:        report.Errors,
	}
}

func FromResetMarkerView(rm *queries.ResetMarkerView) *ResetMarkerResponse {
	var resp ResetMarkerResponse
	_ = copier.Copy(&resp, rm)
	return &resp
}

func FromResetMarkerViews(rms []*queries.ResetMarkerView) []*ResetMarkerResponse {
	out := make([]*ResetMarkerResponse, len(rms))
	for i, rm := range rms {
		out[i] = FromResetMarkerView(rm)
	}
	return out
}
