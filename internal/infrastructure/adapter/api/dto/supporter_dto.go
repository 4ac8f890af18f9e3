package dto

import (
	"time"

	"github.com/upendo-clinic/donation-ledger/internal/domain/entity"
)

// ContributionRequest records a contribution arriving outside the M-Pesa
// flow, for example cash handed in at the front desk
type ContributionRequest struct {
	FirstName    string  `json:"firstName" binding:"required"`
	Amount       float64 `json:"amount" binding:"required"`
	Channel      string  `json:"channel" binding:"required"`
	ShareConsent string  `json:"shareConsent"`
}

// AcknowledgementRequest updates a supporter's public listing preference.
// Exactly one of supporterId or firstName identifies the supporter.
type AcknowledgementRequest struct {
	SupporterID  *uint64 `json:"supporterId"`
	FirstName    string  `json:"firstName"`
	ShareConsent string  `json:"shareConsent" binding:"required,oneof=granted declined"`
}

// SupporterResponse is the API view of one supporter ledger row
type SupporterResponse struct {
	ID                    uint64    `json:"id"`
	DisplayName           string    `json:"displayName"`
	TotalAmount           int64     `json:"totalAmount"`
	DonationCount         uint64    `json:"donationCount"`
	LastChannel           string    `json:"lastChannel"`
	LastContributionAt    time.Time `json:"lastContributionAt"`
	PublicAcknowledgement bool      `json:"publicAcknowledgement"`
	CreatedAt             time.Time `json:"createdAt"`
}

// TrendPointDTO is one day of the new-supporter trend series
type TrendPointDTO struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}

// OverviewResponse is the API view of the sitewide donation aggregate
type OverviewResponse struct {
	SupporterCount        int             `json:"supporterCount"`
	TotalAmount           int64           `json:"totalAmount"`
	TotalDonations        uint64          `json:"totalDonations"`
	PublicAcknowledgement int             `json:"publicAcknowledgement"`
	ActiveLast30Days      int             `json:"activeLast30Days"`
	NewLast30Days         int             `json:"newLast30Days"`
	DailyNewSupporters    []TrendPointDTO `json:"dailyNewSupporters"`
}

// ContributionResponse pairs the updated supporter snapshot with the
// recomputed overview
type ContributionResponse struct {
	Supporter SupporterResponse `json:"supporter"`
	Totals    OverviewResponse  `json:"totals"`
}

// FromSupporter maps a supporter entity to its API view
func FromSupporter(s *entity.DonationSupporter) SupporterResponse {
	return SupporterResponse{
		ID:                    s.ID,
		DisplayName:           s.DisplayName,
		TotalAmount:           s.TotalAmount,
		DonationCount:         s.DonationCount,
		LastChannel:           string(s.LastChannel),
		LastContributionAt:    s.LastContributionAt,
		PublicAcknowledgement: s.PublicAcknowledgement,
		CreatedAt:             s.CreatedAt,
	}
}

// FromOverview maps the overview aggregate to its API view
func FromOverview(o *entity.Overview) OverviewResponse {
	points := make([]TrendPointDTO, 0, len(o.DailyNewSupporters))
	for _, p := range o.DailyNewSupporters {
		points = append(points, TrendPointDTO{Date: p.Date, Count: p.Count})
	}

	return OverviewResponse{
		SupporterCount:        o.SupporterCount,
		TotalAmount:           o.TotalAmount,
		TotalDonations:        o.TotalDonations,
		PublicAcknowledgement: o.PublicAcknowledgement,
		ActiveLast30Days:      o.ActiveLast30Days,
		NewLast30Days:         o.NewLast30Days,
		DailyNewSupporters:    points,
	}
}

// FromTrendPoints maps the trend series to its API view
func FromTrendPoints(points []entity.TrendPoint) []TrendPointDTO {
	out := make([]TrendPointDTO, 0, len(points))
	for _, p := range points {
		out = append(out, TrendPointDTO{Date: p.Date, Count: p.Count})
	}
	return out
}
