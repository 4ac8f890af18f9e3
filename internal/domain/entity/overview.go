package entity

import (
	"time"
)

// TrendDays is the length of the daily new-supporter series
const TrendDays = 30

// TrendPoint is one day of the new-supporter trend series
type TrendPoint struct {
	Date  string `json:"date"` // UTC calendar date, ISO format
	Count int    `json:"count"`
}

// Overview is the derived sitewide donation aggregate. It is recomputed on
// demand from the full supporter set and never persisted.
type Overview struct {
	SupporterCount        int          `json:"supporterCount"`
	TotalAmount           int64        `json:"totalAmount"`
	TotalDonations        uint64       `json:"totalDonations"`
	PublicAcknowledgement int          `json:"publicAcknowledgement"`
	ActiveLast30Days      int          `json:"activeLast30Days"`
	NewLast30Days         int          `json:"newLast30Days"`
	DailyNewSupporters    []TrendPoint `json:"dailyNewSupporters"`
}

// ComputeOverview aggregates the supporter set as of now.
//
// The trend series always has exactly TrendDays points covering today back
// TrendDays-1 days inclusive, oldest first, in UTC. The trailing window used
// for the "active" and "new" counts starts at the first day of the series,
// so the sum of per-day counts always equals NewLast30Days.
func ComputeOverview(supporters []*DonationSupporter, now time.Time) *Overview {
	today := startOfUTCDay(now)
	windowStart := today.AddDate(0, 0, -(TrendDays - 1))

	overview := &Overview{
		SupporterCount:     len(supporters),
		DailyNewSupporters: make([]TrendPoint, TrendDays),
	}

	countsByDate := make(map[string]int, TrendDays)
	for _, s := range supporters {
		overview.TotalAmount += s.TotalAmount
		overview.TotalDonations += s.DonationCount
		if s.PublicAcknowledgement {
			overview.PublicAcknowledgement++
		}
		if !s.LastContributionAt.Before(windowStart) {
			overview.ActiveLast30Days++
		}
		if !s.CreatedAt.Before(windowStart) {
			overview.NewLast30Days++
			countsByDate[isoDate(s.CreatedAt)]++
		}
	}

	for i := 0; i < TrendDays; i++ {
		date := isoDate(windowStart.AddDate(0, 0, i))
		overview.DailyNewSupporters[i] = TrendPoint{
			Date:  date,
			Count: countsByDate[date],
		}
	}

	return overview
}

// startOfUTCDay truncates a time to midnight UTC
func startOfUTCDay(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}

// isoDate formats a time as its UTC calendar date
func isoDate(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}
