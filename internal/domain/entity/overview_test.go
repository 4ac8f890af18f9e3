package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func supporterAt(id uint64, created time.Time, lastContribution time.Time, amount int64, count uint64, public bool) *DonationSupporter {
	return &DonationSupporter{
		ID:                    id,
		DisplayName:           "Supporter",
		NormalizedName:        "supporter",
		TotalAmount:           amount,
		DonationCount:         count,
		LastChannel:           ChannelMpesa,
		LastContributionAt:    lastContribution,
		PublicAcknowledgement: public,
		CreatedAt:             created,
		UpdatedAt:             lastContribution,
	}
}

func TestComputeOverview(t *testing.T) {
	now := time.Date(2025, 6, 15, 14, 30, 0, 0, time.UTC)

	t.Run("Empty supporter set still yields a full trend series", func(t *testing.T) {
		overview := ComputeOverview(nil, now)

		assert.Zero(t, overview.SupporterCount)
		assert.Zero(t, overview.TotalAmount)
		assert.Zero(t, overview.TotalDonations)
		require.Len(t, overview.DailyNewSupporters, TrendDays)
		for _, point := range overview.DailyNewSupporters {
			assert.Zero(t, point.Count)
		}
	})

	t.Run("Trend series covers today back 29 days, oldest first", func(t *testing.T) {
		overview := ComputeOverview(nil, now)

		require.Len(t, overview.DailyNewSupporters, TrendDays)
		assert.Equal(t, "2025-05-17", overview.DailyNewSupporters[0].Date)
		assert.Equal(t, "2025-06-15", overview.DailyNewSupporters[TrendDays-1].Date)
	})

	t.Run("Totals aggregate across all supporters", func(t *testing.T) {
		supporters := []*DonationSupporter{
			supporterAt(1, now.AddDate(0, 0, -5), now.AddDate(0, 0, -2), 2700, 2, true),
			supporterAt(2, now.AddDate(0, 0, -60), now.AddDate(0, 0, -40), 1000, 1, false),
			supporterAt(3, now.AddDate(0, 0, -1), now.AddDate(0, 0, -1), 500, 1, true),
		}

		overview := ComputeOverview(supporters, now)

		assert.Equal(t, 3, overview.SupporterCount)
		assert.Equal(t, int64(4200), overview.TotalAmount)
		assert.Equal(t, uint64(4), overview.TotalDonations)
		assert.Equal(t, 2, overview.PublicAcknowledgement)
	})

	t.Run("Window membership for new and active counts", func(t *testing.T) {
		supporters := []*DonationSupporter{
			// Created and contributed inside the window
			supporterAt(1, now.AddDate(0, 0, -5), now.AddDate(0, 0, -2), 500, 1, false),
			// Old supporter, recent contribution: active but not new
			supporterAt(2, now.AddDate(0, 0, -60), now.AddDate(0, 0, -3), 500, 1, false),
			// Old supporter, old contribution: neither
			supporterAt(3, now.AddDate(0, 0, -60), now.AddDate(0, 0, -45), 500, 1, false),
		}

		overview := ComputeOverview(supporters, now)

		assert.Equal(t, 1, overview.NewLast30Days)
		assert.Equal(t, 2, overview.ActiveLast30Days)
	})

	t.Run("Series counts sum to the new-supporter count", func(t *testing.T) {
		supporters := []*DonationSupporter{
			supporterAt(1, now, now, 100, 1, false),
			supporterAt(2, now.AddDate(0, 0, -10), now, 100, 1, false),
			supporterAt(3, now.AddDate(0, 0, -10), now, 100, 1, false),
			supporterAt(4, now.AddDate(0, 0, -29), now, 100, 1, false),
			// Outside the window entirely
			supporterAt(5, now.AddDate(0, 0, -30), now, 100, 1, false),
		}

		overview := ComputeOverview(supporters, now)

		sum := 0
		for _, point := range overview.DailyNewSupporters {
			sum += point.Count
		}
		assert.Equal(t, overview.NewLast30Days, sum)
		assert.Equal(t, 4, overview.NewLast30Days)
	})

	t.Run("Day boundaries are UTC calendar days", func(t *testing.T) {
		// 23:59 UTC on the oldest day of the window still counts
		edge := time.Date(2025, 5, 17, 23, 59, 0, 0, time.UTC)
		supporters := []*DonationSupporter{
			supporterAt(1, edge, edge, 100, 1, false),
		}

		overview := ComputeOverview(supporters, now)

		assert.Equal(t, 1, overview.NewLast30Days)
		assert.Equal(t, 1, overview.DailyNewSupporters[0].Count)
	})
}
