package analytics

import (
	"math"
	"time"

	"github.com/jekabolt/grbpwr-dashboard/internal/entity"
	"github.com/shopspring/decimal"
)

const (
	// EstimatedMarketSize is the assumed total addressable market revenue.
	EstimatedMarketSize = 1_000_000_000

	minMarketShare    = 5
	maxMarketShare    = 20
	targetMarketShare = 15
	competitorCount   = 8

	growthWindow = 30 * 24 * time.Hour
)

// RevenueGrowth compares revenue of the trailing 30 days with the 30 days
// before them, both taken from the same order sample. A previous window
// without revenue yields 0.
func RevenueGrowth(orders []entity.Order, now time.Time) float64 {
	current := entity.TimeRange{From: now.Add(-growthWindow), To: now.Add(time.Nanosecond)}
	previous := entity.TimeRange{From: now.Add(-2 * growthWindow), To: current.From}

	cur := sumTotals(orders, current)
	prev := sumTotals(orders, previous)
	return pctChange(cur, prev)
}

// EstimateMarket derives the market share of the sample revenue against
// EstimatedMarketSize. Target share and competitor count are fixed business targets.
func EstimateMarket(orders []entity.Order, now time.Time) entity.MarketIntelligence {
	total := decimal.Zero
	for _, o := range orders {
		total = total.Add(o.Total)
	}
	share := total.InexactFloat64() / EstimatedMarketSize * 100

	return entity.MarketIntelligence{
		MarketShare:       clamp(share, minMarketShare, maxMarketShare),
		GrowthRate:        math.Max(0, RevenueGrowth(orders, now)),
		TargetMarketShare: targetMarketShare,
		CompetitorCount:   competitorCount,
	}
}

func sumTotals(orders []entity.Order, tr entity.TimeRange) decimal.Decimal {
	sum := decimal.Zero
	for _, o := range orders {
		if tr.Contains(o.CreatedAt) {
			sum = sum.Add(o.Total)
		}
	}
	return sum
}

// pctChange is (current - previous) / previous * 100, or 0 when previous is zero.
func pctChange(current, previous decimal.Decimal) float64 {
	if previous.IsZero() {
		return 0
	}
	return current.Sub(previous).Div(previous).Mul(decimal.NewFromInt(100)).InexactFloat64()
}
