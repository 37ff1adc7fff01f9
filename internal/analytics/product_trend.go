package analytics

import (
	"github.com/jekabolt/grbpwr-dashboard/internal/entity"
)

const (
	maxTrendProducts = 4

	trendBaseMin   = -5.0
	trendBaseSpan  = 30.0
	trendPriceUnit = 1_000_000
	trendPriceGain = 10
	trendMin       = -10
	trendMax       = 30

	confidenceHigh   = "high"
	confidenceMedium = "medium"
)

// RandomSource yields uniform values in [0, 1). *rand.Rand satisfies it.
type RandomSource interface {
	Float64() float64
}

// ProductTrends labels the momentum of up to four products.
//
// The score is a placeholder heuristic: a uniform random base nudged by price.
// It does not reflect sales data and is not repeatable unless rnd is.
// Orders are accepted for parity with the other calculators and not scored.
func ProductTrends(products []entity.Product, _ []entity.Order, rnd RandomSource) []entity.ProductTrend {
	if len(products) > maxTrendProducts {
		products = products[:maxTrendProducts]
	}

	trends := make([]entity.ProductTrend, 0, len(products))
	for _, p := range products {
		base := trendBaseMin + trendBaseSpan*rnd.Float64()
		trend := clamp(base+p.PriceFloat()/trendPriceUnit*trendPriceGain, trendMin, trendMax)

		confidence := confidenceMedium
		if rnd.Float64() >= 0.5 {
			confidence = confidenceHigh
		}

		trends = append(trends, entity.ProductTrend{
			ProductName:   p.Name,
			GrowthPercent: trend,
			Momentum:      momentum(trend),
			Confidence:    confidence,
		})
	}
	return trends
}

func momentum(trend float64) entity.Momentum {
	switch {
	case trend > 15:
		return entity.MomentumRising
	case trend > 0:
		return entity.MomentumStable
	default:
		return entity.MomentumDeclining
	}
}
