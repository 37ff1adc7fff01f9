package analytics

import (
	"math"

	"github.com/jekabolt/grbpwr-dashboard/internal/entity"
)

const (
	highInventoryRiskPct   = 20
	mediumInventoryRiskPct = 10

	// riskScoreScale stretches the 1..3 mean onto roughly 0..10.
	riskScoreScale = 3.33
)

// AssessRisk classifies inventory risk by the share of low or out of stock
// products. Competition and market risk have no signal yet and stay low.
func AssessRisk(products []entity.Product, lowStockThreshold int) entity.RiskAssessment {
	ra := entity.RiskAssessment{
		InventoryRisk:   inventoryRisk(products, lowStockThreshold),
		CompetitionRisk: entity.RiskLow,
		MarketRisk:      entity.RiskLow,
	}
	ra.TotalRiskScore = RiskScore(ra.InventoryRisk, ra.CompetitionRisk, ra.MarketRisk)
	return ra
}

// RiskScore averages the level scores and scales the mean onto 0..10.
func RiskScore(levels ...entity.RiskLevel) int {
	if len(levels) == 0 {
		return 0
	}
	var sum int
	for _, l := range levels {
		sum += l.Score()
	}
	mean := float64(sum) / float64(len(levels))
	return int(clamp(math.Round(mean*riskScoreScale), 0, 10))
}

func inventoryRisk(products []entity.Product, lowStockThreshold int) entity.RiskLevel {
	if len(products) == 0 {
		return entity.RiskLow
	}
	var atRisk int
	for _, p := range products {
		if p.IsOutOfStock() || p.IsLowStock(lowStockThreshold) {
			atRisk++
		}
	}
	pct := float64(atRisk) / float64(len(products)) * 100
	switch {
	case pct > highInventoryRiskPct:
		return entity.RiskHigh
	case pct > mediumInventoryRiskPct:
		return entity.RiskMedium
	default:
		return entity.RiskLow
	}
}
