package analytics

import (
	"time"

	"github.com/jekabolt/grbpwr-dashboard/internal/entity"
	"golang.org/x/exp/slices"
)

const offSeasonFactor = 0.8

type season struct {
	label       string
	months      []int // zero-indexed, January is 0
	baseGrowth  float64
	description string
}

var seasons = []season{
	{
		label:       "Spring / Tết",
		months:      []int{0, 1, 2},
		baseGrowth:  35,
		description: "Lunar New Year gifting and spring collections drive the strongest demand of the year.",
	},
	{
		label:       "Summer",
		months:      []int{3, 4, 5},
		baseGrowth:  12,
		description: "Lighter ranges and holiday travel keep sales steady.",
	},
	{
		label:       "Autumn",
		months:      []int{6, 7, 8},
		baseGrowth:  18,
		description: "Back-to-school and new season launches lift traffic.",
	},
	{
		label:       "Winter",
		months:      []int{9, 10, 11},
		baseGrowth:  28,
		description: "Year-end promotions and holiday shopping ramp up orders.",
	},
}

// SeasonalTrends reports every seasonal bucket relative to now. The bucket
// holding now's month keeps its base growth, the others are scaled down.
// OrderCount is informational only.
func SeasonalTrends(orders []entity.Order, now time.Time) []entity.SeasonalTrend {
	currentMonth := int(now.Month()) - 1

	trends := make([]entity.SeasonalTrend, 0, len(seasons))
	for _, s := range seasons {
		isCurrent := slices.Contains(s.months, currentMonth)
		growth := s.baseGrowth
		if !isCurrent {
			growth = s.baseGrowth * offSeasonFactor
		}

		var orderCount int
		for _, o := range orders {
			if slices.Contains(s.months, int(o.CreatedAt.Month())-1) {
				orderCount++
			}
		}

		trends = append(trends, entity.SeasonalTrend{
			Label:         s.label,
			GrowthPercent: growth,
			Status:        seasonStatus(growth),
			Description:   s.description,
			IsCurrent:     isCurrent,
			OrderCount:    orderCount,
		})
	}
	return trends
}

func seasonStatus(growth float64) entity.SeasonStatus {
	switch {
	case growth > 30:
		return entity.SeasonStatusPeak
	case growth > 15:
		return entity.SeasonStatusHigh
	case growth > 5:
		return entity.SeasonStatusModerate
	default:
		return entity.SeasonStatusStable
	}
}
