package analytics

import (
	"math"

	"github.com/jekabolt/grbpwr-dashboard/internal/entity"
	"golang.org/x/exp/slices"
)

const (
	baseConfidence     = 85
	confidencePerDay   = 2
	growthTrailingDays = 7
	minForecastDays    = 2
)

// LinearFit is the least-squares line over daily sums together with its projection.
type LinearFit struct {
	entity.ForecastResult
	Slope     float64
	Intercept float64
	// Current is the value of the line at the last observed day.
	Current float64
}

// LinearForecast fits y = slope*x + intercept over daily sums, where x is the
// index of the day among observed days, and projects it daysAhead forward.
// Fewer than two records or two distinct days yield a zero result.
func LinearForecast(points []Point, daysAhead int) LinearFit {
	if len(points) < minForecastDays {
		return LinearFit{}
	}

	sorted := slices.Clone(points)
	slices.SortStableFunc(sorted, func(a, b Point) int {
		return a.At.Compare(b.At)
	})

	series := AggregateDaily(sorted).Series()
	n := len(series)
	if n < minForecastDays {
		return LinearFit{}
	}

	var sumX, sumY, sumXY, sumXX float64
	for i, y := range series {
		x := float64(i)
		sumX += x
		sumY += y
		sumXY += x * y
		sumXX += x * x
	}
	fn := float64(n)
	slope := (fn*sumXY - sumX*sumY) / (fn*sumXX - sumX*sumX)
	intercept := (sumY - slope*sumX) / fn

	forecast := math.Max(0, slope*float64(n+daysAhead)+intercept)
	current := slope*float64(n-1) + intercept

	var growth float64
	if current > 0 {
		growth = (forecast - current) / current * 100
	}

	return LinearFit{
		ForecastResult: entity.ForecastResult{
			Forecast:      forecast,
			Confidence:    clamp(baseConfidence+confidencePerDay*fn, 0, 100),
			GrowthPercent: growth,
		},
		Slope:     slope,
		Intercept: intercept,
		Current:   current,
	}
}

// GrowthForecast projects the average of the trailing seven daily sums
// daysAhead days forward. Growth compares that average with the last day.
// Confidence is not estimated and stays zero.
func GrowthForecast(points []Point, daysAhead int) entity.ForecastResult {
	series := AggregateDaily(points).Series()
	if len(series) < minForecastDays {
		return entity.ForecastResult{}
	}

	trailing := series
	if len(trailing) > growthTrailingDays {
		trailing = trailing[len(trailing)-growthTrailingDays:]
	}
	var sum float64
	for _, v := range trailing {
		sum += v
	}
	avgDailyGrowth := sum / float64(len(trailing))
	lastDay := series[len(series)-1]

	var growth float64
	if lastDay > 0 {
		growth = (avgDailyGrowth - lastDay) / lastDay * 100
	}
	return entity.ForecastResult{
		Forecast:      math.Max(0, avgDailyGrowth*float64(daysAhead)),
		GrowthPercent: growth,
	}
}

func clamp(v, lo, hi float64) float64 {
	return math.Min(hi, math.Max(lo, v))
}
