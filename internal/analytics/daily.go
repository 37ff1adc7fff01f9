// Package analytics derives dashboard metrics, forecasts and risk scores from
// a snapshot of orders, products and users. Every function here is pure: the
// current time and, where used, randomness are passed in by the caller.
package analytics

import (
	"sort"
	"time"

	"github.com/jekabolt/grbpwr-dashboard/internal/entity"
)

const dayLayout = "2006-01-02"

// Point is a single (timestamp, value) observation.
type Point struct {
	At    time.Time
	Value float64
}

// DailyAggregate maps a calendar day key ("2006-01-02") to the summed value of that day.
type DailyAggregate map[string]float64

// AggregateDaily sums values per calendar day of each timestamp, in the
// timestamp's own location. Days without observations are absent.
func AggregateDaily(points []Point) DailyAggregate {
	da := make(DailyAggregate, len(points))
	for _, p := range points {
		da[p.At.Format(dayLayout)] += p.Value
	}
	return da
}

// Days returns the day keys in ascending order.
func (da DailyAggregate) Days() []string {
	days := make([]string, 0, len(da))
	for d := range da {
		days = append(days, d)
	}
	sort.Strings(days)
	return days
}

// Series returns daily sums ordered by day.
func (da DailyAggregate) Series() []float64 {
	days := da.Days()
	series := make([]float64, len(days))
	for i, d := range days {
		series[i] = da[d]
	}
	return series
}

// OrderRevenuePoints turns orders into (created_at, total) observations.
func OrderRevenuePoints(orders []entity.Order) []Point {
	points := make([]Point, 0, len(orders))
	for _, o := range orders {
		points = append(points, Point{At: o.CreatedAt, Value: o.TotalFloat()})
	}
	return points
}

// OrderCountPoints turns orders into (created_at, 1) observations.
func OrderCountPoints(orders []entity.Order) []Point {
	points := make([]Point, 0, len(orders))
	for _, o := range orders {
		points = append(points, Point{At: o.CreatedAt, Value: 1})
	}
	return points
}

// SignupPoints turns users into (created_at, 1) observations.
func SignupPoints(users []entity.User) []Point {
	points := make([]Point, 0, len(users))
	for _, u := range users {
		points = append(points, Point{At: u.CreatedAt, Value: 1})
	}
	return points
}
