package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// ChartPeriod controls time bucket size for chart series.
type ChartPeriod string

const (
	ChartPeriodDaily   ChartPeriod = "daily"
	ChartPeriodWeekly  ChartPeriod = "weekly"
	ChartPeriodMonthly ChartPeriod = "monthly"
	ChartPeriodYearly  ChartPeriod = "yearly"
)

// ChartPeriods lists accepted chart periods.
var ChartPeriods = []string{
	string(ChartPeriodDaily),
	string(ChartPeriodWeekly),
	string(ChartPeriodMonthly),
	string(ChartPeriodYearly),
}

type TimeRange struct {
	From time.Time
	To   time.Time
}

// Contains reports whether t is in [From, To).
func (tr TimeRange) Contains(t time.Time) bool {
	return !t.Before(tr.From) && t.Before(tr.To)
}

type TimeSeriesPoint struct {
	Date    time.Time
	Revenue decimal.Decimal
	Orders  int
}

// CoreMetrics are the headline numbers of the dashboard.
// Trends compare the trailing 30 days with the 30 days before them.
type CoreMetrics struct {
	TotalRevenue      decimal.Decimal
	TotalOrders       int
	TotalCustomers    int
	AverageOrderValue decimal.Decimal
	RevenueTrend      float64
	OrdersTrend       float64
	CustomersTrend    float64
	AOVTrend          float64
}

type EntityStats struct {
	TotalOrders        int
	OrdersByStatus     map[OrderStatus]int
	TotalProducts      int
	LowStockProducts   int
	OutOfStockProducts int
	TotalCustomers     int
	GuestOrders        int
}

type OrderStatistics struct {
	TotalOrders        int
	StatusDistribution map[OrderStatus]int
	PeriodData         []TimeSeriesPoint
}

type TopProduct struct {
	ProductID string
	Name      string
	UnitsSold int
	Revenue   decimal.Decimal
	Stock     int
}

type CustomerInsights struct {
	NewCustomers       int
	ReturningCustomers int
	TotalCustomers     int
	CustomerGrowth     float64
}

// CustomerStat is a per-user spend accumulator.
type CustomerStat struct {
	UserID        string
	DisplayName   string
	Email         string
	OrderCount    int
	TotalSpent    decimal.Decimal
	LastOrderDate *time.Time
}
