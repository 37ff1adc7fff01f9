package entity

import "time"

// Snapshot is the bounded set of records one dashboard computation works from.
type Snapshot struct {
	Orders   []Order
	Products []Product
	Users    []User
	TakenAt  time.Time
}

type ForecastResult struct {
	Forecast      float64
	Confidence    float64
	GrowthPercent float64
}

type Forecasts struct {
	HorizonDays int
	Revenue     ForecastResult
	Orders      ForecastResult
	Customers   ForecastResult
}

type SeasonStatus string

const (
	SeasonStatusPeak     SeasonStatus = "peak"
	SeasonStatusHigh     SeasonStatus = "high"
	SeasonStatusModerate SeasonStatus = "moderate"
	SeasonStatusStable   SeasonStatus = "stable"
)

type SeasonalTrend struct {
	Label         string
	GrowthPercent float64
	Status        SeasonStatus
	Description   string
	IsCurrent     bool
	OrderCount    int
}

type Momentum string

const (
	MomentumRising    Momentum = "rising"
	MomentumStable    Momentum = "stable"
	MomentumDeclining Momentum = "declining"
)

type ProductTrend struct {
	ProductName   string
	GrowthPercent float64
	Momentum      Momentum
	Confidence    string
}

type TrendResult struct {
	Seasonal []SeasonalTrend
	Products []ProductTrend
}

type RiskLevel string

const (
	RiskLow    RiskLevel = "low"
	RiskMedium RiskLevel = "medium"
	RiskHigh   RiskLevel = "high"
)

// Score maps the level onto 1..3.
func (rl RiskLevel) Score() int {
	switch rl {
	case RiskHigh:
		return 3
	case RiskMedium:
		return 2
	default:
		return 1
	}
}

type RiskAssessment struct {
	InventoryRisk   RiskLevel
	CompetitionRisk RiskLevel
	MarketRisk      RiskLevel
	TotalRiskScore  int
}

type MarketIntelligence struct {
	MarketShare       float64
	GrowthRate        float64
	TargetMarketShare float64
	CompetitorCount   int
}

// Dashboard is the assembled result of one analytics pipeline run.
type Dashboard struct {
	GeneratedAt      time.Time
	Metrics          CoreMetrics
	Stats            EntityStats
	RecentOrders     []Order
	LowStockProducts []Product
	TopProducts      []TopProduct
	TopCustomers     []CustomerStat
	CustomerInsights CustomerInsights
	Forecasts        Forecasts
	PerformanceIndex int
	Trends           TrendResult
	Market           MarketIntelligence
	Risk             RiskAssessment
}
