package dto

import (
	"time"

	"github.com/jekabolt/grbpwr-dashboard/internal/entity"
	"github.com/shopspring/decimal"
)

const dateLayout = "2006-01-02"

type Dashboard struct {
	GeneratedAt      time.Time          `json:"generatedAt"`
	Metrics          CoreMetrics        `json:"metrics"`
	Stats            EntityStats        `json:"stats"`
	RecentOrders     []Order            `json:"recentOrders"`
	LowStockProducts []Product          `json:"lowStockProducts"`
	TopProducts      []TopProduct       `json:"topProducts"`
	TopCustomers     []TopCustomer      `json:"topCustomers"`
	CustomerInsights CustomerInsights   `json:"customerInsights"`
	Forecasts        Forecasts          `json:"forecasts"`
	PerformanceIndex int                `json:"performanceIndex"`
	Trends           Trends             `json:"trends"`
	Market           MarketIntelligence `json:"marketIntelligence"`
	Risk             RiskAssessment     `json:"riskAssessment"`
}

type CoreMetrics struct {
	TotalRevenue      float64 `json:"totalRevenue"`
	TotalOrders       int     `json:"totalOrders"`
	TotalCustomers    int     `json:"totalCustomers"`
	AverageOrderValue float64 `json:"averageOrderValue"`
	RevenueTrend      float64 `json:"revenueTrend"`
	OrdersTrend       float64 `json:"ordersTrend"`
	CustomersTrend    float64 `json:"customersTrend"`
	AOVTrend          float64 `json:"aovTrend"`
}

type EntityStats struct {
	TotalOrders        int            `json:"totalOrders"`
	OrdersByStatus     map[string]int `json:"ordersByStatus"`
	TotalProducts      int            `json:"totalProducts"`
	LowStockProducts   int            `json:"lowStockProducts"`
	OutOfStockProducts int            `json:"outOfStockProducts"`
	TotalCustomers     int            `json:"totalCustomers"`
	GuestOrders        int            `json:"guestOrders"`
}

type Order struct {
	ID        string    `json:"id"`
	UserID    *string   `json:"userId"`
	Total     float64   `json:"total"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
	ItemCount int       `json:"itemCount"`
}

type Product struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}

type TopProduct struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	UnitsSold int     `json:"unitsSold"`
	Revenue   float64 `json:"revenue"`
	Stock     int     `json:"stock"`
}

type TopCustomer struct {
	ID            string     `json:"id"`
	Name          string     `json:"name"`
	Email         string     `json:"email"`
	Orders        int        `json:"orders"`
	Revenue       float64    `json:"revenue"`
	LastOrderDate *time.Time `json:"lastOrderDate"`
}

type CustomerInsights struct {
	NewCustomers       int     `json:"newCustomers"`
	ReturningCustomers int     `json:"returningCustomers"`
	TotalCustomers     int     `json:"totalCustomers"`
	CustomerGrowth     float64 `json:"customerGrowth"`
}

type Forecast struct {
	Forecast      float64 `json:"forecast"`
	Confidence    float64 `json:"confidence"`
	GrowthPercent float64 `json:"growth"`
}

type Forecasts struct {
	HorizonDays int      `json:"horizonDays"`
	Revenue     Forecast `json:"revenue"`
	Orders      Forecast `json:"orders"`
	Customers   Forecast `json:"customers"`
}

type SeasonalTrend struct {
	Season      string  `json:"season"`
	Growth      float64 `json:"growth"`
	Status      string  `json:"status"`
	Description string  `json:"description"`
	IsCurrent   bool    `json:"isCurrent"`
	OrderCount  int     `json:"orderCount"`
}

type ProductTrend struct {
	Product    string  `json:"product"`
	Trend      float64 `json:"trend"`
	Momentum   string  `json:"momentum"`
	Confidence string  `json:"confidence"`
}

type Trends struct {
	Seasonal []SeasonalTrend `json:"seasonal"`
	Products []ProductTrend  `json:"products"`
}

type MarketIntelligence struct {
	MarketShare       float64 `json:"marketShare"`
	GrowthRate        float64 `json:"growthRate"`
	TargetMarketShare float64 `json:"targetMarketShare"`
	CompetitorCount   int     `json:"competitorCount"`
}

type RiskAssessment struct {
	InventoryRisk   string `json:"inventoryRisk"`
	CompetitionRisk string `json:"competitionRisk"`
	MarketRisk      string `json:"marketRisk"`
	TotalRiskScore  int    `json:"totalRiskScore"`
}

type ChartPoint struct {
	Date    string  `json:"date"`
	Revenue float64 `json:"revenue"`
	Orders  int     `json:"orders"`
}

type OrderStatistics struct {
	TotalOrders        int            `json:"totalOrders"`
	StatusDistribution map[string]int `json:"statusDistribution"`
	PeriodData         []ChartPoint   `json:"periodData"`
}

func ConvertEntityDashboard(d *entity.Dashboard) *Dashboard {
	if d == nil {
		return nil
	}
	return &Dashboard{
		GeneratedAt:      d.GeneratedAt,
		Metrics:          ConvertEntityCoreMetrics(d.Metrics),
		Stats:            convertEntityStats(d.Stats),
		RecentOrders:     ConvertEntityOrders(d.RecentOrders),
		LowStockProducts: ConvertEntityProducts(d.LowStockProducts),
		TopProducts:      ConvertEntityTopProducts(d.TopProducts),
		TopCustomers:     ConvertEntityCustomerStats(d.TopCustomers),
		CustomerInsights: ConvertEntityCustomerInsights(d.CustomerInsights),
		Forecasts: Forecasts{
			HorizonDays: d.Forecasts.HorizonDays,
			Revenue:     convertForecast(d.Forecasts.Revenue),
			Orders:      convertForecast(d.Forecasts.Orders),
			Customers:   convertForecast(d.Forecasts.Customers),
		},
		PerformanceIndex: d.PerformanceIndex,
		Trends:           convertTrends(d.Trends),
		Market:           MarketIntelligence(d.Market),
		Risk: RiskAssessment{
			InventoryRisk:   string(d.Risk.InventoryRisk),
			CompetitionRisk: string(d.Risk.CompetitionRisk),
			MarketRisk:      string(d.Risk.MarketRisk),
			TotalRiskScore:  d.Risk.TotalRiskScore,
		},
	}
}

func ConvertEntityCoreMetrics(m entity.CoreMetrics) CoreMetrics {
	return CoreMetrics{
		TotalRevenue:      money(m.TotalRevenue),
		TotalOrders:       m.TotalOrders,
		TotalCustomers:    m.TotalCustomers,
		AverageOrderValue: money(m.AverageOrderValue),
		RevenueTrend:      m.RevenueTrend,
		OrdersTrend:       m.OrdersTrend,
		CustomersTrend:    m.CustomersTrend,
		AOVTrend:          m.AOVTrend,
	}
}

func ConvertEntityOrders(orders []entity.Order) []Order {
	res := make([]Order, 0, len(orders))
	for _, o := range orders {
		var userID *string
		if !o.IsGuest() {
			id := o.UserID.String
			userID = &id
		}
		res = append(res, Order{
			ID:        o.ID,
			UserID:    userID,
			Total:     money(o.Total),
			Status:    o.Status.String(),
			CreatedAt: o.CreatedAt,
			ItemCount: len(o.Items),
		})
	}
	return res
}

func ConvertEntityProducts(products []entity.Product) []Product {
	res := make([]Product, 0, len(products))
	for _, p := range products {
		res = append(res, Product{
			ID:       p.ID,
			Name:     p.Name,
			Price:    money(p.Price),
			Quantity: p.Quantity,
		})
	}
	return res
}

func ConvertEntityTopProducts(tops []entity.TopProduct) []TopProduct {
	res := make([]TopProduct, 0, len(tops))
	for _, tp := range tops {
		res = append(res, TopProduct{
			ID:        tp.ProductID,
			Name:      tp.Name,
			UnitsSold: tp.UnitsSold,
			Revenue:   money(tp.Revenue),
			Stock:     tp.Stock,
		})
	}
	return res
}

func ConvertEntityCustomerStats(stats []entity.CustomerStat) []TopCustomer {
	res := make([]TopCustomer, 0, len(stats))
	for _, cs := range stats {
		res = append(res, TopCustomer{
			ID:            cs.UserID,
			Name:          cs.DisplayName,
			Email:         cs.Email,
			Orders:        cs.OrderCount,
			Revenue:       money(cs.TotalSpent),
			LastOrderDate: cs.LastOrderDate,
		})
	}
	return res
}

func ConvertEntityCustomerInsights(ci entity.CustomerInsights) CustomerInsights {
	return CustomerInsights(ci)
}

func ConvertEntityTimeSeries(points []entity.TimeSeriesPoint) []ChartPoint {
	res := make([]ChartPoint, 0, len(points))
	for _, p := range points {
		res = append(res, ChartPoint{
			Date:    p.Date.Format(dateLayout),
			Revenue: money(p.Revenue),
			Orders:  p.Orders,
		})
	}
	return res
}

func ConvertEntityOrderStatistics(s *entity.OrderStatistics) *OrderStatistics {
	if s == nil {
		return nil
	}
	return &OrderStatistics{
		TotalOrders:        s.TotalOrders,
		StatusDistribution: statusCounts(s.StatusDistribution),
		PeriodData:         ConvertEntityTimeSeries(s.PeriodData),
	}
}

func convertEntityStats(s entity.EntityStats) EntityStats {
	return EntityStats{
		TotalOrders:        s.TotalOrders,
		OrdersByStatus:     statusCounts(s.OrdersByStatus),
		TotalProducts:      s.TotalProducts,
		LowStockProducts:   s.LowStockProducts,
		OutOfStockProducts: s.OutOfStockProducts,
		TotalCustomers:     s.TotalCustomers,
		GuestOrders:        s.GuestOrders,
	}
}

func convertForecast(f entity.ForecastResult) Forecast {
	return Forecast{
		Forecast:      f.Forecast,
		Confidence:    f.Confidence,
		GrowthPercent: f.GrowthPercent,
	}
}

func convertTrends(t entity.TrendResult) Trends {
	res := Trends{
		Seasonal: make([]SeasonalTrend, 0, len(t.Seasonal)),
		Products: make([]ProductTrend, 0, len(t.Products)),
	}
	for _, st := range t.Seasonal {
		res.Seasonal = append(res.Seasonal, SeasonalTrend{
			Season:      st.Label,
			Growth:      st.GrowthPercent,
			Status:      string(st.Status),
			Description: st.Description,
			IsCurrent:   st.IsCurrent,
			OrderCount:  st.OrderCount,
		})
	}
	for _, pt := range t.Products {
		res.Products = append(res.Products, ProductTrend{
			Product:    pt.ProductName,
			Trend:      pt.GrowthPercent,
			Momentum:   string(pt.Momentum),
			Confidence: pt.Confidence,
		})
	}
	return res
}

func statusCounts(m map[entity.OrderStatus]int) map[string]int {
	res := make(map[string]int, len(m))
	for s, n := range m {
		res[s.String()] = n
	}
	return res
}

func money(d decimal.Decimal) float64 {
	return d.Round(2).InexactFloat64()
}
