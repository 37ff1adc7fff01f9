// Package dashboard assembles admin dashboard analytics from one snapshot of
// orders, products and users per call.
package dashboard

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"github.com/jekabolt/grbpwr-dashboard/internal/analytics"
	"github.com/jekabolt/grbpwr-dashboard/internal/dependency"
	"github.com/jekabolt/grbpwr-dashboard/internal/entity"
)

// Config holds limits of the snapshot and sizes of the dashboard lists.
type Config struct {
	OrdersLimit       int `mapstructure:"orders_limit"`
	ProductsLimit     int `mapstructure:"products_limit"`
	ForecastDays      int `mapstructure:"forecast_days"`
	LowStockThreshold int `mapstructure:"low_stock_threshold"`
	RecentOrders      int `mapstructure:"recent_orders"`
	TopProducts       int `mapstructure:"top_products"`
	TopCustomers      int `mapstructure:"top_customers"`
}

// DefaultConfig returns default configuration values.
func DefaultConfig() Config {
	return Config{
		OrdersLimit:       1000,
		ProductsLimit:     1000,
		ForecastDays:      30,
		LowStockThreshold: entity.DefaultLowStockThreshold,
		RecentOrders:      10,
		TopProducts:       10,
		TopCustomers:      5,
	}
}

// Clock returns the current time.
type Clock func() time.Time

var (
	fallbackMarket = entity.MarketIntelligence{
		MarketShare:       12.5,
		GrowthRate:        8.3,
		TargetMarketShare: 15,
		CompetitorCount:   8,
	}
	fallbackRisk = entity.RiskAssessment{
		InventoryRisk:   entity.RiskLow,
		CompetitionRisk: entity.RiskLow,
		MarketRisk:      entity.RiskLow,
		TotalRiskScore:  3,
	}
)

var _ dependency.Dashboard = (*Service)(nil)

// Service implements dependency.Dashboard.
type Service struct {
	repo dependency.Repository
	c    *Config
	now  Clock
	rnd  analytics.RandomSource
}

type Option func(*Service)

// WithClock overrides the store clock.
func WithClock(clock Clock) Option {
	return func(s *Service) {
		s.now = clock
	}
}

// WithRandomSource overrides the source used by product trends.
func WithRandomSource(rnd analytics.RandomSource) Option {
	return func(s *Service) {
		s.rnd = &lockedSource{src: rnd}
	}
}

// New creates a dashboard service. Zero config values fall back to defaults.
func New(c *Config, repo dependency.Repository, opts ...Option) *Service {
	def := DefaultConfig()
	cfg := def
	if c != nil {
		cfg = *c
	}
	if cfg.OrdersLimit <= 0 {
		cfg.OrdersLimit = def.OrdersLimit
	}
	if cfg.ProductsLimit <= 0 {
		cfg.ProductsLimit = def.ProductsLimit
	}
	if cfg.ForecastDays <= 0 {
		cfg.ForecastDays = def.ForecastDays
	}
	if cfg.LowStockThreshold < 0 {
		cfg.LowStockThreshold = def.LowStockThreshold
	}
	if cfg.RecentOrders <= 0 {
		cfg.RecentOrders = def.RecentOrders
	}
	if cfg.TopProducts <= 0 {
		cfg.TopProducts = def.TopProducts
	}
	if cfg.TopCustomers <= 0 {
		cfg.TopCustomers = def.TopCustomers
	}

	s := &Service{
		repo: repo,
		c:    &cfg,
		now:  repo.Now,
		rnd:  &lockedSource{src: rand.New(rand.NewSource(time.Now().UnixNano()))},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Build fetches a snapshot and runs every calculator on it. Only the fetch
// can fail; a failing calculator is replaced by its fallback.
func (s *Service) Build(ctx context.Context) (*entity.Dashboard, error) {
	snap, err := s.snapshot(ctx, partAll)
	if err != nil {
		return nil, err
	}
	return s.assemble(ctx, snap), nil
}

func (s *Service) assemble(ctx context.Context, snap *entity.Snapshot) *entity.Dashboard {
	now := snap.TakenAt
	orders, products, users := snap.Orders, snap.Products, snap.Users

	return &entity.Dashboard{
		GeneratedAt: now,
		Metrics: guard(ctx, "core_metrics", entity.CoreMetrics{}, pure(func() entity.CoreMetrics {
			return analytics.CoreMetrics(orders, users, now)
		})),
		Stats: guard(ctx, "entity_stats", entity.EntityStats{}, pure(func() entity.EntityStats {
			return analytics.EntityStats(orders, products, users, s.c.LowStockThreshold)
		})),
		RecentOrders: guard(ctx, "recent_orders", []entity.Order{}, pure(func() []entity.Order {
			return analytics.RecentOrders(orders, s.c.RecentOrders)
		})),
		LowStockProducts: guard(ctx, "low_stock_products", []entity.Product{}, pure(func() []entity.Product {
			return analytics.LowStockProducts(products, s.c.LowStockThreshold)
		})),
		TopProducts: guard(ctx, "top_products", []entity.TopProduct{}, pure(func() []entity.TopProduct {
			return analytics.TopProducts(orders, products, s.c.TopProducts)
		})),
		TopCustomers: guard(ctx, "top_customers", []entity.CustomerStat{}, pure(func() []entity.CustomerStat {
			return analytics.TopCustomers(orders, users, s.c.TopCustomers)
		})),
		CustomerInsights: guard(ctx, "customer_insights", entity.CustomerInsights{}, pure(func() entity.CustomerInsights {
			return analytics.CustomerInsights(orders, users, now)
		})),
		Forecasts: s.forecasts(ctx, snap),
		PerformanceIndex: guard(ctx, "performance_index", 0, pure(func() int {
			return analytics.PerformanceIndex(orders)
		})),
		Trends: guard(ctx, "trends", entity.TrendResult{}, pure(func() entity.TrendResult {
			return entity.TrendResult{
				Seasonal: analytics.SeasonalTrends(orders, now),
				Products: analytics.ProductTrends(products, orders, s.rnd),
			}
		})),
		Market: guard(ctx, "market_intelligence", fallbackMarket, pure(func() entity.MarketIntelligence {
			return analytics.EstimateMarket(orders, now)
		})),
		Risk: guard(ctx, "risk_assessment", fallbackRisk, pure(func() entity.RiskAssessment {
			return analytics.AssessRisk(products, s.c.LowStockThreshold)
		})),
	}
}

func (s *Service) forecasts(ctx context.Context, snap *entity.Snapshot) entity.Forecasts {
	days := s.c.ForecastDays
	return entity.Forecasts{
		HorizonDays: days,
		Revenue: guard(ctx, "revenue_forecast", entity.ForecastResult{}, pure(func() entity.ForecastResult {
			return analytics.LinearForecast(analytics.OrderRevenuePoints(snap.Orders), days).ForecastResult
		})),
		Orders: guard(ctx, "orders_forecast", entity.ForecastResult{}, pure(func() entity.ForecastResult {
			return analytics.LinearForecast(analytics.OrderCountPoints(snap.Orders), days).ForecastResult
		})),
		Customers: guard(ctx, "customers_forecast", entity.ForecastResult{}, pure(func() entity.ForecastResult {
			return analytics.GrowthForecast(analytics.SignupPoints(snap.Users), days)
		})),
	}
}

// lockedSource serializes access to a source that is not safe for concurrent use.
type lockedSource struct {
	mu  sync.Mutex
	src analytics.RandomSource
}

func (ls *lockedSource) Float64() float64 {
	ls.mu.Lock()
	defer ls.mu.Unlock()
	return ls.src.Float64()
}
