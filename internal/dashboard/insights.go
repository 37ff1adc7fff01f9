package dashboard

import (
	"context"

	"github.com/jekabolt/grbpwr-dashboard/internal/analytics"
	"github.com/jekabolt/grbpwr-dashboard/internal/entity"
)

// RevenueChart returns revenue of the last days bucketed by period.
func (s *Service) RevenueChart(ctx context.Context, period entity.ChartPeriod, days int) ([]entity.TimeSeriesPoint, error) {
	snap, err := s.snapshot(ctx, partOrders)
	if err != nil {
		return nil, err
	}
	return guard(ctx, "revenue_chart", []entity.TimeSeriesPoint{}, pure(func() []entity.TimeSeriesPoint {
		return analytics.RevenueChart(snap.Orders, period, days, snap.TakenAt)
	})), nil
}

// OrderStatistics returns order volume and status distribution of the last days.
func (s *Service) OrderStatistics(ctx context.Context, period entity.ChartPeriod, days int) (*entity.OrderStatistics, error) {
	snap, err := s.snapshot(ctx, partOrders)
	if err != nil {
		return nil, err
	}
	stats := guard(ctx, "order_statistics", entity.OrderStatistics{}, pure(func() entity.OrderStatistics {
		return analytics.OrderStatistics(snap.Orders, period, days, snap.TakenAt)
	}))
	return &stats, nil
}

func (s *Service) TopProducts(ctx context.Context, limit int) ([]entity.TopProduct, error) {
	snap, err := s.snapshot(ctx, partOrders|partProducts)
	if err != nil {
		return nil, err
	}
	return guard(ctx, "top_products", []entity.TopProduct{}, pure(func() []entity.TopProduct {
		return analytics.TopProducts(snap.Orders, snap.Products, limit)
	})), nil
}

func (s *Service) LowStockProducts(ctx context.Context, threshold int) ([]entity.Product, error) {
	snap, err := s.snapshot(ctx, partProducts)
	if err != nil {
		return nil, err
	}
	return guard(ctx, "low_stock_products", []entity.Product{}, pure(func() []entity.Product {
		return analytics.LowStockProducts(snap.Products, threshold)
	})), nil
}

func (s *Service) CustomerInsights(ctx context.Context) (*entity.CustomerInsights, error) {
	snap, err := s.snapshot(ctx, partOrders|partUsers)
	if err != nil {
		return nil, err
	}
	ci := guard(ctx, "customer_insights", entity.CustomerInsights{}, pure(func() entity.CustomerInsights {
		return analytics.CustomerInsights(snap.Orders, snap.Users, snap.TakenAt)
	}))
	return &ci, nil
}

func (s *Service) TopCustomers(ctx context.Context, limit int) ([]entity.CustomerStat, error) {
	snap, err := s.snapshot(ctx, partOrders|partUsers)
	if err != nil {
		return nil, err
	}
	return guard(ctx, "top_customers", []entity.CustomerStat{}, pure(func() []entity.CustomerStat {
		return analytics.TopCustomers(snap.Orders, snap.Users, limit)
	})), nil
}
