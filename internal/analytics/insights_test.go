package analytics

import (
	"testing"
	"time"

	"github.com/jekabolt/grbpwr-dashboard/internal/entity"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCoreMetrics(t *testing.T) {
	orders := []entity.Order{
		testOrder("o1", "u1", 100, entity.OrderStatusPaid, daysAgo(1)),
		testOrder("o2", "u2", 300, entity.OrderStatusDelivered, daysAgo(2)),
		testOrder("o3", "", 500, entity.OrderStatusCancelled, daysAgo(3)),
		testOrder("o4", "u1", 200, entity.OrderStatusShipped, daysAgo(35)),
	}
	users := []entity.User{testUser("u1", daysAgo(5)), testUser("u2", daysAgo(40))}

	cm := CoreMetrics(orders, users, testNow)
	assert.Equal(t, "600", cm.TotalRevenue.String())
	assert.Equal(t, 4, cm.TotalOrders)
	assert.Equal(t, 2, cm.TotalCustomers)
	// 600 over the three revenue orders, not over all four
	assert.Equal(t, "200", cm.AverageOrderValue.String())
	assert.InDelta(t, 100.0, cm.RevenueTrend, 1e-9)
	assert.InDelta(t, 200.0, cm.OrdersTrend, 1e-9)
	assert.InDelta(t, 0.0, cm.CustomersTrend, 1e-9)
	assert.InDelta(t, 0.0, cm.AOVTrend, 1e-9)
}

func TestCoreMetrics_Empty(t *testing.T) {
	cm := CoreMetrics(nil, nil, testNow)
	assert.True(t, cm.TotalRevenue.IsZero())
	assert.True(t, cm.AverageOrderValue.IsZero())
	assert.Zero(t, cm.RevenueTrend)
	assert.Zero(t, cm.OrdersTrend)
}

func TestEntityStats(t *testing.T) {
	orders := []entity.Order{
		testOrder("o1", "u1", 100, entity.OrderStatusPaid, daysAgo(1)),
		testOrder("o2", "", 100, entity.OrderStatusPending, daysAgo(1)),
		testOrder("o3", "", 100, entity.OrderStatusPaid, daysAgo(1)),
	}
	products := []entity.Product{
		testProduct("p1", 10, 0),
		testProduct("p2", 10, 5),
		testProduct("p3", 10, 20),
	}

	es := EntityStats(orders, products, []entity.User{testUser("u1", daysAgo(3))}, entity.DefaultLowStockThreshold)
	assert.Equal(t, 3, es.TotalOrders)
	assert.Equal(t, 2, es.OrdersByStatus[entity.OrderStatusPaid])
	assert.Equal(t, 1, es.OrdersByStatus[entity.OrderStatusPending])
	assert.Equal(t, 0, es.OrdersByStatus[entity.OrderStatusShipped])
	assert.Len(t, es.OrdersByStatus, len(entity.OrderStatuses))
	assert.Equal(t, 3, es.TotalProducts)
	assert.Equal(t, 1, es.LowStockProducts)
	assert.Equal(t, 1, es.OutOfStockProducts)
	assert.Equal(t, 1, es.TotalCustomers)
	assert.Equal(t, 2, es.GuestOrders)
}

func TestRecentOrders(t *testing.T) {
	orders := []entity.Order{
		testOrder("old", "u1", 1, entity.OrderStatusPaid, daysAgo(9)),
		testOrder("new", "u1", 1, entity.OrderStatusPaid, daysAgo(1)),
		testOrder("mid", "u1", 1, entity.OrderStatusPaid, daysAgo(4)),
	}

	recent := RecentOrders(orders, 2)
	require.Len(t, recent, 2)
	assert.Equal(t, "new", recent[0].ID)
	assert.Equal(t, "mid", recent[1].ID)
	assert.Equal(t, "old", orders[0].ID)

	assert.Len(t, RecentOrders(orders, 10), 3)
}

func TestRevenueChart(t *testing.T) {
	orders := []entity.Order{
		testOrder("o1", "u1", 100, entity.OrderStatusPaid, time.Date(2024, 6, 29, 10, 0, 0, 0, time.UTC)),
		testOrder("o2", "u1", 40, entity.OrderStatusShipped, time.Date(2024, 6, 29, 18, 0, 0, 0, time.UTC)),
		testOrder("o3", "u1", 50, entity.OrderStatusPending, time.Date(2024, 6, 29, 11, 0, 0, 0, time.UTC)),
		testOrder("o4", "u1", 20, entity.OrderStatusPaid, time.Date(2024, 6, 27, 8, 0, 0, 0, time.UTC)),
	}

	t.Run("daily with gaps filled", func(t *testing.T) {
		points := RevenueChart(orders, entity.ChartPeriodDaily, 3, testNow)
		require.Len(t, points, 4)

		days := []string{"2024-06-27", "2024-06-28", "2024-06-29", "2024-06-30"}
		for i, p := range points {
			assert.Equal(t, days[i], p.Date.Format("2006-01-02"))
		}
		// o4 is before the window start at 12:00
		assert.True(t, points[0].Revenue.IsZero())
		assert.True(t, points[1].Revenue.IsZero())
		assert.Equal(t, "140", points[2].Revenue.String())
		assert.Equal(t, 2, points[2].Orders)
		assert.Zero(t, points[3].Orders)
	})

	t.Run("monthly", func(t *testing.T) {
		points := RevenueChart(orders, entity.ChartPeriodMonthly, 90, testNow)
		require.Len(t, points, 3)
		assert.Equal(t, "2024-04-01", points[0].Date.Format("2006-01-02"))
		assert.Equal(t, "2024-06-01", points[2].Date.Format("2006-01-02"))
		assert.Equal(t, "160", points[2].Revenue.String())
		assert.Equal(t, 3, points[2].Orders)
	})
}

func TestBucketStart(t *testing.T) {
	sunday := time.Date(2024, 6, 30, 15, 4, 5, 0, time.UTC)
	monday := time.Date(2024, 6, 24, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, time.Date(2024, 6, 30, 0, 0, 0, 0, time.UTC), bucketStart(sunday, entity.ChartPeriodDaily))
	assert.Equal(t, monday, bucketStart(sunday, entity.ChartPeriodWeekly))
	assert.Equal(t, monday, bucketStart(monday, entity.ChartPeriodWeekly))
	assert.Equal(t, time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC), bucketStart(sunday, entity.ChartPeriodMonthly))
	assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), bucketStart(sunday, entity.ChartPeriodYearly))

	assert.Equal(t, time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC), bucketNext(monday, entity.ChartPeriodWeekly))
	assert.Equal(t, time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), bucketNext(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), entity.ChartPeriodYearly))
}

func TestOrderStatistics(t *testing.T) {
	orders := []entity.Order{
		testOrder("o1", "u1", 100, entity.OrderStatusPaid, daysAgo(1)),
		testOrder("o2", "u1", 50, entity.OrderStatusPending, daysAgo(2)),
		testOrder("o3", "u1", 70, entity.OrderStatusCancelled, daysAgo(6)),
		testOrder("o4", "u1", 10, entity.OrderStatusPaid, daysAgo(20)),
	}

	stats := OrderStatistics(orders, entity.ChartPeriodDaily, 7, testNow)
	assert.Equal(t, 3, stats.TotalOrders)
	assert.Equal(t, 1, stats.StatusDistribution[entity.OrderStatusPaid])
	assert.Equal(t, 1, stats.StatusDistribution[entity.OrderStatusPending])
	assert.Equal(t, 1, stats.StatusDistribution[entity.OrderStatusCancelled])
	assert.Equal(t, 0, stats.StatusDistribution[entity.OrderStatusShipped])
	assert.Len(t, stats.PeriodData, 8)

	var count int
	revenue := decimal.Zero
	for _, p := range stats.PeriodData {
		count += p.Orders
		revenue = revenue.Add(p.Revenue)
	}
	// pending and cancelled orders stay out of the period series
	assert.Equal(t, 1, count)
	assert.Equal(t, "100", revenue.String())
}

func TestTopProducts(t *testing.T) {
	products := []entity.Product{
		testProduct("p1", 10, 7),
		testProduct("p2", 3, 2),
		testProduct("p3", 99, 1),
	}
	item := func(productID string, qty int, price int64) entity.OrderItem {
		return entity.OrderItem{ProductID: productID, Quantity: qty, Price: decimal.NewFromInt(price)}
	}

	paid := testOrder("o1", "u1", 0, entity.OrderStatusPaid, daysAgo(1))
	paid.Items = []entity.OrderItem{item("p2", 5, 3), item("p1", 2, 10), item("gone", 50, 1)}
	cancelled := testOrder("o2", "u1", 0, entity.OrderStatusCancelled, daysAgo(1))
	cancelled.Items = []entity.OrderItem{item("p1", 100, 10), item("p3", 1, 99)}
	delivered := testOrder("o3", "u1", 0, entity.OrderStatusDelivered, daysAgo(2))
	delivered.Items = []entity.OrderItem{item("p1", 3, 10)}

	orders := []entity.Order{paid, cancelled, delivered}

	top := TopProducts(orders, products, 10)
	require.Len(t, top, 2)
	assert.Equal(t, "p1", top[0].ProductID)
	assert.Equal(t, 5, top[0].UnitsSold)
	assert.Equal(t, "50", top[0].Revenue.String())
	assert.Equal(t, 7, top[0].Stock)
	assert.Equal(t, "p2", top[1].ProductID)
	assert.Equal(t, 5, top[1].UnitsSold)
	assert.Equal(t, "15", top[1].Revenue.String())

	assert.Len(t, TopProducts(orders, products, 1), 1)
}

func TestLowStockProducts(t *testing.T) {
	products := []entity.Product{
		testProduct("p1", 1, 12),
		testProduct("p2", 1, 0),
		testProduct("p3", 1, 10),
		testProduct("p4", 1, 5),
	}

	low := LowStockProducts(products, 10)
	ids := make([]string, 0, len(low))
	for _, p := range low {
		ids = append(ids, p.ID)
	}
	assert.Equal(t, []string{"p2", "p4", "p3"}, ids)
	assert.Empty(t, LowStockProducts(products, -1))
}
