package analytics

import (
	"time"

	"github.com/jekabolt/grbpwr-dashboard/internal/entity"
	"github.com/shopspring/decimal"
	"golang.org/x/exp/slices"
)

const trendWindow = 30 * 24 * time.Hour

// CoreMetrics computes the headline numbers over the whole sample. Revenue and
// average order value only count orders in a revenue status, so the average is
// revenue over revenue orders rather than over all orders. Trends compare
// the trailing 30 days to the 30 days before them.
func CoreMetrics(orders []entity.Order, users []entity.User, now time.Time) entity.CoreMetrics {
	revenue, paid := revenueOf(orders, nil)

	current := entity.TimeRange{From: now.Add(-trendWindow), To: now.Add(time.Nanosecond)}
	previous := entity.TimeRange{From: now.Add(-2 * trendWindow), To: current.From}

	curRevenue, curPaid := revenueOf(orders, &current)
	prevRevenue, prevPaid := revenueOf(orders, &previous)

	return entity.CoreMetrics{
		TotalRevenue:      revenue,
		TotalOrders:       len(orders),
		TotalCustomers:    len(users),
		AverageOrderValue: avg(revenue, paid),
		RevenueTrend:      pctChange(curRevenue, prevRevenue),
		OrdersTrend:       changePctInt(countOrders(orders, current), countOrders(orders, previous)),
		CustomersTrend:    changePctInt(countSignups(users, current), countSignups(users, previous)),
		AOVTrend:          pctChange(avg(curRevenue, curPaid), avg(prevRevenue, prevPaid)),
	}
}

// EntityStats counts orders by status, stock levels and customers.
func EntityStats(orders []entity.Order, products []entity.Product, users []entity.User, lowStockThreshold int) entity.EntityStats {
	es := entity.EntityStats{
		TotalOrders:    len(orders),
		OrdersByStatus: statusDistribution(orders),
		TotalProducts:  len(products),
		TotalCustomers: len(users),
	}
	for _, o := range orders {
		if o.IsGuest() {
			es.GuestOrders++
		}
	}
	for _, p := range products {
		switch {
		case p.IsOutOfStock():
			es.OutOfStockProducts++
		case p.IsLowStock(lowStockThreshold):
			es.LowStockProducts++
		}
	}
	return es
}

// RecentOrders returns up to n orders, newest first.
func RecentOrders(orders []entity.Order, n int) []entity.Order {
	recent := slices.Clone(orders)
	slices.SortStableFunc(recent, func(a, b entity.Order) int {
		return b.CreatedAt.Compare(a.CreatedAt)
	})
	if n >= 0 && len(recent) > n {
		recent = recent[:n]
	}
	return recent
}

// RevenueChart buckets revenue orders of the last days by period. Buckets
// without orders are present with zero values.
func RevenueChart(orders []entity.Order, period entity.ChartPeriod, days int, now time.Time) []entity.TimeSeriesPoint {
	revenueOrders := make([]entity.Order, 0, len(orders))
	for _, o := range orders {
		if o.Status.IsRevenue() {
			revenueOrders = append(revenueOrders, o)
		}
	}
	return series(revenueOrders, period, now.AddDate(0, 0, -days), now)
}

// OrderStatistics reports order volume and status distribution of the last days.
// PeriodData is the revenue chart of the same window, so it only counts
// orders in a revenue status.
func OrderStatistics(orders []entity.Order, period entity.ChartPeriod, days int, now time.Time) entity.OrderStatistics {
	from := now.AddDate(0, 0, -days)
	tr := entity.TimeRange{From: from, To: now.Add(time.Nanosecond)}

	inRange := make([]entity.Order, 0, len(orders))
	for _, o := range orders {
		if tr.Contains(o.CreatedAt) {
			inRange = append(inRange, o)
		}
	}
	return entity.OrderStatistics{
		TotalOrders:        len(inRange),
		StatusDistribution: statusDistribution(inRange),
		PeriodData:         RevenueChart(orders, period, days, now),
	}
}

// TopProducts ranks catalog products by units sold in revenue orders.
// Ties keep catalog order. Products that never sold are left out.
func TopProducts(orders []entity.Order, products []entity.Product, limit int) []entity.TopProduct {
	tops := make([]entity.TopProduct, len(products))
	byID := make(map[string]*entity.TopProduct, len(products))
	for i, p := range products {
		tops[i] = entity.TopProduct{
			ProductID: p.ID,
			Name:      p.Name,
			Revenue:   decimal.Zero,
			Stock:     p.Quantity,
		}
		byID[p.ID] = &tops[i]
	}

	for _, o := range orders {
		if !o.Status.IsRevenue() {
			continue
		}
		for _, it := range o.Items {
			tp, ok := byID[it.ProductID]
			if !ok {
				continue
			}
			tp.UnitsSold += it.Quantity
			tp.Revenue = tp.Revenue.Add(it.Price.Mul(decimal.NewFromInt(int64(it.Quantity))))
		}
	}

	sold := make([]entity.TopProduct, 0, len(tops))
	for _, tp := range tops {
		if tp.UnitsSold > 0 {
			sold = append(sold, tp)
		}
	}
	slices.SortStableFunc(sold, func(a, b entity.TopProduct) int {
		return b.UnitsSold - a.UnitsSold
	})
	if limit >= 0 && len(sold) > limit {
		sold = sold[:limit]
	}
	return sold
}

// LowStockProducts lists products at or below threshold, scarcest first.
func LowStockProducts(products []entity.Product, threshold int) []entity.Product {
	low := make([]entity.Product, 0)
	for _, p := range products {
		if p.IsLowStock(threshold) {
			low = append(low, p)
		}
	}
	slices.SortStableFunc(low, func(a, b entity.Product) int {
		return a.Quantity - b.Quantity
	})
	return low
}

func series(orders []entity.Order, period entity.ChartPeriod, from, to time.Time) []entity.TimeSeriesPoint {
	loc := to.Location()
	tr := entity.TimeRange{From: from, To: to.Add(time.Nanosecond)}

	buckets := make(map[time.Time]*entity.TimeSeriesPoint)
	for _, o := range orders {
		if !tr.Contains(o.CreatedAt) {
			continue
		}
		key := bucketStart(o.CreatedAt.In(loc), period)
		p, ok := buckets[key]
		if !ok {
			p = &entity.TimeSeriesPoint{Date: key, Revenue: decimal.Zero}
			buckets[key] = p
		}
		p.Orders++
		if o.Status.IsRevenue() {
			p.Revenue = p.Revenue.Add(o.Total)
		}
	}

	var points []entity.TimeSeriesPoint
	end := bucketStart(to, period)
	for cur := bucketStart(from.In(loc), period); !cur.After(end); cur = bucketNext(cur, period) {
		if p, ok := buckets[cur]; ok {
			points = append(points, *p)
			continue
		}
		points = append(points, entity.TimeSeriesPoint{Date: cur, Revenue: decimal.Zero})
	}
	return points
}

func bucketStart(t time.Time, period entity.ChartPeriod) time.Time {
	loc := t.Location()
	switch period {
	case entity.ChartPeriodWeekly:
		// Monday 00:00; Go weekdays start on Sunday.
		daysBack := (int(t.Weekday()) + 6) % 7
		return time.Date(t.Year(), t.Month(), t.Day()-daysBack, 0, 0, 0, 0, loc)
	case entity.ChartPeriodMonthly:
		return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, loc)
	case entity.ChartPeriodYearly:
		return time.Date(t.Year(), time.January, 1, 0, 0, 0, 0, loc)
	default:
		return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
	}
}

func bucketNext(t time.Time, period entity.ChartPeriod) time.Time {
	switch period {
	case entity.ChartPeriodWeekly:
		return t.AddDate(0, 0, 7)
	case entity.ChartPeriodMonthly:
		return t.AddDate(0, 1, 0)
	case entity.ChartPeriodYearly:
		return t.AddDate(1, 0, 0)
	default:
		return t.AddDate(0, 0, 1)
	}
}

// revenueOf sums revenue-status totals, optionally restricted to tr.
func revenueOf(orders []entity.Order, tr *entity.TimeRange) (decimal.Decimal, int) {
	sum := decimal.Zero
	var n int
	for _, o := range orders {
		if !o.Status.IsRevenue() {
			continue
		}
		if tr != nil && !tr.Contains(o.CreatedAt) {
			continue
		}
		sum = sum.Add(o.Total)
		n++
	}
	return sum, n
}

func countOrders(orders []entity.Order, tr entity.TimeRange) int {
	var n int
	for _, o := range orders {
		if tr.Contains(o.CreatedAt) {
			n++
		}
	}
	return n
}

func countSignups(users []entity.User, tr entity.TimeRange) int {
	var n int
	for _, u := range users {
		if tr.Contains(u.CreatedAt) {
			n++
		}
	}
	return n
}

func statusDistribution(orders []entity.Order) map[entity.OrderStatus]int {
	dist := make(map[entity.OrderStatus]int, len(entity.OrderStatuses))
	for _, s := range entity.OrderStatuses {
		dist[s] = 0
	}
	for _, o := range orders {
		dist[o.Status]++
	}
	return dist
}

func avg(sum decimal.Decimal, n int) decimal.Decimal {
	if n == 0 {
		return decimal.Zero
	}
	return sum.Div(decimal.NewFromInt(int64(n))).Round(2)
}

func changePctInt(current, previous int) float64 {
	if previous == 0 {
		return 0
	}
	return float64(current-previous) / float64(previous) * 100
}
