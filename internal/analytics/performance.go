package analytics

import (
	"math"

	"github.com/jekabolt/grbpwr-dashboard/internal/entity"
)

const (
	revenueScoreTarget    = 10_000_000
	orderValueScoreTarget = 500_000

	revenueWeight    = 0.4
	orderValueWeight = 0.3
	completionWeight = 0.3
)

// statusCompleted is the status the completion rate counts. The order status
// enum has no such value (it uses DELIVERED), so the rate is zero for real data.
// TODO: agree with product on whether DELIVERED should count as completed.
const statusCompleted entity.OrderStatus = "completed"

// PerformanceIndex blends revenue, average order value and completion rate
// into a single 0..100 score. An empty sample scores 0.
func PerformanceIndex(orders []entity.Order) int {
	if len(orders) == 0 {
		return 0
	}

	var revenue float64
	var completed int
	for _, o := range orders {
		revenue += o.TotalFloat()
		if o.Status == statusCompleted {
			completed++
		}
	}
	count := float64(len(orders))
	avgOrderValue := revenue / count
	completionRate := float64(completed) / count * 100

	revenueScore := math.Min(100, revenue/revenueScoreTarget*100)
	orderValueScore := math.Min(100, avgOrderValue/orderValueScoreTarget*100)

	index := math.Round(revenueWeight*revenueScore + orderValueWeight*orderValueScore + completionWeight*completionRate)
	return int(clamp(index, 0, 100))
}
