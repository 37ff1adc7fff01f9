package analytics

import (
	"database/sql"
	"time"

	"github.com/jekabolt/grbpwr-dashboard/internal/entity"
	"github.com/shopspring/decimal"
)

var testNow = time.Date(2024, time.June, 30, 12, 0, 0, 0, time.UTC)

func testOrder(id, userID string, total int64, status entity.OrderStatus, createdAt time.Time) entity.Order {
	return entity.Order{
		ID:        id,
		UserID:    sql.NullString{String: userID, Valid: userID != ""},
		Total:     decimal.NewFromInt(total),
		Status:    status,
		CreatedAt: createdAt,
	}
}

func testProduct(id string, price int64, quantity int) entity.Product {
	return entity.Product{
		ID:       id,
		Name:     "product " + id,
		Price:    decimal.NewFromInt(price),
		Quantity: quantity,
	}
}

func testUser(id string, createdAt time.Time) entity.User {
	return entity.User{
		ID:        id,
		Name:      sql.NullString{String: "user " + id, Valid: true},
		Email:     id + "@example.com",
		CreatedAt: createdAt,
	}
}

func daysAgo(n int) time.Time {
	return testNow.AddDate(0, 0, -n)
}

// scriptedSource replays vals in order, wrapping around.
type scriptedSource struct {
	vals []float64
	i    int
}

func (s *scriptedSource) Float64() float64 {
	v := s.vals[s.i%len(s.vals)]
	s.i++
	return v
}
