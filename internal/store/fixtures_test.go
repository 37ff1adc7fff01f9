package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

var fixtureNow = time.Date(2024, time.May, 10, 12, 0, 0, 0, time.UTC)

func insertUser(t *testing.T, db *MYSQLStore, id string, name any, role string, createdAt time.Time) {
	t.Helper()
	err := ExecNamed(context.Background(), db.db, `
		INSERT INTO users (id, name, email, role, created_at)
		VALUES (:id, :name, :email, :role, :createdAt)`, map[string]any{
		"id":        id,
		"name":      name,
		"email":     id + "@example.com",
		"role":      role,
		"createdAt": createdAt,
	})
	require.NoError(t, err)
}

func insertProduct(t *testing.T, db *MYSQLStore, id string, price string, quantity int, createdAt time.Time) {
	t.Helper()
	err := ExecNamed(context.Background(), db.db, `
		INSERT INTO products (id, name, price, quantity, created_at)
		VALUES (:id, :name, :price, :quantity, :createdAt)`, map[string]any{
		"id":        id,
		"name":      "product " + id,
		"price":     price,
		"quantity":  quantity,
		"createdAt": createdAt,
	})
	require.NoError(t, err)
}

func insertOrder(t *testing.T, db *MYSQLStore, id string, userID any, total string, status string, createdAt time.Time) {
	t.Helper()
	err := ExecNamed(context.Background(), db.db, `
		INSERT INTO orders (id, user_id, total, status, created_at)
		VALUES (:id, :userId, :total, :status, :createdAt)`, map[string]any{
		"id":        id,
		"userId":    userID,
		"total":     total,
		"status":    status,
		"createdAt": createdAt,
	})
	require.NoError(t, err)
}

func insertOrderItem(t *testing.T, db *MYSQLStore, id, orderID, productID string, quantity int, price string) {
	t.Helper()
	err := ExecNamed(context.Background(), db.db, `
		INSERT INTO order_items (id, order_id, product_id, quantity, price)
		VALUES (:id, :orderId, :productId, :quantity, :price)`, map[string]any{
		"id":        id,
		"orderId":   orderID,
		"productId": productID,
		"quantity":  quantity,
		"price":     price,
	})
	require.NoError(t, err)
}
