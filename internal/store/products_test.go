package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListProducts(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)

	insertProduct(t, db, "p1", "10.00", 3, fixtureNow.AddDate(0, 0, -3))
	insertProduct(t, db, "p2", "20.00", 0, fixtureNow.AddDate(0, 0, -1))
	insertProduct(t, db, "p3", "30.00", 50, fixtureNow.AddDate(0, 0, -2))

	products, err := db.Products().ListProducts(ctx, 2)
	require.NoError(t, err)
	require.Len(t, products, 2)
	assert.Equal(t, "p2", products[0].ID)
	assert.True(t, products[0].IsOutOfStock())
	assert.Equal(t, "p3", products[1].ID)
	assert.Equal(t, 50, products[1].Quantity)
	assert.Equal(t, "30", products[1].Price.String())
}
