package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListUsers(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)

	insertUser(t, db, "u2", nil, "USER", fixtureNow.AddDate(0, 0, -1))
	insertUser(t, db, "u1", "Alice", "USER", fixtureNow.AddDate(0, 0, -5))
	insertUser(t, db, "admin", "Root", "ADMIN", fixtureNow.AddDate(0, 0, -9))

	users, err := db.Users().ListUsers(ctx)
	require.NoError(t, err)
	require.Len(t, users, 2)

	assert.Equal(t, "u1", users[0].ID)
	assert.Equal(t, "Alice", users[0].DisplayName())
	assert.Equal(t, "u2", users[1].ID)
	assert.False(t, users[1].Name.Valid)
	assert.Equal(t, "Customer #U2", users[1].DisplayName())
}
