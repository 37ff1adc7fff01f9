package store

import (
	"context"
	"fmt"

	"github.com/jekabolt/grbpwr-dashboard/internal/dependency"
	"github.com/jekabolt/grbpwr-dashboard/internal/entity"
)

const roleAdmin = "ADMIN"

type userStore struct {
	*MYSQLStore
}

// Users returns an object implementing users interface
func (ms *MYSQLStore) Users() dependency.Users {
	return &userStore{
		MYSQLStore: ms,
	}
}

// ListUsers returns every non admin user, oldest first.
func (us *userStore) ListUsers(ctx context.Context) ([]entity.User, error) {
	query := `
		SELECT id, name, email, created_at
		FROM users
		WHERE role <> :role
		ORDER BY created_at, id`

	users, err := QueryListNamed[entity.User](ctx, us.db, query, map[string]any{
		"role": roleAdmin,
	})
	if err != nil {
		return nil, fmt.Errorf("can't get users: %w", err)
	}
	if users == nil {
		users = []entity.User{}
	}
	return users, nil
}
