package entity

import (
	"database/sql"
	"fmt"
	"strings"
	"time"
)

const displayNameSuffixLen = 6

// User represents a non-admin row of the users table
type User struct {
	ID        string         `db:"id"`
	Name      sql.NullString `db:"name"`
	Email     string         `db:"email"`
	CreatedAt time.Time      `db:"created_at"`
}

// DisplayName returns the user name or a "Customer #<suffix>" label built from the id.
func (u *User) DisplayName() string {
	if u.Name.Valid && strings.TrimSpace(u.Name.String) != "" {
		return u.Name.String
	}
	suffix := u.ID
	if len(suffix) > displayNameSuffixLen {
		suffix = suffix[len(suffix)-displayNameSuffixLen:]
	}
	return fmt.Sprintf("Customer #%s", strings.ToUpper(suffix))
}
