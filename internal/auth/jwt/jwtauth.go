package jwt

import (
	"errors"
	"time"

	"github.com/go-chi/jwtauth/v5"
)

const (
	roleClaim = "role"
	// RoleAdmin is the only role allowed into the admin API.
	RoleAdmin = "admin"
)

var ErrNotAdmin = errors.New("token has no admin role")

// Claims is the subset of token claims the admin API relies on.
type Claims struct {
	Subject string
	Role    string
}

func VerifyToken(jwtAuth *jwtauth.JWTAuth, token string) (*Claims, error) {
	t, err := jwtauth.VerifyToken(jwtAuth, token)
	if err != nil {
		return nil, err
	}
	c := &Claims{Subject: t.Subject()}
	if v, ok := t.Get(roleClaim); ok {
		c.Role, _ = v.(string)
	}
	return c, nil
}

// VerifyAdminToken verifies token and requires the admin role claim.
func VerifyAdminToken(jwtAuth *jwtauth.JWTAuth, token string) (*Claims, error) {
	c, err := VerifyToken(jwtAuth, token)
	if err != nil {
		return nil, err
	}
	if c.Role != RoleAdmin {
		return c, ErrNotAdmin
	}
	return c, nil
}

// NewTokenWithRole creates a JWT with optional subject and role claims.
func NewTokenWithRole(jwtAuth *jwtauth.JWTAuth, ttl time.Duration, subject, role string) (string, error) {
	claims := map[string]interface{}{
		"exp": time.Now().Add(ttl).Unix(),
	}
	if subject != "" {
		claims["sub"] = subject
	}
	if role != "" {
		claims[roleClaim] = role
	}
	_, ts, err := jwtAuth.Encode(claims)
	if err != nil {
		return ts, err
	}
	return ts, nil
}

func NewAdminToken(jwtAuth *jwtauth.JWTAuth, ttl time.Duration, subject string) (string, error) {
	return NewTokenWithRole(jwtAuth, ttl, subject, RoleAdmin)
}
