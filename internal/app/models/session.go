package models

import (
	"time"

	"github.com/golang-jwt/jwt/v4"
)

// Session is the client-held proof of authentication persisted across page loads.
type Session struct {
	UserID   string `json:"_id"`
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Role     string `json:"role"`
	Token    string `json:"token"`
}

// ExpiresAt reads the exp claim of the token without verifying its signature.
// The backend stays the authority on validity; the second result is false when
// the token is not a JWT or carries no exp claim.
func (s *Session) ExpiresAt() (time.Time, bool) {
	if s == nil || s.Token == "" {
		return time.Time{}, false
	}

	claims := jwt.MapClaims{}
	_, _, err := new(jwt.Parser).ParseUnverified(s.Token, claims)
	if err != nil {
		return time.Time{}, false
	}

	exp, ok := claims["exp"].(float64)
	if !ok {
		return time.Time{}, false
	}
	return time.Unix(int64(exp), 0), true
}

// AuthResult is the outcome of a login, signup or logout: the session that is
// now stored (nil when none) and where the client should go next.
type AuthResult struct {
	Session  *Session `json:"session,omitempty"`
	Redirect string   `json:"redirect"`
}
