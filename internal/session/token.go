package session

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenExpired inspects the exp claim of the stored JWT without verifying
// the signature (the client holds no key; the backend is authoritative).
// An expired token still restores, this only lets callers warn before a
// doomed request. Tokens that do not parse or carry no exp report false.
func (s *Store) TokenExpired() bool {
	s.mu.RLock()
	token := s.token
	s.mu.RUnlock()
	if token == "" {
		return false
	}

	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return exp.Before(time.Now())
}
