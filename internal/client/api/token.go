package api

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// tokenExpired reports whether the token's embedded expiry timestamp is in
// the past. The signature is deliberately NOT verified: this is a local,
// best-effort heuristic used only to decide whether to clear the cached
// session, never to make a trust decision. A malformed token is treated
// as expired.
func tokenExpired(token string) bool {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return true
	}
	exp, err := claims.GetExpirationTime()
	if err != nil {
		return true
	}
	if exp == nil {
		return false
	}
	return exp.Before(time.Now())
}
