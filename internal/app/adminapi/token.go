// internal/app/adminapi/token.go
package adminapi

import (
	"strings"

	"github.com/golang-jwt/jwt/v5"
)

// DisplayName extracts a human readable admin name from a bearer token.
//
// The token is opaque to this app; when it happens to be a JWT the claims
// username, name and sub are tried in that order. The signature is NOT
// verified: the value is for display only and is never used for any access
// decision. Returns "" when nothing usable is found.
func DisplayName(token string) string {
	if strings.Count(token, ".") != 2 {
		return ""
	}
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return ""
	}
	for _, key := range []string{"username", "name"} {
		if v, ok := claims[key].(string); ok && strings.TrimSpace(v) != "" {
			return strings.TrimSpace(v)
		}
	}
	if sub, err := claims.GetSubject(); err == nil && strings.TrimSpace(sub) != "" {
		return strings.TrimSpace(sub)
	}
	return ""
}
