package authchain

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// TokenClaims is the signed payload of a bearer token: the (filtered)
// user identity plus whichever registered claims the configuration
// populated.
type TokenClaims struct {
	jwt.RegisteredClaims
	User *User `json:"user,omitempty"`
}

// ensureTokenID assigns a jti when missing so every issued token is
// individually identifiable.
func ensureTokenID(claims *jwt.RegisteredClaims) {
	if claims.ID == "" {
		claims.ID = uuid.NewString()
	}
}
