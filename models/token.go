package models

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Token wraps a JWT access token.
//
// It embeds [jwt.RegisteredClaims] so it can be passed straight to
// jwt.ParseWithClaims. The subject claim carries the user ID and the
// "jti" claim identifies the token for revocation on logout.
type Token struct {
	// Token is the underlying parsed or freshly built JWT.
	*jwt.Token `json:"-"`

	jwt.RegisteredClaims

	// SignedString is the compact JWS form sent to clients.
	SignedString string `json:"-"`

	// UserID is a cached copy of the subject claim.
	UserID string `json:"-"`
}

// Expiry returns the expiration time of the token, or the zero time.
func (t *Token) Expiry() time.Time {
	if t.ExpiresAt == nil {
		return time.Time{}
	}
	return t.ExpiresAt.Time
}

// String returns the compact JWS serialization of the token.
func (t *Token) String() string {
	return t.SignedString
}

// Principal is the authenticated caller of an API request.
type Principal struct {
	UserID string
	// TokenID is the jti of the JWT used, empty for API key calls.
	TokenID string
	// APIKeyID is set when the request was authenticated by API key.
	APIKeyID string
}
