package service

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims defines the custom claim set carried by issued session tokens.
type Claims struct {
	UserID uuid.UUID `json:"id"`
	jwt.RegisteredClaims
}

// TokenService defines the interface for issuing and validating session tokens.
// This abstracts the details of token creation from the use cases.
type TokenService interface {
	// Generate signs a new session token asserting the given identity.
	// Two calls for the same identity at different instants yield different
	// tokens because the issuance time is embedded in the claims.
	Generate(userID uuid.UUID) (string, error)

	// Validate checks a token string's signature and expiry and returns its
	// claims. Used by the request-authentication guard, not by the auth
	// use cases themselves.
	Validate(tokenString string) (*Claims, error)
}
