package service

import (
	"github.com/google/uuid"
)

// TokenService validates the bearer tokens issued by the identity service.
type TokenService interface {
	// GenerateAccessToken signs a short-lived access token, used by development tooling.
	GenerateAccessToken(userID uuid.UUID) (string, error)

	// ValidateAccessToken checks the token and returns the user it was issued to.
	ValidateAccessToken(tokenString string) (uuid.UUID, error)
}
