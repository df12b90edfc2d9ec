package service

import (
	"github.com/google/uuid"
)

// TokenService validates access tokens issued by the external auth provider.
type TokenService interface {
	// ValidateAccessToken verifies the token signature and expiry and returns the subject.
	ValidateAccessToken(tokenString string) (uuid.UUID, error)
}
