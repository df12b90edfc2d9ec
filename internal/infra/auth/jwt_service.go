// Package auth verifies access tokens issued by the external auth provider.
package auth

import (
	"eventpulse/config"
	"eventpulse/internal/domain/service"
	"eventpulse/internal/errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const accessTokenType = "access"

var (
	// ErrMissingSecret is returned when no access secret is configured
	ErrMissingSecret = errors.New("jwt access secret must be provided")
	// ErrInvalidSubject is returned when the token subject is not a user id
	ErrInvalidSubject = errors.New("token subject is not a valid user id")
	// ErrWrongTokenType is returned for refresh or other non-access tokens
	ErrWrongTokenType = errors.New("token is not an access token")
)

// accessClaims are the claims the auth provider puts in an access token
type accessClaims struct {
	jwt.RegisteredClaims

	Type string `json:"type,omitempty"`
}

// jwtService is a TokenService backed by HMAC-signed JWTs.
type jwtService struct {
	accessSecret []byte
	parser       *jwt.Parser
}

// NewJWTService creates the token verifier from the configured access secret.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.Access == "" {
		return nil, ErrMissingSecret
	}

	return &jwtService{
		accessSecret: []byte(cfg.SecretKey.Access),
		parser: jwt.NewParser(
			jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg(), jwt.SigningMethodHS384.Alg(), jwt.SigningMethodHS512.Alg()}),
			jwt.WithExpirationRequired(),
		),
	}, nil
}

// ValidateAccessToken checks signature, expiry and token type, and returns the user id in "sub".
func (s *jwtService) ValidateAccessToken(tokenString string) (uuid.UUID, error) {
	claims := &accessClaims{}

	_, err := s.parser.ParseWithClaims(tokenString, claims, func(*jwt.Token) (any, error) {
		return s.accessSecret, nil
	})
	if err != nil {
		return uuid.Nil, errors.Wrap(err, "invalid access token")
	}

	if claims.Type != "" && claims.Type != accessTokenType {
		return uuid.Nil, ErrWrongTokenType
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return uuid.Nil, ErrInvalidSubject
	}

	return userID, nil
}
