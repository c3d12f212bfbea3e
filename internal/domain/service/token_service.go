package service

import (
	"time"

	"cellcontrol/internal/domain/entity"

	"github.com/golang-jwt/jwt/v5"
)

// Claims defines the custom claims carried by session tokens. The subject is the user id.
type Claims struct {
	Role     string `json:"role"`
	TenantID string `json:"tenant_id,omitempty"`
	Email    string `json:"email"`
	Name     string `json:"name"`
	jwt.RegisteredClaims
}

// TokenService issues and validates stateless session tokens.
// This abstracts the details of token creation from the use cases.
type TokenService interface {
	// Issue signs a token for the session. ExpiresAt is filled from the configured TTL.
	Issue(session *entity.Session) (string, error)

	// Validate checks signature and expiry and returns the embedded session.
	Validate(token string) (*entity.Session, error)

	// TTL returns the configured token lifetime.
	TTL() time.Duration
}
