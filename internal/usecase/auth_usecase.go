// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"cellcontrol/internal/domain/entity"
)

// LoginInput defines the data required for an operator to log in.
type LoginInput struct {
	Email    string
	Password string
}

// LoginOutput returns the signed session token with the account it belongs to.
type LoginOutput struct {
	Token  string
	User   *entity.User
	Tenant *entity.Tenant // nil for super admins
}

// MeOutput describes the account behind the current session.
type MeOutput struct {
	User   *entity.User
	Tenant *entity.Tenant
}

// AuthUsecase authenticates operators and verifies session tokens.
type AuthUsecase interface {
	// Login verifies the credentials and issues a session token.
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)

	// Me returns the current account with its store.
	Me(ctx context.Context, session *entity.Session) (*MeOutput, error)

	// VerifyToken turns a bearer token into a session.
	VerifyToken(ctx context.Context, token string) (*entity.Session, error)
}
