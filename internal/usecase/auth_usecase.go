// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"teslo/internal/domain/entity"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new account.
type RegisterInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6,max=50"`
	FullName string `json:"fullName" validate:"required,min=1"`
}

// LoginInput defines the data required to log in.
type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6,max=50"`
}

// --- Output DTOs ---

// AuthOutput is the result of every authentication operation: the identity
// attributes (structurally free of password material) plus a fresh token.
type AuthOutput struct {
	User  *entity.User `json:"user"`
	Token string       `json:"token"`
}

// AuthUsecase defines the interface for authentication operations.
// This is the contract that the delivery layer depends on.
type AuthUsecase interface {
	// Register creates a new identity with a hashed credential and issues a
	// session token for it.
	Register(ctx context.Context, input *RegisterInput) (*AuthOutput, error)

	// Login verifies a credential pair and issues a session token.
	Login(ctx context.Context, input *LoginInput) (*AuthOutput, error)

	// CheckAuthStatus issues a fresh token for an identity that has already
	// been resolved from a valid prior token by the request-authentication
	// guard. It performs no storage lookup and no credential comparison.
	CheckAuthStatus(ctx context.Context, user *entity.User) (*AuthOutput, error)
}
