// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"teslo/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrUserNotFound is a domain-specific error returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// UserRepository defines the standard operations for identity persistence.
// The application layer depends on this interface, never on the concrete implementation.
type UserRepository interface {
	// Create persists a new user together with its password hash as a single
	// atomic insert. The hash is passed alongside the entity so the entity
	// itself never carries it. A violated email uniqueness constraint is
	// reported as a domain conflict error, not a database error.
	Create(ctx context.Context, user *entity.User, passwordHash string) error

	// FindCredentialByEmail retrieves only the fields needed to verify a
	// login attempt (id, email, password hash). Returns ErrUserNotFound when
	// no account matches.
	FindCredentialByEmail(ctx context.Context, email string) (*entity.Credential, error)

	// FindByID retrieves a single user by their unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
}
