// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the core identity entity. It deliberately carries no password
// material: the stored credential hash lives only in the persistence layer
// and in the Credential projection, so a User can be returned to any caller
// without scrubbing fields first.
type User struct {
	ID        uuid.UUID // The unique identifier for the account, generated at creation and immutable.
	Email     string    // The login identifier. Unique across all accounts, case-sensitive as stored.
	FullName  string    // The user's display name.
	IsActive  bool      // Soft-disable flag; inactive accounts keep their data but cannot act.
	Roles     []string  // Coarse role labels, e.g. "user", "admin". Defaults to ["user"].
	CreatedAt time.Time // Timestamp of when this account was created.
	UpdatedAt time.Time // Timestamp of the last modification to this account.
}

// Credential is the narrow projection used for login verification.
// It is the only place outside the persistence layer where a password hash
// exists, and it must never cross the use-case boundary outward.
type Credential struct {
	UserID       uuid.UUID // The account this credential belongs to.
	Email        string    // The login identifier the credential was looked up by.
	PasswordHash string    // The bcrypt-encoded hash, including its own salt and cost.
}

// DefaultRoles returns the role set assigned to a freshly registered account.
func DefaultRoles() []string {
	return []string{"user"}
}
