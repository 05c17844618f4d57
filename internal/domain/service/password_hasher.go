// Package service defines interfaces for core, stateless domain logic.
// These services encapsulate business rules that don't naturally fit within a single entity.
package service

// PasswordHasher defines the interface for password hashing and verification.
// This abstracts the underlying hashing algorithm (e.g., bcrypt), keeping the domain pure.
type PasswordHasher interface {
	// Hash generates a salted hash from a plaintext password. The encoding
	// embeds its own salt and cost, so no external salt storage is needed.
	Hash(password string) (string, error)

	// Check compares a plaintext password with a hash. A malformed hash
	// reports false rather than an error; the caller only ever learns
	// "match" or "no match".
	Check(password, hash string) bool
}
