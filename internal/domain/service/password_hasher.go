// Package service defines interfaces for core, stateless domain logic.
// These services encapsulate business rules that don't naturally fit within a single entity.
package service

// PasswordHasher turns a plaintext secret into a storable credential record and checks
// secrets against such records.
type PasswordHasher interface {
	// Hash generates a salted, irreversible credential record from a plaintext password.
	Hash(password string) (string, error)

	// Check reports whether password matches the record. Malformed records never match.
	Check(password, record string) bool
}
