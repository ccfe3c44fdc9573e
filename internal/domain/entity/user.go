// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// User is an account that owns notes.
type User struct {
	ID           uuid.UUID // The Global Unique Identifier (GUID) for the user.
	Email        string    // Login identifier, unique across accounts.
	FullName     string    // Optional display name.
	Username     string    // Short handle, defaults to the local part of the email.
	PasswordHash string    // Credential record produced by the password hasher. Never serialized.
	IsActive     bool      // Inactive accounts cannot log in.
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// DefaultUsername derives a username from the local part of an email address.
func DefaultUsername(email string) string {
	local, _, _ := strings.Cut(email, "@")

	return local
}
