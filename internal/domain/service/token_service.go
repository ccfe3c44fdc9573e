package service

import (
	"time"
)

// Claims is the decoded payload of a session token.
type Claims struct {
	Subject   string // Identifier established at issuance, usually the user ID.
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// TokenService issues and verifies stateless, signed, expiring session tokens.
//
// A token is either valid (signature verifies and it has not expired) or invalid.
// All failures are reported as the same error so callers cannot tell a forged
// token from an expired one.
type TokenService interface {
	// IssueToken signs a token for subject using the configured lifetime.
	IssueToken(subject string) (string, error)

	// IssueTokenWithTTL signs a token for subject that expires ttl from now.
	IssueTokenWithTTL(subject string, ttl time.Duration) (string, error)

	// ValidateToken returns the claims of a valid token.
	ValidateToken(token string) (*Claims, error)

	// SubjectOf returns the subject of a valid token. An empty subject is treated as invalid.
	SubjectOf(token string) (string, error)

	// AccessTokenTTL returns the configured token lifetime.
	AccessTokenTTL() time.Duration
}
