// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"strings"

	domainerrors "notesia/internal/domain/errors"
	"notesia/internal/domain/service"

	"github.com/pkg/errors"
	"golang.org/x/crypto/pbkdf2"
)

const (
	// DefaultIterations is the PBKDF2-HMAC-SHA256 work factor for stored credentials.
	// Records do not carry their iteration count, so changing it invalidates existing records.
	DefaultIterations = 600_000

	saltLength      = 16
	digestLength    = sha256.Size
	recordDelimiter = "$"
)

// pbkdf2Hasher implements service.PasswordHasher with salted PBKDF2-HMAC-SHA256.
//
// A credential record is hex(salt) + "$" + hex(digest).
type pbkdf2Hasher struct {
	iterations int
}

// NewPBKDF2Hasher returns a hasher using DefaultIterations.
func NewPBKDF2Hasher() service.PasswordHasher {
	return &pbkdf2Hasher{iterations: DefaultIterations}
}

// NewPBKDF2HasherWithIterations returns a hasher with a custom work factor.
// Values below 1 fall back to DefaultIterations.
func NewPBKDF2HasherWithIterations(iterations int) service.PasswordHasher {
	if iterations < 1 {
		iterations = DefaultIterations
	}

	return &pbkdf2Hasher{iterations: iterations}
}

// Hash derives a credential record from password with a fresh random salt.
func (h *pbkdf2Hasher) Hash(password string) (string, error) {
	if password == "" {
		return "", errors.Wrap(domainerrors.ErrValidationFailed.WithDetails("password must not be empty"), "hash password")
	}

	salt := make([]byte, saltLength)
	if _, err := rand.Read(salt); err != nil {
		return "", errors.Wrap(domainerrors.ErrPasswordHashFailed, err.Error())
	}

	digest := h.derive(password, salt)

	return hex.EncodeToString(salt) + recordDelimiter + hex.EncodeToString(digest), nil
}

// Check recomputes the digest with the record's salt and compares in constant time.
func (h *pbkdf2Hasher) Check(password, record string) bool {
	if password == "" {
		return false
	}

	saltHex, digestHex, ok := strings.Cut(record, recordDelimiter)
	if !ok || saltHex == "" {
		return false
	}

	salt, err := hex.DecodeString(saltHex)
	if err != nil {
		return false
	}

	stored, err := hex.DecodeString(digestHex)
	if err != nil || len(stored) != digestLength {
		return false
	}

	return subtle.ConstantTimeCompare(h.derive(password, salt), stored) == 1
}

func (h *pbkdf2Hasher) derive(password string, salt []byte) []byte {
	return pbkdf2.Key([]byte(password), salt, h.iterations, digestLength, sha256.New)
}
