package auth

import (
	"time"

	"notesia/config"
	domainerrors "notesia/internal/domain/errors"
	"notesia/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
)

// SignToken creates an HS256 token for subject that expires ttl after now.
func SignToken(subject string, ttl time.Duration, key []byte, now time.Time) (string, error) {
	if len(key) == 0 {
		return "", errors.New("token signing key must not be empty")
	}

	claims := jwt.RegisteredClaims{
		Subject:   subject,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(key)
	if err != nil {
		return "", errors.Wrap(err, "failed to sign token")
	}

	return signed, nil
}

// ParseToken verifies the signature and expiry of tokenString as of now.
// Every failure is reported as ErrTokenInvalid; the cause is only kept in the wrap message.
func ParseToken(tokenString string, key []byte, now time.Time) (*service.Claims, error) {
	if len(key) == 0 {
		return nil, domainerrors.ErrTokenInvalid.WrapMessage("empty verification key")
	}

	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return key, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(func() time.Time { return now }),
	)
	if err != nil {
		return nil, domainerrors.ErrTokenInvalid.WrapMessage(err.Error())
	}
	if !token.Valid {
		return nil, domainerrors.ErrTokenInvalid.WrapMessage("token is not valid")
	}

	out := &service.Claims{
		Subject:   claims.Subject,
		ExpiresAt: claims.ExpiresAt.Time,
	}
	if claims.IssuedAt != nil {
		out.IssuedAt = claims.IssuedAt.Time
	}

	return out, nil
}

// SubjectFromToken returns the subject of a valid token. An empty subject is invalid.
func SubjectFromToken(tokenString string, key []byte, now time.Time) (string, error) {
	claims, err := ParseToken(tokenString, key, now)
	if err != nil {
		return "", err
	}
	if claims.Subject == "" {
		return "", domainerrors.ErrTokenInvalid.WrapMessage("token has no subject")
	}

	return claims.Subject, nil
}

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
type jwtService struct {
	secret []byte           // Signing key for access tokens.
	ttl    time.Duration    // Default lifetime of issued tokens.
	now    func() time.Time // Clock, replaced in tests.
}

// NewJWTService is the constructor for jwtService.
// The signing key and lifetime are read once here and never change afterwards.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.Access == "" {
		return nil, errors.New("jwt secret must be provided")
	}

	return newJWTService([]byte(cfg.SecretKey.Access), cfg.Auth.AccessTokenTTL(), time.Now), nil
}

func newJWTService(secret []byte, ttl time.Duration, now func() time.Time) *jwtService {
	return &jwtService{
		secret: secret,
		ttl:    ttl,
		now:    now,
	}
}

// IssueToken signs a token for subject with the configured lifetime.
func (s *jwtService) IssueToken(subject string) (string, error) {
	return s.IssueTokenWithTTL(subject, s.ttl)
}

// IssueTokenWithTTL signs a token for subject that expires after ttl.
func (s *jwtService) IssueTokenWithTTL(subject string, ttl time.Duration) (string, error) {
	return SignToken(subject, ttl, s.secret, s.now())
}

// ValidateToken checks the signature and expiry of tokenString.
func (s *jwtService) ValidateToken(tokenString string) (*service.Claims, error) {
	return ParseToken(tokenString, s.secret, s.now())
}

// SubjectOf extracts the subject of a valid token.
func (s *jwtService) SubjectOf(tokenString string) (string, error) {
	return SubjectFromToken(tokenString, s.secret, s.now())
}

// AccessTokenTTL returns the configured token lifetime.
func (s *jwtService) AccessTokenTTL() time.Duration {
	return s.ttl
}
