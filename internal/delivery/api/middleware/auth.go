package middleware

import (
	"strings"

	"notesia/internal/delivery/api/response"
	deliverycontext "notesia/internal/delivery/context"
	domainerrors "notesia/internal/domain/errors"
	"notesia/internal/domain/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const bearerScheme = "Bearer"

// AuthMiddleware authenticates requests carrying a session token.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate resolves the bearer token to a user ID and stores it in the context.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		tokenString, ok := bearerToken(c.Request().Header.Get(echo.HeaderAuthorization))
		if !ok {
			return response.Unauthorized(c, "MISSING_TOKEN", "Authorization header must be a Bearer token")
		}

		userID, err := m.userID(tokenString)
		if err != nil {
			return response.Unauthorized(c, "INVALID_TOKEN", "Invalid or expired token")
		}

		deliverycontext.SetUserID(c, userID)

		return next(c)
	}
}

// OptionalAuthenticate records the user ID when a valid bearer token is present
// and lets every request through.
func (m *AuthMiddleware) OptionalAuthenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if tokenString, ok := bearerToken(c.Request().Header.Get(echo.HeaderAuthorization)); ok {
			if userID, err := m.userID(tokenString); err == nil {
				deliverycontext.SetUserID(c, userID)
			}
		}

		return next(c)
	}
}

// GetUserID returns the authenticated user's ID.
func GetUserID(c echo.Context) (uuid.UUID, bool) {
	return deliverycontext.GetUserID(c)
}

// userID maps a token to the user it was issued for. Tokens are issued with the user ID as subject.
func (m *AuthMiddleware) userID(tokenString string) (uuid.UUID, error) {
	subject, err := m.tokenSvc.SubjectOf(tokenString)
	if err != nil {
		return uuid.Nil, err
	}

	userID, err := uuid.Parse(subject)
	if err != nil || userID == uuid.Nil {
		return uuid.Nil, domainerrors.ErrTokenInvalid.WrapMessage("subject is not a user ID")
	}

	return userID, nil
}

// bearerToken extracts the credentials of an "Authorization: Bearer <token>" header.
// The scheme is matched case-insensitively.
func bearerToken(header string) (string, bool) {
	scheme, token, ok := strings.Cut(strings.TrimSpace(header), " ")
	if !ok || !strings.EqualFold(scheme, bearerScheme) {
		return "", false
	}

	token = strings.TrimSpace(token)

	return token, token != ""
}
