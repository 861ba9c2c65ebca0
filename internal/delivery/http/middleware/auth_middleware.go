package middleware

import (
	"strings"

	deliverycontext "parivartan/internal/delivery/context"
	"parivartan/internal/delivery/http/response"
	"parivartan/internal/domain/entity"
	"parivartan/internal/domain/service"
	"parivartan/internal/usecase"

	"github.com/labstack/echo/v4"
)

// AuthMiddleware authenticates requests through the identity provider and
// enforces the admin/partner split.
type AuthMiddleware struct {
	provider service.IdentityProvider
	resolver usecase.IdentityUsecase
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(provider service.IdentityProvider, resolver usecase.IdentityUsecase) *AuthMiddleware {
	return &AuthMiddleware{provider: provider, resolver: resolver}
}

// Authenticate validates the bearer session token and stores the principal
// id on the request context.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return response.Unauthorized(c, "MISSING_TOKEN", "Authorization header is missing")
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return response.Unauthorized(c, "INVALID_TOKEN_FORMAT", "Invalid token format, must be Bearer token")
		}

		principalID, err := m.provider.VerifySession(c.Request().Context(), tokenString)
		if err != nil {
			return response.Unauthorized(c, "INVALID_SESSION", "Invalid or expired session")
		}

		deliverycontext.SetPrincipalID(c, principalID)

		return next(c)
	}
}

// RequireAdmin resolves the principal and refuses anything that is not the
// admin identity. It must be used AFTER Authenticate.
func (m *AuthMiddleware) RequireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		principalID, ok := deliverycontext.GetPrincipalID(c)
		if !ok {
			return response.Unauthorized(c, "MISSING_PRINCIPAL", "Request is not authenticated")
		}

		identity, err := m.resolver.Resolve(c.Request().Context(), principalID)
		if err != nil || identity.Kind != entity.IdentityAdmin {
			return response.Forbidden(c, "ADMIN_REQUIRED", "Permission denied: admin access required")
		}

		return next(c)
	}
}
