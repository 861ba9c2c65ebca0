// Package context carries request-scoped values between the delivery layer
// and the services.
package context

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// KeyPrincipalID is the key for the authenticated principal id in
// echo.Context. Set by the auth middleware.
const KeyPrincipalID ContextKey = "principal_id"

// SetPrincipalID stores the authenticated principal id in echo.Context.
func SetPrincipalID(c echo.Context, id uuid.UUID) {
	c.Set(string(KeyPrincipalID), id)
}

// GetPrincipalID returns the authenticated principal id, or false when the
// request passed no auth middleware.
func GetPrincipalID(c echo.Context) (uuid.UUID, bool) {
	id, ok := c.Get(string(KeyPrincipalID)).(uuid.UUID)

	return id, ok
}
