package middleware

import (
	"context"
	"strings"

	"github.com/gofiber/fiber/v2"

	"tutorapi/internal/model"
)

// UserLocalKey is the key used to store the authenticated user in Fiber's context locals.
const UserLocalKey = "user"

// Authenticator resolves a bearer token to an active user.
type Authenticator interface {
	Authenticate(ctx context.Context, token string) (*model.User, error)
}

// RequireAuth rejects requests without a valid "Authorization: Bearer <token>" header.
// Errors from the authenticator are returned unchanged so the global error handler
// can render them.
func RequireAuth(a Authenticator) fiber.Handler {
	return func(c *fiber.Ctx) error {
		u, err := a.Authenticate(c.UserContext(), bearerToken(c.Get(fiber.HeaderAuthorization)))
		if err != nil {
			return err
		}
		c.Locals(UserLocalKey, u)
		return c.Next()
	}
}

// UserFromCtx returns the user stored by RequireAuth, or nil.
func UserFromCtx(c *fiber.Ctx) *model.User {
	u, _ := c.Locals(UserLocalKey).(*model.User)
	return u
}

func bearerToken(header string) string {
	scheme, token, ok := strings.Cut(strings.TrimSpace(header), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}
