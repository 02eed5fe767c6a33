package handler

import (
	"github.com/gofiber/fiber/v2"

	"tutorapi/internal/http/middleware"
	"tutorapi/internal/service"
)

// Login exchanges username and password (form or JSON) for a bearer token.
//
// @Summary Issue a bearer token
// @Tags auth
// @Accept x-www-form-urlencoded,json
// @Produce json
// @Param username formData string true "username"
// @Param password formData string true "password"
// @Success 200 {object} model.Token
// @Failure 401 {object} errorPayload
// @Router /token [post]
func Login(svc service.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req service.LoginRequest
		if err := c.BodyParser(&req); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "username and password are required")
		}
		tok, err := svc.Login(c.UserContext(), req)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(tok)
	}
}

// CurrentUser returns the authenticated user.
func CurrentUser() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(middleware.UserFromCtx(c))
	}
}

// Progress returns review statistics and the current study streak.
func Progress(svc service.StudyService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		p, err := svc.Progress(c.UserContext())
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(p)
	}
}
