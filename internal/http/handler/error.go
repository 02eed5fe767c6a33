package handler

import (
	"database/sql"
	"errors"

	"github.com/gofiber/fiber/v2"

	"tutorapi/internal/http/middleware"
	"tutorapi/internal/service"
)

// errorPayload defines the standardized error response body.
type errorPayload struct {
	RequestID string        `json:"request_id"`
	Error     errorEnvelope `json:"error"`
}

type errorEnvelope struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// writeError writes a standardized JSON error response without leaking internal errors.
//
// Parameters:
// - status: HTTP status code to return
// - code: machine-readable short error code (e.g., "INVALID_ID", "NOT_FOUND", "INTERNAL_ERROR")
// - message: human-readable safe message (no internal details)
func writeError(c *fiber.Ctx, status int, code, message string) error {
	res := errorPayload{
		RequestID: middleware.RequestIDFromCtx(c),
		Error: errorEnvelope{
			Code:    code,
			Message: message,
		},
	}
	return c.Status(status).JSON(res)
}

// writeServiceError maps a service failure kind to its status and code.
// Messages of caller-facing kinds are built by the services and safe to return;
// everything else is reported generically.
func writeServiceError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, service.ErrNotFound):
		return writeError(c, fiber.StatusNotFound, "NOT_FOUND", err.Error())
	case errors.Is(err, sql.ErrNoRows):
		return writeError(c, fiber.StatusNotFound, "NOT_FOUND", "resource not found")
	case errors.Is(err, service.ErrUnsupportedType):
		return writeError(c, fiber.StatusBadRequest, "UNSUPPORTED_FILE_TYPE", "unsupported file type, supported types: .pdf, .docx, .csv, .txt")
	case errors.Is(err, service.ErrInactiveUser):
		return writeError(c, fiber.StatusBadRequest, "INACTIVE_USER", "inactive user")
	case errors.Is(err, service.ErrIDRequired), errors.Is(err, service.ErrReaderNil):
		return writeError(c, fiber.StatusBadRequest, "BAD_REQUEST", err.Error())
	case errors.Is(err, service.ErrInvalidInput):
		return writeError(c, fiber.StatusBadRequest, "INVALID_INPUT", err.Error())
	case errors.Is(err, service.ErrConflict):
		return writeError(c, fiber.StatusConflict, "CONFLICT", err.Error())
	case errors.Is(err, service.ErrUnauthorized):
		c.Set(fiber.HeaderWWWAuthenticate, "Bearer")
		return writeError(c, fiber.StatusUnauthorized, "UNAUTHORIZED", err.Error())
	case errors.Is(err, service.ErrUpstream):
		return writeError(c, fiber.StatusBadGateway, "UPSTREAM_ERROR", "language model request failed")
	default:
		return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
	}
}

// ErrorHandler returns a Fiber global error handler that standardizes error responses.
// Errors returned by middleware (authentication) go through the service mapping.
func ErrorHandler() fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		var fe *fiber.Error
		if !errors.As(err, &fe) {
			return writeServiceError(c, err)
		}

		switch fe.Code {
		case fiber.StatusBadRequest:
			return writeError(c, fe.Code, "BAD_REQUEST", "bad request")
		case fiber.StatusNotFound:
			return writeError(c, fe.Code, "NOT_FOUND", "resource not found")
		case fiber.StatusMethodNotAllowed:
			return writeError(c, fe.Code, "METHOD_NOT_ALLOWED", "method not allowed")
		case fiber.StatusRequestEntityTooLarge:
			return writeError(c, fe.Code, "PAYLOAD_TOO_LARGE", "request body too large")
		default:
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
	}
}
