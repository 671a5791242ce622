package middleware

import (
	"github.com/gofiber/fiber/v2"

	"adminapi/internal/apperror"
)

// errorStatus is the status the error handler will render for err.
func errorStatus(err error) int {
	if appErr, ok := apperror.As(err); ok {
		return appErr.Status
	}
	return fiber.StatusInternalServerError
}
