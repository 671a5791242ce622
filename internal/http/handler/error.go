package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"adminapi/internal/apperror"
	"adminapi/internal/http/middleware"
)

// errorPayload defines the standardized error response body.
type errorPayload struct {
	Status    int               `json:"status"`
	Success   bool              `json:"success"`
	Action    string            `json:"action,omitempty"`
	Code      string            `json:"code"`
	Message   string            `json:"message"`
	Details   map[string]string `json:"details,omitempty"`
	RequestID string            `json:"request_id"`
}

// writeError writes a standardized JSON error response without leaking internal errors.
func writeError(c *fiber.Ctx, e *apperror.Error) error {
	return c.Status(e.Status).JSON(errorPayload{
		Status:    e.Status,
		Success:   false,
		Action:    e.Action,
		Code:      e.Code,
		Message:   e.Message,
		Details:   e.Details,
		RequestID: middleware.RequestIDFromCtx(c),
	})
}

// ErrorHandler returns the Fiber global error handler. It is the single place where
// handler errors become responses: *apperror.Error is rendered as-is, Fiber errors map
// to generic codes, anything else is logged and answered with 500.
func ErrorHandler(log *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		if appErr, ok := apperror.As(err); ok {
			if appErr.Status >= fiber.StatusInternalServerError {
				logFailure(c, log, err)
			}
			return writeError(c, appErr)
		}

		var fe *fiber.Error
		if errors.As(err, &fe) {
			switch fe.Code {
			case fiber.StatusBadRequest:
				return writeError(c, apperror.New("", fe.Code, apperror.CodeBadRequest, "bad request"))
			case fiber.StatusNotFound:
				return writeError(c, apperror.New("", fe.Code, apperror.CodeNotFound, "resource not found"))
			case fiber.StatusMethodNotAllowed:
				return writeError(c, apperror.New("", fe.Code, apperror.CodeMethodNotAllowed, "method not allowed"))
			}
			if fe.Code < fiber.StatusInternalServerError {
				return writeError(c, apperror.New("", fe.Code, apperror.CodeBadRequest, fe.Message))
			}
		}

		logFailure(c, log, err)
		return writeError(c, apperror.New("", fiber.StatusInternalServerError, apperror.CodeInternal, "internal server error"))
	}
}

func logFailure(c *fiber.Ctx, log *zap.Logger, err error) {
	log.Error("request failed",
		zap.String("request_id", middleware.RequestIDFromCtx(c)),
		zap.String("method", c.Method()),
		zap.String("path", c.Path()),
		zap.Error(err),
	)
}
