package handler

import (
	"github.com/gofiber/fiber/v2"

	"adminapi/internal/model"
)

// entityResponse wraps a single record.
type entityResponse struct {
	Status  int                `json:"status"`
	Success bool               `json:"success"`
	Message string             `json:"message"`
	Data    *model.NamedEntity `json:"data"`
}

// entityList wraps a collection of records.
type entityList struct {
	Status  int                 `json:"status"`
	Success bool                `json:"success"`
	Message string              `json:"message"`
	Data    []model.NamedEntity `json:"data"`
}

func respondEntity(c *fiber.Ctx, status int, e *model.NamedEntity, message string) error {
	return c.Status(status).JSON(entityResponse{
		Status:  status,
		Success: true,
		Message: message,
		Data:    e,
	})
}

func respondList(c *fiber.Ctx, items []model.NamedEntity, message string) error {
	if items == nil {
		items = []model.NamedEntity{}
	}
	return c.Status(fiber.StatusOK).JSON(entityList{
		Status:  fiber.StatusOK,
		Success: true,
		Message: message,
		Data:    items,
	})
}
