package handler

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"

	"adminapi/internal/service"
)

// Services are the resources served by the API.
type Services struct {
	Departments service.NamedService
	Roles       service.NamedService
}

// RegisterRoutes attaches health and resource routes to the provided Fiber app.
func RegisterRoutes(app *fiber.App, db *sql.DB, svcs Services) {
	app.Get("/health", HealthCheck(db))
	app.Get("/healthz", LivenessProbe())

	NewNamedHandler(svcs.Departments).Register(app)
	NewNamedHandler(svcs.Roles).Register(app)
}
