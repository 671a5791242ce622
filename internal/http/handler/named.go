package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"adminapi/internal/apperror"
	"adminapi/internal/service"
)

// NamedHandler exposes the five CRUD endpoints of one named resource.
type NamedHandler struct {
	svc service.NamedService
	res service.Resource
}

// NewNamedHandler builds handlers over svc.
func NewNamedHandler(svc service.NamedService) *NamedHandler {
	return &NamedHandler{svc: svc, res: svc.Resource()}
}

// Register mounts the handlers on r under /<plural>.
func (h *NamedHandler) Register(r fiber.Router) {
	g := r.Group("/" + h.res.Plural)
	g.Post("", h.Create)
	g.Get("", h.List)
	g.Get("/:id", h.Get)
	g.Put("/:id", h.Update)
	g.Patch("/:id", h.Update)
	g.Delete("/:id", h.Delete)
}

// Create handles POST /<plural>.
//
//	@Summary	Create a record
//	@Tags		departments,roles
//	@Accept		json
//	@Produce	json
//	@Param		body	body		service.CreateInput	true	"Record to create"
//	@Success	201		{object}	entityResponse
//	@Failure	400		{object}	errorPayload
//	@Failure	409		{object}	errorPayload
//	@Failure	500		{object}	errorPayload
//	@Router		/departments [post]
//	@Router		/roles [post]
func (h *NamedHandler) Create(c *fiber.Ctx) error {
	var in service.CreateInput
	if err := c.BodyParser(&in); err != nil {
		return invalidPayload(h.res.Actions.Create)
	}

	e, err := h.svc.Create(c.UserContext(), in)
	if err != nil {
		return err
	}
	return respondEntity(c, fiber.StatusCreated, e, h.res.Messages.Created)
}

// List handles GET /<plural>.
//
//	@Summary	List all records
//	@Tags		departments,roles
//	@Produce	json
//	@Success	200	{object}	entityList
//	@Failure	500	{object}	errorPayload
//	@Router		/departments [get]
//	@Router		/roles [get]
func (h *NamedHandler) List(c *fiber.Ctx) error {
	items, err := h.svc.List(c.UserContext())
	if err != nil {
		return err
	}
	return respondList(c, items, h.res.Messages.Listed)
}

// Get handles GET /<plural>/:id.
//
//	@Summary	Get a record by ID
//	@Tags		departments,roles
//	@Produce	json
//	@Param		id	path		string	true	"Record ID"	format(uuid)
//	@Success	200	{object}	entityResponse
//	@Failure	400	{object}	errorPayload
//	@Failure	404	{object}	errorPayload
//	@Failure	500	{object}	errorPayload
//	@Router		/departments/{id} [get]
//	@Router		/roles/{id} [get]
func (h *NamedHandler) Get(c *fiber.Ctx) error {
	id, err := parseID(c, h.res.Actions.Get)
	if err != nil {
		return err
	}

	e, err := h.svc.Get(c.UserContext(), id)
	if err != nil {
		return err
	}
	return respondEntity(c, fiber.StatusOK, e, h.res.Messages.Found)
}

// Update handles PUT and PATCH /<plural>/:id. Omitted fields keep their value.
//
//	@Summary	Update a record
//	@Tags		departments,roles
//	@Accept		json
//	@Produce	json
//	@Param		id		path		string				true	"Record ID"	format(uuid)
//	@Param		body	body		service.UpdateInput	true	"Fields to change"
//	@Success	200		{object}	entityResponse
//	@Failure	400		{object}	errorPayload
//	@Failure	404		{object}	errorPayload
//	@Failure	409		{object}	errorPayload
//	@Failure	500		{object}	errorPayload
//	@Router		/departments/{id} [put]
//	@Router		/departments/{id} [patch]
//	@Router		/roles/{id} [put]
//	@Router		/roles/{id} [patch]
func (h *NamedHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c, h.res.Actions.Update)
	if err != nil {
		return err
	}

	var in service.UpdateInput
	if err := c.BodyParser(&in); err != nil {
		return invalidPayload(h.res.Actions.Update)
	}

	e, err := h.svc.Update(c.UserContext(), id, in)
	if err != nil {
		return err
	}
	return respondEntity(c, fiber.StatusOK, e, h.res.Messages.Updated)
}

// Delete handles DELETE /<plural>/:id and returns the removed record.
//
//	@Summary	Delete a record
//	@Tags		departments,roles
//	@Produce	json
//	@Param		id	path		string	true	"Record ID"	format(uuid)
//	@Success	200	{object}	entityResponse
//	@Failure	400	{object}	errorPayload
//	@Failure	404	{object}	errorPayload
//	@Failure	500	{object}	errorPayload
//	@Router		/departments/{id} [delete]
//	@Router		/roles/{id} [delete]
func (h *NamedHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c, h.res.Actions.Delete)
	if err != nil {
		return err
	}

	e, err := h.svc.Delete(c.UserContext(), id)
	if err != nil {
		return err
	}
	return respondEntity(c, fiber.StatusOK, e, h.res.Messages.Deleted)
}

func parseID(c *fiber.Ctx, action string) (string, error) {
	id := c.Params("id")
	if _, err := uuid.Parse(id); err != nil {
		return "", apperror.BadRequest(action, apperror.CodeInvalidID, "invalid id format")
	}
	return id, nil
}

func invalidPayload(action string) error {
	return apperror.BadRequest(action, apperror.CodeInvalidPayload, "invalid JSON payload")
}
