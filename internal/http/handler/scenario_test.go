package handler

import (
	"context"
	"database/sql"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"adminapi/internal/apperror"
	"adminapi/internal/model"
	"adminapi/internal/repository"
	"adminapi/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memoryRepo is an in-process NamedRepository with the same uniqueness rule as the table.
type memoryRepo struct {
	mu    sync.Mutex
	order []string
	rows  map[string]model.NamedEntity
}

func newMemoryRepo() *memoryRepo {
	return &memoryRepo{rows: map[string]model.NamedEntity{}}
}

func (r *memoryRepo) taken(name, excludeID string) bool {
	for id, e := range r.rows {
		if e.Name == name && id != excludeID {
			return true
		}
	}
	return false
}

func (r *memoryRepo) Create(_ context.Context, name, description string) (*model.NamedEntity, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.taken(name, "") {
		return nil, repository.ErrDuplicateName
	}
	now := time.Now().UTC()
	e := model.NamedEntity{ID: uuid.NewString(), Name: name, Description: description, CreatedAt: now, UpdatedAt: now}
	r.rows[e.ID] = e
	r.order = append(r.order, e.ID)
	return &e, nil
}

func (r *memoryRepo) List(context.Context) ([]model.NamedEntity, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]model.NamedEntity, 0, len(r.rows))
	for _, id := range r.order {
		if e, ok := r.rows[id]; ok {
			out = append(out, e)
		}
	}
	return out, nil
}

func (r *memoryRepo) FindByID(_ context.Context, id string) (*model.NamedEntity, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.rows[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	return &e, nil
}

func (r *memoryRepo) NameTaken(_ context.Context, name, excludeID string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.taken(name, excludeID), nil
}

func (r *memoryRepo) Update(_ context.Context, id string, patch model.NamedPatch) (*model.NamedEntity, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.rows[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	if patch.Name != nil {
		if r.taken(*patch.Name, id) {
			return nil, repository.ErrDuplicateName
		}
		e.Name = *patch.Name
	}
	if patch.Description != nil {
		e.Description = *patch.Description
	}
	e.UpdatedAt = time.Now().UTC()
	r.rows[id] = e
	return &e, nil
}

func (r *memoryRepo) Delete(_ context.Context, id string) (*model.NamedEntity, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.rows[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	delete(r.rows, id)
	return &e, nil
}

func TestDepartmentLifecycle(t *testing.T) {
	app := newApp()
	RegisterRoutes(app, nil, Services{
		Departments: service.NewNamedService(service.Departments, newMemoryRepo()),
		Roles:       service.NewNamedService(service.Roles, newMemoryRepo()),
	})

	resp, err := app.Test(jsonRequest(http.MethodPost, "/departments", map[string]string{
		"name": "Engineering", "description": "Builds things",
	}))
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	created := decode[envelopeOf[model.NamedEntity]](t, resp).Data
	assert.Equal(t, "Engineering", created.Name)
	assert.NotEmpty(t, created.ID)

	t.Run("duplicate name", func(t *testing.T) {
		resp, _ := app.Test(jsonRequest(http.MethodPost, "/departments", map[string]string{"name": "Engineering", "description": "x"}))

		assert.Equal(t, http.StatusConflict, resp.StatusCode)
		body := decode[errorPayload](t, resp)
		assert.Equal(t, apperror.CodeAlreadyExists, body.Code)
		assert.Equal(t, "CREATE_DEPARTMENT", body.Action)
		assert.Equal(t, "Department with this name already exists", body.Message)
	})

	t.Run("same name in another resource", func(t *testing.T) {
		resp, _ := app.Test(jsonRequest(http.MethodPost, "/roles", map[string]string{"name": "Engineering"}))

		assert.Equal(t, http.StatusCreated, resp.StatusCode)
	})

	t.Run("missing name", func(t *testing.T) {
		resp, _ := app.Test(jsonRequest(http.MethodPost, "/departments", map[string]string{"description": "no name"}))

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		body := decode[errorPayload](t, resp)
		assert.Equal(t, apperror.CodeValidationFailed, body.Code)
		assert.Contains(t, body.Details, "name")
	})

	t.Run("get by id", func(t *testing.T) {
		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/departments/"+created.ID, nil))

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		got := decode[envelopeOf[model.NamedEntity]](t, resp).Data
		assert.Equal(t, created.ID, got.ID)
		assert.Equal(t, "Builds things", got.Description)
	})

	t.Run("unknown id", func(t *testing.T) {
		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/departments/"+uuid.NewString(), nil))

		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		body := decode[errorPayload](t, resp)
		assert.Equal(t, "Department not found", body.Message)
	})

	t.Run("description only update keeps name", func(t *testing.T) {
		resp, _ := app.Test(jsonRequest(http.MethodPatch, "/departments/"+created.ID, map[string]string{"description": "Ships things"}))

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		got := decode[envelopeOf[model.NamedEntity]](t, resp).Data
		assert.Equal(t, "Engineering", got.Name)
		assert.Equal(t, "Ships things", got.Description)
	})

	t.Run("empty update changes nothing", func(t *testing.T) {
		resp, _ := app.Test(jsonRequest(http.MethodPatch, "/departments/"+created.ID, map[string]string{}))

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		got := decode[envelopeOf[model.NamedEntity]](t, resp).Data
		assert.Equal(t, "Engineering", got.Name)
		assert.Equal(t, "Ships things", got.Description)
	})

	t.Run("rename onto another department", func(t *testing.T) {
		resp, _ := app.Test(jsonRequest(http.MethodPost, "/departments", map[string]string{"name": "Finance"}))
		require.Equal(t, http.StatusCreated, resp.StatusCode)

		resp, _ = app.Test(jsonRequest(http.MethodPut, "/departments/"+created.ID, map[string]string{"name": "Finance"}))

		assert.Equal(t, http.StatusConflict, resp.StatusCode)
	})

	t.Run("rename to own name", func(t *testing.T) {
		resp, _ := app.Test(jsonRequest(http.MethodPut, "/departments/"+created.ID, map[string]string{"name": "Engineering"}))

		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})

	t.Run("list in creation order", func(t *testing.T) {
		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/departments", nil))

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		items := decode[envelopeOf[[]model.NamedEntity]](t, resp).Data
		require.Len(t, items, 2)
		assert.Equal(t, "Engineering", items[0].Name)
		assert.Equal(t, "Finance", items[1].Name)
	})

	t.Run("delete then get", func(t *testing.T) {
		resp, _ := app.Test(httptest.NewRequest(http.MethodDelete, "/departments/"+created.ID, nil))
		require.Equal(t, http.StatusOK, resp.StatusCode)
		deleted := decode[envelopeOf[model.NamedEntity]](t, resp)
		assert.Equal(t, "Department deleted successfully", deleted.Message)
		assert.Equal(t, created.ID, deleted.Data.ID)

		resp, _ = app.Test(httptest.NewRequest(http.MethodGet, "/departments/"+created.ID, nil))
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)

		resp, _ = app.Test(httptest.NewRequest(http.MethodDelete, "/departments/"+created.ID, nil))
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})
}
