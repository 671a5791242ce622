package repository

import (
	"context"
	"errors"

	"adminapi/internal/model"
)

// ErrDuplicateName is returned when the store's unique constraint on name rejects a write.
var ErrDuplicateName = errors.New("name already taken")

// NamedRepository defines data access for name-unique entities (departments, roles).
// No business logic here; missing rows surface as sql.ErrNoRows.
type NamedRepository interface {
	// Create inserts a new record and returns it with store-generated fields populated.
	Create(ctx context.Context, name, description string) (*model.NamedEntity, error)

	// List returns every record in store-native order.
	List(ctx context.Context) ([]model.NamedEntity, error)

	// FindByID returns a record by its ID.
	FindByID(ctx context.Context, id string) (*model.NamedEntity, error)

	// NameTaken reports whether a record other than excludeID holds name.
	// An empty excludeID checks every record.
	NameTaken(ctx context.Context, name, excludeID string) (bool, error)

	// Update applies the patch and returns the new value.
	Update(ctx context.Context, id string, patch model.NamedPatch) (*model.NamedEntity, error)

	// Delete removes a record and returns its last value.
	Delete(ctx context.Context, id string) (*model.NamedEntity, error)
}
