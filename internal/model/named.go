package model

import "time"

// NamedEntity is the shared shape of Department and Role records: a store-generated id,
// a name unique within its collection and a free-form description.
type NamedEntity struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// NamedPatch carries a partial update. Nil fields keep their stored value.
type NamedPatch struct {
	Name        *string
	Description *string
}

// Empty reports whether the patch changes nothing.
func (p NamedPatch) Empty() bool {
	return p.Name == nil && p.Description == nil
}
