package service

import (
	"fmt"
	"strings"
)

// Actions are the tags attached to failures of each operation.
type Actions struct {
	Create string
	List   string
	Get    string
	Update string
	Delete string
}

// Messages are the human texts for success envelopes and failures.
type Messages struct {
	Created       string
	Listed        string
	Found         string
	Updated       string
	Deleted       string
	AlreadyExists string
	NotFound      string
}

// Resource describes one name-unique entity type served by NamedService.
type Resource struct {
	Entity   string
	Plural   string
	Actions  Actions
	Messages Messages
}

// Departments and Roles are the two resources exposed by the API.
var (
	Departments = NewResource("Department", "departments")
	Roles       = NewResource("Role", "roles")
)

// NewResource derives action tags and messages from the entity name,
// e.g. "Department" -> CREATE_DEPARTMENT, "Department created successfully".
func NewResource(entity, plural string) Resource {
	one := strings.ToUpper(entity)
	many := strings.ToUpper(plural)
	return Resource{
		Entity: entity,
		Plural: plural,
		Actions: Actions{
			Create: "CREATE_" + one,
			List:   "LIST_" + many,
			Get:    "GET_" + one,
			Update: "UPDATE_" + one,
			Delete: "DELETE_" + one,
		},
		Messages: Messages{
			Created:       entity + " created successfully",
			Listed:        fmt.Sprintf("All %s fetched", plural),
			Found:         entity + " found",
			Updated:       entity + " updated successfully",
			Deleted:       entity + " deleted successfully",
			AlreadyExists: entity + " with this name already exists",
			NotFound:      entity + " not found",
		},
	}
}
