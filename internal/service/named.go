package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"adminapi/internal/apperror"
	"adminapi/internal/model"
	"adminapi/internal/repository"
	"adminapi/internal/validation"
)

var tracer = otel.Tracer("adminapi/internal/service")

// CreateInput is the body of a create request.
type CreateInput struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
}

// UpdateInput is the body of an update request. Omitted fields are left unchanged.
type UpdateInput struct {
	Name        *string `json:"name" validate:"omitempty,min=1"`
	Description *string `json:"description"`
}

// NamedService defines the use cases for a name-unique resource.
// Expected failures are returned as *apperror.Error; anything else is an internal error.
type NamedService interface {
	// Resource describes the entity this service manages.
	Resource() Resource

	// Create stores a new record. A taken name yields a Conflict.
	Create(ctx context.Context, in CreateInput) (*model.NamedEntity, error)

	// List returns every record.
	List(ctx context.Context) ([]model.NamedEntity, error)

	// Get returns a record by ID or a NotFound.
	Get(ctx context.Context, id string) (*model.NamedEntity, error)

	// Update patches a record. A name held by a different record yields a Conflict,
	// an unknown ID a NotFound.
	Update(ctx context.Context, id string, in UpdateInput) (*model.NamedEntity, error)

	// Delete removes a record and returns its last value, or a NotFound.
	Delete(ctx context.Context, id string) (*model.NamedEntity, error)
}

type namedService struct {
	res  Resource
	repo repository.NamedRepository
}

// NewNamedService constructs a NamedService for res backed by repo.
func NewNamedService(res Resource, repo repository.NamedRepository) NamedService {
	return &namedService{res: res, repo: repo}
}

func (s *namedService) Resource() Resource {
	return s.res
}

func (s *namedService) Create(ctx context.Context, in CreateInput) (_ *model.NamedEntity, err error) {
	ctx, span := s.start(ctx, "create")
	defer func() { finish(span, err) }()

	in.Name = strings.TrimSpace(in.Name)
	if details := validation.Struct(in); details != nil {
		return nil, apperror.Validation(s.res.Actions.Create, details)
	}

	// The unique constraint is authoritative; this check only avoids a failed insert.
	taken, err := s.repo.NameTaken(ctx, in.Name, "")
	if err != nil {
		return nil, fmt.Errorf("check name: %w", err)
	}
	if taken {
		return nil, s.conflict(s.res.Actions.Create, nil)
	}

	e, err := s.repo.Create(ctx, in.Name, in.Description)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateName) {
			return nil, s.conflict(s.res.Actions.Create, err)
		}
		return nil, fmt.Errorf("create %s: %w", s.res.Entity, err)
	}
	span.SetAttributes(attribute.String("entity.id", e.ID))
	return e, nil
}

func (s *namedService) List(ctx context.Context) (_ []model.NamedEntity, err error) {
	ctx, span := s.start(ctx, "list")
	defer func() { finish(span, err) }()

	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", s.res.Plural, err)
	}
	span.SetAttributes(attribute.Int("entity.count", len(items)))
	return items, nil
}

func (s *namedService) Get(ctx context.Context, id string) (_ *model.NamedEntity, err error) {
	ctx, span := s.start(ctx, "get", attribute.String("entity.id", id))
	defer func() { finish(span, err) }()

	e, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, s.notFound(s.res.Actions.Get)
		}
		return nil, fmt.Errorf("get %s: %w", s.res.Entity, err)
	}
	return e, nil
}

func (s *namedService) Update(ctx context.Context, id string, in UpdateInput) (_ *model.NamedEntity, err error) {
	ctx, span := s.start(ctx, "update", attribute.String("entity.id", id))
	defer func() { finish(span, err) }()

	if in.Name != nil {
		trimmed := strings.TrimSpace(*in.Name)
		in.Name = &trimmed
	}
	if details := validation.Struct(in); details != nil {
		return nil, apperror.Validation(s.res.Actions.Update, details)
	}

	if in.Name != nil {
		taken, err := s.repo.NameTaken(ctx, *in.Name, id)
		if err != nil {
			return nil, fmt.Errorf("check name: %w", err)
		}
		if taken {
			return nil, s.conflict(s.res.Actions.Update, nil)
		}
	}

	patch := model.NamedPatch{Name: in.Name, Description: in.Description}
	var e *model.NamedEntity
	if patch.Empty() {
		// An empty patch leaves the record and its updated_at untouched.
		e, err = s.repo.FindByID(ctx, id)
	} else {
		e, err = s.repo.Update(ctx, id, patch)
	}
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return nil, s.notFound(s.res.Actions.Update)
		case errors.Is(err, repository.ErrDuplicateName):
			return nil, s.conflict(s.res.Actions.Update, err)
		}
		return nil, fmt.Errorf("update %s: %w", s.res.Entity, err)
	}
	return e, nil
}

func (s *namedService) Delete(ctx context.Context, id string) (_ *model.NamedEntity, err error) {
	ctx, span := s.start(ctx, "delete", attribute.String("entity.id", id))
	defer func() { finish(span, err) }()

	e, err := s.repo.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, s.notFound(s.res.Actions.Delete)
		}
		return nil, fmt.Errorf("delete %s: %w", s.res.Entity, err)
	}
	return e, nil
}

func (s *namedService) conflict(action string, cause error) error {
	return apperror.Conflict(action, s.res.Messages.AlreadyExists).Wrap(cause)
}

func (s *namedService) notFound(action string) error {
	return apperror.NotFound(action, s.res.Messages.NotFound)
}

func (s *namedService) start(ctx context.Context, op string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	attrs = append(attrs, attribute.String("entity.type", s.res.Entity))
	return tracer.Start(ctx, strings.ToLower(s.res.Entity)+"."+op, trace.WithAttributes(attrs...))
}

// finish ends span, marking it failed only for unexpected errors.
func finish(span trace.Span, err error) {
	if err != nil {
		if _, ok := apperror.As(err); !ok {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
	}
	span.End()
}
