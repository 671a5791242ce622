package mocks

import (
	"context"

	"adminapi/internal/model"
	"github.com/stretchr/testify/mock"
)

// MockNamedRepository is a testify mock of repository.NamedRepository.
type MockNamedRepository struct {
	mock.Mock
}

func (m *MockNamedRepository) Create(ctx context.Context, name, description string) (*model.NamedEntity, error) {
	args := m.Called(ctx, name, description)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.NamedEntity), args.Error(1)
}

func (m *MockNamedRepository) List(ctx context.Context) ([]model.NamedEntity, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.NamedEntity), args.Error(1)
}

func (m *MockNamedRepository) FindByID(ctx context.Context, id string) (*model.NamedEntity, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.NamedEntity), args.Error(1)
}

func (m *MockNamedRepository) NameTaken(ctx context.Context, name, excludeID string) (bool, error) {
	args := m.Called(ctx, name, excludeID)
	return args.Bool(0), args.Error(1)
}

func (m *MockNamedRepository) Update(ctx context.Context, id string, patch model.NamedPatch) (*model.NamedEntity, error) {
	args := m.Called(ctx, id, patch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.NamedEntity), args.Error(1)
}

func (m *MockNamedRepository) Delete(ctx context.Context, id string) (*model.NamedEntity, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.NamedEntity), args.Error(1)
}
