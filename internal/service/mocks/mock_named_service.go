package mocks

import (
	"context"

	"adminapi/internal/model"
	"adminapi/internal/service"
	"github.com/stretchr/testify/mock"
)

// MockNamedService is a testify mock of service.NamedService; Resource returns Res.
type MockNamedService struct {
	mock.Mock
	Res service.Resource
}

func (m *MockNamedService) Resource() service.Resource {
	return m.Res
}

func (m *MockNamedService) Create(ctx context.Context, in service.CreateInput) (*model.NamedEntity, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.NamedEntity), args.Error(1)
}

func (m *MockNamedService) List(ctx context.Context) ([]model.NamedEntity, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.NamedEntity), args.Error(1)
}

func (m *MockNamedService) Get(ctx context.Context, id string) (*model.NamedEntity, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.NamedEntity), args.Error(1)
}

func (m *MockNamedService) Update(ctx context.Context, id string, in service.UpdateInput) (*model.NamedEntity, error) {
	args := m.Called(ctx, id, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.NamedEntity), args.Error(1)
}

func (m *MockNamedService) Delete(ctx context.Context, id string) (*model.NamedEntity, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.NamedEntity), args.Error(1)
}
