package handlers_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/xavierca1/imobi/internal/dashboard"
	"github.com/xavierca1/imobi/internal/entity"
	"github.com/xavierca1/imobi/internal/usecase"
)

type MockDashboardService struct {
	mock.Mock
}

func (m *MockDashboardService) Execute(ctx context.Context, tenantID string) (dashboard.View, error) {
	args := m.Called(ctx, tenantID)
	return args.Get(0).(dashboard.View), args.Error(1)
}

type MockCreateFollowUp struct {
	mock.Mock
}

func (m *MockCreateFollowUp) Execute(ctx context.Context, input usecase.CreateFollowUpInput) (*entity.FollowUp, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.FollowUp), args.Error(1)
}

type MockCompleteFollowUp struct {
	mock.Mock
}

func (m *MockCompleteFollowUp) Execute(ctx context.Context, tenantID, id string) (*entity.FollowUp, error) {
	args := m.Called(ctx, tenantID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.FollowUp), args.Error(1)
}

type MockFollowUpRepository struct {
	mock.Mock
}

func (m *MockFollowUpRepository) ListByStatus(ctx context.Context, tenantID string, status entity.FollowUpStatus) ([]entity.FollowUp, error) {
	args := m.Called(ctx, tenantID, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.FollowUp), args.Error(1)
}

func (m *MockFollowUpRepository) FindByID(ctx context.Context, tenantID, id string) (*entity.FollowUp, error) {
	args := m.Called(ctx, tenantID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.FollowUp), args.Error(1)
}

func (m *MockFollowUpRepository) Create(ctx context.Context, f *entity.FollowUp) error {
	return m.Called(ctx, f).Error(0)
}

func (m *MockFollowUpRepository) Complete(ctx context.Context, f *entity.FollowUp) error {
	return m.Called(ctx, f).Error(0)
}

type MockSnapshotProvider struct {
	mock.Mock
}

func (m *MockSnapshotProvider) ListLeads(ctx context.Context, tenantID string) ([]entity.Lead, error) {
	args := m.Called(ctx, tenantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Lead), args.Error(1)
}

func (m *MockSnapshotProvider) ListVisits(ctx context.Context, tenantID string) ([]entity.Visit, error) {
	args := m.Called(ctx, tenantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Visit), args.Error(1)
}

func (m *MockSnapshotProvider) ListContracts(ctx context.Context, tenantID string) ([]entity.Contract, error) {
	args := m.Called(ctx, tenantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Contract), args.Error(1)
}

func (m *MockSnapshotProvider) ListProperties(ctx context.Context, tenantID string) ([]entity.Property, error) {
	args := m.Called(ctx, tenantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Property), args.Error(1)
}
