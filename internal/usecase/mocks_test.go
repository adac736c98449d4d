package usecase_test

import (
	"context"
	"sync"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/xavierca1/imobi/internal/entity"
)

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

type MockFollowUpSource struct {
	mock.Mock
}

func (m *MockFollowUpSource) PendingFollowUps(ctx context.Context, tenantID string) ([]entity.FollowUp, error) {
	args := m.Called(ctx, tenantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.FollowUp), args.Error(1)
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
	args := m.Called(ctx, f)
	return args.Error(0)
}

func (m *MockFollowUpRepository) Complete(ctx context.Context, f *entity.FollowUp) error {
	args := m.Called(ctx, f)
	return args.Error(0)
}

type MockLeadRepository struct {
	mock.Mock
}

func (m *MockLeadRepository) ListByTenant(ctx context.Context, tenantID string) ([]entity.Lead, error) {
	args := m.Called(ctx, tenantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Lead), args.Error(1)
}

func (m *MockLeadRepository) Exists(ctx context.Context, tenantID, id string) (bool, error) {
	args := m.Called(ctx, tenantID, id)
	return args.Bool(0), args.Error(1)
}

type MockWhatsAppService struct {
	mock.Mock
}

func (m *MockWhatsAppService) SendTemplate(ctx context.Context, phone, templateName string, params []string) error {
	args := m.Called(ctx, phone, templateName, params)
	return args.Error(0)
}

// memoryReminderLog guarda as reservas como a tabela reminder_deliveries.
type memoryReminderLog struct {
	mu      sync.Mutex
	claimed map[string]bool
}

func newMemoryReminderLog() *memoryReminderLog {
	return &memoryReminderLog{claimed: make(map[string]bool)}
}

func reminderKey(tenantID string, kind entity.ReminderKind, refID string, day time.Time) string {
	return tenantID + "|" + string(kind) + "|" + refID + "|" + day.Format(time.DateOnly)
}

func (l *memoryReminderLog) Claim(ctx context.Context, tenantID string, kind entity.ReminderKind, refID string, day time.Time) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	key := reminderKey(tenantID, kind, refID, day)
	if l.claimed[key] {
		return false, nil
	}
	l.claimed[key] = true
	return true, nil
}

func (l *memoryReminderLog) Release(ctx context.Context, tenantID string, kind entity.ReminderKind, refID string, day time.Time) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	delete(l.claimed, reminderKey(tenantID, kind, refID, day))
	return nil
}
