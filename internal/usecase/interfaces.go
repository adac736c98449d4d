package usecase

import (
	"context"

	"github.com/xavierca1/imobi/internal/entity"
)

// SnapshotProvider entrega as coleções consumidas pelo painel. No servidor é o
// banco; no comando digest é a API remota.
type SnapshotProvider interface {
	ListLeads(ctx context.Context, tenantID string) ([]entity.Lead, error)
	ListVisits(ctx context.Context, tenantID string) ([]entity.Visit, error)
	ListContracts(ctx context.Context, tenantID string) ([]entity.Contract, error)
	ListProperties(ctx context.Context, tenantID string) ([]entity.Property, error)
}

type FollowUpSource interface {
	PendingFollowUps(ctx context.Context, tenantID string) ([]entity.FollowUp, error)
}

type WhatsAppService interface {
	SendTemplate(ctx context.Context, phone, templateName string, params []string) error
}

// RepositoryProvider adapta os repositórios do banco para SnapshotProvider e FollowUpSource.
type RepositoryProvider struct {
	Leads      entity.LeadRepositoryInterface
	Visits     entity.VisitRepositoryInterface
	Contracts  entity.ContractRepositoryInterface
	Properties entity.PropertyRepositoryInterface
	FollowUps  entity.FollowUpRepositoryInterface
}

func (p RepositoryProvider) ListLeads(ctx context.Context, tenantID string) ([]entity.Lead, error) {
	return p.Leads.ListByTenant(ctx, tenantID)
}

func (p RepositoryProvider) ListVisits(ctx context.Context, tenantID string) ([]entity.Visit, error) {
	return p.Visits.ListByTenant(ctx, tenantID)
}

func (p RepositoryProvider) ListContracts(ctx context.Context, tenantID string) ([]entity.Contract, error) {
	return p.Contracts.ListByTenant(ctx, tenantID)
}

func (p RepositoryProvider) ListProperties(ctx context.Context, tenantID string) ([]entity.Property, error) {
	return p.Properties.ListByTenant(ctx, tenantID)
}

func (p RepositoryProvider) PendingFollowUps(ctx context.Context, tenantID string) ([]entity.FollowUp, error) {
	return p.FollowUps.ListByStatus(ctx, tenantID, entity.FollowUpStatusPending)
}
