package entity

import (
	"context"
	"time"
)

type ContractStatus string

const (
	ContractStatusDraft  ContractStatus = "draft"
	ContractStatusSent   ContractStatus = "sent"
	ContractStatusSigned ContractStatus = "signed"
)

type Contract struct {
	ID         string         `json:"id"`
	TenantID   string         `json:"tenant_id"`
	LeadID     string         `json:"lead_id"`
	PropertyID string         `json:"property_id"`
	Status     ContractStatus `json:"status"`
	ValueCents int64          `json:"value_cents"` // Em centavos
	CreatedAt  time.Time      `json:"created_at"`
}

type ContractRepositoryInterface interface {
	ListByTenant(ctx context.Context, tenantID string) ([]Contract, error)
}
