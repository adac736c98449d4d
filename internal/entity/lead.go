package entity

import (
	"context"
	"errors"
	"time"
)

var ErrLeadNotFound = errors.New("lead não encontrado")

// LeadStatus é a etapa do funil de vendas.
type LeadStatus string

const (
	LeadStatusNew           LeadStatus = "new"
	LeadStatusQualification LeadStatus = "qualification"
	LeadStatusVisit         LeadStatus = "visit"
	LeadStatusProposal      LeadStatus = "proposal"
	LeadStatusContract      LeadStatus = "contract"
	LeadStatusLost          LeadStatus = "lost"
	LeadStatusClosed        LeadStatus = "closed"
)

func (s LeadStatus) Valid() bool {
	switch s {
	case LeadStatusNew, LeadStatusQualification, LeadStatusVisit,
		LeadStatusProposal, LeadStatusContract, LeadStatusLost, LeadStatusClosed:
		return true
	}
	return false
}

type Lead struct {
	ID        string     `json:"id"`
	TenantID  string     `json:"tenant_id"`
	Name      string     `json:"name"`
	Email     string     `json:"email,omitempty"`
	Phone     string     `json:"phone,omitempty"`
	Status    LeadStatus `json:"status"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

type LeadRepositoryInterface interface {
	ListByTenant(ctx context.Context, tenantID string) ([]Lead, error)
	Exists(ctx context.Context, tenantID, id string) (bool, error)
}
