package entity

import (
	"context"
	"time"
)

type VisitStatus string

const (
	VisitStatusScheduled VisitStatus = "scheduled"
	VisitStatusCompleted VisitStatus = "completed"
	VisitStatusCancelled VisitStatus = "cancelled"
)

// Visit é uma visita agendada de um lead a um imóvel.
type Visit struct {
	ID           string      `json:"id"`
	TenantID     string      `json:"tenant_id"`
	LeadID       string      `json:"lead_id"`
	PropertyID   string      `json:"property_id"`
	ScheduledFor time.Time   `json:"scheduled_for"`
	Status       VisitStatus `json:"status"`
	Notes        string      `json:"notes,omitempty"`
}

type VisitRepositoryInterface interface {
	ListByTenant(ctx context.Context, tenantID string) ([]Visit, error)
}
