package entity

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrFollowUpNotFound   = errors.New("lembrete não encontrado")
	ErrFollowUpNotPending = errors.New("lembrete não está pendente")
)

type FollowUpStatus string

const (
	FollowUpStatusPending   FollowUpStatus = "pending"
	FollowUpStatusCompleted FollowUpStatus = "completed"
	FollowUpStatusCancelled FollowUpStatus = "cancelled"
)

func (s FollowUpStatus) Valid() bool {
	return s == FollowUpStatusPending || s == FollowUpStatusCompleted || s == FollowUpStatusCancelled
}

type FollowUpType string

const (
	FollowUpTypeCall     FollowUpType = "call"
	FollowUpTypeWhatsApp FollowUpType = "whatsapp"
	FollowUpTypeEmail    FollowUpType = "email"
	FollowUpTypeVisit    FollowUpType = "visit"
	FollowUpTypeOther    FollowUpType = "other"
)

func (t FollowUpType) Valid() bool {
	switch t {
	case FollowUpTypeCall, FollowUpTypeWhatsApp, FollowUpTypeEmail, FollowUpTypeVisit, FollowUpTypeOther:
		return true
	}
	return false
}

// FollowUp é um lembrete de contato vinculado a um lead.
// As tags JSON seguem o contrato do endpoint /api/follow-ups.
type FollowUp struct {
	ID          string         `json:"id"`
	TenantID    string         `json:"tenantId"`
	LeadID      string         `json:"leadId"`
	AssignedTo  string         `json:"assignedTo"`
	DueAt       time.Time      `json:"dueAt"`
	Type        FollowUpType   `json:"type"`
	Status      FollowUpStatus `json:"status"`
	Notes       string         `json:"notes"`
	CompletedAt *time.Time     `json:"completedAt"`
	CreatedAt   time.Time      `json:"createdAt"`
}

func NewFollowUp(tenantID, leadID, assignedTo string, dueAt time.Time, kind FollowUpType, notes string) (*FollowUp, error) {
	f := &FollowUp{
		ID:         uuid.New().String(),
		TenantID:   tenantID,
		LeadID:     leadID,
		AssignedTo: assignedTo,
		DueAt:      dueAt,
		Type:       kind,
		Status:     FollowUpStatusPending,
		Notes:      notes,
		CreatedAt:  time.Now(),
	}

	if err := f.Validate(); err != nil {
		return nil, err
	}
	return f, nil
}

func (f *FollowUp) Validate() error {
	if f.TenantID == "" {
		return errors.New("tenant_id é obrigatório")
	}
	if f.LeadID == "" {
		return errors.New("lead_id é obrigatório")
	}
	if f.DueAt.IsZero() {
		return errors.New("due_at é obrigatório")
	}
	if !f.Type.Valid() {
		return errors.New("type inválido")
	}
	return nil
}

// Complete marca o lembrete como concluído. Só lembretes pendentes podem ser concluídos.
func (f *FollowUp) Complete(at time.Time) error {
	if f.Status != FollowUpStatusPending {
		return ErrFollowUpNotPending
	}
	f.Status = FollowUpStatusCompleted
	f.CompletedAt = &at
	return nil
}

type FollowUpRepositoryInterface interface {
	ListByStatus(ctx context.Context, tenantID string, status FollowUpStatus) ([]FollowUp, error)
	FindByID(ctx context.Context, tenantID, id string) (*FollowUp, error)
	Create(ctx context.Context, f *FollowUp) error
	Complete(ctx context.Context, f *FollowUp) error
}
