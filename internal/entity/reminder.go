package entity

import (
	"context"
	"time"
)

type ReminderKind string

const (
	ReminderKindFollowUp ReminderKind = "followup"
	ReminderKindVisit    ReminderKind = "visit"
)

// ReminderLogRepositoryInterface registra os lembretes já entregues em cada dia.
// Claim devolve false quando o lembrete já foi reservado naquele dia; Release
// desfaz a reserva de um envio que falhou.
type ReminderLogRepositoryInterface interface {
	Claim(ctx context.Context, tenantID string, kind ReminderKind, refID string, day time.Time) (bool, error)
	Release(ctx context.Context, tenantID string, kind ReminderKind, refID string, day time.Time) error
}
