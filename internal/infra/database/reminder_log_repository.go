package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/xavierca1/imobi/internal/entity"
)

type ReminderLogRepository struct {
	DB *sql.DB
}

func NewReminderLogRepository(db *sql.DB) *ReminderLogRepository {
	return &ReminderLogRepository{DB: db}
}

// reminderDay reduz o instante à data local, que é a chave da tabela.
func reminderDay(t time.Time) string {
	return t.Format(time.DateOnly)
}

func (r *ReminderLogRepository) Claim(ctx context.Context, tenantID string, kind entity.ReminderKind, refID string, day time.Time) (bool, error) {
	query := `INSERT INTO reminder_deliveries (tenant_id, kind, ref_id, day)
	          VALUES ($1, $2, $3, $4)
	          ON CONFLICT DO NOTHING`

	res, err := r.DB.ExecContext(ctx, query, tenantID, string(kind), refID, reminderDay(day))
	if err != nil {
		return false, fmt.Errorf("erro ao registrar lembrete enviado: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("erro ao registrar lembrete enviado: %w", err)
	}
	return n == 1, nil
}

func (r *ReminderLogRepository) Release(ctx context.Context, tenantID string, kind entity.ReminderKind, refID string, day time.Time) error {
	query := `DELETE FROM reminder_deliveries
	          WHERE tenant_id = $1 AND kind = $2 AND ref_id = $3 AND day = $4`

	if _, err := r.DB.ExecContext(ctx, query, tenantID, string(kind), refID, reminderDay(day)); err != nil {
		return fmt.Errorf("erro ao liberar lembrete: %w", err)
	}
	return nil
}
