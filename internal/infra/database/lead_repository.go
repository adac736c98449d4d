package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/xavierca1/imobi/internal/entity"
)

type LeadRepository struct {
	DB *sql.DB
}

func NewLeadRepository(db *sql.DB) *LeadRepository {
	return &LeadRepository{DB: db}
}

func (r *LeadRepository) ListByTenant(ctx context.Context, tenantID string) ([]entity.Lead, error) {
	query := `
		SELECT id, tenant_id, name, COALESCE(email, ''), COALESCE(phone, ''), status, created_at, updated_at
		FROM leads
		WHERE tenant_id = $1
		ORDER BY created_at DESC
	`

	rows, err := r.DB.QueryContext(ctx, query, tenantID)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar leads: %w", err)
	}
	defer rows.Close()

	leads := []entity.Lead{}
	for rows.Next() {
		var l entity.Lead
		if err := rows.Scan(&l.ID, &l.TenantID, &l.Name, &l.Email, &l.Phone, &l.Status, &l.CreatedAt, &l.UpdatedAt); err != nil {
			return nil, fmt.Errorf("erro ao ler lead: %w", err)
		}
		leads = append(leads, l)
	}
	return leads, rows.Err()
}

func (r *LeadRepository) Exists(ctx context.Context, tenantID, id string) (bool, error) {
	var exists bool
	err := r.DB.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM leads WHERE tenant_id = $1 AND id = $2)`,
		tenantID, id,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("erro ao buscar lead: %w", err)
	}
	return exists, nil
}
