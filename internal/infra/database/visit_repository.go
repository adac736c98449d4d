package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/xavierca1/imobi/internal/entity"
)

type VisitRepository struct {
	DB *sql.DB
}

func NewVisitRepository(db *sql.DB) *VisitRepository {
	return &VisitRepository{DB: db}
}

func (r *VisitRepository) ListByTenant(ctx context.Context, tenantID string) ([]entity.Visit, error) {
	query := `
		SELECT id, tenant_id, lead_id, property_id, scheduled_for, status, COALESCE(notes, '')
		FROM visits
		WHERE tenant_id = $1
		ORDER BY scheduled_for
	`

	rows, err := r.DB.QueryContext(ctx, query, tenantID)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar visitas: %w", err)
	}
	defer rows.Close()

	visits := []entity.Visit{}
	for rows.Next() {
		var v entity.Visit
		if err := rows.Scan(&v.ID, &v.TenantID, &v.LeadID, &v.PropertyID, &v.ScheduledFor, &v.Status, &v.Notes); err != nil {
			return nil, fmt.Errorf("erro ao ler visita: %w", err)
		}
		visits = append(visits, v)
	}
	return visits, rows.Err()
}
